package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gorsd/internal/diagram"
	"github.com/alexiusacademia/gorsd/internal/geomech"
	"github.com/spf13/cobra"
)

var (
	sensitivityInput    inputFlags
	sensitivityFrom     float64
	sensitivityTo       float64
	sensitivitySteps    int
	sensitivityQuantity string
	sensitivityTable    bool
)

var gallerySensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Plot a design quantity against the major principal stress",
	Long: `Evaluate the design for evenly spaced values of σ1, keeping the
other inputs fixed, and plot one quantity in the terminal.

Quantities:
  sigma_max  - maximum tangential stress (MPa)
  a          - equivalent radius (m)
  rf         - plastic zone radius (m)
  sexc       - excavation displacement (m)
  p          - bolt load weight (t)
  lp         - minimum bolt length (m)

Examples:
  gorsd gallery sensitivity --from 20 --to 60
  gorsd gallery sensitivity -q p --from 10 --to 80 --steps 36 --table`,
	RunE: runGallerySensitivity,
}

func init() {
	galleryCmd.AddCommand(gallerySensitivityCmd)

	sensitivityInput.bind(gallerySensitivityCmd)

	gallerySensitivityCmd.Flags().Float64Var(&sensitivityFrom, "from", 20, "First σ1 value (MPa)")
	gallerySensitivityCmd.Flags().Float64Var(&sensitivityTo, "to", 60, "Last σ1 value (MPa)")
	gallerySensitivityCmd.Flags().IntVar(&sensitivitySteps, "steps", 41, "Number of σ1 values")
	gallerySensitivityCmd.Flags().StringVarP(&sensitivityQuantity, "quantity", "q", "rf", "Quantity to plot")
	gallerySensitivityCmd.Flags().BoolVar(&sensitivityTable, "table", false, "Also print the values as a table")
}

func runGallerySensitivity(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	in, err := sensitivityInput.resolve(cmd)
	if err != nil {
		return err
	}

	points, err := geomech.Sweep(in, sensitivityFrom, sensitivityTo, sensitivitySteps)
	if err != nil {
		return err
	}

	chart, err := diagram.DrawSensitivity(points, sensitivityQuantity)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "SENSITIVITY TO σ1:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintln(out, chart)
	fmt.Fprintln(out)

	if sensitivityTable {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  σ1 (MPa)\t%s\n", sensitivityQuantity)
		fmt.Fprintf(w, "  ────────\t─────────\n")
		for _, p := range points {
			v, _ := p.Result.Value(sensitivityQuantity)
			marker := ""
			if p.Result.Degenerate {
				marker = "  (Sexc < 0)"
			}
			fmt.Fprintf(w, "  %.2f\t%.4f%s\n", p.Sigma1, v, marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	return nil
}
