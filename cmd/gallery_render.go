package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorsd/internal/diagram"
	"github.com/alexiusacademia/gorsd/internal/section"
	"github.com/spf13/cobra"
)

var (
	renderInput      inputFlags
	renderExportFile string
	renderASCII      bool
	renderCols       int
)

var galleryRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the gallery cross-section with its plastic zone",
	Long: `Draw the gallery outline (rectangle and semicircular arch) and
the dashed plastic zone circle of radius Rf centred on the arch springing.

Examples:
  gorsd gallery render -o section.png
  gorsd gallery render --width 5 --height 4.5 -o section.svg
  gorsd gallery render --ascii --cols 80`,
	RunE: runGalleryRender,
}

func init() {
	galleryCmd.AddCommand(galleryRenderCmd)

	renderInput.bind(galleryRenderCmd)

	galleryRenderCmd.Flags().StringVarP(&renderExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	galleryRenderCmd.Flags().BoolVar(&renderASCII, "ascii", false, "Print the diagram to the terminal")
	galleryRenderCmd.Flags().IntVar(&renderCols, "cols", 60, "Width of the terminal diagram in characters")
}

func runGalleryRender(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	if renderExportFile == "" && !renderASCII {
		return fmt.Errorf("nothing to do: give --output or --ascii")
	}

	in, err := renderInput.resolve(cmd)
	if err != nil {
		return err
	}
	result, err := in.Compute()
	if err != nil {
		return fmt.Errorf("computing design: %w", err)
	}
	scene, err := section.Render(in.Geometry, result)
	if err != nil {
		return fmt.Errorf("drawing section: %w", err)
	}

	if renderASCII {
		fmt.Fprintln(out, diagram.DrawASCIISection(scene, renderCols))
	}
	if renderExportFile != "" {
		if err := diagram.ExportSectionDiagram(scene, result.Metrics(), renderExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", renderExportFile)
	}
	return nil
}
