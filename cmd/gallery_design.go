package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/gorsd/internal/diagram"
	"github.com/alexiusacademia/gorsd/internal/geomech"
	"github.com/alexiusacademia/gorsd/internal/report"
	"github.com/alexiusacademia/gorsd/internal/section"
	"github.com/spf13/cobra"
)

var (
	designInput inputFlags

	// Diagram options
	designShowDiagram bool
	designExportFile  string

	// Report options
	designReportFile string
	designProject    string
	designAuthor     string
)

var galleryDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Compute the support design of a gallery",
	Long: `Compute the plastic zone around a gallery and the rock bolt
requirements to hold it:

  σmax = 3σ1 - σ2                      maximum tangential stress
  a    = √(A/π)                        equivalent radius
  Rf   = a (0.49 + 1.25 σmax/σci)      plastic zone radius
  Sexc = Rf - a                        excavation displacement
  P    = γr B Sexc / 10                bolt load weight (t)
  Lp   = Sexc + 1.0                    minimum bolt length (m)

Examples:
  # Default 4x4 m gallery
  gorsd gallery design

  # Weaker rock, wider gallery, with cross-section drawing
  gorsd gallery design --sigma-ci 60 --width 5 --diagram

  # From a file, with PDF design sheet
  gorsd gallery design -f level3.json --report level3.pdf --project "Level 3"`,
	RunE: runGalleryDesign,
}

func init() {
	galleryCmd.AddCommand(galleryDesignCmd)

	designInput.bind(galleryDesignCmd)

	// Diagram options
	galleryDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII cross-section diagram")
	galleryDesignCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")

	// Report options
	galleryDesignCmd.Flags().StringVar(&designReportFile, "report", "", "Write design sheet to file (pdf, xlsx)")
	galleryDesignCmd.Flags().StringVar(&designProject, "project", "", "Project name for the design sheet")
	galleryDesignCmd.Flags().StringVar(&designAuthor, "author", "", "Author for the design sheet")
}

func runGalleryDesign(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	in, err := designInput.resolve(cmd)
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

	printDesign(out, in, result)

	if designShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCIISection(scene, 60))
	}

	if designExportFile != "" {
		if err := diagram.ExportSectionDiagram(scene, result.Metrics(), designExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", designExportFile)
	}

	if designReportFile != "" {
		doc := report.Document{
			Project: designProject,
			Author:  designAuthor,
			Input:   in,
			Result:  result,
		}
		if err := writeReport(designReportFile, doc, scene); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(out, "Design sheet written to: %s\n", designReportFile)
	}

	return nil
}

func printDesign(out io.Writer, in geomech.DesignInput, result *geomech.DesignResult) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          GEOMECHANICS: GALLERY SUPPORT DESIGN")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "TERRAIN PARAMETERS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  σ1:\t%.2f MPa\n", in.Terrain.Sigma1)
	fmt.Fprintf(w, "  σ2:\t%.2f MPa\n", in.Terrain.Sigma2)
	fmt.Fprintf(w, "  σci:\t%.2f MPa\n", in.Terrain.SigmaCI)
	fmt.Fprintf(w, "  γr:\t%.2f kN/m³\n", in.Terrain.GammaR)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "GALLERY GEOMETRY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (B):\t%.2f m\n", in.Geometry.Width)
	fmt.Fprintf(w, "  Height (H):\t%.2f m\n", in.Geometry.Height)
	fmt.Fprintf(w, "  Area:\t%.3f m²\n", result.Area)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "STRESS AND PLASTIC ZONE:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Maximum stress (σmax):\t%.2f MPa\n", result.SigmaMax)
	fmt.Fprintf(w, "  Equivalent radius (a):\t%.4f m\n", result.RadiusEquivalent)
	fmt.Fprintf(w, "  Plastic zone radius (Rf):\t%.4f m\n", result.RadiusPlastic)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "DESIGN RESULTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	var lines []string
	for _, m := range result.Metrics() {
		lines = append(lines, fmt.Sprintf("%-4s  %-24s %s", m.Symbol, m.Label, m.Text()))
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("SUPPORT REQUIREMENTS", lines))
	fmt.Fprintln(out)

	if result.Degenerate {
		fmt.Fprintf(out, "  ⚠ %s\n", report.DegenerateNote)
		fmt.Fprintln(out)
	}
}

// writeReport picks the design sheet format from the file extension
func writeReport(filename string, doc report.Document, scene *section.SectionGeometry) error {
	var buf bytes.Buffer

	switch filepath.Ext(filename) {
	case ".pdf":
		var img bytes.Buffer
		if err := diagram.WriteSectionDiagram(scene, doc.Result.Metrics(), &img, "png"); err != nil {
			return err
		}
		doc.Diagram = img.Bytes()
		if err := report.WritePDF(&buf, doc); err != nil {
			return err
		}
	case ".xlsx":
		if err := report.WriteXLSX(&buf, doc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported report format %q (use .pdf or .xlsx)", filepath.Ext(filename))
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}
