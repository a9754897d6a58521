package cmd

import (
	"github.com/spf13/cobra"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Support design of a gallery cross-section",
	Long: `Support design of an underground gallery with a semicircular
arch over a rectangular lower part.

Subcommands:
  design       - Plastic zone, bolt load and bolt length
  render       - Export the cross-section drawing
  sensitivity  - Effect of the major principal stress on the design

Inputs can be given as flags or in a JSON file; flags given on the
command line override the file.

Example JSON file structure:
{
  "terrain": {
    "sigma1": 32,
    "sigma2": 16,
    "sigma_ci": 110,
    "gamma_r": 27
  },
  "geometry": {
    "width": 4,
    "height": 4
  }
}`,
}

func init() {
	rootCmd.AddCommand(galleryCmd)
}
