package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorsd/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorsd",
	Short: "Rock Support Design Tool for underground galleries",
	Long: `gorsd - Go Rock Support Designer

A CLI tool for the preliminary support design of mining galleries
and tunnels from the in-situ stress field and the intact rock strength.

This tool helps geotechnical engineers:
  - Estimate the maximum tangential stress around the opening
  - Size the plastic (broken rock) zone around the gallery
  - Compute the rock load and minimum length of support bolts
  - Draw the gallery cross-section with its plastic zone
  - Export PDF and XLSX design sheets

The gallery is approximated by a circle of equal area and the plastic
zone radius follows the empirical relation Rf = a (0.49 + 1.25 σmax/σci).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorsd v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Rock Support Designer                                ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the support design of underground galleries")
		fmt.Println("  from rock stress and strength measurements.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Plastic zone radius from the equivalent circular opening")
		fmt.Println("    • Rock bolt load and minimum bolt length")
		fmt.Println("    • Cross-section drawing (terminal, PNG, SVG, PDF)")
		fmt.Println("    • Sensitivity of the design to the major principal stress")
		fmt.Println("    • HTTP API for form-based front ends")
		fmt.Println()
		fmt.Println("  Use 'gorsd --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
}
