package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the headless CLI.
var rootCmd = &cobra.Command{
	Use:   "isinglab",
	Short: "2D Ising model simulator with Metropolis checkerboard dynamics",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
