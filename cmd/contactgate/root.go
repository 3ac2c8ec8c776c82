package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contactgate",
	Short: "Contactgate is a collision safety gate for planned trajectories",
	Long: `Contactgate samples a planned trajectory at discrete states, queries a
collision model at each sample, and reports whether the trajectory is
collision-free.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
