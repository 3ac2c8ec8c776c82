package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	planning "github.com/reframe-systems/tesseract-planning"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of contactgate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("contactgate version %s\n", strings.TrimSpace(planning.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
