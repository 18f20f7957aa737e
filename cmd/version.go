package cmd

import (
	"github.com/markusressel/plant2go/internal/ui"
	"github.com/spf13/cobra"
)

// Version is overridden at build time using -ldflags
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of plant2go",
	Long:  `All software has versions. This is plant2go's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("%s", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
