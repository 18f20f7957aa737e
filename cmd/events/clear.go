package events

import (
	"github.com/markusressel/plant2go/cmd/global"
	"github.com/markusressel/plant2go/internal/ui"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all persisted events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadConfig(true)

		if err := createStore().DeleteEvents(cmd.Context()); err != nil {
			return err
		}
		ui.Success("Deleted all persisted events")
		return nil
	},
}

func init() {
	Command.AddCommand(clearCmd)
}
