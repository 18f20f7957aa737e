package events

import (
	"errors"
	"fmt"
	"os"

	"github.com/markusressel/plant2go/cmd/global"
	"github.com/markusressel/plant2go/internal/events"
	"github.com/markusressel/plant2go/internal/ui"
	"github.com/markusressel/plant2go/internal/util"
	"github.com/spf13/cobra"
)

var (
	exportPath string
	exportMode string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the persisted events to a text file",
	Long:  `Writes one line per event in the format "[<timestamp>] <message>".`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadConfig(true)

		mode := events.FileMode(exportMode)
		if mode != events.FileModeAppend && mode != events.FileModeOverwrite {
			return fmt.Errorf("unsupported mode '%s', use one of: %s | %s", exportMode, events.FileModeAppend, events.FileModeOverwrite)
		}
		path, err := util.ExpandPath(exportPath)
		if err != nil {
			return err
		}

		records, err := loadEvents(cmd.Context())
		if errors.Is(err, os.ErrNotExist) {
			ui.Warning("No events recorded yet, nothing to export")
			return nil
		}
		if err != nil {
			return err
		}

		err = events.NewFileSink(path, mode).Write(cmd.Context(), records)
		if err != nil {
			return err
		}
		ui.Success("Exported %d events to %s", len(records), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "path", "p", "", "Path of the file to write")
	exportCmd.Flags().StringVarP(&exportMode, "mode", "m", string(events.FileModeOverwrite), "append | overwrite")
	_ = exportCmd.MarkFlagRequired("path")
	Command.AddCommand(exportCmd)
}
