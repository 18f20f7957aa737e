package events

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/markusressel/plant2go/cmd/global"
	"github.com/markusressel/plant2go/internal/events"
	"github.com/markusressel/plant2go/internal/ui"
	"github.com/spf13/cobra"
)

var (
	kind  string
	limit int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the persisted events to console",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadConfig(true)

		if len(kind) > 0 && !events.IsKnownKind(events.Kind(kind)) {
			return fmt.Errorf("unknown event kind: %s", kind)
		}

		records, err := loadEvents(cmd.Context())
		if errors.Is(err, os.ErrNotExist) {
			ui.Printfln("No events recorded yet...")
			return nil
		}
		if err != nil {
			return err
		}

		records = filterRecords(records, events.Kind(kind), limit)

		var rows [][]string
		for _, record := range records {
			rows = append(rows, []string{
				strconv.FormatUint(record.Sequence, 10),
				record.Timestamp.Format(events.TimestampLayout),
				string(record.Kind),
				record.Message,
			})
		}
		return global.PrintTable([]string{"#", "Time", "Kind", "Message"}, rows)
	},
}

// filterRecords keeps only records of the given kind (if any) and at most the last limit of them (if positive)
func filterRecords(records []events.Record, kind events.Kind, limit int) []events.Record {
	var result []events.Record
	for _, record := range records {
		if len(kind) > 0 && record.Kind != kind {
			continue
		}
		result = append(result, record)
	}
	if limit > 0 && len(result) > limit {
		result = result[len(result)-limit:]
	}
	return result
}

func init() {
	listCmd.Flags().StringVarP(&kind, "kind", "k", "", "Only show events of this kind (info | violation | action)")
	listCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Only show the last n events")
	Command.AddCommand(listCmd)
}
