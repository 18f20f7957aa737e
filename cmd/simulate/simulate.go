package simulate

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/plant2go/cmd/global"
	"github.com/markusressel/plant2go/internal"
	"github.com/markusressel/plant2go/internal/configuration"
	"github.com/markusressel/plant2go/internal/state"
	"github.com/markusressel/plant2go/internal/supervisor"
	"github.com/markusressel/plant2go/internal/ui"
	"github.com/markusressel/plant2go/internal/util"
	"github.com/spf13/cobra"
)

var (
	cycles     int
	interval   time.Duration
	exportPath string
	plot       bool
)

var Command = &cobra.Command{
	Use:   "simulate",
	Short: "Run a fixed number of cycles in the foreground",
	Long: `Runs the configured plant (or the reference plant if none is configured)
for a fixed number of cycles and prints the resulting state.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadConfig(true)
		config := configuration.CurrentConfig

		if cycles <= 0 {
			return fmt.Errorf("cycles must be positive, got %d", cycles)
		}
		if interval <= 0 {
			interval = config.CycleInterval
		}

		history := &history{}
		plant, err := internal.NewPlant(&config, supervisor.OnCycle(history.add))
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		ui.Info("Running %d cycles with an interval of %v", cycles, interval)
		err = internal.NewCycleMonitor(plant, interval, cycles).Run(ctx)
		if err != nil {
			return err
		}

		if err := printState(plant.Store); err != nil {
			return err
		}
		if plot {
			history.plot()
		}

		if len(exportPath) > 0 {
			path, err := util.ExpandPath(exportPath)
			if err != nil {
				return err
			}
			exportCtx, exportCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer exportCancel()
			if err := plant.Supervisor.ExportLog(exportCtx, path); err != nil {
				return err
			}
			ui.Success("Exported %d events to %s", plant.Log.Len(), path)
		}
		return nil
	},
}

func init() {
	Command.Flags().IntVarP(&cycles, "cycles", "n", 10, "Number of cycles to run")
	Command.Flags().DurationVarP(&interval, "interval", "i", 0, "Time between two cycles (default is cycleInterval of the config)")
	Command.Flags().StringVarP(&exportPath, "export", "e", "", "Export the event log to this file when done")
	Command.Flags().BoolVarP(&plot, "plot", "p", false, "Plot sensor values and actuator levels over all cycles")
}

func printState(store *state.Store) error {
	status := store.Status()
	ui.Printfln("Cycles: %d, Violations: %d", status.Cycles, status.Violations)

	sensorStates := store.Sensors()
	var rows [][]string
	for _, id := range util.SortedKeys(sensorStates) {
		s := sensorStates[id]
		rows = append(rows, []string{
			s.ID, s.Kind,
			fmt.Sprintf("%.2f", s.Value),
			fmt.Sprintf("[%.2f, %.2f]", s.Min, s.Max),
			fmt.Sprintf("%.2f", s.MovingAvg),
			fmt.Sprintf("%t", s.OutOfRange),
		})
	}
	if err := global.PrintTable([]string{"Sensor", "Kind", "Value", "Range", "Avg", "Out of range"}, rows); err != nil {
		return err
	}

	actuatorStates := store.Actuators()
	rows = nil
	for _, id := range util.SortedKeys(actuatorStates) {
		a := actuatorStates[id]
		rows = append(rows, []string{a.ID, a.Kind, fmt.Sprintf("%.2f", a.Level), fmt.Sprintf("%t", a.Active)})
	}
	return global.PrintTable([]string{"Actuator", "Kind", "Level", "Active"}, rows)
}

// history collects sensor values and actuator levels per cycle, keyed by id
type history struct {
	ids    []string
	series map[string][]float64
}

func (h *history) add(snapshot supervisor.Snapshot) {
	if h.series == nil {
		h.series = map[string][]float64{}
	}
	for _, s := range snapshot.Sensors {
		h.append(s.ID, s.Value)
	}
	for _, a := range snapshot.Actuators {
		h.append(a.ID, a.Level)
	}
}

func (h *history) append(id string, value float64) {
	if _, ok := h.series[id]; !ok {
		h.ids = append(h.ids, id)
	}
	h.series[id] = append(h.series[id], value)
}

func (h *history) plot() {
	for _, id := range h.ids {
		values := h.series[id]
		if len(values) <= 0 {
			continue
		}
		ui.Printfln("")
		graph := asciigraph.Plot(values, asciigraph.Height(10), asciigraph.Width(100), asciigraph.Caption(id+" / cycle"))
		ui.Printfln("%s", graph)
	}
}
