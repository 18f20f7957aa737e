package sensor

import (
	"fmt"

	"github.com/markusressel/plant2go/cmd/global"
	"github.com/markusressel/plant2go/internal"
	"github.com/markusressel/plant2go/internal/configuration"
	"github.com/markusressel/plant2go/internal/sensors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var sensorId string

var Command = &cobra.Command{
	Use:              "sensor",
	Short:            "Take a single sample of a sensor",
	Long:             ``,
	TraverseChildren: true,
	Args:             cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()
		global.LoadConfig(true)

		sensor, err := getSensor(sensorId)
		if err != nil {
			return err
		}

		value, err := sensor.Sample()
		if err != nil {
			return err
		}
		outOfRange := ""
		if sensor.IsOutOfRange() {
			outOfRange = " (out of range)"
		}
		fmt.Printf("%.2f%s\n", value, outOfRange)
		return nil
	},
}

func init() {
	Command.PersistentFlags().StringVarP(
		&sensorId,
		"id", "i",
		"",
		"Sensor ID as specified in the config",
	)
	_ = Command.MarkPersistentFlagRequired("id")
}

func getSensor(id string) (*sensors.Sensor, error) {
	var availableSensorIds []string
	for _, config := range configuration.CurrentConfig.Sensors {
		availableSensorIds = append(availableSensorIds, config.ID)
		if config.ID == id {
			return internal.NewSensor(config)
		}
	}

	return nil, fmt.Errorf("no sensor with id found: %s, options: %s", id, availableSensorIds)
}
