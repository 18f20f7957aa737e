package events

import (
	"context"

	"github.com/markusressel/plant2go/internal/configuration"
	"github.com/markusressel/plant2go/internal/events"
	"github.com/markusressel/plant2go/internal/persistence"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "events",
	Short:            "Inspect the persisted event log",
	Long:             ``,
	TraverseChildren: true,
}

func createStore() persistence.EventStore {
	return persistence.NewPersistence(configuration.CurrentConfig.DbPath)
}

func loadEvents(ctx context.Context) ([]events.Record, error) {
	return createStore().LoadEvents(ctx)
}
