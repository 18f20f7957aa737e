package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markusressel/plant2go/internal/api"
	"github.com/markusressel/plant2go/internal/configuration"
	"github.com/markusressel/plant2go/internal/events"
	"github.com/markusressel/plant2go/internal/persistence"
	"github.com/markusressel/plant2go/internal/statistics"
	"github.com/markusressel/plant2go/internal/ui"
	"github.com/markusressel/plant2go/internal/util"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

func RunDaemon() {
	err := runDaemon(&configuration.CurrentConfig, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	if err != nil {
		ui.ErrorAndNotify("plant2go stopped", "%v", err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

func runDaemon(config *configuration.Configuration, registerer prometheus.Registerer, gatherer prometheus.Gatherer) error {
	pers := persistence.NewPersistence(config.DbPath)
	if err := pers.Init(); err != nil {
		return fmt.Errorf("unable to initialize event store: %w", err)
	}

	plant, err := NewPlant(config)
	if err != nil {
		return err
	}

	if config.Statistics.Enabled {
		statistics.RegisterAll(registerer, plant.Store)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			port := config.Statistics.Port
			if port <= 0 || port >= 65535 {
				port = 9000
			}
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
			server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

			g.Add(func() error {
				ui.Info("Starting statistics server on port %d", port)
				if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start prometheus metrics endpoint: %w", err)
				}
				return nil
			}, func(err error) {
				ui.Info("Stopping statistics server...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %v", err)
				} else {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		if config.Api.Enabled {
			// === REST API
			var apiRegisterer prometheus.Registerer
			if config.Statistics.Enabled {
				apiRegisterer = registerer
			}
			rest, err := api.NewServer(plant.Store, plant.Log).CreateRestService(apiRegisterer)
			if err != nil {
				return err
			}
			addr := fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port)

			g.Add(func() error {
				ui.Info("Starting REST api on %s", addr)
				if err := rest.Start(addr); !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start REST api: %w", err)
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer timeoutCancel()
				if err := rest.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping REST api: %v", err)
				}
			})
		}
	}
	{
		// === event persistence
		flushMonitor := NewFlushMonitor(plant.Log, pers, config.FlushInterval)
		g.Add(func() error {
			return flushMonitor.Run(ctx)
		}, func(err error) {
			cancel()
		})
	}
	{
		// === supervisor cycles
		cycleMonitor := NewCycleMonitor(plant, config.CycleInterval, config.Cycles)
		g.Add(func() error {
			err := cycleMonitor.Run(ctx)
			ui.Info("Supervisor stopped.")
			return err
		}, func(err error) {
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	runErr := g.Run()
	return errors.Join(runErr, shutdown(plant, pers, config.Log))
}

// shutdown persists all remaining records and exports the log if configured
func shutdown(plant *Plant, sink events.Sink, logConfig configuration.LogConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := plant.Log.Flush(ctx, sink); err != nil {
		errs = append(errs, err)
	}

	if len(logConfig.Path) > 0 {
		path, err := util.ExpandPath(logConfig.Path)
		if err != nil {
			return errors.Join(append(errs, err)...)
		}
		if err := plant.Log.Export(ctx, events.NewFileSink(path, events.FileMode(logConfig.Mode))); err != nil {
			errs = append(errs, err)
		} else {
			ui.Info("Exported event log to %s", path)
		}
	}
	return errors.Join(errs...)
}
