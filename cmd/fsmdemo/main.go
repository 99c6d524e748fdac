// Command fsmdemo drives one shared state machine with several concurrent
// workers, each delivering the full Start -> Pause -> Resume -> Stop
// sequence, and reports which transitions won and where the machine ended
// up. The machine variant, worker count and transition table are selected
// through the environment.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/fsmkit/pkg/async"
	"github.com/dmitrymomot/fsmkit/pkg/config"
	"github.com/dmitrymomot/fsmkit/pkg/fsm"
	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

type demoConfig struct {
	Variant   string     `env:"FSM_VARIANT" envDefault:"notifying"`
	Workers   int        `env:"FSM_WORKERS" envDefault:"4"`
	TablePath string     `env:"FSM_TABLE"`
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"debug"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
}

func main() {
	var cfg demoConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithService("fsmdemo"),
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
	)
	logger.SetAsDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("demo failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg demoConfig, log *slog.Logger) error {
	table := fsm.DefaultTable()
	if cfg.TablePath != "" {
		f, err := os.Open(cfg.TablePath)
		if err != nil {
			return fmt.Errorf("open table definition: %w", err)
		}
		defer f.Close()

		if table, err = fsm.LoadTable(f); err != nil {
			return fmt.Errorf("load table definition: %w", err)
		}
		log.Info("loaded custom transition table",
			slog.String("path", cfg.TablePath),
			slog.Int("rules", table.Len()),
		)
	}

	machineOpts := []fsm.Option{
		fsm.WithTable(table),
		fsm.WithLogger(log.With(logger.Component("fsm"))),
	}

	var (
		machine fsm.Machine
		journal *fsm.Journal
	)
	switch cfg.Variant {
	case "locked":
		machine = fsm.NewLocked(machineOpts...)
	case "lockfree":
		machine = fsm.NewLockFree(machineOpts...)
	case "notifying":
		journal = fsm.NewJournal()
		machine = fsm.NewNotifying(append(machineOpts, fsm.WithCallback(journal.Record))...)
	default:
		return fmt.Errorf("unknown machine variant %q: must be locked, lockfree or notifying", cfg.Variant)
	}

	log.Info("starting demo",
		slog.String("variant", cfg.Variant),
		slog.Int("workers", cfg.Workers),
		logger.State(machine.CurrentState().String()),
	)

	sequence := []fsm.Event{fsm.EventStart, fsm.EventPause, fsm.EventResume, fsm.EventStop}

	ctx := context.Background()
	futures := make([]*async.Future[int], cfg.Workers)
	for i := range futures {
		futures[i] = async.Async(ctx, i, func(_ context.Context, worker int) (int, error) {
			applied := 0
			for _, event := range sequence {
				if machine.HandleEvent(event) {
					applied++
				} else {
					log.Debug("event rejected",
						logger.Worker(worker),
						logger.Event(event.String()),
					)
				}
			}
			return applied, nil
		})
	}

	results, err := async.WaitAll(futures...)
	if err != nil {
		return err
	}

	total := 0
	for _, applied := range results {
		total += applied
	}

	log.Info("demo complete",
		logger.State(machine.CurrentState().String()),
		slog.Int("successful_transitions", total),
	)

	if journal != nil {
		for _, rec := range journal.Records() {
			log.Info("recorded transition",
				slog.String("id", rec.ID.String()),
				logger.Event(rec.Event.String()),
				slog.String("from", rec.From.String()),
				slog.String("to", rec.To.String()),
				slog.Time("at", rec.At),
			)
		}
	}

	return nil
}
