package main

import (
	"context"
	"io"

	"pet-care-tracker/internal/adapters/storage/backend"
	"pet-care-tracker/internal/domain/tracker"
	"pet-care-tracker/internal/platform/config"
	"pet-care-tracker/internal/platform/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app es el estado compartido por los subcomandos de una ejecución.
type app struct {
	out io.Writer

	configDir string
	backend   string
	json      bool

	store   *tracker.Store
	closeKV func() error
	log     *zap.Logger
}

// execute corre el CLI con args y libera el backend aunque el comando falle.
func execute(ctx context.Context, out io.Writer, args []string) error {
	root, a := newRootCmd(out)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

func newRootCmd(out io.Writer) (*cobra.Command, *app) {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "petctl",
		Short:         "Record vaccines, weights, health events and meals for your pets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $HOME/.petctl)")
	root.PersistentFlags().StringVar(&a.backend, "backend", "", "storage backend override (memory, sqlite, postgres, redis)")
	root.PersistentFlags().BoolVar(&a.json, "json", false, "output as JSON")

	root.AddCommand(
		newPetCmd(a),
		newVaccineCmd(a),
		newWeightCmd(a),
		newHealthCmd(a),
		newFoodCmd(a),
	)
	return root, a
}

// open carga config, abre el backend e hidrata el store.
func (a *app) open(ctx context.Context) error {
	if a.configDir == "" {
		dir, err := defaultConfigDir()
		if err != nil {
			return err
		}
		a.configDir = dir
	}

	v, err := loadConfig(a.configDir)
	if err != nil {
		return err
	}
	if a.backend != "" {
		v.Set(cfgKeyBackend, a.backend)
	}

	a.log = logger.Must(logger.New(logger.Options{
		Level:  logger.ParseLevel(v.GetString(cfgKeyLogLevel)),
		Format: logger.FormatText,
	}))

	loc, err := config.ParseLocation(v.GetString(cfgKeyTimezone))
	if err != nil {
		return err
	}

	kv, closeKV, err := backend.Open(ctx, storageSettings(v, a.configDir))
	if err != nil {
		return err
	}
	a.closeKV = closeKV

	a.store = tracker.NewStore(
		tracker.WithLogger(a.log),
		tracker.WithPersister(kv),
		tracker.WithLocation(loc),
	)
	a.store.Hydrate(ctx)
	return nil
}

func (a *app) close() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.closeKV == nil {
		return nil
	}
	closeKV := a.closeKV
	a.closeKV = nil
	return closeKV()
}
