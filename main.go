package main

import (
	"fmt"
	"os"

	"library-catalog/internal/config"
	"library-catalog/internal/shell"
	"library-catalog/library"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "library-catalog",
		Short:        "Console-driven library catalog",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := newLogger(cfg.Environment)
	defer func() { _ = log.Sync() }()

	catalog := library.NewCatalog()

	// A missing or broken store means starting with an empty library, not
	// crashing: first run and corrupted store look the same to the user.
	var saver shell.Saver
	store, err := library.OpenStore(cfg.StorePath, log)
	if err != nil {
		log.Warn("could not open store, starting empty", zap.Error(err))
		fmt.Println("No previous data found or error loading.")
	} else {
		defer store.Close()
		saver = store

		books, users, err := store.Load()
		if err != nil {
			log.Warn("could not load catalog, starting empty", zap.Error(err))
			fmt.Println("No previous data found or error loading.")
		} else {
			catalog.Hydrate(books, users)
		}
	}

	shell.New(catalog, saver, os.Stdin, os.Stdout, log).Run()
	return nil
}

func newLogger(environment string) *zap.Logger {
	if environment == config.ProductionEnvironment {
		log, _ := zap.NewProduction()
		return log
	}
	log, _ := zap.NewDevelopment()
	return log
}
