// Command prolog is the interactive entrypoint for the logic
// interpreter: it resolves configuration, optionally consults an
// initial file, then hands off to the REPL shell.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dagfinndybvig/microPROLOG/internal/config"
	"github.com/dagfinndybvig/microPROLOG/internal/repl"
	"github.com/dagfinndybvig/microPROLOG/pkg/prolog"
)

func main() {
	cfg := config.Default()

	root := &cobra.Command{
		Use:   "prolog [file]",
		Short: "A small Lisp-surfaced Prolog-family interpreter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.InitialFile = args[0]
			}
			return run(cfg)
		},
	}

	if err := config.LoadDotfile(cfg); err != nil {
		logrus.WithError(err).Warn("could not load .microprologrc.toml")
	}
	config.Flags(root.Flags(), cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	db := prolog.NewDatabase()

	if cfg.InitialFile != "" {
		n, err := repl.Consult(cfg.InitialFile, db)
		if err != nil {
			return err
		}
		fmt.Printf("loaded %d clause(s) from %s\n", n, cfg.InitialFile)
	}

	shell, err := repl.New(cfg, db, os.Stdout)
	if err != nil {
		return err
	}
	return shell.Run()
}
