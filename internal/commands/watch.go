package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kartgen/internal/watch"
)

func registerWatchCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch [operation...]",
		Short: "Re-run update whenever the schema file changes",
		Long: `Run update once, then again each time the schema file is saved.
Requires a schema file given by --schema or schema_file.`,
		Example: `  kartgen watch --schema tools/characteristics.txt`,
		RunE:    runWatch,
	}

	parent.AddCommand(cmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if s.cfg.SchemaFile == "" {
		return errors.New("watch needs a schema file, set --schema or schema_file")
	}

	w, err := watch.New(s.cfg.SchemaFile, s.cfg.Watch.Debounce)
	if err != nil {
		return err
	}
	defer w.Close()

	w.Logger = s.logger

	run := func(ctx context.Context) error {
		results, err := s.update(ctx, args, false)
		for _, r := range results {
			s.out.result(r, false)
		}

		return err
	}

	if err := run(cmd.Context()); err != nil {
		s.logger.Error("initial update failed", "error", err)
	}

	s.logger.Info("watching schema", "file", w.Path)

	if err := w.Run(cmd.Context(), run); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	return nil
}
