package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kartgen/internal/plan"
	"kartgen/internal/update"
)

func registerUpdateCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "update [operation...]",
		Short: "Splice generated code into the target files",
		Long: `Render each operation and replace the region between its
<characteristics-start OP> and <characteristics-end OP> markers.
Without operations the full batch is run: enum, acdefs, acgetter, getType,
getName, kpdefs, kpgetter and loadXml.`,
		Example: `  kartgen update
  kartgen update enum loadXml --source-dir ../stk-code/src`,
		RunE: runUpdate,
	}

	parent.AddCommand(cmd)
}

func registerCheckCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "check [operation...]",
		Short: "Fail if any generated region is out of date",
		Long: `Render each operation and compare it with the target files without
writing anything. Exits with a non-zero status when a file would change.`,
		RunE: runCheck,
	}

	cmd.Flags().Bool("diff", false, "print a unified diff for each stale file")

	parent.AddCommand(cmd)
}

// buildPlan resolves the requested operations, logging any diagnostics.
func (s *session) buildPlan(names []string) (*plan.Plan, error) {
	p := plan.Build(s.cfg.SourceDir, names, s.cfg.Targets)
	p.Diagnostics.Log(s.logger)

	if err := p.Diagnostics.Err(); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *session) update(ctx context.Context, names []string, check bool) ([]update.Result, error) {
	sch, err := s.schema()
	if err != nil {
		return nil, err
	}

	p, err := s.buildPlan(names)
	if err != nil {
		return nil, err
	}

	return update.Run(ctx, sch, p, update.Options{
		Check:      check,
		Projection: s.cfg.ProjectionOptions(),
		Logger:     s.logger,
	})
}

func runUpdate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	results, err := s.update(cmd.Context(), args, false)
	for _, r := range results {
		s.out.result(r, false)
	}

	if err != nil {
		return err
	}

	s.out.done(fmt.Sprintf("%d of %d file(s) updated", len(update.Stale(results)), len(results)))

	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	showDiff, _ := cmd.Flags().GetBool("diff")

	results, err := s.update(cmd.Context(), args, true)
	for _, r := range results {
		s.out.result(r, true)

		if showDiff && r.Diff != "" {
			fmt.Fprint(cmd.OutOrStdout(), r.Diff)
		}
	}

	if err != nil {
		return err
	}

	if stale := update.Stale(results); len(stale) > 0 {
		return fmt.Errorf("%d file(s) out of date, run kartgen update", len(stale))
	}

	s.out.done("all generated regions are up to date")

	return nil
}
