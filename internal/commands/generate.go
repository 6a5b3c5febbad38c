package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"kartgen/internal/gen"
	"kartgen/internal/plan"
)

func registerGenerateCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "generate [operation]",
		Aliases: []string{"gen"},
		Short:   "Print the code generated by one operation",
		Long: `Print the code generated by one operation to standard output.
Without an operation, list the available operations and their target files.`,
		Example: `  kartgen generate acgetter
  kartgen gen kpdefs --align`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}

	parent.AddCommand(cmd)
}

func registerListCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			return s.listOperations(cmd.OutOrStdout())
		},
	}

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return s.listOperations(cmd.OutOrStdout())
	}

	op, err := gen.ParseOperation(args[0])
	if err != nil {
		return err
	}

	sch, err := s.schema()
	if err != nil {
		return err
	}

	text, err := gen.Project(sch, op, s.cfg.ProjectionOptions())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)

	return err
}

// listOperations prints every operation with its description and the file
// update would splice it into.
func (s *session) listOperations(w io.Writer) error {
	names := make([]string, 0, len(gen.Operations()))
	for _, op := range gen.Operations() {
		names = append(names, op.String())
	}

	p := plan.Build(s.cfg.SourceDir, names, s.cfg.Targets)
	p.Diagnostics.Log(s.logger)

	paths := make(map[gen.Operation]string)

	for _, f := range p.Files {
		for _, op := range f.Operations {
			paths[op] = f.Path
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "OPERATION\tDESCRIPTION\tTARGET")

	for _, op := range gen.Operations() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", op, op.Description(), paths[op])
	}

	return tw.Flush()
}
