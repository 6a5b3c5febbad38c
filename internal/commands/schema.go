package commands

import (
	"github.com/spf13/cobra"

	"kartgen/internal/schema"
)

func registerSchemaCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the parsed characteristics schema",
		Long: `Print every group and member of the schema with its derived
identifiers, storage type and XML attribute.`,
		Example: `  kartgen schema
  kartgen schema --format toml --schema characteristics.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("format")

			format, err := schema.ParseFormat(name)
			if err != nil {
				return err
			}

			sch, err := s.schema()
			if err != nil {
				return err
			}

			return schema.Dump(cmd.OutOrStdout(), sch, format)
		},
	}

	cmd.Flags().StringP("format", "f", string(schema.FormatYAML), "output format (yaml, toml, json, debug)")

	parent.AddCommand(cmd)
}
