package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockrender/pkg/errors"
	docio "github.com/matzehuels/blockrender/pkg/io"
)

// convertCommand rewrites a workspace document in another format. Missing
// block ids are filled in and collapsed summaries are made explicit.
func (c *CLI) convertCommand() *cobra.Command {
	var output, inputFormat string

	cmd := &cobra.Command{
		Use:   "convert [file] -o [out]",
		Short: "Convert a workspace document between YAML, TOML and JSON",
		Example: `  blockrender convert program.yaml -o program.json
  cat program.toml | blockrender convert - --input-format toml -o program.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(args[0], inputFormat, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; its extension selects the format")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "document format: yaml, toml, json (default: from file extension)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func (c *CLI) runConvert(input, inputFormat, output string) error {
	outFormat := docio.FormatFromPath(output)
	if outFormat == "" {
		return errors.New(errors.ErrCodeInvalidFormat, "cannot infer output format of %s", output)
	}

	data, format, err := readDocument(input, inputFormat)
	if err != nil {
		return err
	}
	roots, err := docio.Read(data, format)
	if err != nil {
		return err
	}
	c.Logger.Debug("decoded document", "format", format, "stacks", len(roots))

	encoded, err := docio.Encode(docio.FromNodes(roots), outFormat)
	if err != nil {
		return err
	}
	if err := writeOutput(output, encoded); err != nil {
		return err
	}

	c.ui.ok("Converted %s to %s", displayName(input), outFormat)
	c.ui.artifact(output, len(encoded))
	return nil
}
