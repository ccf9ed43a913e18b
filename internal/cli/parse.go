package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syntree-dev/syntree/pkg/pipeline"
)

// parseCommand creates the parse command for inspecting tree structure.
// It parses the bracket source and prints the linked tree as indented JSON,
// without running layout or rendering.
func (c *CLI) parseCommand() *cobra.Command {
	var expr string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse bracket notation and print the tree as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			source, err := readSource(input, expr)
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			root := pipeline.Parse(source)
			p.done(fmt.Sprintf("Parsed %d nodes", root.Count()))

			data, err := json.MarshalIndent(root, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "inline bracket notation instead of a file")
	return cmd
}
