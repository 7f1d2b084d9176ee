package main

import (
	"fmt"

	"github.com/aretw0/oncoscreen/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [catalog-id]",
	Short: "Export the questionnaire graph visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of a catalog's questions, branches and recommendations. Without an ID every catalog is printed.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			c, ok := app.Engine.Catalog(args[0])
			if !ok {
				return fmt.Errorf("unknown catalog %q", args[0])
			}
			fmt.Fprint(out, graph.GenerateMermaid(c, nil))
			return nil
		}

		for i, c := range app.Engine.Catalogs().All() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%%%% %s\n", c.ID())
			fmt.Fprint(out, graph.GenerateMermaid(c, nil))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
