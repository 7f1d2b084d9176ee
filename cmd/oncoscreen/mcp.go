package main

import (
	"github.com/aretw0/oncoscreen/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the screening tests as MCP tools over Standard Input/Output,
so AI agents can list tests, start sessions and answer questions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		return cli.ServeMCP(app)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
