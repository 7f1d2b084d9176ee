package main

import (
	"github.com/aretw0/oncoscreen/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Serves catalogs and screening sessions as a JSON API described by the embedded OpenAPI document.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		if cmd.Flags().Changed("addr") {
			app.Config.HTTPAddr, _ = cmd.Flags().GetString("addr")
		}
		return cli.ListenAndServe(cmd.Context(), app)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
