package main

import (
	"fmt"
	"os"

	"github.com/aretw0/oncoscreen/pkg/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export catalogs to an Excel workbook",
	Long:  `Writes one sheet per catalog listing every question, option, next question and recommendation.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		app, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		if output == "-" {
			return export.Write(cmd.OutOrStdout(), app.Engine.Catalogs())
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		if err := export.Write(f, app.Engine.Catalogs()); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d catalog(s) to %s\n", app.Engine.Catalogs().Len(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "catalogs.xlsx", "Output file, or - for stdout")
}
