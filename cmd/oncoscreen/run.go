package main

import (
	"os"

	"github.com/aretw0/oncoscreen/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Answer a screening questionnaire in the terminal",
	Long: `Starts an interactive session on the selection screen.
With --session the state is kept in the configured store and resumed on the next run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		sessionID, _ := cmd.Flags().GetString("session")
		quiet, _ := cmd.Flags().GetBool("quiet")

		app, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		return cli.RunSession(cmd.Context(), app, cli.RunOptions{
			SessionID: sessionID,
			JSON:      jsonMode,
			Quiet:     quiet,
		}, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().StringP("session", "s", "", "Session ID to persist and resume")
	runCmd.Flags().BoolP("quiet", "q", false, "Hide the banner and system messages")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
