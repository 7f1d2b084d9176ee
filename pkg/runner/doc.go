/*
Package runner implements the interactive loop and I/O orchestration for the questionnaire.

It acts as the bridge between the engine and a terminal or a driving process.
The runner renders the View of the current state through a pluggable handler,
reads one line of input, turns it into an Action and dispatches it.

# Key Components

  - Runner: The loop. Optionally saves every new state to a StateStore.
  - IOHandler: Decouples how views are shown and input is read.
  - TextHandler: Numbered options plus b/r/m/q commands for humans.
  - JSONHandler: NDJSON views out, JSON actions or plain commands in.

# Usage

	r := runner.NewRunner(
		runner.WithEngine(engine),
		runner.WithSessionID("user-1"),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
