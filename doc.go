/*
Package oncoscreen is a branching questionnaire engine for cancer-screening self-assessment.

A catalog is an ordered list of questions whose options either lead to another
question or end the test. Ending the test yields the recommendation mapped to
the final question and option, or a default text when none is mapped.

# Concept

The engine is a pure reducer: a host (terminal, HTTP server, AI agent) holds the
State, feeds it Actions and renders the View the engine derives from it. The
engine never blocks and never keeps per-session data, so sessions can live in
memory, in Redis or in the client.

# Key Features

  - One answer per question: going back removes the latest answer and its subtrees.
  - Catalogs are validated when loaded: dangling links, cycles and unreachable
    questions are rejected before any session starts.
  - Builtin cervical and breast catalogs; YAML, JSON or Markdown catalogs from disk.

# Usage

	eng, err := oncoscreen.New()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	state := eng.Start("session-123")
	state, err = eng.Dispatch(ctx, state, domain.SelectTest("cervical"))
	if err != nil {
		log.Fatal(err)
	}

	view, _ := eng.View(state)
	pending, _ := view.Pending()
	fmt.Println(pending.Text)
*/
package oncoscreen
