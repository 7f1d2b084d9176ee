/*
Package dsl provides a Go DSL for programmatically constructing screening catalogs.

It lets developers define a questionnaire with a type-safe, fluent builder
instead of writing YAML or JSON files. This is useful for tests, generated
catalogs and IDE autocompletion.

Example usage:

	package main

	import (
		"github.com/aretw0/oncoscreen"
		"github.com/aretw0/oncoscreen/pkg/dsl"
	)

	func main() {
		lung := dsl.New("lung").Title("Lung cancer screening")

		lung.Add("l1").
			Text("Have you smoked in the last 15 years?").
			Go("yes", "Yes", "l2").
			Recommend("no", "No", "Routine screening is not indicated.")

		lung.Add("l2").
			Text("Are you between 50 and 80?").
			Recommend("yes", "Yes", "Ask about a yearly low-dose CT.").
			Terminal("no", "No")

		engine, err := oncoscreen.New(oncoscreen.WithLoader(dsl.Loader(lung)))
		// ...
	}
*/
package dsl
