// Package runtime implements the questionnaire traversal.
//
// The traversal is split into pure functions over the answer history
// (RecordAnswer, GoBack, Reset, RenderList), a reducer that applies an Action
// to a State (Transition), and an Engine that adds logging, timestamps and
// lifecycle events around the reducer.
package runtime
