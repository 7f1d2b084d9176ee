// Package catalog holds the screening question catalogs and their
// recommendation maps.
//
// A Catalog is an ordered list of questions; the first question is the entry
// point of the test. Every option either points to the next question or ends
// the traversal, in which case the recommendation stored under the path key
// "questionId:optionId" is shown, falling back to a default text.
//
// Catalogs are immutable once built. New validates a Definition and rejects
// dangling references, cycles and unreachable questions, so the traversal
// engine never has to handle a malformed graph:
//
//	cat, err := catalog.New(catalog.Definition{
//	    ID:    "demo",
//	    Title: "Demo",
//	    Questions: []domain.Question{
//	        {ID: "q1", Text: "Ready?", Options: []domain.Option{
//	            {ID: "yes", Label: "Yes", NextQuestionID: "q2"},
//	            {ID: "no", Label: "No"},
//	        }},
//	        {ID: "q2", Text: "Sure?", Options: []domain.Option{{ID: "ok", Label: "OK"}}},
//	    },
//	    Recommendations: map[string]string{"q1:no": "Come back later."},
//	})
//
// Decode builds catalogs from YAML or JSON documents, checking them against an
// embedded JSON Schema before the semantic validation runs.
package catalog
