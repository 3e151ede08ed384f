package response

import (
	"fmt"
	"strings"

	"legal-research-be/pkg/store"
)

// Answer generation lives outside this service; these builders produce the
// deterministic prompts the disambiguation flow needs on its own.

// AmbiguityPrompt asks the user to pick one of several matching cases.
func AmbiguityPrompt(candidates []store.Candidate) string {
	var builder strings.Builder
	builder.WriteString("I found several cases matching your query. Which one would you like to look at?\n")
	for i, c := range candidates {
		builder.WriteString(fmt.Sprintf("%d. %s", i+1, c.Label))
		if c.DocketID != "" {
			builder.WriteString(fmt.Sprintf(" (No. %s)", c.DocketID))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\nReply with a number, a party name, or a docket number.")
	return builder.String()
}

// RetryPrompt re-presents the same candidate set after a follow-up that
// could not be resolved.
func RetryPrompt(candidates []store.Candidate) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("I couldn't tell which case you meant. Please choose a number between 1 and %d:\n", len(candidates)))
	for i, c := range candidates {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.Label))
	}
	return builder.String()
}

// Selected confirms the chosen case before the answer branch resumes.
func Selected(c store.Candidate) string {
	if c.DocketID != "" {
		return fmt.Sprintf("Looking at %s (No. %s).", c.Label, c.DocketID)
	}
	return fmt.Sprintf("Looking at %s.", c.Label)
}

// LostContext tells the user an earlier candidate prompt is no longer
// active, e.g. after the retry budget ran out.
func LostContext() string {
	return "I've lost track of which case we were choosing between. Please repeat your query."
}

// NotFound is used when the search surfaced nothing.
func NotFound(query string) string {
	return fmt.Sprintf("I couldn't find any cases matching %q. Try a party name or a docket number.", query)
}
