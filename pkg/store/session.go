package store

import "time"

// Candidate represents one case surfaced by retrieval and shown to the user
// as a numbered option. Presentation order is load-bearing: index 1 is "the
// first option", the final element is "the last one". Candidates are supplied
// externally and never mutated here.
type Candidate struct {
	ID       string                 `json:"id"`
	Label    string                 `json:"label"`
	DocketID string                 `json:"docket_id,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Session represents the active conversation state in memory
type Session struct {
	ID     string `json:"id"` // ChatSessionID
	UserID string `json:"user_id"`
	State  string `json:"state"` // "NO_PENDING" | "PENDING_CHOICE"

	// THE WAITING ROOM (candidates presented but not yet chosen)
	Candidates []Candidate `json:"candidates"`

	// ReturnBranch tells the pipeline which operation to resume once a
	// candidate is chosen.
	ReturnBranch string `json:"return_branch"`

	// Metadata for last interaction
	LastQuery string    `json:"last_query"`
	Attempts  int       `json:"attempts"` // Failed resolution attempts so far
	CreatedAt time.Time `json:"created_at"`
}

const (
	StateNoPending     = "NO_PENDING"
	StatePendingChoice = "PENDING_CHOICE"

	// Return branches
	BranchDisambiguation = "disambiguation"
	BranchCaseAnswer     = "case_answer"
)

// AwaitingChoice reports whether the session still holds an unanswered
// candidate prompt.
func (s *Session) AwaitingChoice() bool {
	return s.State == StatePendingChoice && len(s.Candidates) > 0
}
