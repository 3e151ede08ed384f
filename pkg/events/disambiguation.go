package events

import "time"

const (
	TypeDisambiguationOpened    = "DISAMBIGUATION_OPENED"
	TypeDisambiguationResolved  = "DISAMBIGUATION_RESOLVED"
	TypeDisambiguationAbandoned = "DISAMBIGUATION_ABANDONED"
)

// NewDisambiguationOpened is emitted when the pipeline asks the user to pick
// among several candidates.
func NewDisambiguationOpened(conversationID string, candidateCount int, returnBranch string) Event {
	return BaseEvent{
		Type: TypeDisambiguationOpened,
		Data: map[string]interface{}{
			"conversation_id": conversationID,
			"candidate_count": candidateCount,
			"return_branch":   returnBranch,
		},
		OccurredAt: time.Now(),
	}
}

// NewDisambiguationResolved is emitted when a follow-up turn selected exactly
// one candidate.
func NewDisambiguationResolved(conversationID string, index int, attempts int) Event {
	return BaseEvent{
		Type: TypeDisambiguationResolved,
		Data: map[string]interface{}{
			"conversation_id": conversationID,
			"selected_index":  index,
			"attempts":        attempts,
		},
		OccurredAt: time.Now(),
	}
}

// NewDisambiguationAbandoned is emitted when a pending session is dropped,
// either because the follow-up was unrelated or the retry budget ran out.
func NewDisambiguationAbandoned(conversationID string, reason string) Event {
	return BaseEvent{
		Type: TypeDisambiguationAbandoned,
		Data: map[string]interface{}{
			"conversation_id": conversationID,
			"reason":          reason,
		},
		OccurredAt: time.Now(),
	}
}
