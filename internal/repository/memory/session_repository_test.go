package memory

import (
	"testing"
	"time"

	"legal-research-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository()

	session := &store.Session{
		ID:         "conv-1",
		UserID:     "user-1",
		State:      store.StatePendingChoice,
		Candidates: []store.Candidate{{Label: "A v. B"}, {Label: "C v. D"}},
	}
	repo.Save(session)

	got, found := repo.Get("conv-1")
	assert.True(t, found)
	assert.Equal(t, store.StatePendingChoice, got.State)
	assert.Len(t, got.Candidates, 2)

	repo.Delete("conv-1")
	_, found = repo.Get("conv-1")
	assert.False(t, found)
}

func TestSessionRepositoryMissIsNotAnError(t *testing.T) {
	repo := NewSessionRepository()

	got, found := repo.Get("never-stored")
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestSessionRepositorySaveOverwrites(t *testing.T) {
	repo := NewSessionRepository()

	repo.Save(&store.Session{ID: "conv-1", State: store.StatePendingChoice,
		Candidates: []store.Candidate{{Label: "old"}}})
	repo.Save(&store.Session{ID: "conv-1", State: store.StatePendingChoice,
		Candidates: []store.Candidate{{Label: "new one"}, {Label: "new two"}}})

	got, found := repo.Get("conv-1")
	assert.True(t, found)
	assert.Len(t, got.Candidates, 2)
	assert.Equal(t, "new one", got.Candidates[0].Label)
}

func TestSessionRepositoryTTLExpiry(t *testing.T) {
	repo := NewSessionRepositoryWithTTL(10 * time.Millisecond)

	repo.Save(&store.Session{ID: "conv-1", State: store.StatePendingChoice})
	time.Sleep(30 * time.Millisecond)

	_, found := repo.Get("conv-1")
	assert.False(t, found, "expired entries must read as cache misses")
}
