package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	all := []Status{StatusPending, StatusApproved, StatusRejected, StatusChangesRequested}
	allowed := map[Status][]Status{
		StatusPending:          {StatusApproved, StatusChangesRequested, StatusRejected},
		StatusChangesRequested: {StatusPending},
	}
	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusChangesRequested.IsTerminal())
	assert.False(t, Status("Draft").Valid())
}

func TestParseDecision(t *testing.T) {
	for raw, want := range map[string]Decision{
		"Approve":           DecisionApprove,
		" approved ":        DecisionApprove,
		"Changes Requested": DecisionRequestChanges,
		"request_changes":   DecisionRequestChanges,
		"REJECTED":          DecisionReject,
	} {
		got, ok := ParseDecision(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	_, ok := ParseDecision("Pending")
	assert.False(t, ok)

	assert.Equal(t, StatusChangesRequested, DecisionRequestChanges.Target())
}

func TestReviewInputDecisionText(t *testing.T) {
	assert.Equal(t, "Approve", ReviewInput{Decision: "Approve", Status: "Rejected"}.DecisionText())
	assert.Equal(t, "Rejected", ReviewInput{Decision: " ", Status: "Rejected"}.DecisionText())
}
