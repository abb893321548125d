package decision_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"opsdeck/internal/domain/decision"
	"opsdeck/internal/state"
	"opsdeck/internal/storage"
)

type logRecorder struct {
	entries []string
}

func (l *logRecorder) Log(ctx context.Context, text string) {
	l.entries = append(l.entries, text)
}

func newTestService(t *testing.T) (*decision.Service, *logRecorder) {
	t.Helper()

	slice := state.NewSlice(storage.NewMemory(), "decisions", []decision.Decision(nil), nil)
	slice.Hydrate(context.Background())
	log := &logRecorder{}
	return decision.NewService(slice, log, nil), log
}

func TestAdd_CopiesConsultedNamesAtWriteTime(t *testing.T) {
	ctx := context.Background()
	svc, log := newTestService(t)

	d, err := svc.Add(ctx, decision.AddRequest{
		Question:  "Switch hosting provider?",
		Summary:   "Stay put for now, revisit in Q4.",
		Consulted: []string{" Scout ", "Ledger", ""},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Scout", "Ledger"}, d.Consulted)
	require.NotEmpty(t, d.Date, "date defaults to today")
	require.Len(t, log.entries, 1)
}

func TestAdd_EmptyQuestionIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, log := newTestService(t)

	_, err := svc.Add(ctx, decision.AddRequest{Summary: "no question"})
	require.ErrorIs(t, err, decision.ErrInvalidInput)
	require.Empty(t, svc.List())
	require.Empty(t, log.entries)
}

func TestDelete_RemovesDecision(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	d, err := svc.Add(ctx, decision.AddRequest{Question: "Hire?"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, d.ID))
	require.Empty(t, svc.List())
	require.ErrorIs(t, svc.Delete(ctx, d.ID), decision.ErrDecisionNotFound)
}
