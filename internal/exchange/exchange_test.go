package exchange

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewStampsIDAndTime(t *testing.T) {
	a := New("doc.txt", "why?")
	b := New("doc.txt", "why?")
	require.NotEqual(t, a.ID, b.ID)
	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	require.Equal(t, "doc.txt", a.DocumentID)
	require.Equal(t, "why?", a.Question)
	require.False(t, a.CreatedAt.IsZero())
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	require.NoError(t, r.Record(context.Background(), New("d", "q")))
}
