// Package exchange records every question asked about a document together
// with the provider's answer or failure. Records are write-only.
package exchange

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Exchange is one ask round trip.
type Exchange struct {
	ID         string        `json:"id" bson:"_id"`
	DocumentID string        `json:"document_id" bson:"documentId"`
	Question   string        `json:"question" bson:"question"`
	Answer     string        `json:"answer,omitempty" bson:"answer,omitempty"`
	Error      string        `json:"error,omitempty" bson:"error,omitempty"`
	Model      string        `json:"model,omitempty" bson:"model,omitempty"`
	Duration   time.Duration `json:"duration" bson:"durationNs"`
	CreatedAt  time.Time     `json:"createdAt" bson:"createdAt"`
}

// New stamps a fresh exchange with an id and creation time.
func New(documentID, question string) *Exchange {
	return &Exchange{
		ID:         uuid.NewString(),
		DocumentID: documentID,
		Question:   question,
		CreatedAt:  time.Now().UTC(),
	}
}

// Recorder persists exchanges.
type Recorder interface {
	Record(ctx context.Context, e *Exchange) error
}

// NopRecorder drops every exchange.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, *Exchange) error { return nil }
