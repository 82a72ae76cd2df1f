package exchange

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeCollection struct {
	docs []interface{}
	err  error
}

func (f *fakeCollection) InsertOne(_ context.Context, doc interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.docs = append(f.docs, doc)
	return &mongo.InsertOneResult{InsertedID: len(f.docs)}, nil
}

func TestMongoRecorderInserts(t *testing.T) {
	col := &fakeCollection{}
	rec := &MongoRecorder{col: col}

	e := New("doc.txt", "why?")
	e.Answer = "because"
	require.NoError(t, rec.Record(context.Background(), e))
	require.Len(t, col.docs, 1)
	require.Same(t, e, col.docs[0])
}

func TestMongoRecorderWrapsInsertError(t *testing.T) {
	boom := errors.New("no primary")
	rec := &MongoRecorder{col: &fakeCollection{err: boom}}

	e := New("doc.txt", "why?")
	err := rec.Record(context.Background(), e)
	require.ErrorIs(t, err, boom)
	require.EqualError(t, err, "insert exchange "+e.ID+": no primary")
}
