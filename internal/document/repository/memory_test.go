package repository

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepoPutGetList(t *testing.T) {
	r := NewMemoryRepo()
	d := r.Put("notes.txt", "hello", "Text")
	require.Equal(t, "notes.txt", d.ID)

	got, err := r.Get("notes.txt")
	require.NoError(t, err)
	require.Equal(t, "hello", got.Content)
	require.Equal(t, "Text", got.FileType)

	list := r.List()
	require.Len(t, list, 1)
	require.Equal(t, "notes.txt", list[0].ID)
	require.Equal(t, 5, list[0].Size)
}

func TestMemoryRepoOverwriteKeepsSingleEntry(t *testing.T) {
	r := NewMemoryRepo()
	first := r.Put("a.txt", "first body", "Text")
	r.Put("b.txt", "other", "Text")
	second := r.Put("a.txt", "second", "Text")

	got, err := r.Get("a.txt")
	require.NoError(t, err)
	require.Equal(t, "second", got.Content)
	require.Equal(t, first.CreatedAt, second.CreatedAt)

	list := r.List()
	require.Len(t, list, 2)
	require.Equal(t, "a.txt", list[0].ID)
	require.Equal(t, 6, list[0].Size)
	require.Equal(t, "b.txt", list[1].ID)
}

func TestMemoryRepoGetMissing(t *testing.T) {
	r := NewMemoryRepo()
	_, err := r.Get("nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoSizeCountsCharacters(t *testing.T) {
	r := NewMemoryRepo()
	r.Put("u.txt", "héllo wörld", "Text")
	require.Equal(t, 11, r.List()[0].Size)
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	r := NewMemoryRepo()
	r.Put("a.txt", "body", "Text")
	got, err := r.Get("a.txt")
	require.NoError(t, err)
	got.Content = "mutated"

	again, err := r.Get("a.txt")
	require.NoError(t, err)
	require.Equal(t, "body", again.Content)
}

func TestMemoryRepoConcurrentPuts(t *testing.T) {
	r := NewMemoryRepo()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Put(fmt.Sprintf("doc-%d", i%5), strings.Repeat("x", i), "Text")
			_ = r.List()
		}(i)
	}
	wg.Wait()
	require.Equal(t, 5, r.Len())
	require.Len(t, r.List(), 5)
}
