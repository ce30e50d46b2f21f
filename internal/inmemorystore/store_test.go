package inmemorystore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	t.Parallel()

	s := New[int, string]()

	// Get a key that doesn't exist yet
	_, ok := s.Get(1)
	assert.False(t, ok)

	assert.False(t, s.Set(1, "a"))
	v, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	// Overwriting reports presence and keeps a single entry
	assert.True(t, s.Set(1, "b"))
	assert.Equal(t, 1, s.Len())
}

func TestValues_InsertionOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := New[int, string]()
	s.Set(30, "c")
	s.Set(10, "a")
	s.Set(20, "b")
	s.Set(30, "c2")

	// --- Act ---
	values := s.Values()

	// --- Assert ---
	assert.Equal(t, []string{"c2", "a", "b"}, values)
}

func TestGetOrCompute(t *testing.T) {
	t.Parallel()

	s := New[string, int]()
	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	v, hit, err := s.GetOrCompute("m1", compute)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 42, v)

	v, hit, err = s.GetOrCompute("m1", compute)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls, "compute should run once per key")
}

func TestGetOrCompute_ErrorLeavesStoreEmpty(t *testing.T) {
	t.Parallel()

	s := New[string, int]()
	boom := errors.New("boom")

	_, _, err := s.GetOrCompute("m1", func() (int, error) { return 0, boom })

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Len())
}
