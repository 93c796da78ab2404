package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sheeplet1/rsheets/internal/value"
)

func TestLastWriterWinsByTimestamp(t *testing.T) {
	s := New()
	s.Set("A1", value.Integer(5), "", false, 10)
	s.Set("A1", value.Integer(7), "", false, 11)
	assert.Equal(t, int64(7), s.GetValue("A1").Integer)

	// A stale write (lower timestamp) arriving later must be discarded.
	s.Set("A1", value.Integer(99), "", false, 5)
	assert.Equal(t, int64(7), s.GetValue("A1").Integer, "stale write must not be applied")
}

func TestTieBreaksTowardLaterArrival(t *testing.T) {
	s := New()
	s.Set("A1", value.Integer(5), "", false, 10)
	s.Set("A1", value.Integer(7), "", false, 10)
	assert.Equal(t, int64(7), s.GetValue("A1").Integer, "later arrival should win a tie")
}

func TestAbsentCellReturnsNone(t *testing.T) {
	s := New()
	assert.True(t, s.GetValue("Z99").IsNone())
	assert.Equal(t, uint64(0), s.GetTimestamp("Z99"))
}
