package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	meter := NewMeter()
	state := New(meter, "Hello world.")

	value, err := state.Read()
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", value)

	counts := meter.Counts()
	assert.Equal(t, int64(1), counts.Creates)
	assert.Equal(t, int64(0), counts.Duplicates)
	assert.Equal(t, int64(0), counts.Transfers)
}

func TestNewNilMeter(t *testing.T) {
	state := New(nil, "payload")

	// A fresh meter is attached so the state stays observable
	require.NotNil(t, state.Meter())
	assert.Equal(t, int64(1), state.Meter().Counts().Creates)
}

func TestDuplicateFrom(t *testing.T) {
	meter := NewMeter()
	src := New(meter, "Hello world.")

	dup, err := DuplicateFrom(src)
	require.NoError(t, err)

	// The copy holds the same payload
	value, err := dup.Read()
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", value)

	// The source is byte-for-byte unchanged
	srcValue, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", srcValue)

	assert.Equal(t, int64(1), meter.Counts().Duplicates)
	assert.Equal(t, int64(0), meter.Counts().Transfers)
}

func TestDuplicateFromNilSource(t *testing.T) {
	dup, err := DuplicateFrom(nil)
	assert.Nil(t, dup)
	assert.ErrorIs(t, err, ErrNilState)
}

func TestDuplicateIsIndependent(t *testing.T) {
	meter := NewMeter()
	src := New(meter, "original")

	dup, err := DuplicateFrom(src)
	require.NoError(t, err)

	// Mutating the source must not affect the copy
	src.Set("changed")

	value, err := dup.Read()
	require.NoError(t, err)
	assert.Equal(t, "original", value)
}

func TestTransferFrom(t *testing.T) {
	meter := NewMeter()
	src := New(meter, "Hello world.")

	dst, err := TransferFrom(src)
	require.NoError(t, err)

	// The destination owns the payload
	value, err := dst.Read()
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", value)

	// The source is emptied and must not be read
	_, err = src.Read()
	assert.ErrorIs(t, err, ErrUseAfterEmpty)

	counts := meter.Counts()
	assert.Equal(t, int64(1), counts.Transfers)
	assert.Equal(t, int64(0), counts.Duplicates)
}

func TestTransferFromNilSource(t *testing.T) {
	dst, err := TransferFrom(nil)
	assert.Nil(t, dst)
	assert.ErrorIs(t, err, ErrNilState)
}

func TestSetReassignsEmptiedState(t *testing.T) {
	meter := NewMeter()
	src := New(meter, "payload")

	_, err := TransferFrom(src)
	require.NoError(t, err)

	_, err = src.Read()
	require.ErrorIs(t, err, ErrUseAfterEmpty)

	// Reassignment makes the state readable again
	src.Set("fresh payload")
	value, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, "fresh payload", value)
}

func TestDiscard(t *testing.T) {
	meter := NewMeter()
	state := New(meter, "Hello world.")

	state.Discard()
	assert.True(t, state.Discarded())
	assert.Equal(t, int64(1), meter.Counts().Discards)

	// Reading a discarded state is the unchecked hazard: it observes the
	// zeroed payload without error rather than the original value.
	value, err := state.Read()
	assert.NoError(t, err)
	assert.Empty(t, value)
}

func TestDiscardIsIdempotent(t *testing.T) {
	meter := NewMeter()
	state := New(meter, "payload")

	state.Discard()
	state.Discard()

	assert.Equal(t, int64(1), meter.Counts().Discards)
}

func TestChainedTransfersDuplicateNothing(t *testing.T) {
	meter := NewMeter()
	origin := New(meter, "Hello world.")

	// A fully transfer-aware delivery path re-homes the payload any number
	// of times without ever duplicating it.
	first, err := TransferFrom(origin)
	require.NoError(t, err)
	second, err := TransferFrom(first)
	require.NoError(t, err)

	value, err := second.Read()
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", value)

	counts := meter.Counts()
	assert.Equal(t, int64(2), counts.Transfers)
	assert.Equal(t, int64(0), counts.Duplicates)
}
