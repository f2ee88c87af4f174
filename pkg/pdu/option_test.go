package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsGetFoldsCase(t *testing.T) {
	opts := Options{
		{Name: "BLKSIZE", Value: "1432"},
		{Name: "tsize", Value: "1048576"},
	}

	v, ok := opts.Get(OptBlocksize)
	assert.True(t, ok)
	assert.Equal(t, "1432", v)

	v, ok = opts.Get("TSIZE")
	assert.True(t, ok)
	assert.Equal(t, "1048576", v)

	_, ok = opts.Get(OptTimeout)
	assert.False(t, ok)
}

func TestOptionsGetLastWins(t *testing.T) {
	opts := Options{
		{Name: "blksize", Value: "512"},
		{Name: "Blksize", Value: "1024"},
	}

	v, ok := opts.Get(OptBlocksize)
	assert.True(t, ok)
	assert.Equal(t, "1024", v)
}

func TestOptionIs(t *testing.T) {
	o := Option{Name: "WindowSize", Value: "4"}

	assert.True(t, o.Is(OptWindowSize))
	assert.False(t, o.Is(OptBlocksize))
}
