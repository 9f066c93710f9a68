package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	assert.True(t, f.Empty())
	assert.False(t, f.Has(ActionLeft))

	f.Set(ActionLeft)
	f.Set(ActionRotate)
	assert.True(t, f.Has(ActionLeft))
	assert.True(t, f.Has(ActionRotate))
	assert.False(t, f.Has(ActionHold))

	c := f.Clone()
	f.Clear()
	assert.True(t, f.Empty())
	assert.True(t, c.Has(ActionLeft), "clone must survive Clear")
}

func TestParseAction(t *testing.T) {
	for _, a := range GameplayActions() {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseAction("harddrop")
	require.NoError(t, err)
	assert.Equal(t, ActionHardDrop, got)

	_, err = ParseAction("none")
	assert.Error(t, err)
	_, err = ParseAction("jump")
	assert.Error(t, err)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "SoftDrop", ActionSoftDrop.String())
	assert.Equal(t, "Unknown", Action(99).String())
}
