package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_ConfirmRunsCallbackOnce(t *testing.T) {
	g := NewGate()

	calls := 0
	g.Request("Buy?", "sub", func() { calls++ })

	pending := g.Pending()
	require.NotNil(t, pending)
	assert.Equal(t, "Buy?", pending.Message)
	assert.Equal(t, "sub", pending.Subtext)

	g.Confirm()
	assert.Equal(t, 1, calls)
	assert.Nil(t, g.Pending())

	// a second confirm on the cleared gate is a no-op
	g.Confirm()
	assert.Equal(t, 1, calls)
}

func TestGate_DismissRunsNothing(t *testing.T) {
	g := NewGate()

	calls := 0
	g.Request("Cancel listing?", "", func() { calls++ })
	g.Dismiss()

	assert.Nil(t, g.Pending())
	assert.Equal(t, 0, calls)

	// the discarded callback stays discarded even if confirm follows
	g.Confirm()
	assert.Equal(t, 0, calls)
}

func TestGate_LastRequestWins(t *testing.T) {
	g := NewGate()

	var got []string
	g.Request("first", "", func() { got = append(got, "first") })
	g.Request("second", "", func() { got = append(got, "second") })

	pending := g.Pending()
	require.NotNil(t, pending)
	assert.Equal(t, "second", pending.Message)

	// confirming commits only the replacement; the first callback is gone
	g.Confirm()
	assert.Equal(t, []string{"second"}, got)
}

func TestGate_ConfirmEmptyGate(t *testing.T) {
	g := NewGate()
	assert.NotPanics(t, func() {
		g.Confirm()
		g.Dismiss()
	})
	assert.Nil(t, g.Pending())
}

func TestGate_PendingReturnsCopy(t *testing.T) {
	g := NewGate()
	g.Request("msg", "sub", nil)

	p := g.Pending()
	p.Message = "mutated"

	fresh := g.Pending()
	assert.Equal(t, "msg", fresh.Message)
}
