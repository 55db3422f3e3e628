package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSellForm_SelectResetsAmount(t *testing.T) {
	f := &SellForm{}
	f.Select("T1_WOOD")
	f.SetAmount(25, 30)
	f.SetPrice(500)

	// re-selecting (even the same item) resets quantity and price
	f.Select("T1_WOOD")
	itemID, amount, price := f.Snapshot()
	assert.Equal(t, "T1_WOOD", itemID)
	assert.Equal(t, 1, amount)
	assert.Equal(t, 0, price)
}

func TestSellForm_AmountClamp(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		held   int
		want   int
	}{
		{"within range", 5, 10, 5},
		{"below one clamps up", 0, 10, 1},
		{"negative clamps up", -3, 10, 1},
		{"above held clamps down", 99, 10, 10},
		{"exactly held", 10, 10, 10},
		{"zero held leaves amount", 5, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &SellForm{}
			f.Select("T1_WOOD")
			f.SetAmount(tt.amount, tt.held)
			_, amount, _ := f.Snapshot()
			assert.Equal(t, tt.want, amount)
		})
	}
}

func TestSellForm_PriceClamp(t *testing.T) {
	f := &SellForm{}
	f.Select("T1_WOOD")

	f.SetPrice(-100)
	_, _, price := f.Snapshot()
	assert.Equal(t, 0, price)

	f.SetPrice(1234)
	_, _, price = f.Snapshot()
	assert.Equal(t, 1234, price)
}

func TestSellForm_Clear(t *testing.T) {
	f := &SellForm{}
	f.Select("T1_WOOD")
	f.SetAmount(3, 10)
	f.SetPrice(50)

	f.Clear()
	itemID, amount, price := f.Snapshot()
	assert.Empty(t, itemID)
	assert.Equal(t, 0, amount)
	assert.Equal(t, 0, price)
}

func TestValidTab(t *testing.T) {
	for _, tab := range []Tab{TabBrowse, TabMyListings, TabSell, TabClaim} {
		assert.True(t, ValidTab(tab))
	}
	assert.False(t, ValidTab("SETTINGS"))
	assert.False(t, ValidTab(""))
}
