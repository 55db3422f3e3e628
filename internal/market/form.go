package market

import "sync"

// SellForm holds the sell tab's selection state. All mutation goes through
// named transitions so pre/postconditions stay inspectable; the quantity
// stepper clamps to [1, held] against the latest inventory snapshot.
type SellForm struct {
	mu     sync.Mutex
	itemID string
	amount int
	price  int
}

// Select picks the item to sell and resets quantity to 1. Selecting the
// empty ID clears the form.
func (f *SellForm) Select(itemID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.itemID = itemID
	f.amount = 1
	f.price = 0
}

// Clear resets the form. Runs after a successful listing.
func (f *SellForm) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.itemID = ""
	f.amount = 0
	f.price = 0
}

// SetAmount clamps the requested quantity to [1, held].
func (f *SellForm) SetAmount(amount, held int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if amount < 1 {
		amount = 1
	}
	if held > 0 && amount > held {
		amount = held
	}
	f.amount = amount
}

// SetPrice sets the asking total price. Negative input clamps to zero; zero
// is "unset" and fails validation at submit time.
func (f *SellForm) SetPrice(price int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if price < 0 {
		price = 0
	}
	f.price = price
}

// Snapshot returns the current (itemID, amount, price).
func (f *SellForm) Snapshot() (itemID string, amount, price int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.itemID, f.amount, f.price
}
