package market

// TaxRatePercent is the marketplace sales tax applied by the authority when
// a listing sells. The client computes the same figure for display only; the
// deduction itself happens server-side at settlement.
const TaxRatePercent = 6

// TaxEstimate returns the tax withheld and the net proceeds for a listing at
// the given total price. The tax floors: tax = floor(price * 6 / 100).
func TaxEstimate(price int) (tax, net int) {
	tax = price * TaxRatePercent / 100
	return tax, price - tax
}
