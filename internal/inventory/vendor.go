package inventory

import (
	"fmt"

	"github.com/aldoria/market-client/internal/domain"
)

// Vendor price heuristic weights.
const (
	vendorTierWeight    = 5
	vendorQualityWeight = 10
)

// VendorPrice is the heuristic quick-sell price shown in the inventory grid.
// It is a display hint only: the authority prices the actual vendor sale, and
// this value must never be used to validate a market transaction. It lives
// here, away from the market package, to keep that coupling impossible.
func VendorPrice(meta domain.ItemMetadata) int {
	return meta.Tier*vendorTierWeight + meta.Quality*vendorQualityWeight
}

// FormatAmount renders stack sizes the way the grid shows them: quantities
// of 1000 and above collapse to a one-decimal "k" form.
func FormatAmount(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}
