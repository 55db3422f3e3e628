package market

// Tab identifies the active market view. The tabs are a mutually exclusive
// selector with no transition guards: any tab can follow any other, and
// switching never cancels an in-flight request.
type Tab string

const (
	TabBrowse     Tab = "BROWSE"
	TabMyListings Tab = "MY_LISTINGS"
	TabSell       Tab = "SELL"
	TabClaim      Tab = "CLAIM"
)

// ValidTab reports whether t is one of the four market tabs.
func ValidTab(t Tab) bool {
	switch t {
	case TabBrowse, TabMyListings, TabSell, TabClaim:
		return true
	}
	return false
}
