package exchange

import "strings"

// perpSuffixes enumerates the recognized exchange-specific suffix markers on
// perpetual contract names. Stripping drops the trailing marker character, so
// XBTUSDTM and XBTUSDTP both map to XBTUSDT.
var perpSuffixes = []string{"USDTM", "USDTP", "M"}

// Normalize maps an exchange-native symbol to its canonical form: uppercased,
// with recognized perpetual suffix markers stripped to a fixpoint. The fixpoint
// makes Normalize idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(native string) string {
	s := strings.ToUpper(native)
	for {
		next := stripSuffixMarker(s)
		if next == s {
			return s
		}
		s = next
	}
}

func stripSuffixMarker(s string) string {
	for _, suffix := range perpSuffixes {
		if strings.HasSuffix(s, suffix) {
			return s[:len(s)-1]
		}
	}
	return s
}
