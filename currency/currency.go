package currency

import "github.com/dustin/go-humanize"

const Suffix = "₽"

// maxDisplay bounds what Format shows. humanize rounds through float64,
// which stays exact below 2^52.
const maxDisplay = 999_999_999_999_999

// Format groups thousands with a space: 12500 -> "12 500".
func Format(amount int) string {
	amount = max(-maxDisplay, min(amount, maxDisplay))
	return humanize.FormatInteger("# ###.", amount)
}

// Label is Format followed by the currency suffix.
func Label(amount int) string {
	return Format(amount) + " " + Suffix
}
