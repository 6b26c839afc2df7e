// Package money renders coin amounts as human-readable Russian phrases.
package money

import (
	"fmt"
	"strings"
)

// Format renders an amount in thousands of coins: Format(15000) is
// "15 миллионов монет", Format(1500) is "1 миллион 500 тысяч монет".
// The sign is the caller's concern; Format never prefixes "+" or "-".
func Format(amount int64) string {
	if amount == 0 {
		return "0 монет"
	}

	millions := amount / 1000
	thousands := amount % 1000

	var b strings.Builder

	if millions != 0 {
		fmt.Fprintf(&b, "%d миллион%s", millions, millionSuffix(millions))
	}

	if thousands != 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d тысяч%s", thousands, thousandSuffix(thousands))
	}

	b.WriteString(" монет")
	return b.String()
}

// Suffix selection uses the game's historical simplified rule: exactly 1 is
// singular, below 5 is the few-form, everything else the many-form. It is
// rough for counts like 21 or 22 and is kept that way on purpose.
func millionSuffix(n int64) string {
	switch {
	case n == 1:
		return ""
	case n < 5:
		return "а"
	default:
		return "ов"
	}
}

func thousandSuffix(n int64) string {
	switch {
	case n == 1:
		return "а"
	case n < 5:
		return "и"
	default:
		return ""
	}
}
