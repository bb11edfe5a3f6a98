// Package rut handles Chilean RUT tax identifiers: normalization for
// comparisons and storage, display formatting, and check-digit validation.
//
// The canonical form is "<digits>-<dv>" with no thousands separators and an
// upper-case check digit, e.g. "12345678-5". Display form groups the digits
// with dots: "12.345.678-5".
package rut

import "strings"

// Normalize strips dots, dashes and spaces, upper-cases the check digit and
// returns the canonical "<digits>-<dv>" form. It returns "" for input too
// short to carry a check digit.
func Normalize(raw string) string {
	clean := strip(raw)
	if len(clean) < 2 {
		return ""
	}
	return clean[:len(clean)-1] + "-" + clean[len(clean)-1:]
}

// Format renders a RUT for display: digits grouped in thousands with dots,
// followed by a dash and the check digit. Input may be raw, canonical or
// already formatted. Inputs too short to format are returned unchanged.
func Format(raw string) string {
	clean := strip(raw)
	if len(clean) < 2 {
		return raw
	}

	body := clean[:len(clean)-1]
	dv := clean[len(clean)-1:]

	var b strings.Builder
	for i, c := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	return b.String() + "-" + dv
}

// Valid reports whether the RUT's check digit matches the mod-11 algorithm:
// digits weighted 2..7 cycling from the right, remainder 11 maps to "0" and
// remainder 10 to "K".
func Valid(raw string) bool {
	clean := strip(raw)
	if len(clean) < 2 {
		return false
	}

	body := clean[:len(clean)-1]
	dv := clean[len(clean)-1:]

	sum := 0
	mult := 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return false
		}
		sum += int(c-'0') * mult
		if mult < 7 {
			mult++
		} else {
			mult = 2
		}
	}

	var expected string
	switch 11 - sum%11 {
	case 11:
		expected = "0"
	case 10:
		expected = "K"
	default:
		expected = string(rune('0' + 11 - sum%11))
	}
	return expected == dv
}

func strip(raw string) string {
	r := strings.NewReplacer(".", "", "-", "", " ", "")
	return strings.ToUpper(strings.TrimSpace(r.Replace(raw)))
}
