package format

import "strings"

// rtlExtras are accepted inside a "Hebrew" token alongside Hebrew letters.
// This matches the long-standing behavior of the display fix; widening or
// narrowing it changes which popup lines get reordered.
const rtlExtras = `"-/`

// FixRTL compensates for the chart viewer drawing Hebrew strings
// left-to-right. When every token of s consists of Hebrew letters (plus
// rtlExtras), the token order is reversed and so are the runes inside each
// token. Mixed or non-Hebrew text comes back unchanged. This is applied to
// drill-down popup text only, never to the report or the chart labels.
func FixRTL(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	for _, w := range words {
		if !hebrewToken(w) {
			return s
		}
	}

	out := make([]string, len(words))
	for i, w := range words {
		out[len(words)-1-i] = reverseRunes(w)
	}
	return strings.Join(out, " ")
}

func hebrewToken(w string) bool {
	for _, r := range w {
		if r >= 'א' && r <= 'ת' {
			continue
		}
		if strings.ContainsRune(rtlExtras, r) {
			continue
		}
		return false
	}
	return true
}

func reverseRunes(w string) string {
	rs := []rune(w)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}
