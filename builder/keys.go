package builder

import (
	"fmt"
	"strconv"
)

// KeyFn maps a zero-based node index to a preset key. It must be pure and
// injective.
type KeyFn func(idx int) string

// DecimalKeys returns "0", "1", "2", ….
func DecimalKeys(idx int) string { return strconv.Itoa(idx) }

// LetterKeys returns spreadsheet-style column names: "A"…"Z", "AA", "AB", ….
// Panics if idx < 0.
func LetterKeys(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterKeys: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixKeys returns prefix + decimal index, e.g. "v0", "v1", ….
func PrefixKeys(prefix string) KeyFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}
