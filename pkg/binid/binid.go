// Package binid allocates bin identifiers: a farm-name prefix plus a
// zero-padded per-prefix sequence, e.g. "GKF00001".
package binid

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const seqWidth = 5

// Prefix derives the identifier namespace for a farm name: every
// uppercase letter in order of appearance, or the uppercased first
// character when the name has no uppercase letters. Empty input
// yields an empty prefix.
func Prefix(farmName string) string {
	var b strings.Builder
	for _, r := range farmName {
		if unicode.IsUpper(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() > 0 {
		return b.String()
	}
	for _, r := range farmName {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// NextSeq returns the sequence number the next identifier under prefix
// should take: one past the highest all-digit suffix among existing
// ids that start with prefix, or 1 when none do.
func NextSeq(prefix string, existing []string) int {
	high := 0
	for _, id := range existing {
		suffix, ok := strings.CutPrefix(id, prefix)
		if !ok || suffix == "" || !allDigits(suffix) {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > high {
			high = n
		}
	}
	return high + 1
}

// Allocate computes count consecutive identifiers for farmName that do
// not collide with existing. Pure function of its inputs; count <= 0
// yields nil with no error.
func Allocate(farmName string, count int, existing []string) []string {
	if count <= 0 {
		return nil
	}
	prefix := Prefix(farmName)
	seq := NextSeq(prefix, existing)
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, Format(prefix, seq))
		seq++
	}
	return ids
}

// Format renders one identifier. Sequences past 99999 widen the field
// rather than truncate.
func Format(prefix string, seq int) string {
	return fmt.Sprintf("%s%0*d", prefix, seqWidth, seq)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
