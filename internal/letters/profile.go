// Package letters builds letter-count profiles of strings.
package letters

import "strings"

const alphabetSize = 26

// Profile counts occurrences of each letter a-z in a normalized string.
// The zero value is the profile of the empty string.
type Profile struct {
	counts [alphabetSize]int
	length int
}

// New lowercases raw and counts every remaining a-z byte. Anything else is dropped.
func New(raw string) Profile {
	var p Profile
	lower := strings.ToLower(raw)
	for i := 0; i < len(lower); i++ {
		ch := lower[i]
		if ch < 'a' || ch > 'z' {
			continue
		}
		p.counts[ch-'a']++
		p.length++
	}
	return p
}

// Len returns the number of letters kept after normalization.
func (p Profile) Len() int {
	return p.length
}

// Count returns how many times letter occurs. Letters outside a-z count as zero.
func (p Profile) Count(letter byte) int {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return p.counts[letter-'a']
}

// CanForm reports whether the letters of candidate are a sub-multiset of p.
func (p Profile) CanForm(candidate string) bool {
	return p.Contains(New(candidate))
}

// Contains reports whether every letter count in other fits within p.
func (p Profile) Contains(other Profile) bool {
	if other.length > p.length {
		return false
	}
	for i := 0; i < alphabetSize; i++ {
		if p.counts[i] < other.counts[i] {
			return false
		}
	}
	return true
}

// Alphagram returns the normalized letters in alphabetical order.
func (p Profile) Alphagram() string {
	var b strings.Builder
	b.Grow(p.length)
	for i, n := range p.counts {
		for j := 0; j < n; j++ {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}
