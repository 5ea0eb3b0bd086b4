// Package wildcard implements the filename mask language used to select
// files for batch conversion: '*' matches any run of characters, '?'
// matches exactly one character, and everything else matches itself
// case-insensitively.
package wildcard

import "unicode"

// Match reports whether name matches the mask. Matching is performed over
// runes, so multi-byte filenames compare correctly, and is always
// case-insensitive.
func Match(name, mask string) bool {
	return matchRunes([]rune(name), []rune(mask))
}

// matchRunes uses the standard two-pointer backtracking scheme: remember
// the position of the last '*' and, on a mismatch, retry from there with
// the star consuming one more rune.
func matchRunes(name, mask []rune) bool {
	var (
		n, m         int  // cursors into name and mask
		starIdx      = -1 // position of the last '*' seen in mask
		starMatchEnd int  // name position the last '*' has consumed up to
	)

	for n < len(name) {
		switch {
		case m < len(mask) && (mask[m] == '?' || foldEq(mask[m], name[n])):
			n++
			m++
		case m < len(mask) && mask[m] == '*':
			starIdx = m
			starMatchEnd = n
			m++
		case starIdx >= 0:
			m = starIdx + 1
			starMatchEnd++
			n = starMatchEnd
		default:
			return false
		}
	}

	// Only trailing stars may remain unconsumed.
	for m < len(mask) && mask[m] == '*' {
		m++
	}
	return m == len(mask)
}

func foldEq(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}
