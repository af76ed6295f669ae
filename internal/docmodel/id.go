// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package docmodel

import "strings"

// MakeID canonicalizes text into a valid anchor identifier: lower-cased,
// with runs of characters outside [a-z0-9] collapsed to single hyphens,
// leading characters dropped up to the first letter, and trailing hyphens
// stripped. Distinct dotted names stay distinct because every separator
// maps to exactly one hyphen.
func MakeID(text string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	id := strings.TrimRight(b.String(), "-")
	for len(id) > 0 && (id[0] < 'a' || id[0] > 'z') {
		id = id[1:]
	}
	return id
}
