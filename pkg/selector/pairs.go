package selector

import "strings"

// IsPair reports whether s, trimmed of leading and trailing whitespace,
// contains exactly one space character.
//
// Only the literal space counts; a tab or newline between words does not
// make a pair. "a  b" (two spaces) is not a pair, " a b " is.
func IsPair(s string) bool {
	return strings.Count(strings.TrimSpace(s), " ") == 1
}

// IsPairRecord applies IsPair to field 0 of a record. A record with no
// fields has no field 0 to test and is never a pair.
func IsPairRecord(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	return IsPair(rec[0])
}
