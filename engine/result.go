package engine

import "sort"

// resultSet accumulates accepted transforms across a scan, deduplicating
// by value.
type resultSet map[CandidateTransform]struct{}

func newResultSet() resultSet {
	return make(resultSet)
}

func (s resultSet) add(transforms ...CandidateTransform) {
	for _, t := range transforms {
		s[t] = struct{}{}
	}
}

// sorted returns the deduplicated result set as a stably ordered slice,
// per §4.6's "the result set is sorted and deduplicated before returning".
func (s resultSet) sorted() []CandidateTransform {
	out := make([]CandidateTransform, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Encryption != b.Encryption {
			return a.Encryption < b.Encryption
		}
		if a.Hash != b.Hash {
			return a.Hash < b.Hash
		}
		if a.Auth != b.Auth {
			return a.Auth < b.Auth
		}
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.KeyLength < b.KeyLength
	})
	return out
}
