package reqfreq

import "sort"

// Rank returns the live records (those with a non-zero count) ordered by
// descending count. Records with equal counts are ordered by key. The input
// slice is not modified.
func Rank(records []Record) []Record {
	ranked := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Count > 0 {
			ranked = append(ranked, r)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Key.Compare(ranked[j].Key) < 0
	})
	return ranked
}
