package reqfreq

import "sort"

// Aggregator merges records into equivalence classes.
type Aggregator struct {
	// Fingerprint is used to reject unequal neighbours quickly. If nil, the
	// package-level Fingerprint is used.
	Fingerprint FingerprintFunc
}

// Aggregate merges records into equivalence classes, in place, and returns
// records. It sorts by key, so that each class is a contiguous run, then walks
// the slice once: the first record of each run keeps the sum of the run's
// counts, and the rest of the run is set to a count of zero. Dead records stay
// in the slice; Rank drops them.
func (a Aggregator) Aggregate(records []Record) []Record {
	fp := a.Fingerprint
	if fp == nil {
		fp = Fingerprint
	}
	for i := range records {
		records[i].Fingerprint = fp(records[i].Key)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Key.Compare(records[j].Key) < 0
	})
	leader := 0
	for i := 1; i < len(records); i++ {
		if sameClass(&records[leader], &records[i]) {
			records[leader].Count += records[i].Count
			records[i].Count = 0
			continue
		}
		leader = i
	}
	return records
}

// sameClass reports whether a and b have equal keys. The fingerprints only
// ever rule equality out.
func sameClass(a, b *Record) bool {
	if a.Fingerprint != b.Fingerprint {
		return false
	}
	return a.Key == b.Key
}

// Aggregate merges records into equivalence classes using the default
// fingerprint. See Aggregator.Aggregate.
func Aggregate(records []Record) []Record {
	return Aggregator{}.Aggregate(records)
}
