package reqfreq_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/bitfield/reqfreq"
	"github.com/google/go-cmp/cmp"
)

func records(t *testing.T, lines ...string) []reqfreq.Record {
	t.Helper()
	var rs []reqfreq.Record
	for _, line := range lines {
		r, err := reqfreq.ParseRecord(line)
		if err != nil {
			t.Fatal(err)
		}
		rs = append(rs, r)
	}
	return rs
}

func live(rs []reqfreq.Record) map[reqfreq.Key]int {
	counts := map[reqfreq.Key]int{}
	for _, r := range rs {
		if r.Count > 0 {
			counts[r.Key] += r.Count
		}
	}
	return counts
}

func TestAggregateMergesEquivalentRecords(t *testing.T) {
	t.Parallel()
	rs := records(t,
		"[1234 5678] get /users/123 200 cli1",
		"[1234 5678] get /users/123 200 cli3",
		"[2345 6789] get /users 200 cli2",
		"[2345 6789] put /users 200 cli4",
		"[2345 6789] get /users/9 200 cli9",
		"[2345 6789] get /users/9 500 cli9",
	)
	want := map[reqfreq.Key]int{
		{Method: "get", Endpoint: "/users/#", Status: 200}: 3,
		{Method: "get", Endpoint: "/users/#", Status: 500}: 1,
		{Method: "get", Endpoint: "/users", Status: 200}:   1,
		{Method: "put", Endpoint: "/users", Status: 200}:   1,
	}
	got := live(reqfreq.Aggregate(rs))
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestAggregateConservesCountsAndLeavesOneRecordPerClass(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	methods := []string{"get", "post", "put", "delete"}
	endpoints := []string{"/users", "/users/1", "/users/22", "/users/", "/orders/x1", "1/users/3"}
	statuses := []string{"200", "201", "404", "500"}
	const n = 1000
	var lines []string
	for i := 0; i < n; i++ {
		lines = append(lines, fmt.Sprintf("[%d 0] %s %s %s client%d",
			i,
			methods[rng.Intn(len(methods))],
			endpoints[rng.Intn(len(endpoints))],
			statuses[rng.Intn(len(statuses))],
			rng.Intn(50),
		))
	}
	rs := reqfreq.Aggregate(records(t, lines...))
	if len(rs) != n {
		t.Fatalf("want %d records after aggregation, got %d", n, len(rs))
	}
	total := 0
	seen := map[reqfreq.Key]bool{}
	for _, r := range rs {
		if r.Count == 0 {
			continue
		}
		if seen[r.Key] {
			t.Errorf("more than one live record for %v", r.Key)
		}
		seen[r.Key] = true
		total += r.Count
	}
	if total != n {
		t.Errorf("want counts summing to %d, got %d", n, total)
	}
}

func TestAggregateKeepsCollidingFingerprintsInSeparateClasses(t *testing.T) {
	t.Parallel()
	collide := func(reqfreq.Key) uint64 { return 42 }
	rs := records(t,
		"t1 t2 get /a 200 c",
		"t1 t2 get /a 200 c",
		"t1 t2 get /b 200 c",
		"t1 t2 get /a 201 c",
		"t1 t2 post /a 200 c",
	)
	got := live(reqfreq.Aggregator{Fingerprint: collide}.Aggregate(rs))
	want := map[reqfreq.Key]int{
		{Method: "get", Endpoint: "/a", Status: 200}:  2,
		{Method: "get", Endpoint: "/b", Status: 200}:  1,
		{Method: "get", Endpoint: "/a", Status: 201}:  1,
		{Method: "post", Endpoint: "/a", Status: 200}: 1,
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestAggregateHandlesEmptyAndSingleInputs(t *testing.T) {
	t.Parallel()
	if got := reqfreq.Aggregate(nil); len(got) != 0 {
		t.Errorf("want no records, got %v", got)
	}
	rs := reqfreq.Aggregate(records(t, "t1 t2 get /a 200 c"))
	if len(rs) != 1 || rs[0].Count != 1 {
		t.Errorf("want one record with count 1, got %v", rs)
	}
}

func TestFingerprintIsEqualForEqualKeys(t *testing.T) {
	t.Parallel()
	a := reqfreq.Key{Method: "get", Endpoint: "/users/#", Status: 200}
	b := reqfreq.Key{Method: "get", Endpoint: "/users/#", Status: 200}
	if reqfreq.Fingerprint(a) != reqfreq.Fingerprint(b) {
		t.Error("want equal fingerprints for equal keys")
	}
	c := reqfreq.Key{Method: "get/", Endpoint: "users/#", Status: 200}
	if reqfreq.Fingerprint(a) == reqfreq.Fingerprint(c) {
		t.Error("want method/endpoint boundary to affect the fingerprint")
	}
}
