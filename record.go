package reqfreq

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies an equivalence class: two log lines are the same kind of
// request if their keys are equal.
type Key struct {
	Method   string
	Endpoint string
	Status   int
}

// Compare orders keys by method, then endpoint, then status. It returns a
// negative number, zero, or a positive number as k sorts before, equal to, or
// after other.
func (k Key) Compare(other Key) int {
	if c := strings.Compare(k.Method, other.Method); c != 0 {
		return c
	}
	if c := strings.Compare(k.Endpoint, other.Endpoint); c != 0 {
		return c
	}
	switch {
	case k.Status < other.Status:
		return -1
	case k.Status > other.Status:
		return 1
	}
	return 0
}

// Record is one parsed log line. After aggregation, a surviving Record stands
// for its whole equivalence class and Count holds the class total; records
// merged into another have a Count of zero.
type Record struct {
	Key
	Count       int
	Fingerprint uint64
}

// NewRecord builds a Record from tokenized fields, normalizing the endpoint
// and parsing the status. If the status is not a base-10 integer, NewRecord
// returns an error wrapping ErrUnparseableStatus.
func NewRecord(f Fields) (Record, error) {
	status, err := strconv.Atoi(f.Status)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrUnparseableStatus, f.Status)
	}
	return Record{
		Key: Key{
			Method:   f.Method,
			Endpoint: NormalizeEndpoint(f.Endpoint),
			Status:   status,
		},
		Count: 1,
	}, nil
}

// ParseRecord tokenizes line and builds a Record from it.
func ParseRecord(line string) (Record, error) {
	f, err := Tokenize(line)
	if err != nil {
		return Record{}, err
	}
	return NewRecord(f)
}

// String formats r as a report line, without the terminating newline:
//
//	get /users/# 200 2
func (r Record) String() string {
	return r.Method + " " + r.Endpoint + " " + strconv.Itoa(r.Status) + " " + strconv.Itoa(r.Count)
}
