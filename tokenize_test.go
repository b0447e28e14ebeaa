package reqfreq_test

import (
	"errors"
	"testing"

	"github.com/bitfield/reqfreq"
	"github.com/google/go-cmp/cmp"
)

func TestTokenizeSplitsLineIntoSixFields(t *testing.T) {
	t.Parallel()
	want := reqfreq.Fields{
		Time1:    "[1234",
		Time2:    "5678]",
		Method:   "get",
		Endpoint: "/users/123",
		Status:   "200",
		Client:   "cli1",
	}
	got, err := reqfreq.Tokenize("[1234 5678] get /users/123 200 cli1")
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestTokenizeIgnoresExtraSpacesBetweenFields(t *testing.T) {
	t.Parallel()
	want, err := reqfreq.Tokenize("[2345 6789] get /users 200 cli2")
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		"[2345  6789] get  /users  200  cli2",
		"[2345   6789]   get   /users   200   cli2",
		"   [2345 6789] get /users    200  cli2",
	} {
		got, err := reqfreq.Tokenize(line)
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
		if !cmp.Equal(want, got) {
			t.Errorf("%q: %s", line, cmp.Diff(want, got))
		}
	}
}

func TestTokenizeKeepsRestOfLineAsClient(t *testing.T) {
	t.Parallel()
	got, err := reqfreq.Tokenize("t1 t2 get /a 200   Mozilla/5.0 (X11; Linux)")
	if err != nil {
		t.Fatal(err)
	}
	want := "Mozilla/5.0 (X11; Linux)"
	if want != got.Client {
		t.Errorf("want client %q, got %q", want, got.Client)
	}
}

func TestTokenizeRejectsLinesWithFewerThanSixFields(t *testing.T) {
	t.Parallel()
	tcs := []string{
		"",
		"   ",
		"[1234 5678]",
		"[1234 5678] get /users",
		"[1234 5678] get /users 200",
		"[1234 5678] get /users 200   ",
	}
	for _, line := range tcs {
		_, err := reqfreq.Tokenize(line)
		if !errors.Is(err, reqfreq.ErrMalformedLine) {
			t.Errorf("%q: want ErrMalformedLine, got %v", line, err)
		}
	}
}
