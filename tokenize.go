package reqfreq

import (
	"fmt"
	"strings"
)

// Fields holds the six positional fields of one log line. Each field is a
// substring of the line it was taken from.
type Fields struct {
	Time1    string
	Time2    string
	Method   string
	Endpoint string
	Status   string
	Client   string
}

// Tokenize splits line into its six fields. Fields are maximal runs of
// non-space characters separated by one or more spaces, and leading spaces are
// skipped. The last field, Client, is everything from its first non-space
// character to the end of the line, and is never split further. If fewer than
// six fields are present, Tokenize returns an error wrapping ErrMalformedLine.
func Tokenize(line string) (Fields, error) {
	var f Fields
	rest := line
	for _, field := range []*string{&f.Time1, &f.Time2, &f.Method, &f.Endpoint, &f.Status} {
		rest = strings.TrimLeft(rest, " ")
		end := strings.IndexByte(rest, ' ')
		if end < 0 {
			return Fields{}, malformed(line)
		}
		*field, rest = rest[:end], rest[end:]
	}
	f.Client = strings.TrimLeft(rest, " ")
	if f.Client == "" {
		return Fields{}, malformed(line)
	}
	return f, nil
}

func malformed(line string) error {
	n := len(strings.FieldsFunc(line, func(r rune) bool { return r == ' ' }))
	return fmt.Errorf("%w: want 6 fields, got %d", ErrMalformedLine, n)
}
