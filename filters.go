package reqfreq

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/itchyny/gojq"
)

// EachLine calls process for each line of input, passing it the line and a
// *strings.Builder to write its output to. The return value is a pipe
// containing the contents of the builder.
func (p *Pipe) EachLine(process func(string, *strings.Builder)) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	defer p.Close()
	scanner := newScanner(p.Reader)
	output := strings.Builder{}
	for scanner.Scan() {
		process(scanner.Text(), &output)
	}
	if err := scanner.Err(); err != nil {
		return p.WithError(err)
	}
	return p.derive(strings.NewReader(output.String()))
}

// Match returns a pipe containing only the input lines which contain s.
func (p *Pipe) Match(s string) *Pipe {
	return p.EachLine(func(line string, out *strings.Builder) {
		if strings.Contains(line, s) {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	})
}

// MatchRegexp returns a pipe containing only the input lines which match re.
func (p *Pipe) MatchRegexp(re *regexp.Regexp) *Pipe {
	return p.EachLine(func(line string, out *strings.Builder) {
		if re.MatchString(line) {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	})
}

// Reject returns a pipe containing only the input lines which do not contain s.
func (p *Pipe) Reject(s string) *Pipe {
	return p.EachLine(func(line string, out *strings.Builder) {
		if !strings.Contains(line, s) {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	})
}

// RejectRegexp returns a pipe containing only the input lines which don't
// match re.
func (p *Pipe) RejectRegexp(re *regexp.Regexp) *Pipe {
	return p.EachLine(func(line string, out *strings.Builder) {
		if !re.MatchString(line) {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	})
}

// First returns a pipe containing only the first n lines of input. Applied to
// a report, it keeps the n most frequent kinds of request.
func (p *Pipe) First(n int) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	defer p.Close()
	scanner := newScanner(p.Reader)
	output := strings.Builder{}
	for i := 0; i < n && scanner.Scan(); i++ {
		output.WriteString(scanner.Text())
		output.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return p.WithError(err)
	}
	return p.derive(strings.NewReader(output.String()))
}

// JQ reads a stream of JSON values from the pipe, runs the jq query on each,
// and returns a pipe containing one line per result. String results are
// written as they are; anything else is written as JSON. This turns JSON
// access logs into lines that Report can read, for example:
//
//	p.JQ(`"\(.time) - \(.method) \(.path) \(.status) \(.client)"`)
//
// If the query is invalid, or the input is not JSON, the pipe's error status is
// set.
func (p *Pipe) JQ(query string) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	q, err := gojq.Parse(query)
	if err != nil {
		return p.WithError(fmt.Errorf("parsing jq query: %w", err))
	}
	defer p.Close()
	dec := json.NewDecoder(p.Reader)
	output := strings.Builder{}
	for {
		var input interface{}
		err := dec.Decode(&input)
		if err == io.EOF {
			break
		}
		if err != nil {
			return p.WithError(err)
		}
		iter := q.Run(input)
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, ok := v.(error); ok {
				return p.WithError(err)
			}
			if s, ok := v.(string); ok {
				output.WriteString(s)
			} else {
				result, err := json.Marshal(v)
				if err != nil {
					return p.WithError(err)
				}
				output.Write(result)
			}
			output.WriteByte('\n')
		}
	}
	return p.derive(strings.NewReader(output.String()))
}

// Report reads log lines from the pipe and returns a pipe containing the
// frequency report: one line per kind of request, most frequent first, in the
// form
//
//	method endpoint status count
//
// Unparseable lines are handled according to the pipe's Policy.
func (p *Pipe) Report() *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	classes, err := p.Classes()
	if err != nil {
		return p
	}
	output := strings.Builder{}
	for _, r := range classes {
		output.WriteString(r.String())
		output.WriteByte('\n')
	}
	return p.derive(strings.NewReader(output.String()))
}
