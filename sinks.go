package reqfreq

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// String returns the contents of the pipe as a string, or an error, and closes
// the pipe after reading. If there is an error reading, the pipe's error status
// is also set.
func (p *Pipe) String() (string, error) {
	data, err := p.Bytes()
	return string(data), err
}

// Bytes returns the contents of the pipe as a []byte, or an error, and closes
// the pipe after reading. If there is an error reading, the pipe's error status
// is also set.
func (p *Pipe) Bytes() ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	if p.Error() != nil {
		return nil, p.Error()
	}
	defer p.Close()
	data, err := io.ReadAll(p.Reader)
	if err != nil {
		p.SetError(err)
		return nil, err
	}
	return data, nil
}

// Stdout copies the contents of the pipe to its configured standard output
// (os.Stdout unless changed with WithStdout). It returns the number of bytes
// written, or an error.
func (p *Pipe) Stdout() (int, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	w := p.stdout
	if w == nil {
		w = os.Stdout
	}
	n, err := io.Copy(w, p.Reader)
	if err != nil {
		p.SetError(err)
		return int(n), err
	}
	return int(n), nil
}

// WriteFile writes the contents of the pipe to the named file, creating or
// truncating it, and returns the number of bytes written, or an error.
func (p *Pipe) WriteFile(name string) (int64, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	out, err := os.Create(name)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	defer out.Close()
	wrote, err := io.Copy(out, p.Reader)
	if err != nil {
		p.SetError(err)
		return wrote, err
	}
	return wrote, nil
}

// Records parses every line in the pipe into a Record, in input order, and
// closes the pipe. Blank lines are ignored. What happens to a line that can't
// be parsed depends on the pipe's Policy: with Abort, Records returns a
// *LineError and sets the pipe's error status; with Skip, the line is logged
// and left out.
func (p *Pipe) Records() ([]Record, error) {
	if p == nil {
		return nil, nil
	}
	if p.Error() != nil {
		return nil, p.Error()
	}
	defer p.Close()
	var records []Record
	scanner := newScanner(p.Reader)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimLeft(line, " ") == "" {
			continue
		}
		r, err := p.parse(line)
		if err != nil {
			if p.policy == Skip {
				p.log().Warn("skipping line", "line", n, "text", line, "error", err)
				continue
			}
			lerr := &LineError{Line: n, Text: line, Err: err}
			p.SetError(lerr)
			return nil, lerr
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		p.SetError(err)
		return nil, err
	}
	return records, nil
}

func (p *Pipe) parse(line string) (Record, error) {
	f, err := Tokenize(line)
	if err != nil {
		return Record{}, err
	}
	r, err := NewRecord(f)
	if err != nil {
		return Record{}, err
	}
	if logger := p.log(); logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("parsed line",
			"time1", f.Time1,
			"time2", f.Time2,
			"method", f.Method,
			"endpoint", f.Endpoint,
			"normalized", r.Endpoint,
			"status", r.Status,
			"client", f.Client,
		)
	}
	return r, nil
}

// Classes reads every log line in the pipe, groups the lines into equivalence
// classes by method, normalized endpoint and status, and returns one Record
// per class, most frequent first.
func (p *Pipe) Classes() ([]Record, error) {
	if p == nil {
		return nil, nil
	}
	records, err := p.Records()
	if err != nil {
		return nil, err
	}
	agg := Aggregator{Fingerprint: p.fingerprint}
	return Rank(agg.Aggregate(records)), nil
}
