package reqfreq

import (
	"bufio"
	"io"
	"log/slog"
	"math"
	"net/http"
	"os"
	"regexp"
	"strconv"
)

// Pipe carries log text from a source, through filters, to a sink. If any
// operation fails, the pipe's error status is set, later filters become
// no-ops, and sinks return the error.
type Pipe struct {
	Reader      ReadAutoCloser
	err         error
	stdout      io.Writer
	policy      Policy
	logger      *slog.Logger
	fingerprint FingerprintFunc
	httpClient  HTTPClient
}

// NewPipe returns a pointer to a new empty pipe, writing to os.Stdout, with
// the Abort policy and a logger that discards everything.
func NewPipe() *Pipe {
	return &Pipe{
		Reader:      ReadAutoCloser{},
		stdout:      os.Stdout,
		policy:      Abort,
		logger:      discardLogger,
		fingerprint: Fingerprint,
		httpClient:  http.DefaultClient,
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// log returns the pipe's logger, which is never nil.
func (p *Pipe) log() *slog.Logger {
	if p.logger == nil {
		return discardLogger
	}
	return p.logger
}

// derive returns a new pipe reading from r, with the same settings as p.
func (p *Pipe) derive(r io.Reader) *Pipe {
	q := *p
	q.err = nil
	q.Reader = NewReadAutoCloser(r)
	return &q
}

// Close closes the pipe's associated reader. This is always safe to do.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the last error returned by any pipe operation, or nil otherwise.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

var exitStatusPattern = regexp.MustCompile(`exit status (\d+)$`)

// ExitStatus returns the integer exit status of a previous Exec, if the pipe's
// error status is set and matches the pattern "exit status %d". Otherwise, it
// returns zero.
func (p *Pipe) ExitStatus() int {
	if p.Error() == nil {
		return 0
	}
	match := exitStatusPattern.FindStringSubmatch(p.Error().Error())
	if len(match) < 2 {
		return 0
	}
	status, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return status
}

// Read reads up to len(b) bytes from the pipe into b. At end of input, or on a
// nil pipe, Read returns 0, io.EOF.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(b)
}

// SetError sets the pipe's error status to the specified error. A non-nil
// error also closes the pipe's reader.
func (p *Pipe) SetError(err error) {
	if p != nil {
		if err != nil {
			p.Close()
		}
		p.err = err
	}
}

// WithError sets the pipe's error status to the specified error and returns the
// modified pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}

// WithReader associates the pipe with r. If necessary, the reader will be
// closed automatically once it has been completely read.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithStdout sets the writer that Stdout writes to, instead of the default
// os.Stdout. This is primarily useful for testing.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}

// WithPolicy sets what the pipe does with lines that cannot be parsed.
func (p *Pipe) WithPolicy(policy Policy) *Pipe {
	if p == nil {
		return nil
	}
	p.policy = policy
	return p
}

// WithLogger sets the logger that traces parsing. Each parsed line is logged at
// debug level, and each skipped line at warn level.
func (p *Pipe) WithLogger(logger *slog.Logger) *Pipe {
	if p == nil {
		return nil
	}
	p.logger = logger
	return p
}

// WithFingerprint sets the fingerprint function used during aggregation.
func (p *Pipe) WithFingerprint(fp FingerprintFunc) *Pipe {
	if p == nil {
		return nil
	}
	p.fingerprint = fp
	return p
}

// WithHTTPClient sets the client used by Get.
func (p *Pipe) WithHTTPClient(c HTTPClient) *Pipe {
	if p == nil {
		return nil
	}
	p.httpClient = c
	return p
}

// newScanner returns a line scanner over r that accepts lines of any length.
func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), math.MaxInt)
	return scanner
}
