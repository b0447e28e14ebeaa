package reqfreq

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// HTTPClient is the subset of *http.Client that Get needs, so that callers can
// plug in their own.
type HTTPClient interface {
	Do(r *http.Request) (*http.Response, error)
}

// Get returns a pipe containing the body of the response to an HTTP GET
// request for url.
func Get(url string) *Pipe {
	return NewPipe().Get(url)
}

// Get fetches url with the pipe's HTTP client and returns a pipe containing
// the whole response body. Any response status other than 200 OK sets the
// pipe's error status.
func (p *Pipe) Get(url string) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return p.WithError(err)
	}
	client := p.httpClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return p.WithError(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return p.WithError(fmt.Errorf("GET %s: got HTTP status code %d instead of expected %d", url, resp.StatusCode, http.StatusOK))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return p.WithError(err)
	}
	return p.derive(bytes.NewReader(body))
}
