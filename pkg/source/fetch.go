// Package source reads organization documents from a local path or an http(s) URL.
package source

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Timeout bounds a URL fetch.
const Timeout = 30 * time.Second

// MaxBytes caps how much of a remote document is read.
const MaxBytes = 10 << 20

// Fetch returns the contents of input, which is either a file path or an http(s) URL.
func Fetch(ctx context.Context, input string) (data []byte, err error) {
	if IsURL(input) {
		data, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch document from URL: %s", input)
			return data, err
		}
		return data, err
	}

	data, err = fetchFromFile(input)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch document from file: %s", input)
		return data, err
	}

	return data, err
}

// IsURL reports whether input names an http or https resource.
func IsURL(input string) (ok bool) {
	parsed, err := url.Parse(input)
	ok = err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https")
	return ok
}

func fetchFromFile(path string) (data []byte, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return data, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		err = errors.New("file is empty")
		return data, err
	}

	return data, err
}

func fetchFromURL(ctx context.Context, urlStr string) (data []byte, err error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, err
	}

	req.Header.Set("User-Agent", "jd-agent/1.0")
	req.Header.Set("Accept", "application/json, application/yaml, text/yaml, text/plain")

	var resp *http.Response
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return data, err
	}

	data, err = io.ReadAll(io.LimitReader(resp.Body, MaxBytes))
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		err = errors.New("fetched document is empty")
		return data, err
	}

	return data, err
}
