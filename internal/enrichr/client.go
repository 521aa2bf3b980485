// Package enrichr downloads gene-set libraries from the Enrichr
// geneSetLibrary endpoint into a local data directory.
//
// Downloads are skipped for libraries whose .gmt file already exists and is
// non-empty, so a fetch over an existing data directory only fills gaps.
// Files are written via a temporary .part file and renamed into place, so an
// interrupted download never leaves a truncated .gmt behind.
package enrichr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"oracheck/internal/progress"
)

// DefaultTimeout bounds one library download. The larger libraries run to
// tens of megabytes and the upstream server can be slow.
const DefaultTimeout = 400 * time.Second

// Client fetches gene-set libraries over HTTP.
type Client struct {
	// BaseURL is the Enrichr service root, without a trailing slash.
	BaseURL string
	// HTTPClient is used for all requests.
	HTTPClient *http.Client
}

// New returns a client for the given service root.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Result contains the outcome of a fetch operation.
type Result struct {
	Fetched int      `json:"fetched"` // number of libraries downloaded
	Skipped int      `json:"skipped"` // number already present
	Paths   []string `json:"paths"`   // .gmt paths, fetched or present
}

// Fetch downloads a single library and writes it to destPath.
func (c *Client) Fetch(ctx context.Context, library, destPath string) error {
	u := fmt.Sprintf("%s/geneSetLibrary?mode=text&libraryName=%s",
		c.BaseURL, url.QueryEscape(library))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", library, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", library, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requesting %s: unexpected status %s", library, resp.Status)
	}

	tmp := destPath + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("downloading %s: %w", library, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", tmp, err)
	}

	return os.Rename(tmp, destPath)
}

// FetchMissing downloads every library whose .gmt file is absent (or empty)
// in dir, creating dir as needed. Progress goes to stderr; per-library
// outcomes are written to w. The first failed download aborts the run.
func (c *Client) FetchMissing(ctx context.Context, w io.Writer, libraries []string, dir string) (Result, error) {
	var result Result

	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, fmt.Errorf("creating data dir %s: %w", dir, err)
	}

	prog := progress.New("Fetching libraries", len(libraries))
	defer prog.Done()

	for _, lib := range libraries {
		dest := filepath.Join(dir, lib+".gmt")
		result.Paths = append(result.Paths, dest)

		if Present(dir, lib) {
			fmt.Fprintf(w, "Skipped: %s (already present)\n", lib)
			result.Skipped++
			prog.Increment()
			prog.Print()
			continue
		}

		if err := c.Fetch(ctx, lib, dest); err != nil {
			return result, err
		}

		fmt.Fprintf(w, "Fetched: %s -> %s\n", lib, dest)
		result.Fetched++
		prog.Increment()
		prog.Print()
	}

	return result, nil
}

// Present reports whether the library's .gmt file exists in dir and is
// non-empty.
func Present(dir, library string) bool {
	info, err := os.Stat(filepath.Join(dir, library+".gmt"))
	return err == nil && info.Size() > 0
}
