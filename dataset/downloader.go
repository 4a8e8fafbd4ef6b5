// dataset/downloader.go
package dataset

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/goto/salt/log"
)

// DefaultDownloadTimeout bounds a single file download.
const DefaultDownloadTimeout = 30 * time.Second

// Downloader fetches tabular data files over HTTP.
type Downloader struct {
	client *http.Client
	logger log.Logger
}

// Download describes a completed download.
type Download struct {
	URL       string
	LocalPath string
	Bytes     int64
	SHA256    string
}

// NewDownloader returns a Downloader. A nil client gets one with
// DefaultDownloadTimeout.
func NewDownloader(client *http.Client, logger log.Logger) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: DefaultDownloadTimeout}
	}
	return &Downloader{client: client, logger: logger}
}

// DownloadFile downloads url to localSavePath, creating parent directories.
// The file is written to a temporary sibling first and renamed on success,
// so a failed download never truncates an existing copy.
func (d *Downloader) DownloadFile(ctx context.Context, url, localSavePath string) (*Download, error) {
	if url == "" {
		return nil, fmt.Errorf("download url is not configured")
	}
	if localSavePath == "" {
		return nil, fmt.Errorf("local save path for %s is not configured", url)
	}
	d.logger.Info("downloading file", "url", url, "path", localSavePath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download file from %s: received status code %d", url, resp.StatusCode)
	}

	dir := filepath.Dir(localSavePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(localSavePath)+".*.part")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(tmp, h), resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to copy downloaded content to %s: %w", localSavePath, err)
	}
	if err := os.Rename(tmp.Name(), localSavePath); err != nil {
		return nil, fmt.Errorf("failed to move download into %s: %w", localSavePath, err)
	}

	d.logger.Info("downloaded file", "url", url, "path", localSavePath, "bytes", n)
	return &Download{URL: url, LocalPath: localSavePath, Bytes: n, SHA256: hex.EncodeToString(h.Sum(nil))}, nil
}
