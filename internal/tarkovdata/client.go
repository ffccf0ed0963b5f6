package tarkovdata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/sync/singleflight"
)

const mapsURL = "https://raw.githubusercontent.com/the-hideout/tarkov-data/main/maps.json"

// Client downloads fresh tarkovdata files from GitHub.
type Client struct {
	hc  *retryablehttp.Client
	sfg *singleflight.Group
	url string
}

// NewClient returns a new Client.
// When rhc is nil a default retrying client is used.
func NewClient(rhc *retryablehttp.Client) *Client {
	if rhc == nil {
		rhc = retryablehttp.NewClient()
		rhc.Logger = slog.Default()
	}
	c := &Client{
		hc:  rhc,
		sfg: new(singleflight.Group),
		url: mapsURL,
	}
	return c
}

// UpdateMaps downloads the current maps file into dir and returns its path.
// Concurrent calls for the same directory are collapsed into one download.
func (c *Client) UpdateMaps(ctx context.Context, dir string) (string, error) {
	v, err, _ := c.sfg.Do(dir, func() (any, error) {
		return c.updateMaps(ctx, dir)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) updateMaps(ctx context.Context, dir string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", err
	}
	r, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("download tarkovdata maps: %w", err)
	}
	defer r.Body.Close()
	if r.StatusCode >= 400 {
		return "", fmt.Errorf("download tarkovdata maps: %s", r.Status)
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("download tarkovdata maps: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	p := filepath.Join(dir, mapsFileName)
	// write to a temp file first so a failed download never clobbers good data
	tmp, err := os.CreateTemp(dir, mapsFileName+".*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return "", err
	}
	slog.Info("Updated tarkovdata maps", "path", p, "bytes", len(data))
	return p, nil
}
