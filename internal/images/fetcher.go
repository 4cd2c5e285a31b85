package images

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Responses smaller than this are not real product photos; vendor CDNs
// serve a tiny HTML error page for missing assets.
const minPhotoBytes = 1000

// Fetcher retrieves vendor product photos over HTTP
type Fetcher struct {
	HTTPClient *http.Client
}

// NewFetcher creates a new photo fetcher
func NewFetcher() *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Download fetches a photo from a URL to a file
func (f *Fetcher) Download(url, outputPath string) error {
	resp, err := f.HTTPClient.Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image URL returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read image data: %w", err)
	}

	if len(imageData) < minPhotoBytes {
		return fmt.Errorf("image too small (likely placeholder), size: %d bytes", len(imageData))
	}

	if err := os.WriteFile(outputPath, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}

	return nil
}
