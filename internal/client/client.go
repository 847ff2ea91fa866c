package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"risecli/internal/config"
	"risecli/internal/files"
)

// DefaultChunkSize is the download chunk size used when the configuration
// does not provide one.
const DefaultChunkSize = 8192

// ProgressFunc is invoked after every downloaded chunk with the bytes
// received so far and the expected total (0 when the server does not send
// Content-Length).
type ProgressFunc func(received, total int64)

// Client talks to the RISE dataset API
type Client struct {
	baseURL    string
	httpClient *http.Client
	chunkSize  int
	logger     *slog.Logger
}

// listResponse is the body of GET /list
type listResponse struct {
	Files []string `json:"files"`
}

// New creates a dataset API client from the given configuration.
func New(cfg config.APIConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		chunkSize:  chunkSize,
		logger:     logger,
	}
}

// ListDatasets returns the names of the datasets available on the server.
func (c *Client) ListDatasets(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/list", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch dataset list: status %d", resp.StatusCode)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode dataset list: %w", err)
	}

	c.logger.Debug("Dataset list fetched", slog.Int("count", len(body.Files)))
	return body.Files, nil
}

// DownloadDataset downloads the dataset with the given id into destDir,
// extracts the archive there and removes the zip. It returns the extracted
// file paths. progress may be nil.
func (c *Client) DownloadDataset(ctx context.Context, id, destDir string, progress ProgressFunc) ([]string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/download/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download dataset %s: status %d", id, resp.StatusCode)
	}

	name := datasetFilename(resp.Header.Get("Content-Disposition"))
	zipPath := filepath.Join(destDir, name)

	c.logger.Info("Downloading dataset",
		slog.String("dataset_id", id),
		slog.String("file", name),
		slog.Int64("total_bytes", resp.ContentLength))

	if err := c.streamToFile(resp.Body, zipPath, resp.ContentLength, progress); err != nil {
		return nil, err
	}

	extracted, err := files.ExtractAndRemove(zipPath, destDir)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Dataset ready",
		slog.String("dataset_id", id),
		slog.String("dest", destDir),
		slog.Int("files", len(extracted)))

	return extracted, nil
}

// streamToFile copies the response body to disk in fixed-size chunks,
// reporting progress after each one.
func (c *Client) streamToFile(body io.Reader, path string, total int64, progress ProgressFunc) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	buf := make([]byte, c.chunkSize)
	var received int64
	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := file.Write(buf[:n]); werr != nil {
				return fmt.Errorf("failed to write %s: %w", path, werr)
			}
			received += int64(n)
			if progress != nil {
				progress(received, max(total, 0))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("download interrupted: %w", err)
		}
	}

	return file.Sync()
}

// datasetFilename extracts the filename from a Content-Disposition header,
// falling back to dataset.zip.
func datasetFilename(disposition string) string {
	const fallback = "dataset.zip"
	if disposition == "" {
		return fallback
	}

	if _, params, err := mime.ParseMediaType(disposition); err == nil {
		if name := filepath.Base(params["filename"]); name != "." && name != string(os.PathSeparator) && name != "" {
			return name
		}
	}
	return fallback
}
