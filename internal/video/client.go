package video

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/provider/resilience"
)

// DirectoryName identifies the external demo-video directory dependency.
const DirectoryName = "video-directory"

// DirectoryClientConfig holds configuration for the directory client.
type DirectoryClientConfig struct {
	// BaseURL is the directory base URL (required).
	BaseURL string

	// APIKey authorizes directory requests (optional).
	APIKey string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Registry records call outcomes for health reporting (optional).
	Registry *resilience.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// DirectoryClient fetches curated demonstration links from an external
// directory service. Failures are non-fatal to recommendation serving:
// callers keep the previous library and Resolve falls back to search
// URLs.
type DirectoryClient struct {
	baseURL    string
	apiKey     string
	httpClient *resilience.Client
	registry   *resilience.Registry
	logger     zerolog.Logger
}

// NewDirectoryClient creates a directory client.
func NewDirectoryClient(cfg DirectoryClientConfig) *DirectoryClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.ClientConfig{Name: DirectoryName})
	}
	if cfg.Registry != nil {
		cfg.Registry.Register(DirectoryName, httpClient)
	}

	return &DirectoryClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		registry:   cfg.Registry,
		logger:     cfg.Logger,
	}
}

type directoryResponse struct {
	Videos []directoryEntry `json:"videos"`
}

type directoryEntry struct {
	Activity string `json:"activity"`
	URL      string `json:"url"`
}

// FetchRefs retrieves the full set of curated links from the directory.
func (c *DirectoryClient) FetchRefs(ctx context.Context) ([]catalog.VideoRef, error) {
	url := c.baseURL + "/v1/videos"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordFailure(err)
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		c.recordFailure(err)
		return nil, err
	}

	var dir directoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&dir); err != nil {
		c.recordFailure(err)
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	refs := make([]catalog.VideoRef, 0, len(dir.Videos))
	for _, entry := range dir.Videos {
		refs = append(refs, catalog.VideoRef{Activity: entry.Activity, URL: entry.URL})
	}

	if c.registry != nil {
		c.registry.RecordSuccess(DirectoryName)
	}
	c.logger.Debug().Int("count", len(refs)).Msg("fetched video directory")
	return refs, nil
}

func (c *DirectoryClient) recordFailure(err error) {
	if c.registry != nil {
		c.registry.RecordFailure(DirectoryName, err)
	}
	c.logger.Warn().Err(err).Msg("video directory fetch failed")
}
