package sanity

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// contentKind selects the content root of an API path.
type contentKind string

// operationKind selects the operation segment of an API path.
type operationKind string

const (
	contentData   contentKind = "data"
	contentAssets contentKind = "assets"

	operationQuery  operationKind = "query"
	operationMutate operationKind = "mutate"
	operationImages operationKind = "images"
)

// Client talks to the Sanity HTTP API for a single project/dataset.
//
// The client is stateless apart from its read-only configuration and is
// safe to share across goroutines. It never inspects HTTP status codes:
// every completed exchange comes back as a Response, and the caller
// decides what a 4xx or 5xx means.
type Client struct {
	cfg        Config
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Sanity client from the given config.
// An empty project ID or dataset is rejected here rather than surfacing
// later as a DNS failure on a malformed host.
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, ErrMissingProjectID
	}
	if cfg.Dataset == "" {
		return nil, ErrMissingDataset
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		cfg:        cfg,
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// url builds the request URL for one content/operation pair:
// https://{projectID}.api.sanity.io/v{version}/{content}/{operation}/{dataset}
//
// The string is recomputed per call; there is nothing worth caching.
func (c *Client) url(content contentKind, operation operationKind) string {
	version := c.cfg.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}

	base := c.baseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", c.cfg.ProjectID)
	}

	return fmt.Sprintf("%s/v%s/%s/%s/%s", base, version, content, operation, c.cfg.Dataset)
}

// buildHeaders returns the headers shared by every operation.
// The Authorization header is present exactly when an access token is
// configured.
func (c *Client) buildHeaders() http.Header {
	headers := http.Header{}
	if c.cfg.AccessToken != "" {
		headers.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	}

	return headers
}

// do performs one request/response exchange. The response is returned
// raw regardless of status code; only transport-level failures produce
// an error.
func (c *Client) do(ctx context.Context, method, rawURL string, params url.Values, contentType string, body io.Reader) (*Response, error) {
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = c.buildHeaders()
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", rawURL).
		Msg("Making Sanity API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(respBody)).
		Msg("Sanity API response")

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// Fetch runs a GROQ query against the dataset.
//
// The query string is sent as the "query" URL parameter and each
// variable as a "$name" parameter carrying its JSON-encoded value, per
// the Sanity HTTP query API. Iteration order of the variable map does
// not matter; every variable becomes an independent named parameter.
func (c *Client) Fetch(ctx context.Context, query Query) (*Response, error) {
	params := url.Values{}
	params.Set("query", query.Query)

	for name, value := range query.Variables {
		encoded, err := encodeVariable(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode query variable %q: %w", name, err)
		}
		params.Set("$"+name, encoded)
	}

	return c.do(ctx, http.MethodGet, c.url(contentData, operationQuery), params, "", nil)
}

// Mutate submits an ordered batch of mutations in a single atomic
// request. The batch is wrapped in the {"mutations": [...]} envelope
// and posted with the behavior flags from params as URL parameters.
func (c *Client) Mutate(ctx context.Context, mutations Mutations, params MutateParams) (*Response, error) {
	body, err := encodeMutations(mutations)
	if err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodPost, c.url(contentData, operationMutate), params.values(), "application/json", strings.NewReader(body))
}

// UploadAsset uploads one image file to the dataset's asset store.
//
// An unreadable path fails immediately, before any network traffic.
// The call blocks for the duration of the file read and the upload;
// callers on a latency-sensitive path should run it in its own
// goroutine and rely on ctx for cancellation.
func (c *Client) UploadAsset(ctx context.Context, path string) (*Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", path, err)
	}
	defer f.Close()

	return c.UploadAssetReader(ctx, f, assetContentType(path))
}

// UploadAssetReader uploads asset bytes from r. It exists for callers
// that already hold the data in memory or stream it from somewhere
// other than the filesystem. contentType may be empty.
func (c *Client) UploadAssetReader(ctx context.Context, r io.Reader, contentType string) (*Response, error) {
	return c.do(ctx, http.MethodPost, c.url(contentAssets, operationImages), nil, contentType, r)
}

// assetContentType guesses a Content-Type from the file extension.
func assetContentType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}

	return "application/octet-stream"
}

// defaultTimeout bounds a single exchange when no custom http.Client
// is supplied.
const defaultTimeout = 30 * time.Second
