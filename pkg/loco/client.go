package loco

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	resty "github.com/go-resty/resty/v2"

	"github.com/simpleloco/simpleloco/pkg/logging"
)

const (
	// DefaultBaseURL is the Loco API host.
	DefaultBaseURL = "https://localise.biz"

	// ExportPath is the single-locale export endpoint; locale and extension are appended.
	ExportPath = "/api/export/locale/"

	// RequestTimeout bounds a single export request.
	RequestTimeout = 60 * time.Second

	authScheme = "Loco"
)

// ErrNoPayload is matched by every FetchError.
var ErrNoPayload = errors.New("no payload")

// FetchError reports a non-200 answer from the export endpoint.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("export request %s failed with status %d", e.URL, e.StatusCode)
}

// Is makes errors.Is(err, ErrNoPayload) true for fetch failures.
func (e *FetchError) Is(target error) bool {
	return target == ErrNoPayload
}

// Client downloads single-locale exports.
type Client struct {
	http    *resty.Client
	baseURL string
	key     string
	logger  *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithLogger sets the logger used for request warnings.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc)
	}
}

// NewClient creates a client authenticating with the given project key.
func NewClient(key string, opts ...ClientOption) *Client {
	c := &Client{
		http:    resty.New(),
		baseURL: DefaultBaseURL,
		key:     key,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http.SetTimeout(RequestTimeout)
	c.http.SetRetryCount(0)
	c.http.SetHeader("Authorization", authScheme+" "+key)

	return c
}

// ExportURL builds the request URL for a locale and extension.
func (c *Client) ExportURL(locale, extension string, params Params) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	u.Path = strings.TrimRight(u.Path, "/") + ExportPath + locale + extension
	u.RawQuery = params.Values().Encode()
	return u.String(), nil
}

// Fetch downloads the export of locale in the format given by extension
// (".xml", ".strings", ...). The payload is returned as UTF-8.
//
// A non-200 answer is logged and returned as a *FetchError.
func (c *Client) Fetch(ctx context.Context, locale, extension string, params Params) ([]byte, error) {
	exportURL, err := c.ExportURL(locale, extension, params)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching export", "locale", locale, "extension", extension)

	resp, err := c.http.R().
		SetContext(ctx).
		Get(exportURL)
	if err != nil {
		return nil, fmt.Errorf("export request %s: %w", exportURL, err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn("URL failed", "url", exportURL, "status", resp.StatusCode())
		return nil, &FetchError{URL: exportURL, StatusCode: resp.StatusCode()}
	}

	body, err := ToUTF8(resp.Body(), resp.Header().Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("export request %s: %w", exportURL, err)
	}
	return body, nil
}
