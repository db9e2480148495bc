// Package backend talks to the pet market analysis server.
package backend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"pet_market/internal/domain"
	"pet_market/internal/domain/entity"
	"pet_market/internal/domain/value"
	"pet_market/pkg/contextx"
	"pet_market/pkg/errcodes"
	"pet_market/pkg/lox"
	"pet_market/pkg/logx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

const (
	DefaultAnalyzePath = "/analyze"
	DefaultSearchPath  = "/search"
	DefaultStatusPath  = "/test_timer"

	errorBodyLimit = 512
)

type Client struct {
	baseURL     string
	httpClient  *http.Client
	analyzePath string
	searchPath  string
	statusPath  string
	location    *time.Location
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithPaths overrides endpoint paths; empty values keep the defaults.
func WithPaths(analyze, search, status string) Option {
	return func(c *Client) {
		if analyze != "" {
			c.analyzePath = analyze
		}

		if search != "" {
			c.searchPath = search
		}

		if status != "" {
			c.statusPath = status
		}
	}
}

// WithLocation sets the zone for timestamps the server sends without one.
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		c.location = loc
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  http.DefaultClient,
		analyzePath: DefaultAnalyzePath,
		searchPath:  DefaultSearchPath,
		statusPath:  DefaultStatusPath,
		location:    time.Local,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Analyze asks for the full ranked list for a skill.
func (c *Client) Analyze(ctx context.Context, skill value.Skill) ([]entity.Item, error) {
	form := url.Values{}
	form.Set("skill", skill.String())

	items, err := c.postItems(ctx, c.analyzePath, form)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.FetchFailed, "analyze")
	}

	return items, nil
}

// Search asks for items whose name matches term.
func (c *Client) Search(ctx context.Context, term string, skill value.Skill) ([]entity.Item, error) {
	form := url.Values{}
	form.Set("search_term", term)
	form.Set("skill", skill.String())

	items, err := c.postItems(ctx, c.searchPath, form)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.FetchFailed, "search")
	}

	return items, nil
}

// Status reports when the server refreshed its data and when it will next.
func (c *Client) Status(ctx context.Context) (entity.Status, error) {
	var schema statusSchema

	if err := c.do(ctx, http.MethodGet, c.statusPath, nil, &schema); err != nil {
		return entity.Status{}, domain.WrapError(err, errcodes.FetchFailed, "status")
	}

	status, err := schema.toDomain(c.location)
	if err != nil {
		return entity.Status{}, domain.WrapError(err, errcodes.FetchFailed, "status")
	}

	return status, nil
}

func (c *Client) postItems(ctx context.Context, path string, form url.Values) ([]entity.Item, error) {
	var schemas []itemSchema

	if err := c.do(ctx, http.MethodPost, path, form, &schemas); err != nil {
		return nil, err
	}

	items := lox.Map(schemas, itemSchema.toDomain)

	logger(ctx).DebugContext(ctx, "items fetched",
		slog.String(logx.FieldURL, path), slog.Int(logx.FieldCount, len(items)))

	return items, nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, dest any) error {
	body := io.Reader(http.NoBody)
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
