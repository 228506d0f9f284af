// Package gateway implements the HTTP client for the remote product API.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vnhistore/seo-edge/internal/telemetry"
)

// ErrNotFound reports that the gateway has no record for the requested id.
var ErrNotFound = errors.New("gateway: not found")

// Config controls client behavior.
type Config struct {
	// Origin is the gateway base URL, e.g. "https://api.vnhi.store".
	Origin string
	// Timeout bounds every call. Each call is attempted exactly once.
	Timeout time.Duration
	// BypassHeader/BypassValue are attached to every request when set,
	// to satisfy the tunneling proxy in front of the gateway.
	BypassHeader string
	BypassValue  string
}

// Client talks to the product gateway. Safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
}

// envelope is the gateway's JSON response wrapper.
type envelope struct {
	Code   int             `json:"code"`
	Result json.RawMessage `json:"result"`
}

// New builds a Client with a pooled transport.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 4 * time.Second
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: newHTTPTransport(),
		},
	}
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id string) (Product, error) {
	var p Product
	err := c.getJSON(ctx, "product", "/api/products/"+url.PathEscape(id), &p)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

// Products fetches one page of the full catalog listing.
func (c *Client) Products(ctx context.Context, page, size int) ([]Product, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	var out []Product
	if err := c.getJSON(ctx, "products", "/api/product/getAll?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories fetches all catalog categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.getJSON(ctx, "categories", "/api/category/getAllCategories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, result any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Origin+path, nil)
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.BypassHeader != "" {
		req.Header.Set(c.cfg.BypassHeader, c.cfg.BypassValue)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		telemetry.ObserveGatewayRequest(endpoint, 0)
		return fmt.Errorf("gateway %s: %w", endpoint, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	telemetry.ObserveGatewayRequest(endpoint, resp.StatusCode)
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway %s: unexpected status %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return fmt.Errorf("read gateway response: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode gateway envelope: %w", err)
	}
	if len(env.Result) == 0 {
		return fmt.Errorf("gateway %s: empty result", endpoint)
	}
	if err := json.Unmarshal(env.Result, result); err != nil {
		return fmt.Errorf("decode gateway result: %w", err)
	}
	return nil
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
}
