package kube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher is the resource-fetching boundary the rest of the application
// depends on. Implemented by *Client; tests substitute fakes.
type Fetcher interface {
	FetchWorkloads(ctx context.Context) ([]Workload, error)
	FetchEvents(ctx context.Context, namespace string) ([]Event, error)
	FetchNamespaces(ctx context.Context) ([]string, error)
}

var _ Fetcher = (*Client)(nil)

// Client talks to the kview backend HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:8591"
	defaultUserAgent = "kview/0.1"
	requestTimeout   = 5 * time.Second

	// listLimit caps list responses so every screen's filter/sort pass
	// stays cheap enough to rerun per keystroke. The backend enforces
	// the same ceiling.
	listLimit = 2000
)

// NewClient builds a Client for the given apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchWorkloads retrieves the workload rows for the cluster, capped at
// listLimit items.
func (c *Client) FetchWorkloads(ctx context.Context) ([]Workload, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(listLimit))
	rel := &url.URL{Path: "/api/v1/workloads", RawQuery: values.Encode()}
	var payload WorkloadListResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// FetchEvents retrieves cluster events, optionally scoped to a
// namespace, capped at listLimit items.
func (c *Client) FetchEvents(ctx context.Context, namespace string) ([]Event, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(listLimit))
	if ns := strings.TrimSpace(namespace); ns != "" {
		values.Set("namespace", ns)
	}
	rel := &url.URL{Path: "/api/v1/events", RawQuery: values.Encode()}
	var payload EventListResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// FetchNamespaces retrieves the namespace names in the cluster.
func (c *Client) FetchNamespaces(ctx context.Context) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload NamespaceListResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/namespaces", &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
