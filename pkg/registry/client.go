// Package registry queries the npm registry search API for generator packages.
package registry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glorpus-work/genhub/pkg/errors"
	"github.com/glorpus-work/genhub/pkg/model"
	"github.com/go-resty/resty/v2"
)

// DefaultURL is the public npm registry.
const DefaultURL = "https://registry.npmjs.com"

const (
	searchPath   = "/-/v1/search?text="
	searchFilter = "%20keywords:yeoman-generator%20&size=25&ranking=popularity"
)

// Client searches the registry.
type Client struct {
	baseURL string
	resty   *resty.Client
}

// New creates a registry client for baseURL. A zero timeout means requests never
// time out.
func New(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultURL
	}

	r := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "genhub/1.0")
	if timeout > 0 {
		r.SetTimeout(timeout)
	}

	return &Client{baseURL: baseURL, resty: r}
}

// BaseURL returns the registry the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// QueryURL builds the search URL for a free-text query and an author or
// recommended tag. Spaces become %20; nothing else is escaped.
func (c *Client) QueryURL(query, tag string) string {
	text := strings.ReplaceAll(query+" "+tag, " ", "%20")
	return c.baseURL + searchPath + text + searchFilter
}

// Search fetches and decodes the search results at url.
func (c *Client) Search(ctx context.Context, url string) (*model.SearchResponse, error) {
	var out model.SearchResponse
	resp, err := c.resty.R().
		SetContext(ctx).
		ForceContentType("application/json").
		SetResult(&out).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrRegistrySearch, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: unexpected status code: %d", errors.ErrRegistrySearch, resp.StatusCode())
	}
	if out.Objects == nil {
		out.Objects = []model.GeneratorInfo{}
	}
	return &out, nil
}
