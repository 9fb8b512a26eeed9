package crates

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	liberrors "github.com/matzehuels/libyear/pkg/errors"
	"github.com/matzehuels/libyear/pkg/integrations"
)

// DefaultBaseURL is the crates.io API root.
const DefaultBaseURL = "https://crates.io/api/v1"

// Version is one published version of a crate.
//
// CreatedAt is the publication time reported by crates.io. Yanked versions
// are included; crates.io keeps them in the history.
type Version struct {
	Num       string    // Version string exactly as published (e.g. "1.0.193")
	CreatedAt time.Time // Publication time (UTC)
	Yanked    bool      // Whether the version has been yanked
}

// Client provides access to the crates.io registry API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client. An empty baseURL selects
// [DefaultBaseURL]; userAgent must be non-empty, crates.io rejects
// anonymous requests.
func NewClient(baseURL, userAgent string, opts ...integrations.Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	headers := map[string]string{
		"User-Agent": userAgent,
		"Accept":     "application/json",
	}
	return &Client{
		Client:  integrations.NewClient(headers, opts...),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchVersions retrieves the full version history of a crate.
//
// The order of the returned slice is the registry's and carries no meaning.
// A version whose created_at cannot be parsed is left out.
//
// Returns:
//   - [integrations.ErrNotFound] if the crate doesn't exist
//   - [integrations.ErrNetwork] for transport failures and unexpected statuses
//   - an INVALID_PACKAGE error if name cannot be a crate name
func (c *Client) FetchVersions(ctx context.Context, name string) ([]Version, error) {
	if err := liberrors.ValidatePackageName(name); err != nil {
		return nil, err
	}

	var data crateResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/crates/%s", c.baseURL, url.PathEscape(name)), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: crate %s", err, name)
		}
		return nil, err
	}

	versions := make([]Version, 0, len(data.Versions))
	for _, v := range data.Versions {
		created, err := time.Parse(time.RFC3339, v.CreatedAt)
		if err != nil {
			continue
		}
		versions = append(versions, Version{
			Num:       v.Num,
			CreatedAt: created.UTC(),
			Yanked:    v.Yanked,
		})
	}
	return versions, nil
}

type crateResponse struct {
	Crate struct {
		Name string `json:"name"`
	} `json:"crate"`
	Versions []versionResponse `json:"versions"`
}

type versionResponse struct {
	Num       string `json:"num"`
	CreatedAt string `json:"created_at"`
	Yanked    bool   `json:"yanked"`
}
