package youtube

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"shortsapi/util"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	innertubeBase = "https://www.youtube.com/youtubei/v1"
	mwebUserAgent = "Mozilla/5.0 (Mobile; rv:48.0) Gecko/48.0 Firefox/48.0 KAIOS/2.5.4"
	clientName    = "MWEB"
	clientVersion = "2.20251021.01.00"

	trendingBrowseID = "FEtrending"

	maxResponseBytes = 32 << 20
)

// Client talks to the InnerTube API for a single region. All methods
// return tree-shaped, weakly-typed payloads; callers address them
// through candidate paths rather than typed structs.
type Client struct {
	region     string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(region string, apiKey string) *Client {
	return &Client{
		region:     strings.ToUpper(strings.TrimSpace(region)),
		apiKey:     apiKey,
		httpClient: util.GetHTTPSession(),
		// keeps burst traffic from tripping upstream abuse heuristics
		limiter: rate.NewLimiter(rate.Limit(4), 8),
	}
}

func (c *Client) Region() string {
	return c.region
}

// Trending fetches the trending browse surface.
func (c *Client) Trending(ctx context.Context) (*TrendingPage, error) {
	body, err := c.browse(ctx, trendingBrowseID, "")
	if err != nil {
		return nil, err
	}
	return &TrendingPage{client: c, body: body}, nil
}

// Search issues a platform search for the query.
func (c *Client) Search(ctx context.Context, query string) (*SearchPage, error) {
	return c.search(ctx, query, "")
}

func (c *Client) search(ctx context.Context, query string, params string) (*SearchPage, error) {
	body := map[string]any{
		"context": c.clientContext(),
		"query":   query,
	}
	if params != "" {
		body["params"] = params
	}
	data, err := c.call(ctx, "search", body)
	if err != nil {
		return nil, err
	}
	return &SearchPage{client: c, query: query, body: data}, nil
}

func (c *Client) browse(ctx context.Context, browseID string, params string) (gjson.Result, error) {
	body := map[string]any{
		"context":  c.clientContext(),
		"browseId": browseID,
	}
	if params != "" {
		body["params"] = params
	}
	return c.call(ctx, "browse", body)
}

func (c *Client) continuation(ctx context.Context, token string) (gjson.Result, error) {
	body := map[string]any{
		"context":      c.clientContext(),
		"continuation": token,
	}
	return c.call(ctx, "browse", body)
}

func (c *Client) clientContext() map[string]any {
	return map[string]any{
		"client": map[string]any{
			"hl":            "en",
			"gl":            c.region,
			"clientName":    clientName,
			"clientVersion": clientVersion,
		},
	}
}

func (c *Client) call(ctx context.Context, endpoint string, body map[string]any) (gjson.Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return gjson.Result{}, err
	}
	payload, err := sonic.Marshal(body)
	if err != nil {
		return gjson.Result{}, errors.Wrap(err, "failed to encode request")
	}

	reqURL := fmt.Sprintf("%s/%s?key=%s", innertubeBase, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return gjson.Result{}, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", mwebUserAgent)

	zap.S().Debugf("innertube %s call for region %s", endpoint, c.region)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(err, "%s request failed", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, errors.Wrapf(util.ErrBadStatus, "%s: %s", endpoint, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return gjson.Result{}, errors.Wrapf(err, "failed to read %s response", endpoint)
	}
	return gjson.ParseBytes(data), nil
}
