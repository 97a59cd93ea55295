package youtube

import (
	"context"
	"strings"

	"shortsapi/enums"
	"shortsapi/models"
	"shortsapi/util"

	"github.com/tidwall/gjson"
)

// rendererKeys are the node names under which InnerTube surfaces store
// individual video items, across trending shelves, search results and
// channel listings.
var rendererKeys = []string{
	"videoRenderer",
	"compactVideoRenderer",
	"gridVideoRenderer",
	"videoWithContextRenderer",
	"reelItemRenderer",
	"shortsLockupViewModel",
}

// TrendingPage wraps one trending browse response.
type TrendingPage struct {
	client *Client
	body   gjson.Result
}

// ShelfItems flattens every shelf and section of the page into a
// single pool, in document order.
func (p *TrendingPage) ShelfItems() []models.RawItem {
	return collectRenderers(p.body)
}

// FilterByKind applies the page's content-type filter when the surface
// exposes one, either as a chip continuation or as a filtered tab.
// Returns util.ErrFilterUnavailable when the capability is absent.
func (p *TrendingPage) FilterByKind(ctx context.Context, kind enums.ContentKind) ([]models.RawItem, error) {
	if token := findChipToken(p.body, string(kind)); token != "" {
		body, err := p.client.continuation(ctx, token)
		if err != nil {
			return nil, err
		}
		return collectRenderers(body), nil
	}
	if params := findTabParams(p.body, string(kind)); params != "" {
		body, err := p.client.browse(ctx, trendingBrowseID, params)
		if err != nil {
			return nil, err
		}
		return collectRenderers(body), nil
	}
	return nil, util.ErrFilterUnavailable
}

// SearchPage wraps one search response and remembers its query so
// filter refinements can re-issue it.
type SearchPage struct {
	client *Client
	query  string
	body   gjson.Result
}

func (p *SearchPage) Results() []models.RawItem {
	return collectRenderers(p.body)
}

// FilterByKind re-runs the search with the matching filter params when
// the response advertises one. util.ErrFilterUnavailable otherwise.
func (p *SearchPage) FilterByKind(ctx context.Context, kind enums.ContentKind) (*SearchPage, error) {
	params := findSearchFilterParams(p.body, string(kind))
	if params == "" {
		return nil, util.ErrFilterUnavailable
	}
	return p.client.search(ctx, p.query, params)
}

func collectRenderers(root gjson.Result) []models.RawItem {
	nodes := findNodes(root, rendererKeys...)
	items := make([]models.RawItem, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, models.RawItem{Result: node})
	}
	return items
}

// findNodes walks the whole tree and returns every sub-tree stored
// under one of the given object keys, in document order.
func findNodes(root gjson.Result, keys ...string) []gjson.Result {
	var out []gjson.Result
	var walk func(node gjson.Result)
	walk = func(node gjson.Result) {
		if !node.IsObject() && !node.IsArray() {
			return
		}
		isObject := node.IsObject()
		node.ForEach(func(key, value gjson.Result) bool {
			if isObject {
				for _, want := range keys {
					if key.Str == want {
						out = append(out, value)
						break
					}
				}
			}
			walk(value)
			return true
		})
	}
	walk(root)
	return out
}

func findChipToken(body gjson.Result, label string) string {
	for _, chip := range findNodes(body, "chipCloudChipRenderer") {
		text := chip.Get("text.simpleText").String()
		if text == "" {
			text = chip.Get("text.runs.0.text").String()
		}
		if !strings.EqualFold(text, label) {
			continue
		}
		if token := chip.Get("navigationEndpoint.continuationCommand.token").String(); token != "" {
			return token
		}
	}
	return ""
}

func findTabParams(body gjson.Result, label string) string {
	for _, tab := range findNodes(body, "tabRenderer") {
		if !strings.EqualFold(tab.Get("title").String(), label) {
			continue
		}
		if params := tab.Get("endpoint.browseEndpoint.params").String(); params != "" {
			return params
		}
	}
	return ""
}

func findSearchFilterParams(body gjson.Result, label string) string {
	for _, filter := range findNodes(body, "searchFilterRenderer") {
		text := filter.Get("label.simpleText").String()
		if text == "" {
			text = filter.Get("label.runs.0.text").String()
		}
		if !strings.EqualFold(text, label) {
			continue
		}
		if params := filter.Get("navigationEndpoint.searchEndpoint.params").String(); params != "" {
			return params
		}
	}
	return ""
}
