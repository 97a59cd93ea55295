package youtube

import (
	"context"
	"regexp"

	"shortsapi/models"
	"shortsapi/util"
)

var channelIDPattern = regexp.MustCompile(`UC[0-9A-Za-z_-]{22,}`)

// ResolveChannelID turns a by-channel input (a UC id, a channel URL or
// free text such as an @handle) into a channel id. The free-text path
// is best-effort: it leans on the upstream's result type tagging, which
// is not guaranteed stable.
func (c *Client) ResolveChannelID(ctx context.Context, input string) (string, error) {
	if id := channelIDPattern.FindString(input); id != "" {
		return id, nil
	}
	page, err := c.Search(ctx, input)
	if err != nil {
		return "", err
	}
	for _, ch := range findNodes(page.body, "channelRenderer") {
		if id := ch.Get("channelId").String(); id != "" {
			return id, nil
		}
	}
	return "", util.ErrChannelNotFound
}

// ChannelVideos browses a channel's upload surface and flattens it
// into a raw item pool.
func (c *Client) ChannelVideos(ctx context.Context, channelID string) ([]models.RawItem, error) {
	body, err := c.browse(ctx, channelID, "")
	if err != nil {
		return nil, err
	}
	return collectRenderers(body), nil
}
