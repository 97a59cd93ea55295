package shorts

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"shortsapi/models"

	"github.com/tidwall/gjson"
)

// Candidate path tables, one per semantic field. Order matters: the
// first candidate yielding a usable value wins. Paths cover the
// renderer shapes InnerTube emits on trending, search and channel
// surfaces plus the flattened snake_case variants some surfaces still
// return. New upstream shapes are added here, not as control flow.
var (
	idPaths = []string{
		"videoId",
		"video_id",
		"id.videoId",
		"id",
		"onTap.innertubeCommand.reelWatchEndpoint.videoId",
		"navigationEndpoint.reelWatchEndpoint.videoId",
	}
	titlePaths = []string{
		"title.simpleText",
		"title.runs.0.text",
		"title.text",
		"title",
		"headline.simpleText",
		"headline.runs.0.text",
		"overlayMetadata.primaryText.content",
	}
	channelPaths = []string{
		"longBylineText.runs.0.text",
		"shortBylineText.runs.0.text",
		"ownerText.runs.0.text",
		"author.name",
		"channel.name",
		"owner.name",
		"author",
		"channel",
	}
	publishedPaths = []string{
		"publishedTimeText.simpleText",
		"publishedTimeText.runs.0.text",
		"published.text",
		"published_time_text",
		"published_text",
		"published",
	}
	viewCountPaths = []string{
		"viewCount",
		"view_count.text",
		"views.text",
		"metadata.view_count",
		"stats.views",
		"viewCountText.simpleText",
		"viewCountText.runs.0.text",
		"shortViewCountText.simpleText",
		"shortViewCountText.runs.0.text",
		"short_view_count.text",
		"short_view_count_text",
		"overlayMetadata.secondaryText.content",
	}
	durationSecondsPaths = []string{
		"duration.seconds",
		"lengthSeconds",
		"length_seconds",
	}
	durationTextPaths = []string{
		"duration.text",
		"lengthText.simpleText",
		"lengthText.runs.0.text",
		"length_text.text",
		"length.text",
		"length_text",
		"thumbnailOverlays.0.thumbnailOverlayTimeStatusRenderer.text.simpleText",
	}
	thumbnailListPaths = []string{
		"thumbnail.thumbnails",
		"thumbnails",
		"thumbnail.sources",
		"thumbnails_all",
	}
	urlPaths = []string{
		"url",
		"navigationEndpoint.commandMetadata.webCommandMetadata.url",
	}
)

// deepViewsPattern is the last-resort scan over an item's raw
// serialization for any "<number><unit> views"-shaped text field.
var deepViewsPattern = regexp.MustCompile(`(?i)"(?:text|content|simpleText)"\s*:\s*"([^"]*views?[^"]*)"`)

// MapVideo flattens one raw item into the normalized record. It never
// fails: every extraction path has a documented fallback value.
func MapVideo(item models.RawItem, region string, now time.Time) models.NormalizedVideo {
	id := extractVideoID(item)
	published := extractPublished(item)
	return models.NormalizedVideo{
		VideoID:         id,
		Title:           extractTitle(item),
		Views:           extractViews(item),
		DurationSeconds: extractDurationSeconds(item),
		PublishedRaw:    published,
		AgeHours:        parseAgeHours(published, now),
		Channel:         extractChannel(item),
		ThumbnailURL:    extractThumbnail(item, id),
		Region:          region,
		URL:             extractURL(item, id),
	}
}

func extractVideoID(item models.RawItem) string {
	return item.First(idPaths...).String()
}

func extractTitle(item models.RawItem) string {
	return strings.TrimSpace(item.First(titlePaths...).String())
}

func extractChannel(item models.RawItem) string {
	return strings.TrimSpace(item.First(channelPaths...).String())
}

func extractPublished(item models.RawItem) string {
	return strings.TrimSpace(item.First(publishedPaths...).String())
}

// extractViews tries the candidate locations in order, preferring
// numeric fields, then parses human-readable count text. When every
// candidate fails it falls back to scanning the item's serialization
// for a views-shaped text field.
func extractViews(item models.RawItem) int64 {
	for _, path := range viewCountPaths {
		v := item.Get(path)
		if !v.Exists() {
			continue
		}
		if v.Type == gjson.Number {
			if n := v.Int(); n > 0 {
				return n
			}
			continue
		}
		if n := parseHumanCount(v.String()); n > 0 {
			return n
		}
	}
	if m := deepViewsPattern.FindStringSubmatch(item.Raw); m != nil {
		if n := parseHumanCount(m[1]); n > 0 {
			return n
		}
	}
	return 0
}

// extractDurationSeconds tries an explicit seconds field, then ISO-8601
// duration text, then colon-delimited clock text.
func extractDurationSeconds(item models.RawItem) int64 {
	for _, path := range durationSecondsPaths {
		if v := item.Get(path); v.Exists() {
			if n := v.Int(); n > 0 {
				return n
			}
		}
	}
	for _, path := range durationTextPaths {
		s := item.Get(path).String()
		if s == "" {
			continue
		}
		if strings.HasPrefix(s, "PT") {
			if n := parseISODuration(s); n > 0 {
				return n
			}
			continue
		}
		if n := parseClock(s); n > 0 {
			return n
		}
	}
	return 0
}

// extractThumbnail picks the largest sized variant when a list is
// present. Absence is patched with the deterministic thumbnail URL
// derived from the video id.
func extractThumbnail(item models.RawItem, videoID string) string {
	for _, path := range thumbnailListPaths {
		list := item.Get(path)
		if !list.IsArray() {
			continue
		}
		best := ""
		bestArea := int64(-1)
		list.ForEach(func(_, variant gjson.Result) bool {
			url := variant.Get("url").String()
			if url == "" {
				return true
			}
			area := variant.Get("width").Int() * variant.Get("height").Int()
			if area > bestArea {
				bestArea = area
				best = url
			}
			return true
		})
		if best != "" {
			return best
		}
	}
	if videoID != "" {
		return fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", videoID)
	}
	return ""
}

// rawItemURL returns the item's own URL field, without the canonical
// fallback. The classifier needs the unpatched value.
func rawItemURL(item models.RawItem) string {
	return item.First(urlPaths...).String()
}

func extractURL(item models.RawItem, videoID string) string {
	if u := rawItemURL(item); u != "" {
		if strings.HasPrefix(u, "/") {
			return "https://www.youtube.com" + u
		}
		return u
	}
	if videoID != "" {
		return fmt.Sprintf("https://www.youtube.com/shorts/%s", videoID)
	}
	return ""
}
