package shorts

import (
	"testing"
	"time"

	"shortsapi/models"
)

func TestMapVideoRendererShape(t *testing.T) {
	item := models.RawItemFromJSON(`{
		"videoId": "abc123xyz00",
		"title": {"runs": [{"text": "My clip"}]},
		"shortBylineText": {"runs": [{"text": "Some Channel"}]},
		"lengthText": {"simpleText": "0:45"},
		"viewCountText": {"simpleText": "1,234,567 views"},
		"publishedTimeText": {"simpleText": "2 days ago"},
		"thumbnail": {"thumbnails": [
			{"url": "https://example.com/small.jpg", "width": 168, "height": 94},
			{"url": "https://example.com/big.jpg", "width": 720, "height": 404}
		]}
	}`)

	v := MapVideo(item, "US", time.Now())
	if v.VideoID != "abc123xyz00" {
		t.Errorf("VideoID = %q", v.VideoID)
	}
	if v.Title != "My clip" {
		t.Errorf("Title = %q", v.Title)
	}
	if v.Channel != "Some Channel" {
		t.Errorf("Channel = %q", v.Channel)
	}
	if v.Views != 1234567 {
		t.Errorf("Views = %d", v.Views)
	}
	if v.DurationSeconds != 45 {
		t.Errorf("DurationSeconds = %d", v.DurationSeconds)
	}
	if float64(v.AgeHours) != 48 {
		t.Errorf("AgeHours = %v", v.AgeHours)
	}
	if v.PublishedRaw != "2 days ago" {
		t.Errorf("PublishedRaw = %q", v.PublishedRaw)
	}
	if v.ThumbnailURL != "https://example.com/big.jpg" {
		t.Errorf("ThumbnailURL = %q, want largest variant", v.ThumbnailURL)
	}
	if v.URL != "https://www.youtube.com/shorts/abc123xyz00" {
		t.Errorf("URL = %q", v.URL)
	}
	if v.Region != "US" {
		t.Errorf("Region = %q", v.Region)
	}
}

func TestMapVideoSnakeCaseShape(t *testing.T) {
	item := models.RawItemFromJSON(`{
		"video_id": "snake000001",
		"title": "plain title",
		"author": {"name": "Snake Channel"},
		"duration": {"seconds": 58},
		"view_count": {"text": "1.2k views"},
		"published_time_text": "3 hours ago"
	}`)

	v := MapVideo(item, "KR", time.Now())
	if v.VideoID != "snake000001" {
		t.Errorf("VideoID = %q", v.VideoID)
	}
	if v.Title != "plain title" {
		t.Errorf("Title = %q", v.Title)
	}
	if v.Channel != "Snake Channel" {
		t.Errorf("Channel = %q", v.Channel)
	}
	if v.Views != 1200 {
		t.Errorf("Views = %d", v.Views)
	}
	if v.DurationSeconds != 58 {
		t.Errorf("DurationSeconds = %d", v.DurationSeconds)
	}
	if float64(v.AgeHours) != 3 {
		t.Errorf("AgeHours = %v", v.AgeHours)
	}
}

func TestExtractViewsCandidateOrder(t *testing.T) {
	// a zero numeric candidate must not shadow a later parseable one
	item := models.RawItemFromJSON(`{
		"viewCount": 0,
		"shortViewCountText": {"simpleText": "3.4M views"}
	}`)
	if got := extractViews(item); got != 3400000 {
		t.Errorf("extractViews = %d, want 3400000", got)
	}
}

func TestExtractViewsDeepScan(t *testing.T) {
	// no candidate path matches; the serialization scan should
	item := models.RawItemFromJSON(`{
		"some": {"nested": {"field": {"text": "1.2M views"}}}
	}`)
	if got := extractViews(item); got != 1200000 {
		t.Errorf("extractViews = %d, want 1200000", got)
	}
}

func TestExtractViewsFallbackZero(t *testing.T) {
	item := models.RawItemFromJSON(`{"title": "nothing useful"}`)
	if got := extractViews(item); got != 0 {
		t.Errorf("extractViews = %d, want 0", got)
	}
}

func TestExtractThumbnailPatchedFromID(t *testing.T) {
	item := models.RawItemFromJSON(`{"videoId": "patchme0001"}`)
	got := extractThumbnail(item, "patchme0001")
	want := "https://i.ytimg.com/vi/patchme0001/hqdefault.jpg"
	if got != want {
		t.Errorf("extractThumbnail = %q, want %q", got, want)
	}
}

func TestMapVideoEmptyItem(t *testing.T) {
	v := MapVideo(models.RawItemFromJSON(`{}`), "US", time.Now())
	if v.VideoID != "" || v.Views != 0 || v.DurationSeconds != 0 {
		t.Errorf("empty item must map to zero values, got %+v", v)
	}
	if !v.AgeHours.Unknown() {
		t.Errorf("empty item AgeHours = %v, want unknown", v.AgeHours)
	}
}
