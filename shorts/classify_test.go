package shorts

import (
	"testing"

	"shortsapi/models"
)

func TestIsShortLike(t *testing.T) {
	tests := []struct {
		name string
		json string
		want bool
	}{
		{
			name: "duration at bound",
			json: `{"videoId": "a", "lengthText": {"simpleText": "1:02"}}`,
			want: true,
		},
		{
			name: "duration above bound",
			json: `{"videoId": "a", "lengthText": {"simpleText": "1:03"}}`,
			want: false,
		},
		{
			name: "zero duration alone",
			json: `{"videoId": "a"}`,
			want: false,
		},
		{
			name: "shorts url",
			json: `{"videoId": "a", "url": "https://www.youtube.com/shorts/a", "lengthText": {"simpleText": "5:00"}}`,
			want: true,
		},
		{
			name: "relative shorts url",
			json: `{"navigationEndpoint": {"commandMetadata": {"webCommandMetadata": {"url": "/shorts/a"}}}}`,
			want: true,
		},
		{
			name: "explicit flag",
			json: `{"videoId": "a", "is_short": true}`,
			want: true,
		},
		{
			name: "explicit flag false",
			json: `{"videoId": "a", "is_short": false}`,
			want: false,
		},
		{
			name: "reel endpoint",
			json: `{"videoId": "a", "navigationEndpoint": {"reelWatchEndpoint": {"videoId": "a"}}}`,
			want: true,
		},
		{
			name: "overlay badge marker",
			json: `{"videoId": "a", "thumbnailOverlays": [{"thumbnailOverlayTimeStatusRenderer": {"style": "SHORTS"}}]}`,
			want: true,
		},
		{
			name: "hashtag title",
			json: `{"videoId": "a", "title": {"simpleText": "crazy cat #Shorts"}}`,
			want: true,
		},
		{
			name: "plain long video",
			json: `{"videoId": "a", "title": {"simpleText": "documentary"}, "lengthText": {"simpleText": "12:34"}}`,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := models.RawItemFromJSON(tt.json)
			got := IsShortLike(item)
			if got != tt.want {
				t.Errorf("IsShortLike = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsShortLikeIdempotent(t *testing.T) {
	for i, json := range []string{
		`{"videoId": "a", "lengthText": {"simpleText": "0:30"}}`,
		`{"videoId": "a", "lengthText": {"simpleText": "10:30"}}`,
	} {
		item := models.RawItemFromJSON(json)
		first := IsShortLike(item)
		second := IsShortLike(item)
		if first != second {
			t.Errorf("fixture %d: IsShortLike not idempotent (%v then %v)", i, first, second)
		}
	}
}

func TestFilterShortLike(t *testing.T) {
	pool := []models.RawItem{
		models.RawItemFromJSON(`{"videoId": "s1", "lengthText": {"simpleText": "0:30"}}`),
		models.RawItemFromJSON(`{"videoId": "l1", "lengthText": {"simpleText": "10:30"}}`),
		models.RawItemFromJSON(`{"videoId": "s2", "lengthText": {"simpleText": "0:59"}}`),
	}
	out := filterShortLike(pool)
	if len(out) != 2 {
		t.Fatalf("filterShortLike kept %d items, want 2", len(out))
	}
	for i, want := range []string{"s1", "s2"} {
		if got := out[i].Get("videoId").String(); got != want {
			t.Errorf("item %d = %s, want %s", i, got, want)
		}
	}
}
