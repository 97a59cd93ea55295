package models

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func TestAgeHoursMarshal(t *testing.T) {
	tests := []struct {
		name string
		age  AgeHours
		want string
	}{
		{"known", AgeHours(12.5), "12.5"},
		{"zero", AgeHours(0), "0"},
		{"unknown", AgeUnknown, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := sonic.Marshal(tt.age)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestNormalizedVideoMarshal(t *testing.T) {
	v := NormalizedVideo{
		VideoID:         "abc",
		Title:           "t",
		Views:           10,
		DurationSeconds: 30,
		PublishedRaw:    "LIVE",
		AgeHours:        AgeUnknown,
		Channel:         "c",
		Region:          "US",
		URL:             "https://www.youtube.com/shorts/abc",
	}
	data, err := sonic.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, `"videoId":"abc"`) {
		t.Errorf("missing videoId field: %s", body)
	}
	if !strings.Contains(body, `"ageHours":null`) {
		t.Errorf("unknown age must serialize as null: %s", body)
	}
	if strings.Contains(body, "thumbnailUrl") {
		t.Errorf("absent thumbnail must be omitted: %s", body)
	}
}

func TestRawItemFirst(t *testing.T) {
	item := RawItemFromJSON(`{"b": "second", "c": ""}`)
	if got := item.First("a", "c", "b").String(); got != "second" {
		t.Errorf("First = %q, want %q", got, "second")
	}
	if got := item.First("a", "c"); got.Exists() {
		t.Errorf("First over empty candidates must not resolve, got %q", got.String())
	}
}
