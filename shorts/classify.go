package shorts

import (
	"regexp"
	"strings"

	"shortsapi/models"
)

// maxShortSeconds is the short-form duration upper bound. Upstream
// snapshots disagree between 62s and ~75s; this build uses 62s and
// applies it uniformly.
const maxShortSeconds = 62

const shortsPathMarker = "/shorts/"

// shortFlagPaths are explicit upstream markers for short-form content.
var shortFlagPaths = []string{
	"is_short",
	"isShort",
	"isShortsVideo",
}

// reelEndpointPaths carry short-form navigation targets; their
// presence is as explicit a signal as a boolean flag.
var reelEndpointPaths = []string{
	"navigationEndpoint.reelWatchEndpoint",
	"onTap.innertubeCommand.reelWatchEndpoint",
}

// badgePaths are serialized wholesale and scanned for a shorts marker
// token; badge shapes vary too much for path-level addressing.
var badgePaths = []string{
	"badges",
	"thumbnailOverlays",
	"overlay",
}

var shortsHashtagPattern = regexp.MustCompile(`(?i)#shorts`)

// IsShortLike reports whether a raw item looks like short-form
// content. Pure and idempotent: it is evaluated once during cascade
// pooling and again during final mapping. Conservative: a miss is
// acceptable, a false positive is not.
func IsShortLike(item models.RawItem) bool {
	if secs := extractDurationSeconds(item); secs > 0 && secs <= maxShortSeconds {
		return true
	}
	if strings.Contains(rawItemURL(item), shortsPathMarker) {
		return true
	}
	for _, path := range shortFlagPaths {
		if v := item.Get(path); v.Exists() && v.Bool() {
			return true
		}
	}
	for _, path := range reelEndpointPaths {
		if item.Get(path).Exists() {
			return true
		}
	}
	for _, path := range badgePaths {
		if v := item.Get(path); v.Exists() &&
			strings.Contains(strings.ToLower(v.Raw), "shorts") {
			return true
		}
	}
	return shortsHashtagPattern.MatchString(extractTitle(item))
}

func filterShortLike(pool []models.RawItem) []models.RawItem {
	out := make([]models.RawItem, 0, len(pool))
	for _, item := range pool {
		if IsShortLike(item) {
			out = append(out, item)
		}
	}
	return out
}
