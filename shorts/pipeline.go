package shorts

import (
	"sort"
	"time"

	"shortsapi/models"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Process turns a classifier-filtered pool into the response list, in
// a fixed order: map, drop id-less records, dedup first-wins, apply
// the view floor, apply the age bound, stable sort by views
// descending, truncate. Drop counts are logged for diagnostics and
// never alter the output.
func Process(pool []models.RawItem, region string, filters models.Filters, resultCap int) []models.NormalizedVideo {
	now := time.Now()
	videos := make([]models.NormalizedVideo, 0, len(pool))
	seen := make(map[string]struct{}, len(pool))

	var droppedNoID, droppedDup, droppedViews, droppedAge int
	for _, item := range pool {
		v := MapVideo(item, region, now)
		if v.VideoID == "" {
			droppedNoID++
			continue
		}
		if _, dup := seen[v.VideoID]; dup {
			droppedDup++
			continue
		}
		seen[v.VideoID] = struct{}{}
		if v.Views < filters.MinViews {
			droppedViews++
			continue
		}
		if filters.AgeBounded() &&
			(v.AgeHours.Unknown() || float64(v.AgeHours) > filters.MaxAgeHours) {
			droppedAge++
			continue
		}
		videos = append(videos, v)
	}

	// ties keep pool order
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Views > videos[j].Views
	})
	if resultCap > 0 && len(videos) > resultCap {
		videos = videos[:resultCap]
	}

	zap.S().Debugf("pipeline: kept %s of %s items (no id: %d, dup: %d, views: %d, age: %d)",
		humanize.Comma(int64(len(videos))), humanize.Comma(int64(len(pool))),
		droppedNoID, droppedDup, droppedViews, droppedAge)
	return videos
}
