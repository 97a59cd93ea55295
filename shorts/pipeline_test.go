package shorts

import (
	"context"
	"fmt"
	"testing"

	"shortsapi/models"
	"shortsapi/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawShort(id string, views string, published string) models.RawItem {
	return models.RawItemFromJSON(fmt.Sprintf(`{
		"videoId": %q,
		"title": {"simpleText": "clip %s"},
		"lengthText": {"simpleText": "0:30"},
		"viewCountText": {"simpleText": %q},
		"publishedTimeText": {"simpleText": %q}
	}`, id, id, views, published))
}

func TestProcessDedupKeepsFirstOccurrence(t *testing.T) {
	pool := []models.RawItem{
		rawShort("dup", "100 views", "2 hours ago"),
		rawShort("dup", "999 views", "2 hours ago"),
		rawShort("other", "50 views", "2 hours ago"),
	}

	out := Process(pool, "US", models.Filters{}, 0)

	require.Len(t, out, 2)
	assert.Equal(t, "dup", out[0].VideoID)
	assert.Equal(t, int64(100), out[0].Views, "first occurrence wins")
}

func TestProcessDropsEmptyID(t *testing.T) {
	pool := []models.RawItem{
		models.RawItemFromJSON(`{"title": {"simpleText": "no id"}, "lengthText": {"simpleText": "0:30"}}`),
		rawShort("keep", "10 views", "1 hour ago"),
	}

	out := Process(pool, "US", models.Filters{}, 0)

	require.Len(t, out, 1)
	assert.Equal(t, "keep", out[0].VideoID)
}

func TestProcessSortStableDescending(t *testing.T) {
	pool := []models.RawItem{
		rawShort("a", "5 views", "1 hour ago"),
		rawShort("b", "5 views", "1 hour ago"),
		rawShort("c", "7 views", "1 hour ago"),
	}

	out := Process(pool, "US", models.Filters{}, 0)

	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].VideoID)
	assert.Equal(t, "a", out[1].VideoID, "equal views preserve input order")
	assert.Equal(t, "b", out[2].VideoID)
}

func TestProcessMinViews(t *testing.T) {
	pool := []models.RawItem{
		rawShort("low", "500 views", "1 hour ago"),
		rawShort("high", "5,000 views", "1 hour ago"),
	}

	out := Process(pool, "US", models.Filters{MinViews: 1000}, 0)

	require.Len(t, out, 1)
	assert.Equal(t, "high", out[0].VideoID)
}

func TestProcessAgeBoundaryInclusive(t *testing.T) {
	pool := []models.RawItem{
		rawShort("edge", "100 views", "48 hours ago"),
		rawShort("over", "100 views", "49 hours ago"),
	}

	out := Process(pool, "US", models.Filters{MaxAgeHours: 48}, 0)

	require.Len(t, out, 1)
	assert.Equal(t, "edge", out[0].VideoID, "age exactly at the bound is retained")
}

func TestProcessUnknownAge(t *testing.T) {
	pool := []models.RawItem{
		rawShort("known", "100 views", "1 hour ago"),
		rawShort("unknown", "100 views", ""),
	}

	bounded := Process(pool, "US", models.Filters{MaxAgeHours: 48}, 0)
	require.Len(t, bounded, 1)
	assert.Equal(t, "known", bounded[0].VideoID, "unknown age is dropped under a finite bound")

	unbounded := Process(pool, "US", models.Filters{}, 0)
	assert.Len(t, unbounded, 2, "unknown age survives without a bound")
}

func TestProcessResultCap(t *testing.T) {
	pool := make([]models.RawItem, 0, 5)
	for i := 0; i < 5; i++ {
		pool = append(pool, rawShort(fmt.Sprintf("v%d", i), "100 views", "1 hour ago"))
	}

	out := Process(pool, "US", models.Filters{}, 3)
	assert.Len(t, out, 3)
}

// Trending request for region KR with hours=48 and minViews=1000: the
// content filter is unavailable, the shelves carry three short-form
// items with views [500, 5000, 20000] and ages [10, 40, 50] hours.
// 500 falls to the view floor, 20000 is older than the bound, so the
// response is exactly the 5000-view item.
func TestTrendingEndToEndFixture(t *testing.T) {
	trending := &fakeTrending{
		filterErr: util.ErrFilterUnavailable,
		shelves: []models.RawItem{
			rawShort("few", "500 views", "10 hours ago"),
			rawShort("mid", "5,000 views", "40 hours ago"),
			rawShort("old", "20,000 views", "50 hours ago"),
		},
	}
	searcher := &fakeSearcher{}

	pool := newCascade().Discover(context.Background(), trending, searcher)
	pool = filterShortLike(pool)
	out := Process(pool, "KR", models.Filters{MinViews: 1000, MaxAgeHours: 48}, 120)

	require.Len(t, out, 1)
	assert.Equal(t, "mid", out[0].VideoID)
	assert.Equal(t, int64(5000), out[0].Views)
	assert.Equal(t, "KR", out[0].Region)
	assert.Equal(t, 0, searcher.calls, "shelf stage satisfied the cascade")
}
