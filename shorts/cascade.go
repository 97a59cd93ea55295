package shorts

import (
	"context"
	"time"

	"shortsapi/enums"
	"shortsapi/models"
	"shortsapi/util"

	"go.uber.org/zap"
)

// TrendingHandle is the slice of the upstream trending surface the
// cascade consumes. FilterByKind is capability-shaped: a surface that
// does not expose the filter reports util.ErrFilterUnavailable and the
// cascade moves on.
type TrendingHandle interface {
	FilterByKind(ctx context.Context, kind enums.ContentKind) ([]models.RawItem, error)
	ShelfItems() []models.RawItem
}

// SearchHandle is one search response; FilterByKind refines it when
// the surface allows.
type SearchHandle interface {
	FilterByKind(ctx context.Context, kind enums.ContentKind) (SearchHandle, error)
	Results() []models.RawItem
}

type Searcher interface {
	Search(ctx context.Context, query string) (SearchHandle, error)
}

const searchBackupQuery = "#shorts"

// Cascade locates a pool of short-form candidates inside a trending
// surface through three ordered strategies, short-circuiting on the
// first non-empty pool. Every stage fault, timeouts included, is
// swallowed and treated as an empty stage result.
type Cascade struct {
	CallTimeout   time.Duration
	FilterTimeout time.Duration
	SearchPoolCap int
}

func (c *Cascade) Discover(ctx context.Context, trending TrendingHandle, searcher Searcher) []models.RawItem {
	if trending != nil {
		if pool := c.stageFilter(ctx, trending); len(pool) > 0 {
			zap.S().Debugf("cascade: stage %s yielded %d items", enums.CascadeStageFilter, len(pool))
			return pool
		}
		if pool := c.stageShelves(trending); len(pool) > 0 {
			zap.S().Debugf("cascade: stage %s yielded %d items", enums.CascadeStageShelves, len(pool))
			return pool
		}
	}
	pool := c.stageSearch(ctx, searcher)
	zap.S().Debugf("cascade: stage %s yielded %d items", enums.CascadeStageSearch, len(pool))
	return pool
}

func (c *Cascade) stageFilter(ctx context.Context, trending TrendingHandle) []models.RawItem {
	pool, err := util.WithTimeout(ctx, c.FilterTimeout,
		func(ctx context.Context) ([]models.RawItem, error) {
			return trending.FilterByKind(ctx, enums.ContentKindShorts)
		})
	if err != nil {
		zap.S().Warnf("cascade: stage %s failed: %v", enums.CascadeStageFilter, err)
		return nil
	}
	return pool
}

func (c *Cascade) stageShelves(trending TrendingHandle) []models.RawItem {
	return filterShortLike(trending.ShelfItems())
}

func (c *Cascade) stageSearch(ctx context.Context, searcher Searcher) []models.RawItem {
	if searcher == nil {
		return nil
	}
	page, err := util.WithTimeout(ctx, c.CallTimeout,
		func(ctx context.Context) (SearchHandle, error) {
			return searcher.Search(ctx, searchBackupQuery)
		})
	if err != nil {
		zap.S().Warnf("cascade: stage %s failed: %v", enums.CascadeStageSearch, err)
		return nil
	}
	if filtered, ferr := util.WithTimeout(ctx, c.FilterTimeout,
		func(ctx context.Context) (SearchHandle, error) {
			return page.FilterByKind(ctx, enums.ContentKindShorts)
		}); ferr == nil {
		page = filtered
	}
	pool := filterShortLike(page.Results())
	if c.SearchPoolCap > 0 && len(pool) > c.SearchPoolCap {
		pool = pool[:c.SearchPoolCap]
	}
	return pool
}
