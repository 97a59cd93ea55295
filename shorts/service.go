package shorts

import (
	"context"

	"shortsapi/config"
	"shortsapi/enums"
	"shortsapi/models"
	"shortsapi/util"
	"shortsapi/youtube"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type TrendingRequest struct {
	Region      string
	MaxAgeHours float64
	MinViews    int64
	Max         int
}

type SearchRequest struct {
	Query       string
	Region      string
	MaxAgeHours float64
	MinViews    int64
	Max         int
}

type ChannelRequest struct {
	Input  string
	Region string
	Limit  int
}

// Service ties the region client cache, the discovery cascade and the
// result pipeline into the three listing operations the HTTP handlers
// expose.
type Service struct {
	clients *youtube.RegionCache
	cascade Cascade
}

func NewService(clients *youtube.RegionCache) *Service {
	return &Service{
		clients: clients,
		cascade: Cascade{
			CallTimeout:   config.Env.CallTimeout,
			FilterTimeout: config.Env.FilterTimeout,
			SearchPoolCap: config.Env.SearchPoolCap,
		},
	}
}

// Trending runs the full discovery cascade over the region's trending
// surface. A failed trending fetch is recoverable: the cascade falls
// through to its search backup.
func (s *Service) Trending(ctx context.Context, req TrendingRequest) ([]models.NormalizedVideo, error) {
	client := s.clients.Get(req.Region)

	page, err := util.WithTimeout(ctx, s.cascade.CallTimeout,
		func(ctx context.Context) (*youtube.TrendingPage, error) {
			return client.Trending(ctx)
		})
	if err != nil {
		zap.S().Warnf("trending fetch failed for %s: %v", client.Region(), err)
	}
	var trending TrendingHandle
	if page != nil {
		trending = page
	}

	pool := s.cascade.Discover(ctx, trending, searcherAdapter{client})
	pool = filterShortLike(pool)
	filters := models.Filters{MinViews: req.MinViews, MaxAgeHours: req.MaxAgeHours}
	return Process(pool, client.Region(), filters, req.Max), nil
}

// Search classifies the search result pool directly; no cascade. The
// shorts filter refinement is applied when the surface offers it.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]models.NormalizedVideo, error) {
	client := s.clients.Get(req.Region)

	page, err := util.WithTimeout(ctx, s.cascade.CallTimeout,
		func(ctx context.Context) (*youtube.SearchPage, error) {
			return client.Search(ctx, req.Query)
		})
	if err != nil {
		return nil, errors.Wrap(err, "search failed")
	}

	var handle SearchHandle = searchHandleAdapter{page}
	if filtered, ferr := util.WithTimeout(ctx, s.cascade.FilterTimeout,
		func(ctx context.Context) (SearchHandle, error) {
			return handle.FilterByKind(ctx, enums.ContentKindShorts)
		}); ferr == nil {
		handle = filtered
	}

	pool := filterShortLike(handle.Results())
	filters := models.Filters{MinViews: req.MinViews, MaxAgeHours: req.MaxAgeHours}
	return Process(pool, client.Region(), filters, req.Max), nil
}

// ByChannel resolves the input to a channel id, best effort, and lists
// the short-form subset of its uploads. An unresolvable input yields
// an empty list, not an error.
func (s *Service) ByChannel(ctx context.Context, req ChannelRequest) ([]models.NormalizedVideo, error) {
	client := s.clients.Get(req.Region)

	channelID, err := util.WithTimeout(ctx, s.cascade.CallTimeout,
		func(ctx context.Context) (string, error) {
			return client.ResolveChannelID(ctx, req.Input)
		})
	if err != nil {
		if errors.Is(err, util.ErrChannelNotFound) {
			zap.S().Debugf("by-channel: could not resolve %q", req.Input)
			return []models.NormalizedVideo{}, nil
		}
		return nil, errors.Wrap(err, "channel resolution failed")
	}

	items, err := util.WithTimeout(ctx, s.cascade.CallTimeout,
		func(ctx context.Context) ([]models.RawItem, error) {
			return client.ChannelVideos(ctx, channelID)
		})
	if err != nil {
		return nil, errors.Wrap(err, "channel listing failed")
	}

	pool := filterShortLike(items)
	return Process(pool, client.Region(), models.Filters{}, req.Limit), nil
}

// Adapters narrowing the youtube client to the cascade interfaces.

type searcherAdapter struct {
	client *youtube.Client
}

func (a searcherAdapter) Search(ctx context.Context, query string) (SearchHandle, error) {
	page, err := a.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return searchHandleAdapter{page}, nil
}

type searchHandleAdapter struct {
	page *youtube.SearchPage
}

func (a searchHandleAdapter) Results() []models.RawItem {
	return a.page.Results()
}

func (a searchHandleAdapter) FilterByKind(ctx context.Context, kind enums.ContentKind) (SearchHandle, error) {
	filtered, err := a.page.FilterByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	return searchHandleAdapter{filtered}, nil
}
