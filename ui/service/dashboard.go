package service

import (
	"context"
	"encoding/json"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/types"
	"golang.org/x/sync/errgroup"
)

// countedCollections are fetched in parallel for the dashboard totals.
var countedCollections = []sitepanel.Collection{
	sitepanel.Projects,
	sitepanel.Clients,
	sitepanel.Contacts,
	sitepanel.Newsletter,
}

// Dashboard returns the dashboard: four counts fetched in parallel, then the
// activity feed.
func (s *Service) Dashboard(ctx context.Context) *Dashboard {
	counts, failed := s.Counts(ctx)
	return &Dashboard{
		Counts:   counts,
		Failed:   failed,
		Activity: s.ActivityFeed(ctx),
	}
}

// Counts fetches the four collections in parallel and returns their lengths.
// Each fetch fails on its own: a failed collection counts 0 and is listed in
// the returned slice, the others are unaffected.
func (s *Service) Counts(ctx context.Context) (Counts, []sitepanel.Collection) {
	lengths := make([]int, len(countedCollections))
	errs := make([]error, len(countedCollections))

	// Every goroutine returns nil so no fetch cancels or hides another.
	var g errgroup.Group
	for i, coll := range countedCollections {
		g.Go(func() error {
			var records []json.RawMessage
			if err := s.Dispatch(ctx, LoadAction{Collection: coll}, &records); err != nil {
				errs[i] = err
				return nil
			}
			lengths[i] = len(records)
			return nil
		})
	}
	_ = g.Wait()

	var failed []sitepanel.Collection
	for i, err := range errs {
		if err != nil {
			s.logWarn("failed to load dashboard count", err, "collection", countedCollections[i].String())
			failed = append(failed, countedCollections[i])
		}
	}

	return Counts{
		Projects:    lengths[0],
		Clients:     lengths[1],
		Contacts:    lengths[2],
		Subscribers: lengths[3],
	}, failed
}

// ActivityFeed loads the recent activity entries.
func (s *Service) ActivityFeed(ctx context.Context) ActivityFeed {
	var activity []types.Activity
	if err := s.Dispatch(ctx, LoadAction{Collection: sitepanel.Activity}, &activity); err != nil {
		s.logWarn("error loading activity", err)
		return ActivityFeed{Error: ActivityLoadFailed}
	}
	if len(activity) == 0 {
		return ActivityFeed{Empty: ActivityEmpty}
	}

	items := make([]ActivityItem, 0, len(activity))
	for _, a := range activity {
		items = append(items, ActivityItem{
			Icon:        a.Icon,
			Title:       a.Title,
			Description: a.Description,
			Time:        a.Time,
		})
	}
	return ActivityFeed{Items: items}
}
