package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/marquee/dispatch"
	"github.com/s0up4200/marquee/observable"
	"github.com/s0up4200/marquee/tmdb"
)

// Source owns one cell per category and the logic that populates them.
//
// Fetch results are pushed through the scheduler, so observers always run on
// the scheduler's execution context. Overlapping fetches of one category are
// not ordered: whichever completes last is what the cell holds.
type Source struct {
	api       tmdb.Getter
	endpoints *tmdb.Endpoints
	scheduler dispatch.Scheduler
	logger    zerolog.Logger

	cells    map[Category]*observable.Cell[Outcome]
	inflight sync.WaitGroup
}

// SourceOption configures a Source
type SourceOption func(*Source)

// WithScheduler delivers cell pushes on s instead of the fetching goroutine
func WithScheduler(s dispatch.Scheduler) SourceOption {
	return func(src *Source) {
		if s != nil {
			src.scheduler = s
		}
	}
}

// NewSource creates the category cells and starts fetching all categories in
// the background. Use Wait to block until those fetches are delivered.
func NewSource(ctx context.Context, api tmdb.Getter, endpoints *tmdb.Endpoints, logger zerolog.Logger, opts ...SourceOption) *Source {
	s := &Source{
		api:       api,
		endpoints: endpoints,
		scheduler: dispatch.Inline{},
		logger:    logger,
		cells:     make(map[Category]*observable.Cell[Outcome], len(Categories())),
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, c := range Categories() {
		s.cells[c] = observable.NewCell[Outcome]()
	}

	s.Refresh(ctx)

	return s
}

// FetchCategory fetches one category and pushes the outcome into its cell.
// Failures are pushed as values; nothing is returned to the caller.
func (s *Source) FetchCategory(ctx context.Context, category Category) {
	cell, ok := s.cells[category]
	if !ok {
		s.logger.Error().Int("category", int(category)).Msg("Fetch requested for unknown category")
		return
	}

	s.logger.Debug().Str("category", category.String()).Msg("Fetching category")

	var outcome Outcome
	listing, err := tmdb.Fetch[tmdb.TitleListing](ctx, s.api, s.endpoints.MovieList(category.PathSegment()))
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("category", category.String()).
			Str("kind", tmdb.KindOf(err).String()).
			Msg("Failed to fetch category")
		outcome = mo.Err[[]tmdb.Title](fmt.Errorf("fetch %s: %w", category, err))
	} else {
		s.logger.Debug().
			Str("category", category.String()).
			Int("count", len(listing.Results)).
			Msg("Fetched category")
		outcome = mo.Ok(listing.Results)
	}

	if err := s.scheduler.Submit(func() { cell.Push(outcome) }); err != nil {
		s.logger.Warn().
			Err(err).
			Str("category", category.String()).
			Msg("Dropped category result, scheduler refused delivery")
	}
}

// InitializeAll fetches every category concurrently and returns when all
// three fetches have completed
func (s *Source) InitializeAll(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)

	for _, c := range Categories() {
		g.Go(func() error {
			s.FetchCategory(ctx, c)
			return nil
		})
	}

	// FetchCategory never fails; outcomes travel through the cells
	g.Wait()
}

// Refresh runs InitializeAll in the background
func (s *Source) Refresh(ctx context.Context) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.InitializeAll(ctx)
	}()
}

// Wait blocks until every fetch started by NewSource or Refresh has been
// handed to the scheduler
func (s *Source) Wait() {
	s.inflight.Wait()
}

// Subscribe registers fn on a category cell. fn receives the latest outcome
// if one exists, then every later one, never out of order. With a Loop
// scheduler, call Subscribe from the loop so replays run there too.
func (s *Source) Subscribe(category Category, fn func(State)) (*observable.Subscription, error) {
	cell, ok := s.cells[category]
	if !ok {
		return nil, fmt.Errorf("unknown category: %d", category)
	}

	return cell.Subscribe(func(o Outcome) {
		fn(stateFromOutcome(category, o))
	}), nil
}

// State returns the current state of a category
func (s *Source) State(category Category) State {
	cell, ok := s.cells[category]
	if !ok {
		return State{Category: category, Status: StatusNotLoaded}
	}
	return stateOf(category, cell.Value())
}
