package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/catalog"
	"github.com/s0up4200/marquee/dispatch"
	"github.com/s0up4200/marquee/filter"
	"github.com/s0up4200/marquee/observable"
)

var (
	categoryNames []string
	filterExpr    string
	preset        string
	showDetails   bool
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Show the popular, top rated and upcoming listings",
	Long: `Fetch all three movie listings concurrently and render each section as
soon as its result arrives. A section whose fetch fails is shown as unavailable;
the other sections are unaffected.

--category only limits what is shown: all three listings are still requested.`,
	PreRunE: initializeApp,
	RunE:    runBrowse,
}

func init() {
	browseCmd.Flags().StringSliceVarP(&categoryNames, "category", "c", nil, "only show these categories (popular, top_rated, upcoming)")
	browseCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'hasText(Title, \"star\")'")
	browseCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a named filter from browse.filters in config")
	browseCmd.Flags().BoolVar(&showDetails, "details", false, "show poster URLs")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	selected, err := selectedCategories()
	if err != nil {
		return err
	}

	titleFilter, err := browseFilter()
	if err != nil {
		return err
	}

	formatter := catalog.NewConsoleFormatter(catalog.FormatOptions{
		ShowDetails: showDetails || cfg.Browse.ShowDetails,
		ImageBase:   cfg.TMDB.ImageURL,
		PosterSize:  cfg.TMDB.PosterSize,
	})
	out := cmd.OutOrStdout()

	// All rendering happens on the loop goroutine
	loop := dispatch.NewLoop(len(catalog.Categories()) * 2)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	source := catalog.NewSource(ctx, client, endpoints, logger, catalog.WithScheduler(loop))

	failed := 0
	var subs []*observable.Subscription
	render := func(state catalog.State) {
		if state.Status == catalog.StatusFailed {
			failed++
			logger.Debug().Err(state.Err).Str("category", state.Category.String()).Msg("Category unavailable")
		}
		if titleFilter != nil && state.Status == catalog.StatusLoaded {
			state.Titles = titleFilter.Apply(state.Titles)
		}
		fmt.Fprint(out, formatter.FormatState(state))
	}

	// Subscribing on the loop keeps the replayed value on the loop too
	for _, category := range selected {
		if err := loop.Submit(func() {
			if state := source.State(category); state.Status == catalog.StatusNotLoaded {
				fmt.Fprint(out, formatter.FormatState(state))
			}
			sub, err := source.Subscribe(category, render)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to subscribe")
				return
			}
			subs = append(subs, sub)
		}); err != nil {
			return err
		}
	}

	source.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := loop.Stop(stopCtx); err != nil {
		return fmt.Errorf("failed to drain render loop: %w", err)
	}

	for _, sub := range subs {
		sub.Unsubscribe()
	}

	if failed == len(selected) {
		return fmt.Errorf("no listings could be fetched")
	}
	return nil
}

// selectedCategories parses --category, defaulting to every category
func selectedCategories() ([]catalog.Category, error) {
	if len(categoryNames) == 0 {
		return catalog.Categories(), nil
	}

	var selected []catalog.Category
	for _, name := range categoryNames {
		c, err := catalog.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, c)
	}

	// display order is declaration order, whatever order the flags came in
	return lo.Filter(catalog.Categories(), func(c catalog.Category, _ int) bool {
		return lo.Contains(selected, c)
	}), nil
}

// browseFilter determines the filter to use: --filter > --preset > none
func browseFilter() (*filter.ExprFilter, error) {
	expression := filterExpr
	if expression == "" && preset != "" {
		presetExpr, ok := cfg.Browse.Filters[preset]
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		expression = presetExpr
	}

	if expression == "" {
		return nil, nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	logger.Info().Str("filter", f.String()).Msg("Filtering titles")
	return f, nil
}
