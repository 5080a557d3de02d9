package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/tmdb"
	"github.com/s0up4200/marquee/trailer"
)

var keyOnly bool

// trailerCmd represents the trailer command
var trailerCmd = &cobra.Command{
	Use:   "trailer <movie-id>",
	Short: "Resolve the YouTube trailer of a movie",
	Long: `Look up the videos of a movie and print the first YouTube trailer,
in the order the catalog lists them.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runTrailer,
}

func init() {
	trailerCmd.Flags().BoolVar(&keyOnly, "key-only", false, "print only the YouTube video id")
}

func runTrailer(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q: %w", args[0], err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	resolver := trailer.NewResolver(client, endpoints, logger)
	result, err := resolver.Resolve(ctx, tmdb.Title{ID: mo.Some(id)})
	if errors.Is(err, tmdb.ErrNoTrailerFound) {
		fmt.Fprintf(cmd.OutOrStdout(), "No trailer available for movie %d\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if keyOnly {
		fmt.Fprintln(out, result.Key())
		return nil
	}

	fmt.Fprintf(out, "Key:   %s\n", result.Key())
	fmt.Fprintf(out, "Watch: %s\n", result.WatchURL())
	fmt.Fprintf(out, "Embed: %s\n", result.EmbedURL())
	return nil
}
