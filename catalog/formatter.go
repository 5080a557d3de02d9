package catalog

import (
	"fmt"
	"strings"

	"github.com/s0up4200/marquee/tmdb"
)

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowDetails bool
	ImageBase   string
	PosterSize  string
}

// ConsoleFormatter renders category states for console display
type ConsoleFormatter struct {
	options FormatOptions
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options FormatOptions) *ConsoleFormatter {
	return &ConsoleFormatter{options: options}
}

// FormatState renders one category section. Loading, failed and loaded
// states each render differently.
func (f *ConsoleFormatter) FormatState(state State) string {
	var sb strings.Builder

	switch state.Status {
	case StatusNotLoaded:
		fmt.Fprintf(&sb, "\n%s: loading...\n", state.Category.Label())
		return sb.String()
	case StatusFailed:
		fmt.Fprintf(&sb, "\n%s: unavailable (%s)\n", state.Category.Label(), state.Kind())
		return sb.String()
	}

	if len(state.Titles) == 0 {
		fmt.Fprintf(&sb, "\n%s: nothing to show\n", state.Category.Label())
		return sb.String()
	}

	fmt.Fprintf(&sb, "\n%s (%d):\n\n", state.Category.Label(), len(state.Titles))

	for i, title := range state.Titles {
		isLast := i == len(state.Titles)-1
		prefix := "├"
		if isLast {
			prefix = "╰"
		}

		fmt.Fprintf(&sb, "%s── %s", prefix, title.DisplayName("(untitled)"))
		if id, ok := title.ID.Get(); ok {
			fmt.Fprintf(&sb, " [%d]", id)
		}
		sb.WriteString("\n")

		if !f.options.ShowDetails {
			continue
		}

		indent := "│   "
		if isLast {
			indent = "    "
		}

		if poster, ok := f.posterURL(title); ok {
			fmt.Fprintf(&sb, "%sPoster: %s\n", indent, poster)
		}
	}

	return sb.String()
}

func (f *ConsoleFormatter) posterURL(title tmdb.Title) (string, bool) {
	if f.options.ImageBase == "" || f.options.PosterSize == "" {
		return "", false
	}
	return title.PosterURL(f.options.ImageBase, f.options.PosterSize).Get()
}
