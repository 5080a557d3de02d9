// Package filter selects catalog titles with expr-lang expressions, e.g.
//
//	hasText(Title, "star") and HasPoster
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/samber/lo"

	"github.com/s0up4200/marquee/tmdb"
)

// ExprFilter represents a compiled expr filter
type ExprFilter struct {
	program *vm.Program
	expr    string
}

// helpers are case-insensitive matchers available to every expression. The
// case-sensitive forms are expr's own contains, startsWith and endsWith
// operators.
var helpers = map[string]any{
	"hasText": func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	},
	"hasPrefix": func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	},
	"hasSuffix": func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	},
}

// env builds the evaluation environment for one title. Absent fields are
// exposed as zero values next to a Has* flag.
func env(title tmdb.Title) map[string]any {
	e := make(map[string]any, len(helpers)+6)
	for name, fn := range helpers {
		e[name] = fn
	}

	e["Title"] = title.Name.OrEmpty()
	e["ID"] = title.ID.OrEmpty()
	e["PosterPath"] = title.PosterPath.OrEmpty()
	e["HasTitle"] = title.Name.IsPresent()
	e["HasID"] = title.ID.IsPresent()
	e["HasPoster"] = title.PosterPath.IsPresent()
	return e
}

// Compile compiles an expr filter expression
func Compile(expression string) (*ExprFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(env(tmdb.Title{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}

	return &ExprFilter{
		program: program,
		expr:    expression,
	}, nil
}

// Evaluate evaluates the filter against a title. Evaluation errors count as
// no match.
func (f *ExprFilter) Evaluate(title tmdb.Title) bool {
	result, err := expr.Run(f.program, env(title))
	if err != nil {
		return false
	}

	matched, ok := result.(bool)
	return ok && matched
}

// Apply returns the titles that match, preserving order
func (f *ExprFilter) Apply(titles []tmdb.Title) []tmdb.Title {
	return lo.Filter(titles, func(t tmdb.Title, _ int) bool {
		return f.Evaluate(t)
	})
}

// String returns the original expression
func (f *ExprFilter) String() string {
	return f.expr
}
