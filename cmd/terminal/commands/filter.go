package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
)

// itemFilter evaluates an expr expression against the JSON fields of a resource,
// e.g. `status == "available" && amount < 50000`.
type itemFilter struct {
	expression string
	program    *vm.Program
}

// compileFilter compiles expression. An empty expression yields a nil filter
// that matches everything.
func compileFilter(expression string) (*itemFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil //nolint:nilnil // nil filter matches everything
	}

	program, err := expr.Compile(expression, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", expression, err)
	}

	return &itemFilter{expression: expression, program: program}, nil
}

// Match reports whether item satisfies the filter.
func (f *itemFilter) Match(item interface{}) (bool, error) {
	if f == nil {
		return true, nil
	}

	env, err := filterEnv(item)
	if err != nil {
		return false, err
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q: %w", f.expression, err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q", constants.ErrFilterNotBoolean, f.expression)
	}

	return matched, nil
}

// filterEnv exposes item's JSON fields as expression variables.
func filterEnv(item interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encoding filter input: %w", err)
	}

	env := map[string]interface{}{}

	err = json.Unmarshal(data, &env)
	if err != nil {
		return nil, fmt.Errorf("decoding filter input: %w", err)
	}

	return env, nil
}

// filterItems returns the items matching expression.
func filterItems[T any](expression string, items []T) ([]T, error) {
	filter, err := compileFilter(expression)
	if err != nil {
		return nil, err
	}

	if filter == nil {
		return items, nil
	}

	matched := make([]T, 0, len(items))

	for _, item := range items {
		ok, err := filter.Match(item)
		if err != nil {
			return nil, err
		}

		if ok {
			matched = append(matched, item)
		}
	}

	return matched, nil
}
