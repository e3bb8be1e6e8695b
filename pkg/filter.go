package pkg

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dzjyyds666/siq/parse/sii"
)

// Filter is a compiled boolean expression over one section. The section's
// fields are variables, plus __type, __name and __path.
type Filter struct {
	src string
	prg *vm.Program
}

func CompileFilter(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string { return f.src }

// Match evaluates the filter against m.
func (f *Filter) Match(m sii.Match) (bool, error) {
	env, _ := sii.ToUntyped(m.Section).(map[string]any)
	env["__name"] = m.Key
	env["__path"] = m.Path.String()
	out, err := expr.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("filter %q on %s: %w", f.src, m.Path, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Select keeps the matches f accepts. A nil filter keeps all of them.
func Select(ms []sii.Match, f *Filter) ([]sii.Match, error) {
	if f == nil {
		return ms, nil
	}
	out := ms[:0:0]
	for _, m := range ms {
		ok, err := f.Match(m)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}
