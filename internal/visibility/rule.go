package visibility

import (
	"sync"

	"github.com/bornholm/vitrine/internal/schema"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
)

// DefaultScript hides the items requiring an authenticated visitor.
const DefaultScript = "!authRequired || authenticated"

// Env describes the visitor the navigation is rendered for.
type Env struct {
	Authenticated bool
}

// Rule decides whether a navigation item is shown. It is compiled on first
// use and safe for concurrent use.
type Rule struct {
	script  string
	program *vm.Program

	compileOnce sync.Once
	compileErr  error
}

func (r *Rule) Visible(item schema.NavItem, env Env) (bool, error) {
	program, err := r.getProgram()
	if err != nil {
		return false, errors.WithStack(err)
	}

	result, err := expr.Run(program, ruleEnv(item, env))
	if err != nil {
		return false, errors.WithStack(err)
	}

	visible, ok := result.(bool)
	if !ok {
		return false, errors.Errorf("unexpected rule '%s' result type '%T', expected boolean", r.script, result)
	}

	return visible, nil
}

// Compile reports a syntax or type error of the rule without evaluating it.
func (r *Rule) Compile() error {
	_, err := r.getProgram()
	return errors.WithStack(err)
}

func (r *Rule) getProgram() (*vm.Program, error) {
	r.compileOnce.Do(func() {
		program, err := expr.Compile(r.script, expr.AsBool(), expr.Env(ruleEnv(schema.NavItem{}, Env{})))
		if err != nil {
			r.compileErr = errors.Wrapf(err, "could not compile visibility rule '%s'", r.script)
			return
		}

		r.program = program
	})
	if r.compileErr != nil {
		return nil, errors.WithStack(r.compileErr)
	}

	return r.program, nil
}

func (r *Rule) String() string {
	return r.script
}

func NewRule(script string) *Rule {
	if script == "" {
		script = DefaultScript
	}

	return &Rule{script: script}
}

func ruleEnv(item schema.NavItem, env Env) map[string]any {
	return map[string]any{
		"label":         item.Label,
		"href":          item.Href,
		"authRequired":  item.AuthRequired,
		"authenticated": env.Authenticated,
	}
}

// Filter returns the visible items, in order. The result is never nil.
func Filter(items []schema.NavItem, rule *Rule, env Env) ([]schema.NavItem, error) {
	visible := make([]schema.NavItem, 0, len(items))

	for _, item := range items {
		ok, err := rule.Visible(item, env)
		if err != nil {
			return nil, errors.Wrapf(err, "could not evaluate visibility of nav item '%s'", item.Href)
		}

		if ok {
			visible = append(visible, item)
		}
	}

	return visible, nil
}
