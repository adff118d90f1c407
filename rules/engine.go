package rules

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultRule names the decision taken when no rule matches.
const DefaultRule = "default"

// Decision is the stance chosen for one skirmish and the rule that chose it.
type Decision struct {
	Stance Stance
	Rule   string
}

// Engine runs compiled stance rules against skirmishes each tick.
// Rules are tried in priority order and the first true condition wins.
type Engine struct {
	mu    sync.RWMutex
	rules []*Rule
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by priority.
func NewEngine(rules []*Rule) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled}, nil
}

// Decide picks the stance for one skirmish. Without a matching rule the
// skirmish is fought exactly when its evaluation is not negative.
func (e *Engine) Decide(env RuleEnv) Decision {
	e.mu.RLock()
	rules := e.rules
	e.mu.RUnlock()

	for _, r := range rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}
		if match, ok := result.(bool); ok && match {
			return Decision{Stance: r.Stance, Rule: r.Name}
		}
	}
	if env.Evaluation() >= 0 {
		return Decision{Stance: Attack, Rule: DefaultRule}
	}
	return Decision{Stance: FallBack, Rule: DefaultRule}
}

// Rules returns the active rule set in evaluation order.
func (e *Engine) Rules() []*Rule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rules
}

// Swap atomically replaces the rule set (called when the doctrine is
// reloaded). Compiles first; if compilation fails the old rules remain active.
func (e *Engine) Swap(newRules []*Rule) error {
	compiled, err := compileRules(newRules)
	if err != nil {
		return err
	}
	names := make([]string, len(compiled))
	for i, r := range compiled {
		names[i] = r.Name
	}
	e.mu.Lock()
	e.rules = compiled
	e.mu.Unlock()
	slog.Info("rule set swapped", "count", len(compiled), "rules", names)
	return nil
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	out := make([]*Rule, 0, len(rules))
	for _, r := range rules {
		if !r.Stance.Valid() {
			return nil, fmt.Errorf("rule %q: unknown stance %q", r.Name, r.Stance)
		}
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		c := *r
		c.program = prog
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out, nil
}
