package rules

import (
	"fmt"
	"sync"
)

// Registry holds registered rules grouped by the fact they inspect.
// Registration order within a bucket is preserved; the engine runs the
// common bucket first, then code, then comment.
type Registry struct {
	mu      sync.RWMutex
	common  []Rule
	code    []Rule
	comment []Rule
	byName  map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Rule)}
}

// Register adds a rule to the bucket named by its metadata. Registering
// the same rule name twice is a no-op. A rule with FactNone is rejected.
func (r *Registry) Register(rule Rule) error {
	meta := rule.Metadata()
	if meta.Name == "" {
		return fmt.Errorf("rule has no name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[meta.Name]; ok {
		return nil
	}

	switch meta.Fact {
	case FactLine:
		r.common = append(r.common, rule)
	case FactCodeLine:
		r.code = append(r.code, rule)
	case FactCommentLine:
		r.comment = append(r.comment, rule)
	default:
		return fmt.Errorf("rule %q declares no line fact", meta.Name)
	}

	r.byName[meta.Name] = rule
	return nil
}

// MustRegister registers a rule and panics on error. Intended for the
// built-in rule table.
func (r *Registry) MustRegister(rule Rule) {
	if err := r.Register(rule); err != nil {
		panic(err)
	}
}

// CommonRules returns the rules dispatched on every line.
func (r *Registry) CommonRules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.common
}

// CodeRules returns the rules dispatched on code segments.
func (r *Registry) CodeRules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.code
}

// CommentRules returns the rules dispatched on comment segments.
func (r *Registry) CommentRules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.comment
}

// Get looks up a rule by its registered name.
func (r *Registry) Get(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byName[name]
	return rule, ok
}

// All returns every registered rule in dispatch order.
func (r *Registry) All() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Rule, 0, len(r.common)+len(r.code)+len(r.comment))
	all = append(all, r.common...)
	all = append(all, r.code...)
	all = append(all, r.comment...)
	return all
}

// StatefulRules returns the registered rules that carry per-file state.
func (r *Registry) StatefulRules() []StatefulRule {
	var stateful []StatefulRule
	for _, rule := range r.All() {
		if s, ok := rule.(StatefulRule); ok {
			stateful = append(stateful, s)
		}
	}
	return stateful
}
