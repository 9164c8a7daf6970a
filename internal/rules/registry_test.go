package rules

import "testing"

type fakeRule struct {
	name string
	fact Fact
}

func (r *fakeRule) Metadata() RuleMetadata {
	return RuleMetadata{Name: r.name, Code: r.name, Fact: r.fact}
}

func (r *fakeRule) Lint(Input) []Finding { return nil }

func (r *fakeRule) Fix(input Input) string { return input.Line }

type fakeStatefulRule struct {
	fakeRule
	resets int
}

func (r *fakeStatefulRule) Reset() { r.resets++ }

func TestRegistryBuckets(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&fakeRule{name: "a", fact: FactLine})
	registry.MustRegister(&fakeRule{name: "b", fact: FactCodeLine})
	registry.MustRegister(&fakeRule{name: "c", fact: FactCommentLine})
	registry.MustRegister(&fakeRule{name: "d", fact: FactLine})

	if got := len(registry.CommonRules()); got != 2 {
		t.Errorf("common bucket size = %d, want 2", got)
	}
	if got := len(registry.CodeRules()); got != 1 {
		t.Errorf("code bucket size = %d, want 1", got)
	}
	if got := len(registry.CommentRules()); got != 1 {
		t.Errorf("comment bucket size = %d, want 1", got)
	}

	all := registry.All()
	wantOrder := []string{"a", "d", "b", "c"}
	if len(all) != len(wantOrder) {
		t.Fatalf("All() size = %d, want %d", len(all), len(wantOrder))
	}
	for i, name := range wantOrder {
		if all[i].Metadata().Name != name {
			t.Errorf("All()[%d] = %q, want %q", i, all[i].Metadata().Name, name)
		}
	}
}

func TestRegistryIdempotentRegistration(t *testing.T) {
	registry := NewRegistry()
	rule := &fakeRule{name: "a", fact: FactLine}
	registry.MustRegister(rule)
	registry.MustRegister(rule)

	if got := len(registry.CommonRules()); got != 1 {
		t.Errorf("common bucket size = %d, want 1", got)
	}
}

func TestRegistryRejectsMissingFact(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&fakeRule{name: "a", fact: FactNone}); err == nil {
		t.Error("registering a rule without a fact should fail")
	}
	if err := registry.Register(&fakeRule{fact: FactLine}); err == nil {
		t.Error("registering a nameless rule should fail")
	}
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()
	rule := &fakeRule{name: "a", fact: FactLine}
	registry.MustRegister(rule)

	got, ok := registry.Get("a")
	if !ok || got != rule {
		t.Errorf("Get(a) = %v, %v", got, ok)
	}
	if _, ok := registry.Get("missing"); ok {
		t.Error("Get(missing) should report absence")
	}
}

func TestRegistryStatefulRules(t *testing.T) {
	registry := NewRegistry()
	stateful := &fakeStatefulRule{fakeRule: fakeRule{name: "s", fact: FactLine}}
	registry.MustRegister(&fakeRule{name: "a", fact: FactLine})
	registry.MustRegister(stateful)

	got := registry.StatefulRules()
	if len(got) != 1 {
		t.Fatalf("got %d stateful rules, want 1", len(got))
	}
	got[0].Reset()
	if stateful.resets != 1 {
		t.Errorf("resets = %d, want 1", stateful.resets)
	}
}
