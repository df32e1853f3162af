package widgets

import (
	"sort"
	"strings"
	"sync"
)

// Matcher decides whether a widget kind should handle the supplied field.
type Matcher func(spec Spec) bool

type rule struct {
	kind     Kind
	priority int
	match    Matcher
	order    int
}

// Registry selects widget kinds for fields based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order. Fields nothing matches resolve to KindText.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for kind with the provided priority.
func (r *Registry) Register(kind Kind, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := Kind(strings.TrimSpace(string(kind)))
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget kind for a field. An explicit widget hint is
// honoured before matcher evaluation.
func (r *Registry) Resolve(spec Spec) Kind {
	if explicit := explicitKind(spec); explicit != "" {
		return explicit
	}
	if r == nil {
		return KindText
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(spec) {
			return entry.kind
		}
	}
	return KindText
}

func explicitKind(spec Spec) Kind {
	if spec.Hints == nil {
		return ""
	}
	return Kind(strings.ToLower(strings.TrimSpace(spec.Hints["widget"])))
}

func (r *Registry) registerBuiltins() {
	r.Register(KindSecret, 90, func(spec Spec) bool {
		return spec.Type == TypeString && strings.EqualFold(strings.TrimSpace(spec.Format), "password")
	})

	r.Register(KindInteger, 70, func(spec Spec) bool {
		return spec.Type == TypeInteger
	})

	r.Register(KindNumber, 60, func(spec Spec) bool {
		return spec.Type == TypeNumber
	})
}
