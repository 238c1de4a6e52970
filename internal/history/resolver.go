package history

import "fmt"

// Resolver folds a fact stream into one Attribution per path component.
// The first fact recorded for a component wins; later facts are discarded.
// A Resolver belongs to a single resolution pass and is not safe for
// concurrent use.
type Resolver struct {
	entries map[string]Attribution
}

// NewResolver returns an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{entries: make(map[string]Attribution)}
}

// Add records f unless its component already has an attribution.
// It reports whether f was recorded.
func (r *Resolver) Add(f Fact) bool {
	if _, seen := r.entries[f.Component]; seen {
		return false
	}
	r.entries[f.Component] = f.Attribution
	return true
}

// Get returns the attribution recorded for component, if any.
func (r *Resolver) Get(component string) (Attribution, bool) {
	a, ok := r.entries[component]
	return a, ok
}

// Len returns the number of resolved components.
func (r *Resolver) Len() int {
	return len(r.entries)
}

// Restrict intersects the resolved mapping with the names present in the
// directory right now, preserving the order of live. Names without history
// (untracked or ignored content) are omitted.
func (r *Resolver) Restrict(live []string) []Entry {
	out := make([]Entry, 0, len(live))
	for _, name := range live {
		if a, ok := r.entries[name]; ok {
			out = append(out, Entry{Name: name, Attribution: a})
		}
	}
	return out
}

// Missing returns the names in live that have no attribution.
func (r *Resolver) Missing(live []string) []string {
	var out []string
	for _, name := range live {
		if _, ok := r.entries[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// Resolve walks w's history and folds every fact into a new Resolver.
func Resolve(w *Walker) (*Resolver, error) {
	r := NewResolver()
	if err := w.Walk(func(f Fact) error {
		r.Add(f)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("resolving last commits: %w", err)
	}
	return r, nil
}
