package generate

import (
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"
)

var ErrUnknownTemplate = errors.New("unknown template")

// Registry holds templates by name.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*Template
	log       commonlog.Logger
}

func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]*Template),
		log:       commonlog.GetLogger("jgen.generate"),
	}
}

// DefaultRegistry is where packages register their templates from init.
var DefaultRegistry = NewRegistry()

// Register adds t to the default registry.
func Register(t *Template) {
	DefaultRegistry.Register(t)
}

// Registered lists the templates of the default registry.
func Registered() []*Template {
	return DefaultRegistry.Templates()
}

// Resolve selects templates from the default registry.
func Resolve(names []string, werror bool) ([]*Template, error) {
	return DefaultRegistry.Resolve(names, werror)
}

// Register adds t. It panics if t has no name or the name is taken, since
// both are programming errors in an init function.
func (r *Registry) Register(t *Template) {
	if t == nil || t.Name == "" {
		panic("generate: Register of unnamed template")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.templates[t.Name]; dup {
		panic("generate: Register called twice for template " + t.Name)
	}
	r.templates[t.Name] = t
}

// Templates returns every template sorted by name.
func (r *Registry) Templates() []*Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b *Template) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Resolve returns the named templates, or all of them when names is empty.
// Unknown names are logged and dropped; with werror the first one is
// returned as an error instead.
func (r *Registry) Resolve(names []string, werror bool) ([]*Template, error) {
	if len(names) == 0 {
		all := r.Templates()
		if len(all) == 0 {
			if werror {
				return nil, errors.New("no templates registered")
			}
			r.log.Warning("no templates registered")
		}
		return all, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Template
	seen := make(map[string]bool)
	for _, name := range names {
		t, ok := r.templates[name]
		if !ok {
			if werror {
				return nil, errors.WithHint(
					errors.Wrapf(ErrUnknownTemplate, "%q", name),
					"run `jgen list` to see the registered templates")
			}
			r.log.Warningf("unknown template %q", name)
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, t)
	}
	return out, nil
}
