package generate

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(templates []*Template) []string {
	var out []string
	for _, t := range templates {
		out = append(out, t.Name)
	}
	return out
}

func newTestRegistry(t *testing.T, templateNames ...string) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, name := range templateNames {
		r.Register(&Template{Name: name})
	}
	return r
}

func TestRegistryTemplatesAreSorted(t *testing.T) {
	r := newTestRegistry(t, "zeta", "alpha", "mid")
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names(r.Templates()))
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := newTestRegistry(t, "hello")
	assert.Panics(t, func() { r.Register(&Template{Name: "hello"}) })
	assert.Panics(t, func() { r.Register(&Template{}) })
}

func TestRegistryResolve(t *testing.T) {
	r := newTestRegistry(t, "enum", "hello", "module")

	tests := []struct {
		name     string
		names    []string
		werror   bool
		expected []string
		wantErr  bool
	}{
		{name: "all", expected: []string{"enum", "hello", "module"}},
		{name: "selection keeps order", names: []string{"module", "enum"}, expected: []string{"module", "enum"}},
		{name: "duplicates collapse", names: []string{"hello", "hello"}, expected: []string{"hello"}},
		{name: "unknown is dropped", names: []string{"hello", "nope"}, expected: []string{"hello"}},
		{name: "unknown fails with werror", names: []string{"hello", "nope"}, werror: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.names, tt.werror)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownTemplate))
				assert.NotEmpty(t, errors.FlattenHints(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names(got))
		})
	}
}

func TestRegistryResolveEmpty(t *testing.T) {
	r := NewRegistry()

	got, err := r.Resolve(nil, false)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = r.Resolve(nil, true)
	assert.Error(t, err)
}
