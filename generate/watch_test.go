package generate

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/jgen/java"
)

// waitForRun returns the next run reported on runs or fails the test.
func waitForRun(t *testing.T, runs <-chan *Report) *Report {
	t.Helper()
	select {
	case r := <-runs:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not run after the source changed")
		return nil
	}
}

func TestWatcherRerunsOnChange(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(t.TempDir(), "widget.go")
	require.NoError(t, os.WriteFile(source, []byte("package samples\n"), 0o644))

	body := "return;"
	var calls atomic.Int32
	tmpl := classTemplate("Widget", &body, &calls)
	tmpl.Modified = time.Time{}
	tmpl.SourceFile = source

	w, err := NewWatcher(NewDriver(Options{OutputDir: root}), []*Template{tmpl})
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	runs := make(chan *Report, 4)
	w.OnRun(func(r *Report, err error) {
		assert.NoError(t, err)
		runs <- r
	})
	w.Start()
	defer w.Stop()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(source), "other.go"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(source, []byte("package samples\n\n// edited\n"), 0o644))

	select {
	case r := <-runs:
		assert.Equal(t, 0, r.Status())
		assert.FileExists(t, tmpl.Target.Path(root))
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not run after the source changed")
	}
}

func TestWatcherRegeneratesFromEditedInput(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(t.TempDir(), "greeting.txt")
	require.NoError(t, os.WriteFile(input, []byte("Hello"), 0o644))

	tmpl := &Template{
		Name:       "greeter",
		SourceFile: input,
		Target:     Target{SourceSet: "generated", Package: "com.example", FileName: "Greeter"},
		Produce: func() (*java.CompilationUnit, error) {
			text, err := os.ReadFile(input)
			if err != nil {
				return nil, err
			}
			cu := java.NewCompilationUnit("com.example")
			cu.Class("Greeter", java.Public).
				Field(java.String, "GREETING", java.Public|java.Static|java.Final).
				Init(`"` + strings.TrimSpace(string(text)) + `"`)
			return cu, nil
		},
	}

	d := NewDriver(Options{OutputDir: root})
	report, err := d.Run([]*Template{tmpl})
	require.NoError(t, err)
	require.Equal(t, 0, report.Status())
	out := tmpl.Target.Path(root)
	before, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(before), `"Hello"`)

	w, err := NewWatcher(d, []*Template{tmpl})
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	runs := make(chan *Report, 4)
	w.OnRun(func(r *Report, err error) {
		assert.NoError(t, err)
		runs <- r
	})
	w.Start()
	defer w.Stop()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, os.WriteFile(input, []byte("Goodbye"), 0o644))

	r := waitForRun(t, runs)
	assert.Equal(t, []string{out}, r.Touched)
	after, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(after), `"Goodbye"`)
	assert.NotContains(t, string(after), `"Hello"`)
}

func TestWatcherExecRunsCommand(t *testing.T) {
	cp, err := exec.LookPath("cp")
	if err != nil {
		t.Skip("cp not available")
	}
	source := filepath.Join(t.TempDir(), "Widget.java.in")
	require.NoError(t, os.WriteFile(source, []byte("class Widget {}\n"), 0o644))
	dest := filepath.Join(t.TempDir(), "Widget.java")

	w, err := NewWatcher(NewDriver(Options{OutputDir: t.TempDir()}), nil, source)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	w.Exec(cp, source, dest)

	runs := make(chan *Report, 4)
	w.OnRun(func(r *Report, err error) {
		assert.NoError(t, err)
		runs <- r
	})
	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(source, []byte("class Widget { int size; }\n"), 0o644))

	assert.Nil(t, waitForRun(t, runs))
	out, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "class Widget { int size; }\n", string(out))
}

func TestWatcherExecReportsFailure(t *testing.T) {
	source := filepath.Join(t.TempDir(), "widget.go")
	require.NoError(t, os.WriteFile(source, nil, 0o644))

	w, err := NewWatcher(NewDriver(Options{OutputDir: t.TempDir()}), nil, source)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	w.Exec(filepath.Join(t.TempDir(), "missing-generator"))

	errs := make(chan error, 4)
	w.OnRun(func(_ *Report, err error) { errs <- err })
	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(source, []byte("package samples\n"), 0o644))

	select {
	case err := <-errs:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not run after the source changed")
	}
}

func TestLogWriterSplitsLines(t *testing.T) {
	var lines []string
	w := &logWriter{
		printf: func(format string, values ...any) {
			lines = append(lines, strings.TrimSpace(fmt.Sprintf(format, values...)))
		},
		prefix: "jgen: ",
	}
	_, _ = w.Write([]byte("one\ntw"))
	_, _ = w.Write([]byte("o\nthree"))
	w.flush()
	assert.Equal(t, []string{"jgen: one", "jgen: two", "jgen: three"}, lines)
}

func TestWatcherNeedsFiles(t *testing.T) {
	_, err := NewWatcher(NewDriver(Options{OutputDir: t.TempDir()}), []*Template{{Name: "x"}})
	assert.Error(t, err)
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	source := filepath.Join(t.TempDir(), "widget.go")
	require.NoError(t, os.WriteFile(source, nil, 0o644))

	w, err := NewWatcher(NewDriver(Options{OutputDir: t.TempDir()}), nil, source)
	require.NoError(t, err)
	w.Start()
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
