package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/jgen/format"
)

// DefaultWorkers is the number of templates generated concurrently when
// Options.Workers is zero.
const DefaultWorkers = 4

var (
	ErrNoOutputDir    = errors.New("output directory is not set")
	ErrInvalidWorkers = errors.New("worker count must be at least 1")
)

// Action is a filesystem decision taken for one output.
type Action string

const (
	ActionMkdir  Action = "MKDIR"
	ActionWrite  Action = "WRITING"
	ActionUpdate Action = "UPDATING"
	ActionTouch  Action = "TOUCH"
	ActionSkip   Action = "SKIP"
)

type Options struct {
	OutputDir string
	Workers   int
	// Force renders every template regardless of timestamps.
	Force bool
	// GeneratorTimestamp is the modification time of the generator itself.
	// Outputs older than it are regenerated.
	GeneratorTimestamp time.Time
	// OnAction, if set, observes every action. It is called from worker
	// goroutines.
	OnAction func(action Action, path string)
	Logger   commonlog.Logger
}

// Driver generates templates in parallel. A failing template never stops
// its siblings.
type Driver struct {
	opts Options
	log  commonlog.Logger
}

func NewDriver(opts Options) *Driver {
	if opts.Workers == 0 {
		opts.Workers = DefaultWorkers
	}
	log := opts.Logger
	if log == nil {
		log = commonlog.GetLogger("jgen.generate")
	}
	return &Driver{opts: opts, log: log}
}

func (d *Driver) Options() Options {
	return d.opts
}

// Report summarizes one run.
type Report struct {
	Failed   int
	Failures map[string]error
	// Touched lists the paths that were written, updated or touched, sorted.
	Touched []string
	Skipped []string

	mu sync.Mutex
}

// Status is 0 after a clean run and the number of failed templates
// otherwise.
func (r *Report) Status() int {
	return r.Failed
}

func (r *Report) touch(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Touched = append(r.Touched, path)
}

func (r *Report) skip(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Skipped = append(r.Skipped, path)
}

func (r *Report) fail(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures[name] = err
}

// Run generates every template and waits for all of them. The returned
// error is reserved for invalid options; template failures are counted in
// the report.
func (d *Driver) Run(templates []*Template) (*Report, error) {
	if err := d.check(); err != nil {
		return nil, err
	}

	report := &Report{Failures: make(map[string]error)}
	var failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(d.opts.Workers)
	for _, t := range templates {
		g.Go(func() error {
			if err := d.generate(t, report); err != nil {
				failed.Add(1)
				report.fail(t.Name, err)
				d.log.Errorf("%s: %+v", t.Name, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Failed = int(failed.Load())
	slices.Sort(report.Touched)
	slices.Sort(report.Skipped)
	return report, nil
}

func (d *Driver) check() error {
	if d.opts.OutputDir == "" {
		return errors.WithHint(ErrNoOutputDir, "pass --out or set outputDir in jgen.yaml")
	}
	info, err := os.Stat(d.opts.OutputDir)
	if err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "output directory %s", d.opts.OutputDir),
			"the output root must exist before generating")
	}
	if !info.IsDir() {
		return errors.Newf("output directory %s is not a directory", d.opts.OutputDir)
	}
	if d.opts.Workers < 1 {
		return errors.Wrapf(ErrInvalidWorkers, "got %d", d.opts.Workers)
	}
	return nil
}

// effectiveTimestamp is the later of the template's and the generator's
// modification times.
func (d *Driver) effectiveTimestamp(t *Template) time.Time {
	ts := t.sourceTimestamp()
	if d.opts.GeneratorTimestamp.After(ts) {
		ts = d.opts.GeneratorTimestamp
	}
	return ts
}

func (d *Driver) generate(t *Template, report *Report) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("template panicked: %v", r)
		}
	}()

	if t.Produce == nil {
		return errors.New("template has no producer")
	}

	path := t.Target.Path(d.opts.OutputDir)
	effective := d.effectiveTimestamp(t)

	info, err := os.Stat(path)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "stat %s", path)
	}
	if exists && info.IsDir() {
		return errors.Newf("%s is a directory", path)
	}

	if exists && !d.opts.Force && !effective.IsZero() && !info.ModTime().Before(effective) {
		d.notify(ActionSkip, path)
		report.skip(path)
		return nil
	}

	cu, err := t.Produce()
	if err != nil {
		return errors.Wrap(err, "produce")
	}
	out, err := format.Render(cu)
	if err != nil {
		return errors.Wrap(err, "render")
	}

	if !exists {
		if err := d.ensureDir(filepath.Dir(path)); err != nil {
			return err
		}
		d.notify(ActionWrite, path)
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
		report.touch(path)
		return nil
	}

	current, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	if len(current) == len(out) && bytes.Equal(current, out) {
		d.notify(ActionTouch, path)
	} else {
		d.notify(ActionUpdate, path)
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
	}
	if !effective.IsZero() {
		if err := os.Chtimes(path, effective, effective); err != nil {
			return errors.Wrapf(err, "set modification time of %s", path)
		}
	}
	report.touch(path)
	return nil
}

func (d *Driver) ensureDir(dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return nil
	}
	d.notify(ActionMkdir, dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}
	return nil
}

func (d *Driver) notify(action Action, path string) {
	switch action {
	case ActionMkdir, ActionWrite, ActionUpdate:
		d.log.Infof("%s: %s", action, path)
	default:
		d.log.Debugf("%s: %s", action, path)
	}
	if d.opts.OnAction != nil {
		d.opts.OnAction(action, path)
	}
}
