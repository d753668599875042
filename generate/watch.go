package generate

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

// DefaultDebounce delays a run after the last change.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reruns a driver whenever a template source or an extra file,
// such as the generator binary, changes.
//
// Produce functions compiled into the running process do not change when
// their Go source is edited. In-process runs therefore only pick up changes
// to files the templates read; use Exec to regenerate through a process that
// rebuilds the templates.
type Watcher struct {
	driver    *Driver
	templates []*Template
	files     map[string]bool
	command   []string

	ctx    context.Context
	cancel context.CancelFunc

	watcher  *fsnotify.Watcher
	debounce time.Duration
	onRun    func(*Report, error)
	log      commonlog.Logger

	mu       sync.Mutex
	runMu    sync.Mutex // serializes runs
	timer    *time.Timer
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher watches the source files of templates plus extra. Directories
// are watched rather than files so that editors replacing a file on save
// are noticed.
func NewWatcher(d *Driver, templates []*Template, extra ...string) (*Watcher, error) {
	files := make(map[string]bool)
	for _, t := range templates {
		if t.SourceFile != "" {
			files[filepath.Clean(t.SourceFile)] = true
		}
	}
	for _, f := range extra {
		if f != "" {
			files[filepath.Clean(f)] = true
		}
	}
	if len(files) == 0 {
		return nil, errors.WithHint(
			errors.New("nothing to watch"),
			"templates need a source file, or pass --generator-source")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}
	dirs := make(map[string]bool)
	for f := range files {
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "watch %s", dir)
		}
		dirs[dir] = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		driver:    d,
		templates: templates,
		files:     files,
		ctx:       ctx,
		cancel:    cancel,
		watcher:   fw,
		debounce:  DefaultDebounce,
		log:       d.log,
		stopCh:    make(chan struct{}),
	}, nil
}

// Exec makes every run start argv as a child process instead of running
// the driver in this one, for example "go run ./cmd/jgen generate". Runs
// then report a nil *Report.
func (w *Watcher) Exec(argv ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.command = argv
}

// OnRun registers a callback invoked after every run.
func (w *Watcher) OnRun(f func(*Report, error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onRun = f
}

func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop ends watching. A pending run is cancelled. A run in progress
// finishes, except that a child process is killed.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.cancel()
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			w.log.Debugf("change detected: %s (%s)", event.Name, event.Op)
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warningf("watch error: %s", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.run)
}

func (w *Watcher) run() {
	select {
	case <-w.stopCh:
		return
	default:
	}

	w.runMu.Lock()
	defer w.runMu.Unlock()

	w.mu.Lock()
	onRun := w.onRun
	command := w.command
	w.mu.Unlock()

	var report *Report
	var err error
	if len(command) > 0 {
		err = w.exec(command)
	} else {
		report, err = w.driver.Run(w.templates)
	}
	switch {
	case err != nil:
		w.log.Errorf("generate: %s", err)
	case report != nil && report.Failed > 0:
		w.log.Warningf("%d template(s) failed", report.Failed)
	}

	if onRun != nil {
		onRun(report, err)
	}
}

func (w *Watcher) exec(argv []string) error {
	w.log.Infof("EXEC: %s", strings.Join(argv, " "))

	out := &logWriter{printf: w.log.Infof, prefix: filepath.Base(argv[0]) + ": "}
	defer out.flush()

	cmd := exec.CommandContext(w.ctx, argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "run %s", argv[0])
	}
	return nil
}

// logWriter forwards a child process's output to a logger line by line.
type logWriter struct {
	printf func(format string, values ...any)
	prefix string
	buf    []byte
}

func (l *logWriter) Write(p []byte) (int, error) {
	l.buf = append(l.buf, p...)
	for {
		i := bytes.IndexByte(l.buf, '\n')
		if i < 0 {
			break
		}
		l.printf("%s%s", l.prefix, l.buf[:i])
		l.buf = l.buf[i+1:]
	}
	return len(p), nil
}

func (l *logWriter) flush() {
	if len(l.buf) > 0 {
		l.printf("%s%s", l.prefix, l.buf)
		l.buf = nil
	}
}
