package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-md2doc/internal/fileutil"
	"github.com/alnah/go-md2doc/internal/hints"
)

// watchDebounce is the quiet period before changed files are reconverted.
const watchDebounce = 300 * time.Millisecond

// watcher reconverts markdown files under root when they change.
type watcher struct {
	root      string
	outputDir string
	extension string
	conv      CLIConverter
	workers   int
	quiet     bool
	verbose   bool
	env       *Environment
	debounce  time.Duration // zero means watchDebounce
}

// run blocks until ctx is cancelled, converting changed files in batches.
func (w *watcher) run(ctx context.Context) error {
	info, err := os.Stat(w.root)
	if err != nil {
		return err
	}
	single := !info.IsDir()

	fw, err := setupFileWatcher(w.root, single)
	if err != nil {
		return fmt.Errorf("watching %s: %w%s", w.root, err, hints.ForWatch())
	}
	defer fw.Close()

	delay := w.debounce
	if delay == 0 {
		delay = watchDebounce
	}
	changes := newDebouncer(delay)
	defer changes.stop()

	w.env.Logger.Info("watching for changes", "path", w.root)

	for {
		select {
		case <-ctx.Done():
			w.env.Logger.Info("stopped watching", "path", w.root)
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fw, ev, single, changes.add)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.env.Logger.Warn("watcher error", "error", err)
		case paths := <-changes.out:
			w.convert(ctx, paths, single)
		}
	}
}

// handleEvent filters an event and queues the markdown files it touches.
func (w *watcher) handleEvent(fw *fsnotify.Watcher, ev fsnotify.Event, single bool, queue func(string)) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}
	if single {
		if filepath.Clean(ev.Name) == filepath.Clean(w.root) {
			queue(ev.Name)
		}
		return
	}

	// New directories may arrive already populated.
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(fw, ev.Name)
			_ = filepath.WalkDir(ev.Name, func(path string, d fs.DirEntry, err error) error {
				if err == nil && !d.IsDir() && fileutil.IsMarkdown(path) {
					queue(path)
				}
				return nil
			})
			return
		}
	}

	if fileutil.IsMarkdown(ev.Name) {
		w.env.Logger.Debug("file change detected", "path", ev.Name, "op", ev.Op.String())
		queue(ev.Name)
	}
}

// convert reconverts the given markdown files and prints the results.
func (w *watcher) convert(ctx context.Context, paths []string, single bool) {
	files := w.filesFor(paths, single)
	if len(files) == 0 {
		return
	}
	w.env.Logger.Info("change detected; reconverting", "files", len(files))
	results := convertBatch(ctx, w.conv, files, w.workers)
	printResultsWithWriter(results, w.quiet, w.verbose, w.env)
}

// filesFor maps changed paths to conversions, dropping files that no
// longer exist.
func (w *watcher) filesFor(paths []string, single bool) []FileToConvert {
	base := w.root
	if single {
		base = ""
	}
	files := make([]FileToConvert, 0, len(paths))
	for _, p := range paths {
		if !fileutil.FileExists(p) {
			continue
		}
		files = append(files, FileToConvert{
			InputPath:  p,
			OutputPath: resolveOutputPath(p, w.outputDir, base, w.extension),
		})
	}
	return files
}

// setupFileWatcher creates the filesystem watcher. A single file is
// watched through its directory so editors that replace the file on save
// keep being tracked.
func setupFileWatcher(root string, single bool) (*fsnotify.Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	if single {
		err = fw.Add(filepath.Dir(root))
	} else {
		err = addDirsRecursive(fw, root)
	}
	if err != nil {
		_ = fw.Close()
		return nil, err
	}
	return fw, nil
}

// addDirsRecursive watches root and every non-hidden directory below it.
func addDirsRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not
// trigger a conversion.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	// Ignore hidden files, atomic-write temp files included
	if strings.HasPrefix(base, ".") {
		return true
	}

	// Ignore editor temp/swap files
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}

	return base == "Thumbs.db"
}

// debouncer collects paths and emits them as one sorted batch once no new
// path has arrived for the configured delay.
type debouncer struct {
	out chan []string

	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending map[string]bool
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		out:     make(chan []string, 1),
		delay:   delay,
		pending: make(map[string]bool),
	}
}

// add queues path and restarts the quiet period.
func (d *debouncer) add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending[path] = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.flush)
}

// flush emits the pending batch. When the previous batch has not been
// consumed yet the paths stay pending and the timer is rearmed.
func (d *debouncer) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || len(d.pending) == 0 {
		return
	}

	paths := make([]string, 0, len(d.pending))
	for p := range d.pending {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	select {
	case d.out <- paths:
		d.pending = make(map[string]bool)
	default:
		d.timer = time.AfterFunc(d.delay, d.flush)
	}
}

// stop cancels any pending emission.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
