// Package reloader watches a service-config document on disk and recompiles
// it when it changes. A document that fails compilation is logged and
// dropped; the previously loaded snapshot keeps serving, so a bad push from
// the control plane never degrades a running process.
package reloader

import (
	"errors"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/routekit/svcconfig/internal/snapshot"
)

const defaultDebounce = 300 * time.Millisecond

type Options struct {
	// Path of the service-config document to watch.
	Path string

	// Debounce collapses bursts of filesystem events into one reload.
	// Zero means defaultDebounce.
	Debounce time.Duration

	// OnReload receives each successfully compiled snapshot.
	OnReload func(*snapshot.Snapshot)
}

type watcherCloser struct {
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func (c *watcherCloser) Close() error {
	close(c.stopCh)
	err := c.watcher.Close()
	<-c.doneCh
	return err
}

// Start begins watching. The watch is on the document's directory, not the
// file itself, so atomic-rename writers (editors, configmap mounts) keep
// triggering reloads.
func Start(opts Options) (io.Closer, error) {
	if opts.Path == "" || opts.OnReload == nil {
		return nil, errors.New("reloader: path and OnReload are required")
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(opts.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	c := &watcherCloser{
		watcher: watcher,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go run(opts, debounce, c)
	return c, nil
}

func run(opts Options, debounce time.Duration, c *watcherCloser) {
	defer close(c.doneCh)

	base := filepath.Base(opts.Path)
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerC = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(debounce)
		timerC = timer.C
	}
	reload := func() {
		snap, err := snapshot.Load(opts.Path)
		if err != nil {
			log.Printf("service config reload failed, keeping previous: %v", err)
			return
		}
		opts.OnReload(snap)
		log.Printf("service config reloaded: path=%q methods=%d", opts.Path, snap.Table.Len())
	}

	for {
		select {
		case <-c.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-timerC:
			timerC = nil
			reload()
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("service config watcher error: %v", err)
		case evt, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(evt.Name) != base {
				continue
			}
			if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				resetTimer()
			}
		}
	}
}
