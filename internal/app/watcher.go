// watcher.go monitors the workspace directory for external changes.
//
// An fsnotify watcher is registered on the workspace root and every
// subdirectory (fsnotify is non-recursive, so directories created later are
// added as their create events arrive). Raw events are coalesced on a
// background goroutine: each event resets a short debounce timer, and only
// when the timer fires is a single change notification pushed to the UI. The
// Bubble Tea side blocks on the notification channel via waitForChange, so a
// burst of writes from an external tool produces one tree refresh, not one
// per file.
package app

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// workspaceChangedMsg is delivered to Update after the watcher observed (and
// debounced) external filesystem activity under the workspace root.
type workspaceChangedMsg struct{}

type workspaceWatcher struct {
	fs      *fsnotify.Watcher
	changes chan struct{}
}

// newWorkspaceWatcher starts watching root and all of its subdirectories.
func newWorkspaceWatcher(root string) (*workspaceWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &workspaceWatcher{
		fs:      fsw,
		changes: make(chan struct{}, 1),
	}
	if err := w.addRecursive(root); err != nil {
		fsw.Close()
		return nil, err
	}
	go w.run()
	return w, nil
}

// addRecursive registers root and every directory below it, skipping
// dot-directories so .git churn does not wake the browser.
func (w *workspaceWatcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && isDotName(d.Name()) {
			return filepath.SkipDir
		}
		return w.fs.Add(path)
	})
}

// run coalesces raw fsnotify events into single change notifications. New
// directories are added to the watch set as their create events arrive. The
// goroutine exits when the underlying watcher is closed.
func (w *workspaceWatcher) run() {
	defer close(w.changes)

	var debounce *time.Timer
	fire := func() {
		select {
		case w.changes <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if isDotName(filepath.Base(event.Name)) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.fs.Add(event.Name); err != nil {
						appLog.Warn("watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(WatchDebounce, fire)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			appLog.Warn("workspace watcher", "error", err)
		}
	}
}

// waitForChange returns a Cmd that blocks until the next (debounced) change
// notification. Update re-issues it after handling each workspaceChangedMsg.
func (w *workspaceWatcher) waitForChange() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.changes; !ok {
			return nil
		}
		return workspaceChangedMsg{}
	}
}

func (w *workspaceWatcher) Close() error {
	return w.fs.Close()
}

func isDotName(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
