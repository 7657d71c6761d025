// Package watch notifies about changes to an exported events file so the
// report can be re-rendered without polling.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/go-activity-monitor/internal/core/constants"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

// FileWatcher reports changes to a single file, debounced so a burst of
// writes produces one notification.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan struct{}
}

// NewFileWatcher watches the given file. The parent directory is registered
// instead of the file itself: editors and exporters replace files on save,
// which would silently drop a watch on the old inode.
func NewFileWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		path:    abs,
		changes: make(chan struct{}, 1),
	}
	go fw.processEvents()

	return fw, nil
}

// Changes delivers one notification per settled burst of file changes.
func (fw *FileWatcher) Changes() <-chan struct{} {
	return fw.changes
}

func (fw *FileWatcher) processEvents() {
	var debounce *time.Timer

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Name != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			util.LogDebugf("watch: %s %s", event.Op, event.Name)
			if debounce == nil {
				debounce = time.AfterFunc(constants.WatchDebounce, fw.notify)
			} else {
				debounce.Reset(constants.WatchDebounce)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("watch: " + err.Error())
		}
	}
}

func (fw *FileWatcher) notify() {
	select {
	case fw.changes <- struct{}{}:
	default:
	}
}

// Close stops the watcher. Pending notifications may still be delivered.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
