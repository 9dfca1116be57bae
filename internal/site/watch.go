package site

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// rebuildDebounce is how long the watcher waits after the last change
// before rebuilding.
const rebuildDebounce = 500 * time.Millisecond

// Watch rebuilds the site whenever a file under StaticDir changes, until
// ctx is done. The initial build is the caller's job.
func (g *Generator) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if _, err := os.Stat(g.StaticDir); os.IsNotExist(err) {
		log.Printf("site: static dir %s not found, nothing to watch", g.StaticDir)
		<-ctx.Done()
		return nil
	}

	err = filepath.WalkDir(g.StaticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("site: walking %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				log.Printf("site: watching %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking static dir: %w", err)
	}

	rebuild := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					log.Printf("site: watching %s: %v", event.Name, err)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(rebuildDebounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})

		case <-rebuild:
			n, err := g.Generate()
			if err != nil {
				log.Printf("site: rebuild failed: %v", err)
				continue
			}
			log.Printf("site: rebuilt %d files", n)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("site: watcher error: %v", err)
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
