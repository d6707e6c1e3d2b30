package server

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchSocials starts an fsnotify watcher on the socials YAML file. When the
// file changes on disk it is reloaded into the shared catalog, so new
// commands pick up the changes without a restart. Returns a stop function.
func (g *Game) WatchSocials() (func(), error) {
	path := g.Conf.SocialsFile
	if path == "" {
		return func() {}, nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors often replace the file wholesale.
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if err := g.reloadCustomSocials(); err != nil {
					log.Printf("socials: reload %s: %v", path, err)
					continue
				}
				log.Printf("socials: reloaded %s, %d custom socials",
					path, len(g.Catalog.CustomNames()))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("socials: watcher error: %v", err)
			}
		}
	}()

	log.Printf("socials: watching %s for changes", path)
	return func() { watcher.Close() }, nil
}
