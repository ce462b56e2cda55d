// Package siteconfigstore resolves site-config bundles for a host or raw
// HTML document (C9): host-suffix directory search, fingerprint matching,
// a global.txt base layer, and a process-local memoization map.
package siteconfigstore

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/tantowi/readable/internal/siteconfig"
)

const globalFileName = "global.txt"

// Loader resolves Bundles from an ordered list of directory roots (a
// user-custom directory before a bundled one, say). It is safe for
// concurrent use; LoadForHost and MatchHTML/MatchHead may be called from
// multiple goroutines provided they share one Loader.
type Loader struct {
	roots []string

	mu        sync.RWMutex
	hostCache map[string]siteconfig.Bundle

	globalOnce   sync.Once
	globalBundle siteconfig.Bundle

	fpOnce        sync.Once
	fingerprints  []siteconfig.Fingerprint
}

// NewLoader builds a Loader searching roots in the given priority order.
func NewLoader(roots ...string) *Loader {
	return &Loader{
		roots:     roots,
		hostCache: map[string]siteconfig.Bundle{},
	}
}

// ClearCache drops every memoized bundle, matching §9's "destroyed with
// the loader" lifecycle note applied to a long-lived loader that wants to
// pick up on-disk edits without restarting.
func (l *Loader) ClearCache() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hostCache = map[string]siteconfig.Bundle{}
}

// LoadForHost resolves and memoizes the merged bundle for host.
func (l *Loader) LoadForHost(host string) (siteconfig.Bundle, error) {
	l.mu.RLock()
	if b, ok := l.hostCache[host]; ok {
		l.mu.RUnlock()
		return b, nil
	}
	l.mu.RUnlock()

	discovered := l.discoverPaths(candidateNames(host))
	hostBundle, err := mergeDiscoveredFiles(discovered)
	if err != nil {
		return siteconfig.Bundle{}, err
	}

	global := l.loadGlobal()
	merged := global.Merge(hostBundle)

	l.mu.Lock()
	l.hostCache[host] = merged
	l.mu.Unlock()

	return merged, nil
}

// discoverPaths walks l.roots in priority order and, within each root,
// names in the order produced by candidateNames, collecting every file
// that actually exists.
func (l *Loader) discoverPaths(names []string) []string {
	var paths []string
	for _, root := range l.roots {
		for _, name := range names {
			path := filepath.Join(root, name)
			if fileExists(path) {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

func (l *Loader) loadGlobal() siteconfig.Bundle {
	l.globalOnce.Do(func() {
		var paths []string
		for _, root := range l.roots {
			path := filepath.Join(root, globalFileName)
			if fileExists(path) {
				paths = append(paths, path)
			}
		}
		b, err := mergeDiscoveredFiles(paths)
		if err == nil {
			l.globalBundle = b
		}
	})
	return l.globalBundle
}

// mergeDiscoveredFiles parses every path in order and folds them into a
// single bundle: list fields accumulate, and a later file's boolean
// flags (when set) override an earlier file's. Merging stops as soon as
// autodetect_on_failure is explicitly set to false, per §4.9.
func mergeDiscoveredFiles(paths []string) (siteconfig.Bundle, error) {
	bundle := siteconfig.NewBundle()
	for _, path := range paths {
		fileBundle, err := siteconfig.ParseFile(path)
		if err != nil {
			return siteconfig.Bundle{}, err
		}
		bundle = bundle.Merge(fileBundle)
		if bundle.AutodetectOnFailure != nil && !*bundle.AutodetectOnFailure {
			break
		}
	}
	return bundle, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
