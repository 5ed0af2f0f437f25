// Package scan discovers batch directories and the measurement files inside them.
package scan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/DMaendlen/netmeasure/common"
	"github.com/DMaendlen/netmeasure/logger"

	"github.com/hyp3rd/ewrap"
)

// FileSets maps, per direction, each batch directory to its measurement files.
type FileSets [common.NumDirections]map[string][]string

// Batches lists the immediate subdirectories of workdir whose names start with prefix.
// The result is sorted by name.
func Batches(workdir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(workdir)
	if err != nil {
		return nil, ewrap.Wrapf(common.ErrWorkingDir, "%s: %v", workdir, err)
	}
	dirs := make([]string, 0, len(entries))
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		path := filepath.Join(workdir, e.Name())
		//follow symlinked batch directories
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, path)
	}
	logger.Debugf("found %d batch directories in %s", len(dirs), workdir)
	return dirs, nil
}

// Classify sorts the files of every batch directory into per-direction lists.
// Every directory gets an entry in both tables, possibly empty.
func Classify(dirs []string, conv common.Convention) (FileSets, error) {
	var sets FileSets
	for i := range sets {
		sets[i] = make(map[string][]string, len(dirs))
	}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return sets, ewrap.Wrapf(common.ErrWorkingDir, "%s: %v", dir, err)
		}
		for _, d := range common.Directions {
			sets[d][dir] = []string{}
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			d, ok := conv.MatchDirection(e.Name())
			if !ok {
				continue
			}
			sets[d][dir] = append(sets[d][dir], filepath.Join(dir, e.Name()))
		}
	}
	return sets, nil
}

// Discover runs Batches and Classify in one go.
func Discover(workdir, prefix string, conv common.Convention) (FileSets, error) {
	dirs, err := Batches(workdir, prefix)
	if err != nil {
		return FileSets{}, err
	}
	return Classify(dirs, conv)
}
