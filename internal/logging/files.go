package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	runFilePrefix = "barangay-"
	runFileSuffix = ".log"
	runTimeLayout = "20060102T150405"
)

var now = time.Now

// runFilePath names a run log so that names sort oldest first.
func runFilePath(cfg Config) string {
	command := strings.Join(strings.Fields(cfg.Command), "_")
	if command == "" {
		command = "barangay"
	}
	name := fmt.Sprintf("%s%s-%s-%d%s", runFilePrefix, now().Format(runTimeLayout), command, cfg.PID, runFileSuffix)
	return filepath.Join(cfg.Dir, name)
}

// runFiles lists the run logs in dir, oldest first.
func runFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, runFilePrefix) && strings.HasSuffix(name, runFileSuffix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// prune removes the oldest run logs until at most keep remain.
func prune(dir string, keep int) {
	if keep < 0 {
		keep = 0
	}
	names := runFiles(dir)
	for len(names) > keep {
		_ = os.Remove(filepath.Join(dir, names[0]))
		names = names[1:]
	}
}
