// Package encourage manages the encouragement message library: built-in
// lines, a custom line store, and importable ".hl" packs. The account
// engine consumes the result only as opaque display text.
package encourage

import (
	"bufio"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"baiyun/piggyvault/internal/fileutils"
)

const (
	// CustomFileName stores user-added lines under the data root.
	CustomFileName = "custom_encouragements.json"
	// PackDirName holds imported packs under the data root.
	PackDirName = "encouragement_packs"
	// PackExtension is the pack file extension.
	PackExtension = ".hl"
)

// defaultLines ship with the application; kept verbatim from the original.
var defaultLines = []string{
	"每一分积累都是未来的基石！",
	"积少成多，聚沙成塔！",
	"滴水穿石，非一日之功；积土成山，非斯须之作。",
	"财富如水，一点一滴汇成江海。",
	"省一分钱就是赚一分钱。",
	"储蓄是财富的种子，坚持是成长的阳光。",
}

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Library is the encouragement store rooted at the data directory.
type Library struct {
	customFile string
	packDir    string
}

// NewLibrary returns a library under the given data root.
func NewLibrary(dataDir string) *Library {
	return &Library{
		customFile: filepath.Join(dataDir, CustomFileName),
		packDir:    filepath.Join(dataDir, PackDirName),
	}
}

// Defaults returns the built-in lines.
func (l *Library) Defaults() []string {
	return append([]string{}, defaultLines...)
}

// Custom returns the user-added lines. A missing or corrupt file yields
// an empty list.
func (l *Library) Custom() []string {
	data, err := os.ReadFile(l.customFile)
	if err != nil {
		return []string{}
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		log.WithError(err).Warn("custom encouragement file corrupt, ignoring")
		return []string{}
	}
	return lines
}

// SaveCustom writes the user-added lines.
func (l *Library) SaveCustom(lines []string) error {
	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return err
	}
	return fileutils.WriteFile(l.customFile, data, 0644)
}

// Add appends a line to the custom store if it is not already present.
func (l *Library) Add(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	custom := l.Custom()
	for _, existing := range custom {
		if existing == line {
			return nil
		}
	}
	return l.SaveCustom(append(custom, line))
}

// Random picks one line from defaults plus custom.
func (l *Library) Random() string {
	all := append(l.Defaults(), l.Custom()...)
	return all[rand.Intn(len(all))]
}

// ParsePack reads a ".hl" pack: one line per message, blank lines
// skipped, and an optional leading tag stripped at the first '*'.
func ParsePack(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to close pack file")
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if i := strings.Index(line, "*"); i >= 0 {
			line = line[i+1:]
		}
		lines = append(lines, strings.TrimSpace(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ListPacks returns the names (without extension) of the packs currently
// under the pack directory.
func (l *Library) ListPacks() ([]string, error) {
	if err := fileutils.EnsureDirectoryExists(l.packDir); err != nil {
		return nil, err
	}
	files, err := fileutils.ListFilesWithExtension(l.packDir, PackExtension)
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, f := range files {
		names = append(names, strings.TrimSuffix(filepath.Base(f), PackExtension))
	}
	return names, nil
}

// Import parses a pack and merges its lines into the custom store,
// dropping duplicates. Importing an empty or unreadable pack fails.
func (l *Library) Import(path string) (int, error) {
	packLines, err := ParsePack(path)
	if err != nil {
		return 0, err
	}
	if len(packLines) == 0 {
		return 0, os.ErrInvalid
	}

	custom := l.Custom()
	seen := make(map[string]struct{}, len(custom))
	for _, line := range custom {
		seen[line] = struct{}{}
	}
	added := 0
	for _, line := range packLines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		custom = append(custom, line)
		added++
	}
	if err := l.SaveCustom(custom); err != nil {
		return 0, err
	}
	log.WithFields(logrus.Fields{"pack": filepath.Base(path), "added": added}).Info("pack imported")
	return added, nil
}

// Discover copies packs found in the search directories into the pack
// directory, skipping names already present. It returns the number of
// packs copied; individual copy failures are logged and skipped.
func (l *Library) Discover(searchDirs []string) (int, error) {
	if err := fileutils.EnsureDirectoryExists(l.packDir); err != nil {
		return 0, err
	}

	existing := map[string]struct{}{}
	if names, err := l.ListPacks(); err == nil {
		for _, n := range names {
			existing[n] = struct{}{}
		}
	}

	copied := 0
	for _, dir := range searchDirs {
		files, err := fileutils.ListFilesWithExtension(dir, PackExtension)
		if err != nil {
			continue
		}
		for _, src := range files {
			name := strings.TrimSuffix(filepath.Base(src), PackExtension)
			if _, ok := existing[name]; ok {
				continue
			}
			if err := fileutils.CopyFile(src, filepath.Join(l.packDir, filepath.Base(src))); err != nil {
				log.WithError(err).WithField("pack", name).Warn("failed to copy discovered pack")
				continue
			}
			existing[name] = struct{}{}
			copied++
		}
	}
	return copied, nil
}
