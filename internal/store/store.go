// Package store persists account records as JSON files with a rotating
// set of timestamped backups per account.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"baiyun/piggyvault/internal/bankerror"
	"baiyun/piggyvault/internal/dateutils"
	"baiyun/piggyvault/internal/fileutils"
	"baiyun/piggyvault/internal/models"
)

const (
	// DataFileName is the primary record file inside each account directory.
	DataFileName = "data.json"
	// BackupDirName is the backup subdirectory inside each account directory.
	BackupDirName = "backup"
	// DefaultMaxBackups is the number of backup snapshots retained.
	DefaultMaxBackups = 5
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// AccountStore owns reading, writing and backup rotation of account
// records under a root data directory.
type AccountStore struct {
	root       string
	maxBackups int
	now        func() time.Time
}

// NewAccountStore returns a store rooted at dir. maxBackups <= 0 falls
// back to DefaultMaxBackups.
func NewAccountStore(dir string, maxBackups int) *AccountStore {
	if maxBackups <= 0 {
		maxBackups = DefaultMaxBackups
	}
	return &AccountStore{root: dir, maxBackups: maxBackups, now: time.Now}
}

// SetClock overrides the clock used for backup timestamps. Intended for
// tests.
func (s *AccountStore) SetClock(now func() time.Time) {
	s.now = now
}

// Root returns the data root directory.
func (s *AccountStore) Root() string {
	return s.root
}

// AccountDir returns the directory of the named account.
func (s *AccountStore) AccountDir(name string) string {
	return filepath.Join(s.root, name)
}

// DataFile returns the primary record file of the named account.
func (s *AccountStore) DataFile(name string) string {
	return filepath.Join(s.AccountDir(name), DataFileName)
}

// BackupDir returns the backup directory of the named account.
func (s *AccountStore) BackupDir(name string) string {
	return filepath.Join(s.AccountDir(name), BackupDirName)
}

// Load reads and normalizes the named account's record. It never fails:
// a missing file, unreadable file or unparseable document yields a fresh
// empty record. The account is the user's ledger and must always open.
func (s *AccountStore) Load(name string) models.AccountRecord {
	path := s.DataFile(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("account", name).Warn("record unreadable, starting fresh")
		}
		return models.NewAccountRecord()
	}

	rec, err := models.DecodeRecord(data)
	if err != nil {
		log.WithError(err).WithField("account", name).Warn("record corrupt, starting fresh")
		return models.NewAccountRecord()
	}
	return rec
}

// Save writes the record to the primary file and an identical timestamped
// backup copy, then rotates old backups. Save succeeds or fails on the
// two writes alone; rotation errors are swallowed.
func (s *AccountStore) Save(name string, rec models.AccountRecord) error {
	data, err := models.EncodeRecord(rec)
	if err != nil {
		return &bankerror.StorageWriteError{Account: name, Path: s.DataFile(name), Err: err}
	}

	primary := s.DataFile(name)
	if err := fileutils.WriteFile(primary, data, 0644); err != nil {
		return &bankerror.StorageWriteError{Account: name, Path: primary, Err: err}
	}

	backup := filepath.Join(s.BackupDir(name),
		fmt.Sprintf("%s_backup_%s.json", name, s.now().Format(dateutils.BackupStampLayout)))
	if err := fileutils.WriteFile(backup, data, 0644); err != nil {
		return &bankerror.StorageWriteError{Account: name, Path: backup, Err: err}
	}

	s.rotateBackups(name)
	return nil
}

// ListBackups returns the account's backup files newest-first by
// modification time. limit <= 0 returns all of them.
func (s *AccountStore) ListBackups(name string, limit int) ([]string, error) {
	dir := s.BackupDir(name)
	if !fileutils.DirectoryExists(dir) {
		return []string{}, nil
	}

	files, err := fileutils.ListFilesWithExtension(dir, ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to list backups for '%s': %w", name, err)
	}

	sortByModTime(files, true)
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	return files, nil
}

// Restore loads a backup file and, if it parses as JSON, performs a full
// save of its contents as the new primary state. The save produces a new
// backup entry, so restoring never destroys history.
func (s *AccountStore) Restore(name string, backupFile string) error {
	data, err := os.ReadFile(backupFile)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}
	rec, err := models.DecodeRecord(data)
	if err != nil {
		return fmt.Errorf("backup file is not a valid record: %w", err)
	}

	log.WithFields(logrus.Fields{
		"account": name,
		"backup":  filepath.Base(backupFile),
	}).Info("restoring account from backup")
	return s.Save(name, rec)
}

// rotateBackups removes the oldest backups beyond the retention count.
// Removal failures must not fail the surrounding save.
func (s *AccountStore) rotateBackups(name string) {
	files, err := fileutils.ListFilesWithExtension(s.BackupDir(name), ".json")
	if err != nil || len(files) <= s.maxBackups {
		return
	}

	sortByModTime(files, false)
	for _, old := range files[:len(files)-s.maxBackups] {
		if err := os.Remove(old); err != nil {
			log.WithError(err).WithField("file", old).Warn("failed to remove stale backup")
		}
	}
}

// sortByModTime orders files by modification time, newest first when
// newestFirst is set. Files that cannot be stat'd sort as zero time.
func sortByModTime(files []string, newestFirst bool) {
	mtime := func(path string) time.Time {
		info, err := os.Stat(path)
		if err != nil {
			return time.Time{}
		}
		return info.ModTime()
	}
	sort.SliceStable(files, func(i, j int) bool {
		ti, tj := mtime(files[i]), mtime(files[j])
		if newestFirst {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})
}
