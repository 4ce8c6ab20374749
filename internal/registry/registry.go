// Package registry enumerates, creates and deletes named accounts at the
// directory level.
package registry

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"baiyun/piggyvault/internal/bankerror"
	"baiyun/piggyvault/internal/fileutils"
	"baiyun/piggyvault/internal/models"
	"baiyun/piggyvault/internal/store"
)

// reservedNameChars are path separators and wildcards rejected in account
// names.
const reservedNameChars = `\/*?:"<>|`

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// AccountRegistry resolves account names to directories under the store's
// root. An account exists iff its directory contains the record file.
type AccountRegistry struct {
	store *store.AccountStore
}

// NewAccountRegistry returns a registry over the given store.
func NewAccountRegistry(s *store.AccountStore) *AccountRegistry {
	return &AccountRegistry{store: s}
}

// List returns the names of all existing accounts in filesystem
// enumeration order. Callers needing stable order must sort.
func (r *AccountRegistry) List() ([]string, error) {
	if err := fileutils.EnsureDirectoryExists(r.store.Root()); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.store.Root())
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if fileutils.FileExists(r.store.DataFile(entry.Name())) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Create registers a new account: it validates the name, creates the
// directory and writes a fresh empty record. The canonical name is
// returned on success.
func (r *AccountRegistry) Create(name string) (string, error) {
	if name == "" {
		return "", &bankerror.InvalidNameError{Name: name, Reason: "name is empty"}
	}
	if strings.ContainsAny(name, reservedNameChars) {
		return "", &bankerror.InvalidNameError{Name: name, Reason: `name contains one of \ / * ? : " < > |`}
	}
	if fileutils.DirectoryExists(r.store.AccountDir(name)) {
		return "", &bankerror.AlreadyExistsError{Name: name}
	}

	if err := fileutils.EnsureDirectoryExists(r.store.AccountDir(name)); err != nil {
		return "", err
	}
	if err := r.store.Save(name, models.NewAccountRecord()); err != nil {
		return "", err
	}

	log.WithField("account", name).Info("account created")
	return name, nil
}

// Exists reports whether the named account exists.
func (r *AccountRegistry) Exists(name string) bool {
	return fileutils.FileExists(r.store.DataFile(name))
}

// Delete removes the account's entire directory tree, record and backups
// included, irrecoverably. Callers tracking a "last opened" account must
// clear that pointer themselves.
func (r *AccountRegistry) Delete(name string) error {
	if !fileutils.DirectoryExists(r.store.AccountDir(name)) {
		return &bankerror.NotFoundError{Name: name}
	}
	if err := os.RemoveAll(r.store.AccountDir(name)); err != nil {
		return err
	}
	log.WithField("account", name).Info("account deleted")
	return nil
}
