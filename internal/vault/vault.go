// Package vault locates candidate notes inside an Obsidian vault and manages
// the run lock and attachments directory.
package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"reelnote/internal/services"
)

const (
	lockFileName   = ".reelnote.lock"
	attachmentsDir = "attachments"
)

// Target is a resolved input path: the note files to process and the vault
// root that anchors the attachments directory.
type Target struct {
	Files []string
	Root  string
}

// Resolve interprets path as either a single markdown file or a directory to
// scan recursively. A directory with no markdown files is an error.
func Resolve(path string) (Target, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Target{}, services.Wrap(services.ErrValidation, "vault", "resolve", path, err)
	}

	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return Target{}, services.Wrap(services.ErrValidation, "vault", "resolve",
				fmt.Sprintf("not a markdown file: %s", path), nil)
		}
		return Target{Files: []string{path}, Root: filepath.Dir(path)}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(p), ".md") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return Target{}, services.Wrap(services.ErrValidation, "vault", "scan", path, err)
	}
	if len(files) == 0 {
		return Target{}, services.Wrap(services.ErrValidation, "vault", "scan",
			fmt.Sprintf("no markdown files found in %s", path), nil)
	}
	return Target{Files: files, Root: path}, nil
}

// Lock takes the vault run lock. The returned release function must be called
// when the run finishes. A held lock means another run is active.
func Lock(root string) (release func(), err error) {
	lock := flock.New(filepath.Join(root, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "vault", "lock", "acquire run lock", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrValidation, "vault", "lock",
			"another run holds the vault lock", nil)
	}
	return func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}, nil
}

// AttachmentsDir ensures and returns the vault's attachments directory.
func AttachmentsDir(root string) (string, error) {
	dir := filepath.Join(root, attachmentsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", services.Wrap(services.ErrValidation, "vault", "attachments", dir, err)
	}
	return dir, nil
}

// RelativeTo returns the slash-separated path from base to target, the form
// Obsidian expects in frontmatter links.
func RelativeTo(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
