// SPDX-License-Identifier: GPL-3.0-or-later
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/CrawX/go-bow-assassin/domain"
	"github.com/CrawX/go-bow-assassin/log"

	"github.com/sirupsen/logrus"
)

// Directory is a document source over all regular files below a root path.
type Directory struct {
	root string
	l    *logrus.Logger
}

func NewDirectory(root string) *Directory {
	return &Directory{
		root: root,
		l:    log.Logger(log.LOG_CORPUS),
	}
}

func (d *Directory) Name() string {
	return d.root
}

func (d *Directory) Walk(fn func(doc *domain.Document) error) error {
	return RegularFiles(d.l, d.root, func(path string) error {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", path, err)
		}

		return fn(&domain.Document{
			Id:  path,
			Raw: raw,
		})
	})
}

// RegularFiles calls fn for every regular file below root in lexical order. A symlinked root
// is followed, symlinks below it are not. Entries that cannot be listed are skipped. Failing to
// inspect an entry that was listed aborts the walk. Paths passed to fn always start with root.
func RegularFiles(l *logrus.Logger, root string, fn func(path string) error) error {
	walkRoot := root
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		walkRoot = resolved
	}

	return filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			l.WithFields(logrus.Fields{"path": path, "error": err}).Debug("Skipping entry that could not be listed")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("could not inspect %s: %w", path, err)
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		return fn(underRoot(root, walkRoot, path))
	})
}

func underRoot(root, walkRoot, path string) string {
	if root == walkRoot {
		return path
	}

	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}
