package local

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/birkland/lresolv"
	"github.com/birkland/lresolv/fspath"
	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
)

// JP2Pattern matches the names of visible JPEG 2000 image files
var JP2Pattern = regexp.MustCompile(`^[^\.].*\.(JP2|jp2|Jp2)$`)

// PairtreeRoot is the name of directories holding identifier-mapped images.  Those are
// addressed by their pairtree identifiers, not by path, so scans skip them.
const PairtreeRoot = "pairtree_root"

const (
	dontGoDeeper = true
	goDeeper     = false
)

// Scan walks the directory tree under dir and invokes the callback with an image
// record for every file whose name matches pattern (every file, if pattern is nil).
// Each record's identifier is the doubly-encoded file:// URI of the file's absolute
// path, i.e. an identifier the local resolver resolves back to that file.
//
// Returns with a nil error once all files have been visited successfully, or the first
// error returned by the callback.
func Scan(dir string, pattern *regexp.Regexp, f func(lresolv.ImageRecord) error) error {
	root, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrapf(err, "could not calculate absolute path of %s", dir)
	}

	return fsWalk(root, func(ospath string, e *godirwalk.Dirent) (bool, error) {
		if e.IsDir() {
			if e.Name() == PairtreeRoot {
				return dontGoDeeper, nil
			}
			return goDeeper, nil
		}

		if !isRegular(ospath, e) {
			return dontGoDeeper, nil
		}

		if pattern != nil && !pattern.MatchString(e.Name()) {
			return dontGoDeeper, nil
		}

		return dontGoDeeper, f(lresolv.ImageRecord{
			Identifier: fspath.DoubleEscape(fspath.FileURI(filepath.ToSlash(ospath))),
			ImageFile:  ospath,
		})
	})
}

// Symlinks are followed, so a link counts as a regular file if its target is one
func isRegular(ospath string, e *godirwalk.Dirent) bool {
	if e.IsRegular() {
		return true
	}

	if !e.IsSymlink() {
		return false
	}

	info, err := os.Stat(ospath)
	return err == nil && info.Mode().IsRegular()
}

type skip struct {
	action godirwalk.ErrorAction
}

func (skip) Error() string {
	return "node is skipped"
}

// Callback to be invoked each time a fs entry is encountered.
// Returns a Boolean indicating whether the current fs entry should be a
// considered a terminal (leaf) node.  If true, any children will not be
// walked.  Any error will terminate a walk entirely.
type fsCallback func(ospath string, e *godirwalk.Dirent) (terminal bool, err error)

func fsWalk(dir string, f fsCallback) error {

	if _, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, "error walking directory %s", dir)
	}

	var failure error

	err := godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(ospath string, dirent *godirwalk.Dirent) error {
			terminal, err := f(ospath, dirent)
			if err != nil {
				failure = err
				return err
			}
			if terminal && dirent.IsDir() {
				return skip{godirwalk.SkipNode}
			}
			return nil
		},
		ErrorCallback: func(ospath string, err error) godirwalk.ErrorAction {
			s, skip := errors.Cause(err).(skip)
			if skip {
				return s.action
			}

			return godirwalk.Halt
		},
		Unsorted:            true,
		FollowSymbolicLinks: true,
	},
	)

	if failure != nil {
		return failure
	}
	return errors.Wrapf(err, "error walking directory %s", dir)
}
