package local_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/birkland/lresolv"
	"github.com/birkland/lresolv/resolvers/local"
	"github.com/go-test/deep"
	"github.com/pkg/errors"
)

// Lays out a small image tree, returning the absolute paths of the visible jp2 files
func imageTree(t *testing.T, dir string) []string {
	files := []string{
		"a.jp2",
		"b.JP2",
		"not-an-image.txt",
		".hidden.jp2",
		"sub/dir/c d.jp2",
		"sub/孔子.Jp2",
		"pairtree_root/ab/cd/abcd.jp2",
	}

	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := ioutil.WriteFile(path, []byte(f), 0664); err != nil {
			t.Fatal(err)
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		t.Fatal(err)
	}

	return []string{
		filepath.Join(abs, "a.jp2"),
		filepath.Join(abs, "b.JP2"),
		filepath.Join(abs, "sub", "dir", "c d.jp2"),
		filepath.Join(abs, "sub", "孔子.Jp2"),
	}
}

func TestScan(t *testing.T) {
	runInTempDir(t, func(tempDir string) {
		expected := imageTree(t, tempDir)

		var found []string
		err := local.Scan(tempDir, local.JP2Pattern, func(rec lresolv.ImageRecord) error {
			found = append(found, rec.ImageFile)
			return nil
		})
		if err != nil {
			t.Fatalf("Scan failed: %+v", err)
		}

		sort.Strings(found)
		sort.Strings(expected)
		if diff := deep.Equal(found, expected); diff != nil {
			t.Error(diff)
		}
	})
}

func TestScanAllFiles(t *testing.T) {
	runInTempDir(t, func(tempDir string) {
		imageTree(t, tempDir)

		var count int
		err := local.Scan(tempDir, nil, func(lresolv.ImageRecord) error {
			count++
			return nil
		})
		if err != nil {
			t.Fatalf("Scan failed: %+v", err)
		}

		// Everything but the pairtree
		if count != 6 {
			t.Errorf("Expected 6 files, found %d", count)
		}
	})
}

// Every scanned identifier resolves back to its file, which exists
func TestScanRoundTrip(t *testing.T) {
	runInTempDir(t, func(tempDir string) {
		imageTree(t, tempDir)
		r := newResolver(t)

		err := local.Scan(tempDir, local.JP2Pattern, func(scanned lresolv.ImageRecord) error {
			rec, err := r.ImageRecord(scanned.Identifier)
			if err != nil {
				return err
			}

			if filepath.FromSlash(rec.ImageFile) != scanned.ImageFile {
				t.Errorf("%s resolved to %s, expected %s", scanned.Identifier, rec.ImageFile, scanned.ImageFile)
			}

			status, err := r.Status(scanned.Identifier)
			if err != nil {
				return err
			}
			if status != lresolv.Found {
				t.Errorf("Expected %s to be found", scanned.Identifier)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Scan failed: %+v", err)
		}
	})
}

func TestScanStopsOnError(t *testing.T) {
	runInTempDir(t, func(tempDir string) {
		imageTree(t, tempDir)

		stop := errors.New("stop")
		var visited int
		err := local.Scan(tempDir, local.JP2Pattern, func(lresolv.ImageRecord) error {
			visited++
			return stop
		})

		if errors.Cause(err) != stop {
			t.Errorf("Expected the callback error, got %v", err)
		}
		if visited != 1 {
			t.Errorf("Expected the scan to stop after one file, visited %d", visited)
		}
	})
}

func TestScanMissingDir(t *testing.T) {
	err := local.Scan("DOES_NOT_EXIST", nil, func(lresolv.ImageRecord) error {
		return nil
	})
	if err == nil {
		t.Errorf("Expected an error scanning a missing directory")
	}
}
