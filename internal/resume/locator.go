// Package resume finds the optional resume document served for download.
package resume

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"syscall"
)

// MIMEType is the content type the download is always served with.
const MIMEType = "application/pdf"

// File is a located resume. It is only ever returned whole.
type File struct {
	Name string // base name offered to the browser
	Path string // candidate that matched
	Data []byte
}

// Locator checks a fixed, ordered list of candidate paths.
type Locator struct {
	fsys       fs.FS
	candidates []string
}

func NewLocator(fsys fs.FS, candidates []string) *Locator {
	return &Locator{fsys: fsys, candidates: append([]string(nil), candidates...)}
}

// Candidates returns the lookup order.
func (l *Locator) Candidates() []string {
	return append([]string(nil), l.candidates...)
}

// Locate runs Locate over the locator's candidates.
func (l *Locator) Locate() (File, bool, error) {
	return Locate(l.fsys, l.candidates)
}

// Locate returns the first candidate that exists as a regular file, read into
// memory. Missing candidates and directories are skipped, as are paths that
// run through a regular file or a symlink loop. When nothing matches it
// reports false with a nil error: absence is expected.
//
// A candidate that exists but cannot be read is an error; no later candidate
// is tried in that case.
func Locate(fsys fs.FS, candidates []string) (File, bool, error) {
	for _, name := range candidates {
		info, err := fs.Stat(fsys, name)
		if missing(err) {
			continue
		}
		if err != nil {
			return File{}, false, fmt.Errorf("stat resume %s: %w", name, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return File{}, false, fmt.Errorf("read resume %s: %w", name, err)
		}
		return File{Name: path.Base(name), Path: name, Data: data}, true, nil
	}
	return File{}, false, nil
}

func missing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ELOOP)
}
