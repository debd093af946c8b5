package resume

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateFirstExistingWins(t *testing.T) {
	fsys := fstest.MapFS{
		"a.pdf": {Data: []byte("%PDF-a")},
		"b.pdf": {Data: []byte("%PDF-b")},
	}
	f, ok, err := Locate(fsys, []string{"a.pdf", "b.pdf"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a.pdf", f.Name)
	assert.Equal(t, []byte("%PDF-a"), f.Data)
}

func TestLocateSkipsMissing(t *testing.T) {
	fsys := fstest.MapFS{"b.pdf": {Data: []byte("bytes of b")}}

	f, ok, err := Locate(fsys, []string{"a.pdf", "b.pdf"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, File{Name: "b.pdf", Path: "b.pdf", Data: []byte("bytes of b")}, f)
}

func TestLocateAbsent(t *testing.T) {
	tests := []struct {
		name       string
		fsys       fstest.MapFS
		candidates []string
	}{
		{"empty fs", fstest.MapFS{}, []string{"a.pdf", "b.pdf"}},
		{"no candidates", fstest.MapFS{"a.pdf": {}}, nil},
		{"other files only", fstest.MapFS{"notes.txt": {}}, []string{"a.pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok, err := Locate(tt.fsys, tt.candidates)
			assert.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, File{}, f)
		})
	}
}

func TestLocateNestedAndDirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"resume.pdf/keep":   {},
		"assets/resume.pdf": {Data: []byte("nested")},
	}
	f, ok, err := Locate(fsys, []string{"resume.pdf", "assets/resume.pdf"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "resume.pdf", f.Name)
	assert.Equal(t, "assets/resume.pdf", f.Path)
	assert.Equal(t, []byte("nested"), f.Data)
}

type failingFS struct {
	files fstest.MapFS
	err   error
}

func (f failingFS) Open(name string) (fs.File, error) {
	if name == "locked.pdf" {
		return nil, &fs.PathError{Op: "open", Path: name, Err: f.err}
	}
	return f.files.Open(name)
}

func TestLocateUnreadable(t *testing.T) {
	fsys := failingFS{files: fstest.MapFS{"b.pdf": {}}, err: fs.ErrPermission}

	f, ok, err := Locate(fsys, []string{"locked.pdf", "b.pdf"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.False(t, ok)
	assert.Equal(t, File{}, f)
}

func TestLocatorCopiesCandidates(t *testing.T) {
	candidates := []string{"a.pdf", "b.pdf"}
	l := NewLocator(fstest.MapFS{"b.pdf": {Data: []byte("b")}}, candidates)
	candidates[1] = "c.pdf"

	assert.Equal(t, []string{"a.pdf", "b.pdf"}, l.Candidates())
	f, ok, err := l.Locate()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b.pdf", f.Name)
}

func TestLocateIsRepeatable(t *testing.T) {
	l := NewLocator(fstest.MapFS{"resume.pdf": {Data: []byte("r")}}, []string{"resume.pdf"})
	first, _, _ := l.Locate()
	second, _, _ := l.Locate()
	assert.Equal(t, first, second)
}

func TestInspect(t *testing.T) {
	info := Inspect(File{Data: []byte("%PDF-1.4\n%not really a pdf\n")})
	assert.True(t, info.IsPDF)
	assert.Equal(t, MIMEType, info.MIME)
	assert.Zero(t, info.Pages)

	info = Inspect(File{Data: []byte("just some text")})
	assert.False(t, info.IsPDF)
	assert.Zero(t, info.Pages)
}

func writeFile(t *testing.T, dir, name, data string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
}

func TestLocateDirFS(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, dir string)
		candidates []string
		wantPath   string
	}{
		{
			name:       "missing file",
			setup:      func(t *testing.T, dir string) {},
			candidates: []string{"a.pdf", "b.pdf"},
		},
		{
			name: "later candidate exists",
			setup: func(t *testing.T, dir string) {
				writeFile(t, dir, "b.pdf", "b")
			},
			candidates: []string{"a.pdf", "b.pdf"},
			wantPath:   "b.pdf",
		},
		{
			name: "directory named like a candidate",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.Mkdir(filepath.Join(dir, "resume.pdf"), 0o755))
				writeFile(t, dir, "assets/resume.pdf", "nested")
			},
			candidates: []string{"resume.pdf", "assets/resume.pdf"},
			wantPath:   "assets/resume.pdf",
		},
		{
			name: "candidate under a regular file",
			setup: func(t *testing.T, dir string) {
				writeFile(t, dir, "assets", "not a directory")
				writeFile(t, dir, "resume.pdf", "top")
			},
			candidates: []string{"assets/resume.pdf", "resume.pdf"},
			wantPath:   "resume.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			f, ok, err := Locate(os.DirFS(dir), tt.candidates)
			require.NoError(t, err)
			if tt.wantPath == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantPath, f.Path)
		})
	}
}

func TestLocateDirFSSymlinkLoop(t *testing.T) {
	dir := t.TempDir()
	if err := os.Symlink("loop.pdf", filepath.Join(dir, "loop.pdf")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	writeFile(t, dir, "resume.pdf", "r")

	f, ok, err := Locate(os.DirFS(dir), []string{"loop.pdf", "resume.pdf"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "resume.pdf", f.Path)
	assert.Equal(t, []byte("r"), f.Data)
}
