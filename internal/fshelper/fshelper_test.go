package fshelper

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestParsePathDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.jpg"))
	touch(t, filepath.Join(dir, "sub", "a.HEIC"))
	touch(t, filepath.Join(dir, "metadata.json"))

	fsyss, err := ParsePath([]string{dir})
	require.NoError(t, err)
	require.Len(t, fsyss, 1)
	assert.Equal(t, dir, fsyss[0].Name())

	files, err := ListImages(fsyss[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"b.jpg", "sub/a.HEIC"}, files)
}

func TestParsePathSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	touch(t, path)
	touch(t, filepath.Join(dir, "other.jpg"))

	fsyss, err := ParsePath([]string{path})
	require.NoError(t, err)
	require.Len(t, fsyss, 1)

	files, err := ListImages(fsyss[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"photo.jpg"}, files)
}

func TestParsePathGlob(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "one.jpg"))
	touch(t, filepath.Join(dir, "two.jpg"))
	touch(t, filepath.Join(dir, "three.png"))

	fsyss, err := ParsePath([]string{filepath.Join(dir, "*.jpg")})
	require.NoError(t, err)
	assert.Len(t, fsyss, 2)
}

func TestParsePathZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for _, name := range []string{"Photos/a.jpg", "Photos/a.jpg.json", "b.tiff"} {
		_, err := zw.Create(name)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	fsyss, err := ParsePath([]string{path})
	require.NoError(t, err)
	defer CloseAll(fsyss)

	require.IsType(t, &ZipFS{}, fsyss[0])
	files, err := ListImages(fsyss[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"Photos/a.jpg", "b.tiff"}, files)
}

func TestParsePathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ParsePath([]string{filepath.Join(dir, "missing")})
	assert.ErrorContains(t, err, "path does not exist")

	doc := filepath.Join(dir, "notes.txt")
	touch(t, doc)
	_, err = ParsePath([]string{doc})
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		fsys NameFS
		want string
	}{
		{"directory", NewDirFS(nil, "/data/dirA"), "dirA"},
		{"trailing slash", NewDirFS(nil, "/data/dirA/"), "dirA"},
		{"single file", &DirFS{name: "/data/trip/IMG_1.jpg", only: "IMG_1.jpg"}, "trip"},
		{"archive", &ZipFS{name: "/downloads/takeout-001.zip"}, "takeout-001"},
		{"root", NewDirFS(nil, "/"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.fsys))
		})
	}
}
