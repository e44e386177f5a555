package fshelper

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bstardust/exifgps/internal/fileinfo"
)

// NameFS is a filesystem that has a name
type NameFS interface {
	fs.FS
	Name() string
}

// DirFS represents a directory filesystem with a name. When only is set
// the filesystem stands for that single file in the directory.
type DirFS struct {
	fs.FS
	name string
	only string
}

// NewDirFS names an existing filesystem
func NewDirFS(fsys fs.FS, name string) *DirFS {
	return &DirFS{FS: fsys, name: name}
}

// Name returns the name of the filesystem
func (d *DirFS) Name() string {
	return d.name
}

// ZipFS represents a zip filesystem with a name
type ZipFS struct {
	*zip.Reader
	name string
	rc   io.Closer
}

// Name returns the name of the filesystem
func (z *ZipFS) Name() string {
	return z.name
}

// Close closes the zip file
func (z *ZipFS) Close() error {
	if z.rc != nil {
		return z.rc.Close()
	}
	return nil
}

// ParsePath turns directories, zip archives, single files and glob
// patterns into filesystems.
func ParsePath(paths []string) ([]NameFS, error) {
	var fsyss []NameFS

	for _, path := range paths {
		// Check if the path is a glob pattern
		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %s: %w", path, err)
		}

		if len(matches) == 0 {
			// No matches, try as a direct path
			if _, err := os.Stat(path); err != nil {
				if os.IsNotExist(err) {
					return nil, fmt.Errorf("path does not exist: %s", path)
				}
				return nil, fmt.Errorf("error accessing path %s: %w", path, err)
			}
			matches = []string{path}
		}

		for _, match := range matches {
			fsys, err := open(match)
			if err != nil {
				CloseAll(fsyss)
				return nil, err
			}
			fsyss = append(fsyss, fsys)
		}
	}

	return fsyss, nil
}

func open(path string) (NameFS, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	switch {
	case info.IsDir():
		return NewDirFS(os.DirFS(path), path), nil
	case strings.HasSuffix(strings.ToLower(path), ".zip"):
		zipFS, err := OpenZip(path)
		if err != nil {
			return nil, fmt.Errorf("error opening zip file %s: %w", path, err)
		}
		return zipFS, nil
	case fileinfo.IsImageFile(path):
		return &DirFS{FS: os.DirFS(filepath.Dir(path)), name: path, only: filepath.Base(path)}, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}

// OpenZip opens a zip file and returns a filesystem
func OpenZip(path string) (*ZipFS, error) {
	zipFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening zip file: %w", err)
	}

	info, err := zipFile.Stat()
	if err != nil {
		zipFile.Close()
		return nil, fmt.Errorf("error getting zip file info: %w", err)
	}

	zipReader, err := zip.NewReader(zipFile, info.Size())
	if err != nil {
		zipFile.Close()
		return nil, fmt.Errorf("error creating zip reader: %w", err)
	}

	return &ZipFS{
		Reader: zipReader,
		name:   path,
		rc:     zipFile,
	}, nil
}

// ListImages returns the image files in fsys in lexical order
func ListImages(fsys NameFS) ([]string, error) {
	if d, ok := fsys.(*DirFS); ok && d.only != "" {
		return []string{d.only}, nil
	}

	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !fileinfo.IsImageFile(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", fsys.Name(), err)
	}
	return files, nil
}

// Label returns a short name for fsys usable as an object key prefix:
// the directory base name, the archive name without extension, or the
// parent directory of a single file. It is empty for filesystem roots.
func Label(fsys NameFS) string {
	name := fsys.Name()
	switch f := fsys.(type) {
	case *DirFS:
		if f.only != "" {
			name = filepath.Dir(name)
		}
	case *ZipFS:
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	if abs, err := filepath.Abs(name); err == nil {
		name = abs
	}
	label := filepath.Base(name)
	if label == "." || label == string(filepath.Separator) {
		return ""
	}
	return label
}

// CloseAll closes every filesystem that holds an open handle
func CloseAll(fsyss []NameFS) {
	for _, fsys := range fsyss {
		if c, ok := fsys.(io.Closer); ok {
			c.Close()
		}
	}
}
