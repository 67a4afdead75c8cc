// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fs provides a backend-agnostic filesystem layer for storing
// generated charts.
package fs

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/net/context"
)

// An FS stores generated chart files.
type FS interface {
	// NewWriter returns a Writer for a given file name.
	// When the Writer is closed, the file will be stored with the
	// given metadata.
	NewWriter(ctx context.Context, name string, metadata map[string]string) (Writer, error)
}

// A Writer is an io.Writer that can also be closed with an error.
type Writer interface {
	io.WriteCloser
	// CloseWithError cancels the writing of the file, removing
	// any partially written data.
	CloseWithError(error) error
}

// DirFS stores files in a directory of the local filesystem.
// Metadata is discarded.
type DirFS struct {
	dir string
}

// NewDirFS returns a DirFS rooted at dir, creating dir if it does not
// exist.
func NewDirFS(dir string) (*DirFS, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	return &DirFS{dir}, nil
}

// Dir returns the directory fs writes to.
func (fs *DirFS) Dir() string {
	return fs.dir
}

// NewWriter creates a new file in fs. The file is written to a
// temporary name and renamed into place by Close, so readers never
// see a partial file.
func (fs *DirFS) NewWriter(_ context.Context, name string, _ map[string]string) (Writer, error) {
	path := filepath.Join(fs.dir, filepath.FromSlash(name))
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, err
	}
	if err := f.Chmod(0644); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, err
	}
	return &dirFile{f, path}, nil
}

type dirFile struct {
	*os.File
	path string
}

func (f *dirFile) Close() error {
	if err := f.File.Close(); err != nil {
		os.Remove(f.File.Name())
		return err
	}
	if err := os.Rename(f.File.Name(), f.path); err != nil {
		os.Remove(f.File.Name())
		return err
	}
	return nil
}

func (f *dirFile) CloseWithError(error) error {
	f.File.Close()
	return os.Remove(f.File.Name())
}

// MemFS is an in-memory filesystem implementing the FS interface.
type MemFS struct {
	mu      sync.Mutex
	content map[string]*memFile
}

// NewMemFS constructs a new, empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		content: make(map[string]*memFile),
	}
}

// NewWriter creates a file and assigns it the given metadata. The
// file is not visible until Close is called.
func (fs *MemFS) NewWriter(_ context.Context, name string, metadata map[string]string) (Writer, error) {
	meta := make(map[string]string, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}
	return &memFile{fs: fs, name: name, metadata: meta}, nil
}

// Files returns the names of the stored files in sorted order.
func (fs *MemFS) Files() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	var names []string
	for name := range fs.content {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Content returns the data and metadata of the named file.
func (fs *MemFS) Content(name string) (data []byte, metadata map[string]string, ok bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	f, ok := fs.content[name]
	if !ok {
		return nil, nil, false
	}
	return f.content, f.metadata, true
}

type memFile struct {
	fs       *MemFS
	name     string
	metadata map[string]string
	content  []byte
}

func (f *memFile) Write(p []byte) (int, error) {
	f.content = append(f.content, p...)
	return len(p), nil
}

func (f *memFile) Close() error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	f.fs.content[f.name] = f
	return nil
}

func (f *memFile) CloseWithError(error) error {
	return nil
}
