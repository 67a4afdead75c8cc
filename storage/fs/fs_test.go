// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/net/context"
)

func writeFile(t *testing.T, fs FS, name, data string, abort bool) {
	t.Helper()
	w, err := fs.NewWriter(context.Background(), name, map[string]string{"k": "v"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, data); err != nil {
		t.Fatal(err)
	}
	if abort {
		if err := w.CloseWithError(errors.New("abort")); err != nil {
			t.Fatal(err)
		}
		return
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDirFS(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "performance-plots")
	fs, err := NewDirFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		t.Fatalf("NewDirFS did not create %s: %v", dir, err)
	}

	writeFile(t, fs, "a.png", "hello", false)
	writeFile(t, fs, "b.png", "partial", true)

	got, err := os.ReadFile(filepath.Join(dir, "a.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("a.png = %q, want %q", got, "hello")
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range ents {
		names = append(names, e.Name())
	}
	if !reflect.DeepEqual(names, []string{"a.png"}) {
		t.Errorf("directory contains %v, want [a.png]", names)
	}

	// An existing directory is fine.
	if _, err := NewDirFS(dir); err != nil {
		t.Errorf("NewDirFS on existing directory: %v", err)
	}
}

func TestMemFS(t *testing.T) {
	fs := NewMemFS()
	writeFile(t, fs, "b.png", "bbb", false)
	writeFile(t, fs, "a.png", "aaa", false)
	writeFile(t, fs, "c.png", "ccc", true)

	if got, want := fs.Files(), []string{"a.png", "b.png"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
	data, meta, ok := fs.Content("a.png")
	if !ok || string(data) != "aaa" || meta["k"] != "v" {
		t.Errorf("Content(a.png) = %q, %v, %v", data, meta, ok)
	}
	if _, _, ok := fs.Content("c.png"); ok {
		t.Error("aborted file c.png is visible")
	}
}
