// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcs implements the fs.FS interface using Google Cloud Storage.
package gcs

import (
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/kadanebench/perfplot/storage/fs"
	"golang.org/x/net/context"
)

// impl is an fs.FS backed by Google Cloud Storage.
type impl struct {
	bucket *storage.BucketHandle
	prefix string
}

// NewFS constructs an FS that writes to the provided bucket, using
// application default credentials. Object names are prefixed with
// prefix, which may be empty.
func NewFS(ctx context.Context, bucketName, prefix string) (fs.FS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &impl{client.Bucket(bucketName), strings.Trim(prefix, "/")}, nil
}

func (fs *impl) NewWriter(ctx context.Context, name string, metadata map[string]string) (fs.Writer, error) {
	if fs.prefix != "" {
		name = path.Join(fs.prefix, name)
	}
	ctx, cancel := context.WithCancel(ctx)
	w := fs.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType(name)
	w.Metadata = metadata
	return &wrapper{w, cancel}, nil
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".png":
		return "image/png"
	case ".csv":
		return "text/csv"
	}
	return "application/octet-stream"
}

// wrapper aborts an upload by canceling its context.
type wrapper struct {
	*storage.Writer
	cancel context.CancelFunc
}

func (w *wrapper) Close() error {
	defer w.cancel()
	return w.Writer.Close()
}

func (w *wrapper) CloseWithError(error) error {
	w.cancel()
	w.Writer.Close()
	return nil
}
