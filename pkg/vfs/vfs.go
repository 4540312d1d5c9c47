// Package vfs exposes an object-storage bucket through a hierarchical
// file-system contract: directories, files, existence checks, timestamps
// and URL resolution.
//
// The backing store has no native directories - only flat object keys that
// simulate a hierarchy via a delimiter. Directory semantics are built from
// repeated prefix listings with pagination and batched deletion.
//
// Store transport errors never propagate to callers as hard failures:
// each operation degrades to a benign default (empty list, false, zero
// time, silent no-op) and emits a structured log event instead. Callers
// that need to distinguish "absent" from "lookup failed" must observe the
// event stream. This mirrors the availability-over-signaling policy of the
// host integrations this package serves.
package vfs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/cloudmere/bucketfs/pkg/store"
)

// ErrConflict indicates a write onto an existing key with overwrite disabled.
var ErrConflict = errors.New("file already exists")

// IsConflict returns true if the error indicates an overwrite conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// Config configures a FileSystem.
//
// All fields are fixed for the lifetime of the FileSystem; the type holds
// no other mutable state, so every operation is safe for concurrent use.
type Config struct {
	// Bucket is the bucket name, used to derive the public URL domain (required).
	Bucket string

	// MediaRoot is an optional prefix prepended to every key. Empty means
	// keys live at the bucket root.
	MediaRoot string

	// PlainHTTP selects http:// instead of https:// for built URLs.
	PlainHTTP bool

	// RateLimit caps store requests per second during multi-page listings
	// and multi-batch deletes. Zero means unlimited.
	RateLimit float64
}

// FileSystem adapts a flat object store to file-system style operations.
type FileSystem struct {
	store     store.Store
	bucket    string
	mediaRoot string
	plainHTTP bool
	limiter   *rate.Limiter
	log       *zap.Logger
}

// New creates a FileSystem over the given store.
//
// The logger is the observability sink for the degraded-error policy
// described in the package comment; nil uses a no-op logger.
func New(st store.Store, cfg Config, logger *zap.Logger) (*FileSystem, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("vfs: bucket name is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fs := &FileSystem{
		store:     st,
		bucket:    cfg.Bucket,
		mediaRoot: normalizeMediaRoot(cfg.MediaRoot),
		plainHTTP: cfg.PlainHTTP,
		log:       logger,
	}
	if cfg.RateLimit > 0 {
		fs.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return fs, nil
}

// normalizeMediaRoot strips surrounding delimiters so the root can be
// joined with exactly one delimiter per key.
func normalizeMediaRoot(root string) string {
	root = normalizeSlashes(root)
	for len(root) > 0 && root[0] == '/' {
		root = root[1:]
	}
	for len(root) > 0 && root[len(root)-1] == '/' {
		root = root[:len(root)-1]
	}
	return root
}

// FileExists reports whether an object exists at the exact key for path.
func (fs *FileSystem) FileExists(ctx context.Context, p string) bool {
	key := fs.ToKey(p)
	if key == "" {
		return false
	}

	_, err := fs.store.Head(ctx, key)
	if err != nil {
		if !store.IsNotFound(err) {
			fs.log.Warn("file existence check failed",
				zap.String("key", key),
				zap.Error(err))
		}
		return false
	}
	return true
}

// DirectoryExists reports whether any object key begins with the
// directory's normalized prefix. A directory with zero objects underneath
// it is indistinguishable from a non-existent one; there is no separate
// directory-marker object.
func (fs *FileSystem) DirectoryExists(ctx context.Context, p string) bool {
	prefix := fs.directoryPrefix(p)

	result, err := fs.store.List(ctx, store.ListOptions{
		Prefix:    prefix,
		Delimiter: Delimiter,
		MaxKeys:   1,
	})
	if err != nil {
		fs.log.Warn("directory existence check failed",
			zap.String("prefix", prefix),
			zap.Error(err))
		return false
	}

	return len(result.Objects) > 0 || len(result.CommonPrefixes) > 0
}

// Open returns the object content at path, fully buffered in memory.
//
// This is a full-buffer contract, not a streaming one: the entire body is
// fetched before Open returns, so partial reads of very large objects are
// not supported. A store failure yields an empty reader.
func (fs *FileSystem) Open(ctx context.Context, p string) io.ReadCloser {
	key := fs.ToKey(p)

	body, err := fs.store.Get(ctx, key)
	if err != nil {
		fs.log.Warn("file read failed",
			zap.String("key", key),
			zap.Error(err))
		return io.NopCloser(bytes.NewReader(nil))
	}
	defer func() { _ = body.Close() }()

	data, err := io.ReadAll(body)
	if err != nil {
		fs.log.Warn("file read failed",
			zap.String("key", key),
			zap.Error(err))
		return io.NopCloser(bytes.NewReader(nil))
	}

	return io.NopCloser(bytes.NewReader(data))
}

// Write uploads the full content of r to the key for path with public-read
// visibility. When overwrite is false and an object already exists at the
// key, Write fails with ErrConflict.
func (fs *FileSystem) Write(ctx context.Context, p string, r io.Reader, overwrite bool) error {
	key := fs.ToKey(p)

	if !overwrite && fs.FileExists(ctx, p) {
		return fmt.Errorf("%s: %w", key, ErrConflict)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("buffering content for %s: %w", key, err)
	}

	err = fs.store.Put(ctx, store.PutOptions{
		Key:           key,
		Body:          bytes.NewReader(data),
		ContentLength: int64(len(data)),
		ContentType:   mime.TypeByExtension(path.Ext(key)),
		PublicRead:    true,
	})
	if err != nil {
		fs.log.Warn("file write failed",
			zap.String("key", key),
			zap.Error(err))
		return nil
	}

	fs.log.Debug("file written",
		zap.String("key", key),
		zap.Int("bytes", len(data)))
	return nil
}

// DeleteFile removes the single object at the key for path. Absent keys
// and store failures are both silent no-ops.
func (fs *FileSystem) DeleteFile(ctx context.Context, p string) {
	key := fs.ToKey(p)

	if !fs.FileExists(ctx, p) {
		return
	}

	if err := fs.store.Delete(ctx, key); err != nil {
		fs.log.Warn("file delete failed",
			zap.String("key", key),
			zap.Error(err))
	}
}

// LastModified returns the object's last-modified timestamp via a
// metadata-only request. A failed lookup returns the zero time, never an
// error.
func (fs *FileSystem) LastModified(ctx context.Context, p string) time.Time {
	key := fs.ToKey(p)

	meta, err := fs.store.Head(ctx, key)
	if err != nil {
		if !store.IsNotFound(err) {
			fs.log.Warn("metadata lookup failed",
				zap.String("key", key),
				zap.Error(err))
		}
		return time.Time{}
	}
	return meta.LastModified
}

// Created returns the creation timestamp for path. The backing store does
// not track creation time separately, so this always delegates to
// LastModified.
func (fs *FileSystem) Created(ctx context.Context, p string) time.Time {
	return fs.LastModified(ctx, p)
}

// Probe verifies that the configured bucket is visible to the credentials.
// Unlike the file operations this surfaces errors: it exists for
// construction-time and diagnostic checks, not for the host's hot path.
func (fs *FileSystem) Probe(ctx context.Context) error {
	names, err := fs.store.Buckets(ctx)
	if err != nil {
		return fmt.Errorf("bucket probe: %w", err)
	}
	for _, name := range names {
		if name == fs.bucket {
			return nil
		}
	}
	return fmt.Errorf("bucket probe: %s: %w", fs.bucket, store.ErrBucketNotFound)
}

// wait blocks until the rate limiter allows another store request.
// Returns immediately if rate limiting is disabled.
func (fs *FileSystem) wait(ctx context.Context) error {
	if fs.limiter == nil {
		return nil
	}
	return fs.limiter.Wait(ctx)
}
