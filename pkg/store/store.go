// Package store defines the narrow object-store client surface that the
// virtual file system is built on.
//
// Implementations map to a flat key/value blob store with prefix listing
// (S3 or S3-compatible). Authentication uses SDK default credential chains -
// stores should not implement custom auth logic.
package store

import (
	"context"
	"io"
	"time"
)

// MaxBatchDelete is the maximum number of keys accepted by a single
// multi-key delete request. Callers submitting more keys must split
// them into multiple batches.
const MaxBatchDelete = 1000

// Store abstracts the object-store operations the file system needs.
//
// Implementations should:
//   - Use SDK default credential chains where credentials are not explicit
//   - Support pagination via continuation tokens
//   - Be safe for concurrent use
type Store interface {
	// List returns a page of objects with the given prefix.
	// Use ContinuationToken from ListResult for subsequent pages.
	List(ctx context.Context, opts ListOptions) (*ListResult, error)

	// Head returns metadata for a single object.
	// Returns ErrNotFound if the object does not exist.
	Head(ctx context.Context, key string) (*ObjectMeta, error)

	// Get returns the object body. The caller must close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Put uploads an object.
	Put(ctx context.Context, opts PutOptions) error

	// Delete removes a single object. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteBatch removes up to MaxBatchDelete keys in one request.
	DeleteBatch(ctx context.Context, keys []string) error

	// Buckets returns the bucket names visible to the credentials.
	// Used only as an existence probe for the configured bucket.
	Buckets(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}

// ListOptions configures a List operation.
type ListOptions struct {
	// Prefix filters results to keys starting with this value.
	// Empty string lists all objects.
	Prefix string

	// Delimiter groups keys into common prefixes (e.g., "/").
	// Empty string disables grouping and lists keys at any depth.
	Delimiter string

	// ContinuationToken resumes listing from a previous ListResult.
	// Empty string starts from the beginning.
	ContinuationToken string

	// MaxKeys limits the number of objects returned per page.
	// Zero uses the store default (typically 1000).
	MaxKeys int
}

// ListResult contains a page of objects from a List operation.
type ListResult struct {
	// Objects contains the object summaries for this page.
	Objects []ObjectSummary

	// CommonPrefixes are the immediate child prefixes, present only
	// when a Delimiter was set on the request.
	CommonPrefixes []string

	// ContinuationToken is used to retrieve the next page.
	// Empty string indicates no more pages.
	ContinuationToken string

	// IsTruncated indicates whether more results are available.
	IsTruncated bool
}

// ObjectSummary contains basic metadata returned from List operations.
type ObjectSummary struct {
	// Key is the full object key (path) in the bucket.
	Key string

	// Size is the object size in bytes.
	Size int64

	// ETag is the entity tag, typically an MD5 hash of the object.
	ETag string

	// LastModified is when the object was last modified.
	LastModified time.Time
}

// ObjectMeta contains full metadata for a single object.
// Returned by Head operations.
type ObjectMeta struct {
	ObjectSummary

	// ContentType is the MIME type of the object.
	ContentType string
}

// PutOptions configures a Put operation.
type PutOptions struct {
	// Key is the destination object key.
	Key string

	// Body is the full object content. Implementations may require the
	// content to be seekable or fully buffered; callers of this layer
	// always pass buffered content.
	Body io.Reader

	// ContentLength is the exact body length in bytes.
	ContentLength int64

	// ContentType is the MIME type to store with the object. Optional.
	ContentType string

	// PublicRead marks the object world-readable via a canned ACL.
	PublicRead bool
}
