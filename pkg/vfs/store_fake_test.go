package vfs_test

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cloudmere/bucketfs/pkg/store"
)

// fakeStore is an in-memory store.Store with S3-like listing semantics:
// lexicographic order, prefix filtering, delimiter grouping into common
// prefixes, and page truncation with a last-key continuation token.
type fakeStore struct {
	mu       sync.Mutex
	objects  map[string][]byte
	modified map[string]time.Time
	puts     map[string]store.PutOptions

	// pageSize caps entries per List page when the request does not set
	// MaxKeys. Zero means no artificial paging.
	pageSize int

	// Injected failures.
	listErr  error
	headErr  error
	getErr   error
	putErr   error
	batchErr error

	batchCalls [][]string
	buckets    []string
}

var _ store.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		objects:  map[string][]byte{},
		modified: map[string]time.Time{},
		puts:     map[string]store.PutOptions{},
	}
}

func (f *fakeStore) add(key string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	f.modified[key] = time.Now()
}

func (f *fakeStore) sortedKeys() []string {
	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f *fakeStore) List(ctx context.Context, opts store.ListOptions) (*store.ListResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}

	limit := opts.MaxKeys
	if limit <= 0 {
		limit = f.pageSize
	}
	if limit <= 0 {
		limit = 1000
	}

	result := &store.ListResult{}
	seen := map[string]bool{}
	entries := 0
	var lastKey string

	for _, key := range f.sortedKeys() {
		if !strings.HasPrefix(key, opts.Prefix) {
			continue
		}
		if opts.ContinuationToken != "" && key <= opts.ContinuationToken {
			continue
		}
		if entries >= limit {
			result.IsTruncated = true
			result.ContinuationToken = lastKey
			return result, nil
		}

		if opts.Delimiter != "" {
			rest := key[len(opts.Prefix):]
			if i := strings.Index(rest, opts.Delimiter); i >= 0 {
				cp := opts.Prefix + rest[:i+1]
				if !seen[cp] {
					seen[cp] = true
					result.CommonPrefixes = append(result.CommonPrefixes, cp)
					entries++
				}
				lastKey = key
				continue
			}
		}

		result.Objects = append(result.Objects, store.ObjectSummary{
			Key:          key,
			Size:         int64(len(f.objects[key])),
			LastModified: f.modified[key],
		})
		entries++
		lastKey = key
	}

	return result, nil
}

func (f *fakeStore) Head(ctx context.Context, key string) (*store.ObjectMeta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.headErr != nil {
		return nil, f.headErr
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, &store.StoreError{Op: "Head", Key: key, Err: store.ErrNotFound}
	}
	return &store.ObjectMeta{
		ObjectSummary: store.ObjectSummary{
			Key:          key,
			Size:         int64(len(data)),
			LastModified: f.modified[key],
		},
	}, nil
}

func (f *fakeStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, &store.StoreError{Op: "Get", Key: key, Err: store.ErrNotFound}
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStore) Put(ctx context.Context, opts store.PutOptions) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(opts.Body)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[opts.Key] = data
	f.modified[opts.Key] = time.Now()
	f.puts[opts.Key] = opts
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	delete(f.modified, key)
	return nil
}

func (f *fakeStore) DeleteBatch(ctx context.Context, keys []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.batchCalls = append(f.batchCalls, append([]string(nil), keys...))
	if f.batchErr != nil {
		return f.batchErr
	}
	for _, key := range keys {
		delete(f.objects, key)
		delete(f.modified, key)
	}
	return nil
}

func (f *fakeStore) Buckets(ctx context.Context) ([]string, error) {
	return f.buckets, nil
}

func (f *fakeStore) Close() error { return nil }
