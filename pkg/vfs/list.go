package vfs

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/cloudmere/bucketfs/pkg/store"
)

// ListDirectories returns the names of the immediate subdirectories of
// path, derived from the store's common-prefix grouping at one level of
// depth. Names are relative to path with the trailing delimiter stripped.
//
// A store failure aborts the listing and yields whatever was produced
// before the error; it is logged, not returned.
func (fs *FileSystem) ListDirectories(ctx context.Context, p string) []string {
	prefix := fs.directoryPrefix(p)

	var names []string
	var token string
	for {
		if err := fs.wait(ctx); err != nil {
			return names
		}

		result, err := fs.store.List(ctx, store.ListOptions{
			Prefix:            prefix,
			Delimiter:         Delimiter,
			ContinuationToken: token,
		})
		if err != nil {
			fs.log.Warn("directory listing failed",
				zap.String("prefix", prefix),
				zap.Error(err))
			return names
		}

		for _, cp := range result.CommonPrefixes {
			name := strings.TrimPrefix(cp, prefix)
			names = append(names, strings.TrimSuffix(name, Delimiter))
		}

		if !result.IsTruncated || result.ContinuationToken == "" {
			break
		}
		token = result.ContinuationToken
	}

	return names
}

// ListFiles returns the names of the files directly under path, relative
// to it. Deeper keys are grouped away by the delimiter and not reported.
func (fs *FileSystem) ListFiles(ctx context.Context, p string) []string {
	prefix := fs.directoryPrefix(p)

	var names []string
	var token string
	for {
		if err := fs.wait(ctx); err != nil {
			return names
		}

		result, err := fs.store.List(ctx, store.ListOptions{
			Prefix:            prefix,
			Delimiter:         Delimiter,
			ContinuationToken: token,
		})
		if err != nil {
			fs.log.Warn("file listing failed",
				zap.String("prefix", prefix),
				zap.Error(err))
			return names
		}

		for _, obj := range result.Objects {
			names = append(names, strings.TrimPrefix(obj.Key, prefix))
		}

		if !result.IsTruncated || result.ContinuationToken == "" {
			break
		}
		token = result.ContinuationToken
	}

	return names
}

// ListAllKeys returns every key under prefix regardless of depth,
// accumulated across all listing pages. While the store reports a
// truncated page, the loop continues with the page's continuation token
// until a non-truncated page is received.
//
// Keys come back in store-native lexicographic order; callers must not
// assume any other order. A store failure yields the keys collected so
// far.
func (fs *FileSystem) ListAllKeys(ctx context.Context, prefix string) []string {
	var keys []string
	var token string
	for {
		if err := fs.wait(ctx); err != nil {
			return keys
		}

		result, err := fs.store.List(ctx, store.ListOptions{
			Prefix:            prefix,
			ContinuationToken: token,
		})
		if err != nil {
			fs.log.Warn("key enumeration failed",
				zap.String("prefix", prefix),
				zap.Int("keys_so_far", len(keys)),
				zap.Error(err))
			return keys
		}

		for _, obj := range result.Objects {
			keys = append(keys, obj.Key)
		}

		if !result.IsTruncated || result.ContinuationToken == "" {
			break
		}
		token = result.ContinuationToken
	}

	return keys
}
