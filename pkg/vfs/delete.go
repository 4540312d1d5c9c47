package vfs

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cloudmere/bucketfs/pkg/store"
)

// DeleteDirectory removes every object under the directory's prefix.
//
// The recursive flag is accepted for interface compatibility but deletion
// is always effectively full-depth: enumeration does not distinguish
// depth, so a shallow delete is not expressible here. This is a
// long-standing behavioral simplification of the contract, preserved
// deliberately.
//
// The full key set is enumerated first, then partitioned into multi-key
// delete batches at the store's ceiling. Batches are submitted
// sequentially; a failed batch is logged and skipped, already-deleted
// batches are not rolled back, and the operation reports no aggregate
// failure. A directory delete racing a concurrent write into the same
// prefix is an accepted weak consistency: a key written after enumeration
// may survive.
func (fs *FileSystem) DeleteDirectory(ctx context.Context, p string, recursive bool) {
	if !fs.DirectoryExists(ctx, p) {
		return
	}

	prefix := fs.directoryPrefix(p)
	keys := fs.ListAllKeys(ctx, prefix)
	if len(keys) == 0 {
		// Never issue an empty delete request.
		return
	}

	opID := uuid.NewString()
	log := fs.log.With(
		zap.String("op_id", opID),
		zap.String("prefix", prefix))

	var deleted int
	for start := 0; start < len(keys); start += store.MaxBatchDelete {
		end := min(start+store.MaxBatchDelete, len(keys))
		batch := keys[start:end]

		if err := fs.wait(ctx); err != nil {
			log.Warn("directory delete interrupted",
				zap.Int("deleted", deleted),
				zap.Error(err))
			return
		}

		if err := fs.store.DeleteBatch(ctx, batch); err != nil {
			log.Warn("delete batch failed",
				zap.Int("batch_size", len(batch)),
				zap.Error(err))
			continue
		}
		deleted += len(batch)
	}

	log.Info("directory deleted",
		zap.Bool("recursive", recursive),
		zap.Int("keys", len(keys)),
		zap.Int("deleted", deleted))
}
