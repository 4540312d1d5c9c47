package vfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudmere/bucketfs/pkg/store"
)

func TestDeleteDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("removes every key under the prefix", func(t *testing.T) {
		fake := newFakeStore()
		fake.add("media/123/a.jpg", []byte("a"))
		fake.add("media/123/b.jpg", []byte("b"))
		fake.add("media/456/keep.jpg", []byte("keep"))
		fsys, _ := newObservedFS(t, fake)

		fsys.DeleteDirectory(ctx, "123", true)

		assert.False(t, fsys.DirectoryExists(ctx, "123"))
		assert.NotContains(t, fake.objects, "media/123/a.jpg")
		assert.NotContains(t, fake.objects, "media/123/b.jpg")
		assert.Contains(t, fake.objects, "media/456/keep.jpg", "siblings must survive")
	})

	t.Run("full depth regardless of recursive flag", func(t *testing.T) {
		fake := newFakeStore()
		fake.add("media/123/a.jpg", []byte("a"))
		fake.add("media/123/sub/deep.jpg", []byte("d"))
		fsys, _ := newObservedFS(t, fake)

		fsys.DeleteDirectory(ctx, "123", false)

		assert.Empty(t, fake.objects)
	})

	t.Run("absent directory is a no-op", func(t *testing.T) {
		fake := newFakeStore()
		fsys, _ := newObservedFS(t, fake)

		fsys.DeleteDirectory(ctx, "nope", true)

		assert.Empty(t, fake.batchCalls, "no delete request may be issued")
	})

	t.Run("splits into batches at the multi-delete ceiling", func(t *testing.T) {
		fake := newFakeStore()
		total := store.MaxBatchDelete*2 + 500
		for i := 0; i < total; i++ {
			fake.add(fmt.Sprintf("media/big/%05d.bin", i), []byte("x"))
		}
		fsys, _ := newObservedFS(t, fake)

		fsys.DeleteDirectory(ctx, "big", true)

		require.Len(t, fake.batchCalls, 3)
		assert.Len(t, fake.batchCalls[0], store.MaxBatchDelete)
		assert.Len(t, fake.batchCalls[1], store.MaxBatchDelete)
		assert.Len(t, fake.batchCalls[2], 500)
		assert.Empty(t, fake.objects, "all keys gone afterwards")
	})

	t.Run("batch failure is logged and remaining batches continue", func(t *testing.T) {
		fake := newFakeStore()
		total := store.MaxBatchDelete + 10
		for i := 0; i < total; i++ {
			fake.add(fmt.Sprintf("media/big/%05d.bin", i), []byte("x"))
		}
		fake.batchErr = errors.New("boom")
		fsys, logs := newObservedFS(t, fake)

		fsys.DeleteDirectory(ctx, "big", true)

		assert.Len(t, fake.batchCalls, 2, "failure must not abort the orchestration")
		assert.Equal(t, 2, logs.FilterMessage("delete batch failed").Len())
	})
}
