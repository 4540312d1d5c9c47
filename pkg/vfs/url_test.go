package vfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloudmere/bucketfs/pkg/vfs"
)

func TestBuildURL(t *testing.T) {
	fsys := newPathFS(t, "media")

	t.Run("relative path", func(t *testing.T) {
		assert.Equal(t,
			"https://mybucket.s3.amazonaws.com/media/123/img.jpg",
			fsys.BuildURL("123/img.jpg"))
	})

	t.Run("idempotent on absolute input", func(t *testing.T) {
		url := fsys.BuildURL("123/img.jpg")
		assert.Equal(t, url, fsys.BuildURL(url))
	})

	t.Run("plaintext scheme", func(t *testing.T) {
		plain, err := vfs.New(newFakeStore(), vfs.Config{
			Bucket:    "mybucket",
			MediaRoot: "media",
			PlainHTTP: true,
		}, zap.NewNop())
		require.NoError(t, err)

		assert.Equal(t,
			"http://mybucket.s3.amazonaws.com/media/123/img.jpg",
			plain.BuildURL("123/img.jpg"))
	})
}

func TestStripURL(t *testing.T) {
	fsys := newPathFS(t, "media")

	t.Run("round trip matches ToKey", func(t *testing.T) {
		for _, p := range []string{
			"123/img.jpg",
			"/123/img.jpg",
			`123\img.jpg`,
			"media/123/img.jpg",
			"deep/a/b/c/d.png",
		} {
			assert.Equal(t, fsys.ToKey(p), fsys.StripURL(fsys.BuildURL(p)), "path %q", p)
		}
	})

	t.Run("relative input is normalized", func(t *testing.T) {
		assert.Equal(t, "media/123/img.jpg", fsys.StripURL("123/img.jpg"))
	})

	t.Run("foreign URL is left alone", func(t *testing.T) {
		foreign := "https://other.example.com/123/img.jpg"
		assert.Equal(t, foreign, fsys.StripURL(foreign))
	})
}
