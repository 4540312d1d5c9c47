package vfs

import "strings"

// BucketDomainSuffix is appended to the bucket name to form the
// virtual-hosted bucket domain used in public URLs.
const BucketDomainSuffix = ".s3.amazonaws.com"

// BuildURL composes the absolute public URL for a path.
//
// A path that is already an absolute URL is returned unchanged, so
// BuildURL is idempotent. The scheme is https unless the file system was
// configured for plaintext URLs.
func (fs *FileSystem) BuildURL(path string) string {
	if hasSchemePrefix(path) {
		return path
	}
	return fs.urlPrefix() + fs.ToKey(path)
}

// StripURL removes the bucket URL prefix from an absolute URL, yielding
// the canonical key. Input without that prefix is treated as already
// relative and normalized the same way as ToKey.
//
// For any relative path p, StripURL(BuildURL(p)) is key-equivalent to
// ToKey(p).
func (fs *FileSystem) StripURL(urlOrPath string) string {
	if trimmed, ok := strings.CutPrefix(urlOrPath, fs.urlPrefix()); ok {
		return fs.ToKey(trimmed)
	}
	if hasSchemePrefix(urlOrPath) {
		// A URL for some other host; nothing of ours to strip.
		return urlOrPath
	}
	return fs.ToKey(urlOrPath)
}

// urlPrefix returns "<scheme>://<bucket-domain>/".
func (fs *FileSystem) urlPrefix() string {
	scheme := "https"
	if fs.plainHTTP {
		scheme = "http"
	}
	return scheme + "://" + fs.bucket + BucketDomainSuffix + Delimiter
}
