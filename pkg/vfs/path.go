package vfs

import "strings"

// Delimiter is the character the store uses to group keys into simulated
// directories. Keys never contain the platform's native separator; it is
// always translated to the delimiter.
const Delimiter = "/"

// ToKey converts a host file-system path into the canonical object key.
//
// Rules, in order:
//   - Empty input maps to empty output.
//   - A path that is already an absolute URL is returned unchanged; use
//     StripURL to recover the key from a URL.
//   - Native separators are translated to the delimiter.
//   - With no media root configured, the path is only slash-normalized.
//   - A path already under the media root is returned as-is, so the root
//     is never prepended twice.
//   - The delimiter alone maps to the media root followed by the delimiter.
//   - Otherwise the media root and the path are joined with exactly one
//     delimiter.
//
// ToKey is idempotent: normalizing an already-normalized key returns it
// unchanged.
func (fs *FileSystem) ToKey(path string) string {
	if path == "" {
		return ""
	}
	if hasSchemePrefix(path) {
		return path
	}

	path = normalizeSlashes(path)

	if fs.mediaRoot == "" {
		return path
	}
	if path == fs.mediaRoot || strings.HasPrefix(path, fs.mediaRoot+Delimiter) {
		return path
	}
	if path == Delimiter {
		return fs.mediaRoot + Delimiter
	}

	return fs.mediaRoot + Delimiter + strings.TrimPrefix(path, Delimiter)
}

// ToRelativePath converts a key or absolute URL back into a path relative
// to the media root.
func (fs *FileSystem) ToRelativePath(keyOrURL string) string {
	if keyOrURL == "" {
		return ""
	}

	path := normalizeSlashes(fs.StripURL(keyOrURL))

	if fs.mediaRoot != "" {
		if path == fs.mediaRoot {
			return ""
		}
		path = strings.TrimPrefix(path, fs.mediaRoot+Delimiter)
	}

	return strings.TrimPrefix(path, Delimiter)
}

// directoryPrefix converts a path into a listing prefix: the canonical key
// with a trailing delimiter. Directory-style paths always end in the
// delimiter before being used as a prefix.
func (fs *FileSystem) directoryPrefix(path string) string {
	key := fs.ToKey(path)
	if key == "" {
		if fs.mediaRoot == "" {
			return ""
		}
		key = fs.mediaRoot
	}
	if !strings.HasSuffix(key, Delimiter) {
		key += Delimiter
	}
	return key
}

// normalizeSlashes translates native directory separators to the delimiter.
func normalizeSlashes(path string) string {
	return strings.ReplaceAll(path, `\`, Delimiter)
}

// hasSchemePrefix reports whether the path is already an absolute URL.
func hasSchemePrefix(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
