package fetcher

import (
	"path"
	"strings"

	"assistant-trigger/internal/model"
)

var excludedExtensions = map[string]struct{}{
	// images
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".ico": {}, ".webp": {}, ".svg": {}, ".tiff": {},
	// archives
	".zip": {}, ".tar": {}, ".gz": {}, ".tgz": {}, ".bz2": {}, ".xz": {}, ".7z": {}, ".rar": {}, ".jar": {}, ".war": {},
	// binaries
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".a": {}, ".o": {}, ".bin": {}, ".class": {}, ".pyc": {}, ".wasm": {},
	// documents and media
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {},
	".mp3": {}, ".mp4": {}, ".mov": {}, ".avi": {}, ".wav": {}, ".ogg": {}, ".webm": {},
	// fonts
	".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {}, ".eot": {},
	// lockfiles and build output
	".lock": {}, ".map": {},
}

var excludedFileNames = map[string]struct{}{
	"package-lock.json": {},
	"yarn.lock":         {},
	"pnpm-lock.yaml":    {},
	"go.sum":            {},
	"cargo.lock":        {},
	"composer.lock":     {},
	"gemfile.lock":      {},
	"poetry.lock":       {},
}

var excludedSuffixes = []string{".min.js", ".min.css"}

var excludedSegments = []string{"node_modules", ".git", "build", "dist"}

// ShouldFetch reports whether the content of a changed file at p is worth
// including: not a binary, lockfile, minified asset or build output.
func ShouldFetch(p string) bool {
	lower := strings.ToLower(p)
	if lower == "" {
		return false
	}

	if _, ok := excludedFileNames[path.Base(lower)]; ok {
		return false
	}
	if _, ok := excludedExtensions[path.Ext(lower)]; ok {
		return false
	}
	for _, s := range excludedSuffixes {
		if strings.HasSuffix(lower, s) {
			return false
		}
	}
	for _, seg := range strings.Split(path.Dir(lower), "/") {
		for _, ex := range excludedSegments {
			if seg == ex {
				return false
			}
		}
	}
	return true
}

// SelectFiles returns the paths to fetch from diffs: non-deleted, not
// excluded, in diff order, at most MaxFiles.
func SelectFiles(diffs []model.Diff) []string {
	paths := make([]string, 0, MaxFiles)
	for _, d := range diffs {
		if len(paths) == MaxFiles {
			break
		}
		if d.DeletedFile || !ShouldFetch(d.NewPath) {
			continue
		}
		paths = append(paths, d.NewPath)
	}
	return paths
}
