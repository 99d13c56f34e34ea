// Package resolve implements Gold's pluggable import resolution: a
// (base directory, import path) pair maps to either source text or a
// failure, without the evaluator ever touching the filesystem directly.
package resolve

import (
	"os"
	"path/filepath"

	"gold/gerr"
	"gold/span"
)

// Resolver maps an import path, relative to baseDir (the directory
// containing the importing file), to source text.
type Resolver interface {
	Resolve(baseDir, importPath string) (source string, resolvedDir string, err *gerr.Error)
}

// NullResolver rejects every import; used by EvalRaw, which has no
// notion of a containing file.
type NullResolver struct{}

func (NullResolver) Resolve(baseDir, importPath string) (string, string, *gerr.Error) {
	return "", "", gerr.New(gerr.ImportError, span.Span{}, "imports are not supported in this evaluation context (tried %q)", importPath)
}

// FileResolver resolves imports against the local filesystem, relative
// to the importing file's directory.
type FileResolver struct{}

func (FileResolver) Resolve(baseDir, importPath string) (string, string, *gerr.Error) {
	full := filepath.Join(baseDir, importPath)
	data, err := os.ReadFile(full)
	if err != nil {
		return "", "", gerr.New(gerr.ImportError, span.Span{}, "cannot read import %q: %s", importPath, err)
	}
	return string(data), filepath.Dir(full), nil
}
