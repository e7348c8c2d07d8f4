package source

import (
	"path/filepath"
	"sort"
)

// FileID names one file within a FileSet. IDs are dense and assigned in
// load order.
type FileID uint32

// FileFlags records how a file's content was normalized on load.
type FileFlags uint8

const (
	// FileVirtual marks content that never came from disk (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file whose UTF-8 byte order mark was stripped.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose \r\n sequences became \n.
	FileNormalizedCRLF
)

// File is one loaded source file: its normalized content plus the newline
// index Resolve uses to turn byte offsets into line/column pairs.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Flags   FileFlags

	// Hash fingerprints the normalized content, so tooling layered on a
	// FileSet can detect when a path was reloaded with different bytes.
	Hash [32]byte

	newlines []uint32 // byte offset of every '\n', ascending
}

// LineCol is a 1-based human-readable position.
type LineCol struct {
	Line uint32
	Col  uint32
}

// RelativeTo renders the file's path relative to base, for diagnostics that
// should read the same regardless of where the tool was invoked from. When
// no relative form exists (different volume, unresolvable base) the stored
// path is returned as-is. Output always uses forward slashes.
func (f *File) RelativeTo(base string) string {
	abs, err := filepath.Abs(f.Path)
	if err != nil {
		return cleanPath(f.Path)
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return cleanPath(abs)
	}
	rel, err := filepath.Rel(absBase, abs)
	if err != nil {
		return cleanPath(abs)
	}
	return cleanPath(rel)
}

func cleanPath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// lineColAt resolves a byte offset against the newline index. An offset
// sitting exactly on a '\n' counts as the end of the line the newline
// terminates, not the start of the next one.
func (f *File) lineColAt(off uint32) LineCol {
	nl := f.newlines
	i := sort.Search(len(nl), func(k int) bool { return nl[k] >= off })
	lineStart := uint32(0)
	if i > 0 {
		lineStart = nl[i-1] + 1
	}
	return LineCol{Line: uint32(i) + 1, Col: off - lineStart + 1}
}

func indexNewlines(content []byte) []uint32 {
	var out []uint32
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}
