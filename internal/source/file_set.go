package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every file a single freya invocation has loaded and hands
// out the FileIDs spans refer back to.
type FileSet struct {
	files   []File
	baseDir string // diagnostics render paths relative to this
}

// NewFileSet returns an empty set whose diagnostic paths are rendered
// relative to the process working directory.
func NewFileSet() *FileSet {
	return &FileSet{}
}

// NewFileSetWithBase returns an empty set whose diagnostic paths are
// rendered relative to baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{baseDir: baseDir}
}

// BaseDir returns the directory diagnostic paths are relative to, falling
// back to the working directory when none was set.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fs.baseDir
}

// Add registers already-normalized content under path and returns its ID.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	id := FileID(n)
	fs.files = append(fs.files, File{
		ID:       id,
		Path:     cleanPath(path),
		Content:  content,
		Flags:    flags,
		Hash:     sha256.Sum256(content),
		newlines: indexNewlines(content),
	})
	return id
}

// AddVirtual registers in-memory content that never existed on disk.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Load reads path from disk, strips a UTF-8 BOM, normalizes CRLF line
// endings, and registers the result.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var flags FileFlags
	if trimmed, ok := stripBOM(content); ok {
		content = trimmed
		flags |= FileHadBOM
	}
	if normalized, ok := normalizeCRLF(content); ok {
		content = normalized
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// Get returns the file a FileID names. The ID must have come from this set.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// Resolve converts a span's endpoints into 1-based line/column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := &fs.files[span.File]
	return f.lineColAt(span.Start), f.lineColAt(span.End)
}

func stripBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// normalizeCRLF rewrites \r\n pairs to \n, leaving lone \r bytes alone.
func normalizeCRLF(content []byte) ([]byte, bool) {
	i := 0
	for ; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			break
		}
	}
	if i+1 >= len(content) {
		return content, false
	}

	out := make([]byte, 0, len(content))
	out = append(out, content[:i]...)
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			continue
		}
		out = append(out, content[i])
		i++
	}
	return out, true
}
