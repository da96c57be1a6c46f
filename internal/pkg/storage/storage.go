package storage

import "context"

// FileStorage is the flat-file collaborator behind the repositories. Records
// are small line-oriented text files, so reads and writes are whole-file.
type FileStorage interface {
	// Read returns a file's full contents. Missing files surface
	// fs.ErrNotExist through the error chain.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write creates or overwrites a file with the given contents.
	Write(ctx context.Context, path string, data []byte) error

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists.
	Exists(ctx context.Context, path string) (bool, error)

	// List returns the file names (not paths) in a directory, sorted,
	// creating the directory if it does not exist yet.
	List(ctx context.Context, dir string) ([]string, error)
}
