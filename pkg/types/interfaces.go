package types

import "io/fs"

// FS abstracts the filesystem operations confsweep needs so the scanner,
// metadata resolver and tests can run against an in-memory implementation.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}
