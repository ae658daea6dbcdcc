package types

import (
	"io/fs"
	"os"
)

// OSFS implements FS against the real filesystem.
type OSFS struct{}

func NewOSFS() *OSFS { return &OSFS{} }

func (*OSFS) Stat(name string) (fs.FileInfo, error)      { return os.Stat(name) }
func (*OSFS) ReadFile(name string) ([]byte, error)       { return os.ReadFile(name) }
func (*OSFS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }
