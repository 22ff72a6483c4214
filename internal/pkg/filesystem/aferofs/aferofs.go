// nolint: forbidigo
package aferofs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/mapsbench/mapsload/internal/pkg/filesystem"
	"github.com/mapsbench/mapsload/internal/pkg/filesystem/aferofs/localfs"
	"github.com/mapsbench/mapsload/internal/pkg/filesystem/aferofs/memoryfs"
)

// backend is an afero filesystem with a name and a base path.
type backend interface {
	afero.Fs
	Name() string
	BasePath() string
}

// Fs implements the filesystem.Fs interface on top of a backend.
type Fs struct {
	backend backend
	utils   *afero.Afero
	logger  *zap.SugaredLogger
}

// NewLocalFs creates a filesystem abstraction rooted at the basePath.
// It fails if the path does not exist or is not a directory.
func NewLocalFs(logger *zap.SugaredLogger, basePath string) (filesystem.Fs, error) {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(`base path "%s" does not exist`, basePath)
		}
		return nil, err
	} else if !info.IsDir() {
		return nil, fmt.Errorf(`base path "%s" is not a directory`, basePath)
	}

	return New(logger, localfs.New(absPath)), nil
}

// NewMemoryFs creates an empty in-memory filesystem abstraction.
func NewMemoryFs(logger *zap.SugaredLogger) filesystem.Fs {
	return New(logger, memoryfs.New())
}

func New(logger *zap.SugaredLogger, backend backend) *Fs {
	return &Fs{
		backend: backend,
		utils:   &afero.Afero{Fs: backend},
		logger:  logger,
	}
}

func (fs *Fs) Name() string {
	return fs.backend.Name()
}

func (fs *Fs) BasePath() string {
	return fs.backend.BasePath()
}

func (fs *Fs) SetLogger(logger *zap.SugaredLogger) {
	fs.logger = logger
}

func (fs *Fs) Glob(pattern string) (matches []string, err error) {
	return afero.Glob(fs.backend, pattern)
}

func (fs *Fs) ReadDir(path string) ([]os.FileInfo, error) {
	return fs.utils.ReadDir(path)
}

func (fs *Fs) Mkdir(path string) error {
	if err := fs.utils.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf(`cannot create directory "%s": %w`, path, err)
	}
	return nil
}

func (fs *Fs) Exists(path string) bool {
	if _, err := fs.backend.Stat(path); err == nil {
		return true
	}
	return false
}

func (fs *Fs) IsFile(path string) bool {
	if info, err := fs.backend.Stat(path); err == nil {
		return info.Mode().IsRegular()
	}
	return false
}

func (fs *Fs) IsDir(path string) bool {
	if info, err := fs.backend.Stat(path); err == nil {
		return info.IsDir()
	}
	return false
}

// ReadFile reads the whole file, the file handle is closed on all paths.
func (fs *Fs) ReadFile(path, desc string) (*filesystem.File, error) {
	content, err := fs.utils.ReadFile(path)
	if err != nil {
		fileDesc := fileDesc(desc)
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(`missing %s "%s"`, fileDesc, path)
		}
		return nil, fmt.Errorf(`cannot read %s "%s": %w`, fileDesc, path, err)
	}

	fs.logger.Debugf(`Loaded "%s"`, path)
	return filesystem.NewFile(path, string(content)).SetDescription(desc), nil
}

// WriteFile writes the file, the parent directory is created if it is missing.
func (fs *Fs) WriteFile(file *filesystem.File) error {
	if dir := filesystem.Dir(file.Path); dir != "." {
		if err := fs.Mkdir(dir); err != nil {
			return err
		}
	}

	if err := fs.utils.WriteFile(file.Path, []byte(file.Content), 0o644); err != nil {
		return fmt.Errorf(`cannot write %s "%s": %w`, fileDesc(file.Desc), file.Path, err)
	}

	fs.logger.Debugf(`Saved "%s"`, file.Path)
	return nil
}

func fileDesc(desc string) string {
	if desc == "" {
		return "file"
	}
	return desc + " file"
}
