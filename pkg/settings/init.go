package settings

import (
	"context"
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
)

//go:embed embedded/starter.toml
var starterSettings []byte

// StarterContent returns the commented template written by Init
func StarterContent() string {
	return string(starterSettings)
}

// Init writes the starter settings file to path, creating its directory.
// An existing file is only replaced when force is set.
func Init(ctx context.Context, path string, force bool) error {
	logger := logging.GetLogger("settings")

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve path: %s", path)
	}

	exists := false
	if _, err := os.Lstat(absPath); err == nil {
		if !force {
			return errors.Newf(errors.ErrFileWrite, "settings file already exists: %s", absPath).
				WithDetail("path", absPath)
		}
		exists = true
	}

	write := func() error { return writeStarter(ctx, absPath) }
	if exists {
		logger.Debug().Str("target", absPath).Msg("Replacing existing settings file in force mode")
		err = replaceWithBackup(absPath, write)
	} else {
		err = write()
	}
	if err != nil {
		return err
	}

	logger.Info().Str("path", absPath).Msg("Wrote starter settings")
	return nil
}

// replaceWithBackup moves path aside, runs write and restores the original
// file when write fails. The backup is removed once write succeeds.
func replaceWithBackup(path string, write func() error) error {
	backup := path + ".bak"
	if err := os.Rename(path, backup); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to back up %s", path)
	}

	if err := write(); err != nil {
		_ = os.Remove(path)
		if rerr := os.Rename(backup, path); rerr != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "write failed and %s could not be restored from %s", path, backup)
		}
		return err
	}

	_ = os.Remove(backup)
	return nil
}

func writeStarter(ctx context.Context, absPath string) error {
	logger := logging.GetLogger("settings")

	pipeline := synthfs.NewMemPipeline()

	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		relDir, err := filepath.Rel("/", dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", dir)
		}
		dirOp := operations.NewCreateDirectoryOperation(core.OperationID(fmt.Sprintf("create-dir-%s", dir)), relDir)
		dirOp.SetItem(&directoryItem{path: relDir, mode: 0755})
		if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(dirOp)); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "failed to add operation to pipeline")
		}
	}

	relPath, err := filepath.Rel("/", absPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", absPath)
	}
	fileOp := operations.NewCreateFileOperation(core.OperationID(fmt.Sprintf("write-file-%s", absPath)), relPath)
	fileOp.SetItem(&fileItem{path: relPath, content: starterSettings, mode: 0644})
	if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(fileOp)); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to add operation to pipeline")
	}

	result := synthfs.NewExecutor().Run(ctx, pipeline, filesystem.NewOSFileSystem("/"))
	if result.GetError() != nil {
		logger.Error().Err(result.GetError()).Str("path", absPath).Msg("Writing settings failed")
		return errors.Wrapf(result.GetError(), errors.ErrFileWrite, "failed to write %s", absPath)
	}
	return nil
}

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

// directoryItem implements the interface needed for directory operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
