package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/harrison/dataset/internal/display"
	"github.com/harrison/dataset/internal/filelock"
	"github.com/harrison/dataset/internal/models"
)

// Action is the per-record operation applied by the engine once a record has
// passed the filter and every declared file is present.
type Action interface {
	Name() string
	Apply(ctx context.Context, rec *models.Record) error
}

// CheckAction reports each complete dataset.
type CheckAction struct {
	out io.Writer
}

// NewCheckAction creates the check action writing to out.
func NewCheckAction(out io.Writer) *CheckAction {
	return &CheckAction{out: out}
}

// Name implements Action.
func (a *CheckAction) Name() string { return "check" }

// Apply prints "<name> is present".
func (a *CheckAction) Apply(_ context.Context, rec *models.Record) error {
	_, err := fmt.Fprintf(a.out, "%s is present\n", rec.Name())
	return err
}

// TarAction archives the declared files of each dataset into <name>.tar.
type TarAction struct {
	out      io.Writer
	archiver Archiver
	dir      string
}

// NewTarAction creates the tar action. Archives are written under dir
// (the current directory when empty).
func NewTarAction(out io.Writer, archiver Archiver, dir string) *TarAction {
	return &TarAction{out: out, archiver: archiver, dir: dir}
}

// Name implements Action.
func (a *TarAction) Name() string { return "tar" }

// ArchivePath returns where the archive for rec is written.
func (a *TarAction) ArchivePath(rec *models.Record) string {
	return filepath.Join(a.dir, rec.Name()+".tar")
}

// Apply creates the archive unless it already exists.
//
// The existence check and creation happen under an exclusive lock on
// <archive>.lock, so two concurrent runs cannot both build the same archive.
func (a *TarAction) Apply(ctx context.Context, rec *models.Record) error {
	paths := rec.DeclaredFiles()
	if len(paths) == 0 {
		return fmt.Errorf("%w: %s declares no files", ErrNothingToArchive, rec.Name())
	}

	archive := a.ArchivePath(rec)
	return filelock.TryWithLock(archive, func() error {
		if _, err := os.Lstat(archive); err == nil {
			display.ArchiveExists(archive).Display(a.out)
			return fmt.Errorf("%w: %s", ErrArchiveExists, archive)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat archive: %w", err)
		}

		fmt.Fprintf(a.out, "tarring %s ...\n", rec.Name())
		if err := a.archiver.Archive(ctx, archive, paths); err != nil {
			// a partial archive would be reported as "already exists" by the next run
			if rmErr := os.Remove(archive); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				return errors.Join(err, fmt.Errorf("failed to remove partial archive: %w", rmErr))
			}
			return err
		}
		return nil
	})
}

// MD5Action prints the checksum of every declared file of each dataset.
type MD5Action struct {
	out         io.Writer
	checksummer Checksummer
}

// NewMD5Action creates the md5 action.
func NewMD5Action(out io.Writer, checksummer Checksummer) *MD5Action {
	return &MD5Action{out: out, checksummer: checksummer}
}

// Name implements Action.
func (a *MD5Action) Name() string { return "md5" }

// Apply prints the dataset name followed by one checksum line per file, in
// field order. A failing file does not stop the remaining ones; all failures
// are returned joined.
func (a *MD5Action) Apply(ctx context.Context, rec *models.Record) error {
	fmt.Fprintln(a.out, rec.Name())

	var errs []error
	for _, path := range rec.DeclaredFiles() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line, err := a.checksummer.Checksum(ctx, path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintln(a.out, line)
	}
	return errors.Join(errs...)
}
