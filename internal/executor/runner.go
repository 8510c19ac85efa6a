package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/harrison/dataset/internal/fileutil"
)

// Archiver bundles files into an archive.
type Archiver interface {
	Archive(ctx context.Context, archive string, paths []string) error
}

// Checksummer produces one printable checksum line for a file.
type Checksummer interface {
	Checksum(ctx context.Context, path string) (string, error)
}

// TarArchiver runs "<binary> -cf <archive> -- <paths...>".
type TarArchiver struct {
	Runner CommandRunner
	Binary string
}

// NewTarArchiver creates an Archiver backed by binary ("tar" when empty).
func NewTarArchiver(runner CommandRunner, binary string) *TarArchiver {
	if binary == "" {
		binary = "tar"
	}
	return &TarArchiver{Runner: runner, Binary: binary}
}

// Archive creates archive from paths.
func (a *TarArchiver) Archive(ctx context.Context, archive string, paths []string) error {
	// "--" keeps a path starting with '-' from being read as an option
	args := append([]string{"-cf", archive, "--"}, paths...)
	if _, err := a.Runner.Run(ctx, a.Binary, args...); err != nil {
		return fmt.Errorf("archiving %s: %w", archive, err)
	}
	return nil
}

// MD5Checksummer runs "<binary> <path>" and returns its output line.
type MD5Checksummer struct {
	Runner CommandRunner
	Binary string
}

// NewMD5Checksummer creates a Checksummer backed by binary ("md5sum" when empty).
func NewMD5Checksummer(runner CommandRunner, binary string) *MD5Checksummer {
	if binary == "" {
		binary = "md5sum"
	}
	return &MD5Checksummer{Runner: runner, Binary: binary}
}

// Checksum returns the checksum line for path without the trailing newline.
func (c *MD5Checksummer) Checksum(ctx context.Context, path string) (string, error) {
	out, err := c.Runner.Run(ctx, c.Binary, path)
	if err != nil {
		return "", fmt.Errorf("checksumming %s: %w", path, err)
	}
	return strings.TrimRight(out, "\r\n"), nil
}

// DirectoryLister finds wizard candidates and renders directory listings.
type DirectoryLister struct {
	Runner CommandRunner
	Binary string
}

// NewDirectoryLister creates a lister whose listing is produced by binary ("ls" when empty).
func NewDirectoryLister(runner CommandRunner, binary string) *DirectoryLister {
	if binary == "" {
		binary = "ls"
	}
	return &DirectoryLister{Runner: runner, Binary: binary}
}

// Candidates returns the regular files whose path starts with prefix, sorted.
func (l *DirectoryLister) Candidates(prefix string) ([]fileutil.Candidate, error) {
	return fileutil.MatchPrefix(prefix)
}

// Listing returns the long listing of dir.
func (l *DirectoryLister) Listing(ctx context.Context, dir string) (string, error) {
	out, err := l.Runner.Run(ctx, l.Binary, "-l", dir)
	if err != nil {
		return "", fmt.Errorf("listing %s: %w", dir, err)
	}
	return out, nil
}
