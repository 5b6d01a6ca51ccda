package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/djherbis/times"
)

func pathExists(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}
	return true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// deviceGone reports whether err was caused by the underlying storage
// disappearing (card pulled, drive unmounted). ENXIO is "device not
// configured" on Darwin; Linux surfaces removed media as ENODEV or EIO.
func deviceGone(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.ENXIO || errno == syscall.ENODEV || errno == syscall.EIO
	}
	return false
}

// errDeviceUnavailable distinguishes a disconnected destination from a
// plain creation failure; the orchestrator words its message differently.
var errDeviceUnavailable = errors.New("destination device unavailable")

// ensureDestination builds <root>/<year>.<month> and creates any missing
// directories. Creating a folder that already exists is a success.
func ensureDestination(root, year, month string) (string, error) {
	dest := filepath.Join(root, year+"."+month)

	if err := os.MkdirAll(dest, DirPerms); err != nil {
		if deviceGone(err) {
			return "", fmt.Errorf("%w while creating folder %s.%s", errDeviceUnavailable, year, month)
		}
		return "", fmt.Errorf("failed to create folder %s: %w", dest, err)
	}
	return dest, nil
}

// copyFile streams src to dest and carries over the source's permission
// bits and timestamps. dest is written in place; a failed copy may leave
// partial bytes behind, mirroring what cp would do.
func copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	s, err := os.Open(src)
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(d, s); err != nil {
		d.Close()
		return err
	}
	if err := d.Close(); err != nil {
		return err
	}

	return copyFileTimes(src, dest, info)
}

func copyFileTimes(src, dest string, info os.FileInfo) error {
	ts, err := times.Stat(src)
	if err != nil {
		// Fall back to the mod time we already have.
		return os.Chtimes(dest, info.ModTime(), info.ModTime())
	}
	return os.Chtimes(dest, ts.AccessTime(), ts.ModTime())
}
