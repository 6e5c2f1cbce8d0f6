// Package lockfile provides exclusive advisory file locking using flock.
//
// The clone pipeline takes one lock per cache mirror so that two schedulers
// racing to create or refresh the same mirror serialize instead of
// corrupting it. The filesystem is the only synchronization point shared
// between processes.
package lockfile

import (
	"os"
	"syscall"
)

// Lock provides exclusive file-based locking using flock.
type Lock struct {
	path string
	file *os.File
}

// New creates a new file lock for the given path.
// The lock file will be created if it doesn't exist.
func New(path string) *Lock {
	return &Lock{path: path}
}

// Lock acquires an exclusive lock on the file.
// Blocks until the lock is acquired.
func (l *Lock) Lock() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return err
	}
	l.file = f

	// Acquire exclusive lock (blocking)
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		f.Close()
		l.file = nil
		return err
	}

	return nil
}

// Unlock releases the lock and closes the file.
func (l *Lock) Unlock() error {
	if l.file == nil {
		return nil
	}

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		l.file.Close()
		l.file = nil
		return err
	}

	err := l.file.Close()
	l.file = nil
	return err
}
