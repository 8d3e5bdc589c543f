package execute

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLockHeld is returned when another process holds the exec lock.
var ErrLockHeld = errors.New("another fuzip exec run is active")

// Lock is an exclusive, non-blocking file lock around an exec run.
type Lock struct {
	lock *flock.Flock
}

// AcquireLock takes the lock at path, creating its directory when needed.
func AcquireLock(path string) (*Lock, error) {
	if path == "" {
		return nil, errors.New("lock path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, ErrLockHeld
	}
	return &Lock{lock: fl}, nil
}

// Release drops the lock. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
