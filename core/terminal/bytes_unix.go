//go:build unix

package terminal

import (
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// fileReader reads a terminal one byte at a time, polling first when a
// timeout is given. Nothing is read ahead, so bytes typed while a child
// process runs are left for the child.
type fileReader struct {
	file *os.File
	fd   int
}

func newFileReader(f *os.File) (byteReaderWithTimeout, bool) {
	return &fileReader{file: f, fd: int(f.Fd())}, true
}

func (r *fileReader) ReadByteWithTimeout(timeout time.Duration) (byte, error) {
	if timeout >= 0 {
		ready, err := r.waitForRead(timeout)
		if err != nil {
			return 0, err
		}
		if !ready {
			return 0, errTimeout
		}
	}

	var b [1]byte
	n, err := r.file.Read(b[:])
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, io.ErrNoProgress
	}
	return b[0], nil
}

func (r *fileReader) waitForRead(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(r.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, int(timeout/time.Millisecond))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}
