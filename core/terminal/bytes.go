package terminal

import (
	"errors"
	"io"
	"os"
	"time"
)

var errTimeout = errors.New("timed out waiting for input")

// byteReaderWithTimeout reads single bytes. A negative timeout waits forever,
// otherwise errTimeout is returned when no byte arrives in time.
type byteReaderWithTimeout interface {
	ReadByteWithTimeout(timeout time.Duration) (byte, error)
}

func newByteReader(r io.Reader) byteReaderWithTimeout {
	if f, ok := r.(*os.File); ok {
		if fr, ok := newFileReader(f); ok {
			return fr
		}
	}
	return newPumpReader(r)
}

// pumpReader moves bytes from any reader into a channel from a goroutine so
// reads can time out. It keeps reading ahead, so it must not be used on input
// shared with child processes.
type pumpReader struct {
	bytes chan byte
	err   error // valid once bytes is closed
}

func newPumpReader(r io.Reader) *pumpReader {
	p := &pumpReader{bytes: make(chan byte, 64)}

	go func() {
		defer close(p.bytes)

		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				p.bytes <- b
			}
			if err != nil {
				p.err = err
				return
			}
		}
	}()

	return p
}

func (p *pumpReader) ReadByteWithTimeout(timeout time.Duration) (byte, error) {
	var expired <-chan time.Time
	if timeout >= 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case b, ok := <-p.bytes:
		if !ok {
			return 0, p.err
		}
		return b, nil
	case <-expired:
		return 0, errTimeout
	}
}
