//go:build !unix

package terminal

import "os"

func newFileReader(*os.File) (byteReaderWithTimeout, bool) {
	return nil, false
}
