// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package interrupt

import (
	"os"

	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var platform = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP}
