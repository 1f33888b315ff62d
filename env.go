package testenv

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// WSL environment variables checked by IsWSL. Presence counts; the
// value is ignored.
const (
	wslDistroEnv = "WSL_DISTRO_NAME"
	wslMarkerEnv = "WSLENV"
)

// UserHome returns the current user's home directory.
func UserHome() (string, error) {
	return homedir.Dir()
}

// OSInfo returns a human-readable OS summary, e.g. "OS: linux, WSL: true".
func OSInfo() string {
	return fmt.Sprintf("OS: %s, WSL: %t", runtime.GOOS, IsWSL())
}

// IsWSL reports whether the process runs under the Windows Subsystem
// for Linux. Both conditions are required: the OS name must contain
// "linux" and at least one of the WSL environment variables must be
// present.
func IsWSL() bool {
	return isWSL(runtime.GOOS, os.LookupEnv)
}

func isWSL(osName string, lookupEnv func(string) (string, bool)) bool {
	if !strings.Contains(strings.ToLower(osName), "linux") {
		return false
	}
	if _, ok := lookupEnv(wslDistroEnv); ok {
		return true
	}
	_, ok := lookupEnv(wslMarkerEnv)
	return ok
}
