// Package platform names the operating systems genhub treats differently.
package platform

import "runtime"

const (
	// OSWindows represents the Windows operating system.
	OSWindows = "windows"
	// OSLinux represents the Linux operating system.
	OSLinux = "linux"
	// OSDarwin represents the macOS operating system.
	OSDarwin = "darwin"
)

// IsWindows reports whether genhub runs on Windows, where npm is a .cmd script.
func IsWindows() bool {
	return runtime.GOOS == OSWindows
}
