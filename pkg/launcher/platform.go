package launcher

import "runtime"

// PlatformCheck reports whether the host can run the wrapped tools.
type PlatformCheck func() bool

// IsWindows is the default PlatformCheck. Both helpers depend on Windows-only tooling.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// Always returns a PlatformCheck with a fixed answer.
func Always(supported bool) PlatformCheck {
	return func() bool {
		return supported
	}
}
