package launcher

import "fmt"

const (
	ExitSuccess = 0
	ExitFailure = 1
)

type UnsupportedPlatformError struct {
	Tool string
	OS   string
	Hint string
}

var _ error = (*UnsupportedPlatformError)(nil)

func (e UnsupportedPlatformError) Error() string {
	msg := fmt.Sprintf("Skipping Windows-only %s helper on %s.", e.Tool, e.OS)
	if e.Hint != "" {
		msg += " " + e.Hint
	}
	return msg
}

type MissingBuildDirError struct {
	Path string
}

var _ error = (*MissingBuildDirError)(nil)

func (e MissingBuildDirError) Error() string {
	return fmt.Sprintf("Build directory %s not found. Run the bootstrap step first.", e.Path)
}

type SpawnError struct {
	Command string
	Err     error
}

var _ error = (*SpawnError)(nil)

func (e *SpawnError) Error() string {
	return fmt.Sprintf("Failed to launch %s: %s", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by this package to the process exit code.
// A child that exited non-zero is not an error; its code is returned separately.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	return ExitFailure
}
