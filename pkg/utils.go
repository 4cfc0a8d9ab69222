package pkg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/colorstring"
	"github.com/rotisserie/eris"
)

// RootMarkers identify the project root. The first directory containing any of them wins.
var RootMarkers = []string{".git", "run.bat", "CMakeLists.txt"}

// FindProjectRoot walks up from start until it finds a directory containing one of markers.
func FindProjectRoot(start string, markers ...string) (string, error) {
	mypath, err := filepath.Abs(start)
	if err != nil {
		return "", eris.Wrapf(err, "Failed to resolve %s", start)
	}

	for {
		for _, marker := range markers {
			_, err := os.Stat(filepath.Join(mypath, marker))
			if err == nil {
				return mypath, nil
			}

			if !eris.Is(err, os.ErrNotExist) {
				return "", eris.Wrap(err, "Error ocurred while searching for project root")
			}
		}

		nextPath := filepath.Dir(mypath)
		if mypath == nextPath {
			break
		}
		mypath = nextPath
	}

	return "", eris.Errorf("Project root not found above %s", start)
}

// GetProjectRoot locates the project this tool belongs to. It looks next to the executable
// first, then next to the source file (for go run) and finally in the working directory.
func GetProjectRoot() (string, error) {
	candidates := []string{}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		candidates = append(candidates, filepath.Dir(exe))
	}

	if _, mypath, _, ok := runtime.Caller(0); ok {
		candidates = append(candidates, filepath.Dir(mypath))
	}

	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, wd)
	}

	for _, start := range candidates {
		root, err := FindProjectRoot(start, RootMarkers...)
		if err == nil {
			return root, nil
		}
	}

	return "", eris.New("Project root not found")
}

// Console prints short status lines for humans.
type Console struct {
	Out     io.Writer
	NoColor bool
}

func (c Console) print(format string, args ...interface{}) {
	colors := colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: c.NoColor,
		Reset:   true,
	}
	fmt.Fprint(c.Out, colors.Color(fmt.Sprintf(format, args...)))
}

func (c Console) PrintTask(msg string) {
	c.print("[blue][bold]==>[default] %s\n", msg)
}

// PrintError prints msg prefixed with the tool tag, i.e. "[ctest] Build directory ...".
// Tags are not color names, so colorstring leaves them alone.
func (c Console) PrintError(tool, msg string) {
	if tool != "" {
		msg = "[" + tool + "] " + msg
	}
	c.print("[red]%s\n", msg)
}
