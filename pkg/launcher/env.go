package launcher

import (
	"runtime"
	"strings"
)

// Env is a read-only snapshot of the process environment.
type Env map[string]string

// EnvFromList builds a snapshot from a KEY=value list as returned by os.Environ.
func EnvFromList(list []string) Env {
	env := make(Env, len(list))
	for _, item := range list {
		parts := strings.SplitN(item, "=", 2)
		if parts[0] == "" {
			// Windows keeps a few hidden entries like "=C:=C:\" around
			continue
		}

		if runtime.GOOS == "windows" {
			parts[0] = strings.ToUpper(parts[0])
		}

		if len(parts) == 2 {
			env[parts[0]] = parts[1]
		} else {
			env[parts[0]] = ""
		}
	}

	return env
}

// Lookup returns the value of the named variable and whether it is set.
func (e Env) Lookup(name string) (string, bool) {
	value, ok := e[name]
	return value, ok
}

// Truthy is the one coercion rule used for every CI signal.
func Truthy(value interface{}) bool {
	switch value := value.(type) {
	case bool:
		return value
	case int:
		return value != 0
	case int8:
		return value != 0
	case int16:
		return value != 0
	case int32:
		return value != 0
	case int64:
		return value != 0
	case uint:
		return value != 0
	case uint8:
		return value != 0
	case uint16:
		return value != 0
	case uint32:
		return value != 0
	case uint64:
		return value != 0
	case float32:
		return value != 0
	case float64:
		return value != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes":
			return true
		}
	}

	return false
}
