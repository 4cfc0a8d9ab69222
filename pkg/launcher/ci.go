package launcher

// CIFlag forces the CI-like classification when passed on the command line.
const CIFlag = "--ci"

// CIEnvKeys lists the environment variables that mark a CI run.
var CIEnvKeys = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"BUILD_ID",
	"BUILD_NUMBER",
	"RUN_ID",
	"GITHUB_ACTIONS",
}

// IsCILike reports whether the invocation looks like it runs inside a CI pipeline.
func IsCILike(args []string, env Env) bool {
	for _, arg := range args {
		if arg == CIFlag {
			return true
		}
	}

	for _, key := range CIEnvKeys {
		if value, ok := env.Lookup(key); ok && Truthy(value) {
			return true
		}
	}

	return false
}

// StripCIFlag returns args without any occurrence of CIFlag.
func StripCIFlag(args []string) []string {
	result := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != CIFlag {
			result = append(result, arg)
		}
	}

	return result
}
