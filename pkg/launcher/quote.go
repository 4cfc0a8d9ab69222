package launcher

import (
	"strings"
	"unicode"
)

func needsQuotes(arg string) bool {
	return strings.IndexFunc(arg, func(r rune) bool {
		return r == '"' || unicode.IsSpace(r)
	}) > -1
}

func quote(arg string) string {
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}

// QuoteArg quotes a single argument if it contains whitespace or a double quote.
// Empty arguments become "" so they survive the trip through the shell.
func QuoteArg(arg string) string {
	if arg == "" || needsQuotes(arg) {
		return quote(arg)
	}

	return arg
}

// BuildCommandLine joins the always-quoted base with the (conditionally quoted) args.
func BuildCommandLine(base string, args []string) string {
	tokens := make([]string, 0, len(args)+1)
	tokens = append(tokens, quote(base))
	for _, arg := range args {
		tokens = append(tokens, QuoteArg(arg))
	}

	return strings.Join(tokens, " ")
}
