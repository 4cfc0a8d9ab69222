package launcher

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestQuoteArg(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"--flag=value", "--flag=value"},
		{`C:\dir\file`, `C:\dir\file`},
		{`single'quote`, `single'quote`},
		{"with space", `"with space"`},
		{"tab\there", "\"tab\there\""},
		{"line\nbreak", "\"line\nbreak\""},
		{`say"hi"`, `"say\"hi\""`},
		{`a b"c`, `"a b\"c"`},
		{"", `""`},
	}

	for _, c := range cases {
		assert.Equalf(t, c.expected, QuoteArg(c.input), "QuoteArg(%q)", c.input)
	}
}

func TestBuildCommandLine(t *testing.T) {
	assert.Equal(t, `"ctest"`, BuildCommandLine("ctest", nil))
	assert.Equal(t, `"run.bat" --skip-run "a b\"c" x`, BuildCommandLine("run.bat", []string{"--skip-run", `a b"c`, "x"}))
	assert.Equal(t, `"C:/Program Files/VIBBLE/run.bat" --launch`, BuildCommandLine("C:/Program Files/VIBBLE/run.bat", []string{"--launch"}))
	assert.Equal(t, `"odd\"name" b a`, BuildCommandLine(`odd"name`, []string{"b", "a"}))
}

func TestBuildCommandLineGolden(t *testing.T) {
	g := goldie.New(t)

	g.Assert(t, "quoting", []byte(BuildCommandLine("/opt/vibble/run.bat", []string{
		"--skip-run",
		"--no-shortcut",
		"plain",
		"two words",
		`a b"c`,
		`"quoted"`,
		"",
	})))
}
