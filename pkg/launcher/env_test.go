package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthyStrings(t *testing.T) {
	truthy := []string{"true", "TRUE", "True", " true ", "1", " 1", "yes", "YES", "\tYes\n"}
	for _, value := range truthy {
		assert.Truef(t, Truthy(value), "expected %q to be truthy", value)
	}

	falsy := []string{"", " ", "false", "FALSE", "0", "no", "off", "2", "y", "yes please", "truthy"}
	for _, value := range falsy {
		assert.Falsef(t, Truthy(value), "expected %q to be falsy", value)
	}
}

func TestTruthyNonStrings(t *testing.T) {
	assert.True(t, Truthy(true))
	assert.False(t, Truthy(false))
	assert.True(t, Truthy(1))
	assert.True(t, Truthy(-3))
	assert.False(t, Truthy(0))
	assert.True(t, Truthy(uint8(4)))
	assert.False(t, Truthy(int64(0)))
	assert.True(t, Truthy(0.5))
	assert.False(t, Truthy(0.0))
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy([]string{"true"}))
}

func TestEnvFromList(t *testing.T) {
	env := EnvFromList([]string{"CI=true", "EMPTY=", "NOVALUE", "WITH_EQUALS=a=b", "=C:=C:\\"})

	value, ok := env.Lookup("CI")
	assert.True(t, ok)
	assert.Equal(t, "true", value)

	value, ok = env.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", value)

	_, ok = env.Lookup("NOVALUE")
	assert.True(t, ok)

	value, _ = env.Lookup("WITH_EQUALS")
	assert.Equal(t, "a=b", value)

	_, ok = env.Lookup("MISSING")
	assert.False(t, ok)
	assert.Len(t, env, 4)
}
