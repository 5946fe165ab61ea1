package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Commit)
}

func TestInfoString(t *testing.T) {
	s := Get().String()
	assert.Contains(t, s, "retriva")
	assert.Contains(t, s, Version)
}
