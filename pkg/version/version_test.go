package version

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	v := Get()

	assert.Equal(t, Version, v.Version)
	assert.Equal(t, Commit, v.GitCommit)
	assert.Equal(t, BuildTime, v.BuildTime)
	assert.Equal(t, runtime.Version(), v.GoVersion)
	assert.Equal(t, fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), v.Platform)
}

func TestInfoString(t *testing.T) {
	i := Info{
		Version:   "1.2.3",
		GitCommit: "abcdefg",
		BuildTime: "2024-04-27T15:04:05Z",
		GoVersion: "go1.23.1",
		Platform:  "linux/amd64",
	}

	assert.Equal(t,
		"codeclip version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.23.1 on linux/amd64",
		i.String())
}
