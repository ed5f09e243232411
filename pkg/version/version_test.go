package version

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	req := require.New(t)

	info := Get()
	req.Equal(Version, info.Version)
	req.Equal(GitCommit, info.GitCommit)
	req.Equal(runtime.Version(), info.GoVersion)
	req.Equal(fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), info.Platform)
}

func TestInfo_String(t *testing.T) {
	req := require.New(t)

	s := Get().String()
	req.Contains(s, "dig version ")
	req.Contains(s, "Go version: "+runtime.Version())
	req.Contains(s, "Platform: "+runtime.GOOS)
}
