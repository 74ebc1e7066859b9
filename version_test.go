package zksmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	data := GetVersion()
	require.NotEmpty(t, data.Version)
	require.NotEmpty(t, data.GitRev)
	require.NotEmpty(t, data.BuildDate)
	require.NotEmpty(t, data.GoVersion)

	var out bytes.Buffer
	PrintVersion(&out)
	require.Contains(t, out.String(), "Version:      "+Version)
	require.Contains(t, out.String(), data.OS+"/"+data.Arch)
}
