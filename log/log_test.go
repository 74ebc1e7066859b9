package log

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	_, level, err := NewLogger(Config{
		Environment: EnvironmentProduction,
		Level:       "warn",
		Outputs:     []string{"stderr"},
	})
	require.NoError(t, err)
	require.Equal(t, "warn", level.String())

	_, _, err = NewLogger(Config{Environment: EnvironmentDevelopment, Level: "verbose"})
	require.Error(t, err)
}

func TestInitAndWithFields(t *testing.T) {
	out := filepath.Join(t.TempDir(), "zksmt.log")
	Init(Config{
		Environment: EnvironmentDevelopment,
		Level:       "debug",
		Outputs:     []string{out},
	})
	l := WithFields("module", "test")
	require.NotNil(t, l.GetSugaredLogger())
	require.NotSame(t, GetDefaultLogger(), l)
	l.Infof("root %s", "0x0")
	Debug("package level")
}
