package log

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restore 测试结束后恢复默认输出和级别
func restore(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, Configure("", "text"))
		SetOutput(os.Stderr)
	})
}

func TestLazyLogger_SwitchOutput(t *testing.T) {
	restore(t)

	logger := Logger("test")

	buf := &bytes.Buffer{}
	SetOutput(buf)

	logger.Info("after switch", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "after switch")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "component=test")
}

func TestLazyLogger_ComponentLevel(t *testing.T) {
	restore(t)

	buf := &bytes.Buffer{}
	SetOutput(buf)
	require.NoError(t, Configure("chatty=debug,warn", "text"))

	Logger("chatty").Debug("visible")
	Logger("quiet").Info("hidden")
	Logger("quiet").Warn("shown")

	out := buf.String()
	assert.Contains(t, out, "visible")
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")

	assert.True(t, Logger("chatty").Enabled(LevelDebug))
	assert.False(t, Logger("quiet").Enabled(LevelInfo))
}

func TestConfigure_JSON(t *testing.T) {
	restore(t)

	buf := &bytes.Buffer{}
	SetOutput(buf)
	require.NoError(t, Configure("info", "json"))

	Logger("json").Info("hello")
	assert.Contains(t, buf.String(), `"component":"json"`)
}

func TestConfigure_Invalid(t *testing.T) {
	assert.Error(t, Configure("verbose", "text"))
	assert.Error(t, Configure("info", "xml"))
}

func TestParseLevels(t *testing.T) {
	levels, err := ParseLevels("core/eventbus=debug, metrics=error ,warn")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelWarn, levels.Default)

	lvl, ok := levels.For("core/eventbus")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, ok = levels.For("metrics")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelError, lvl)

	_, ok = levels.For("other")
	assert.False(t, ok)
}

func TestParseLevels_Empty(t *testing.T) {
	levels, err := ParseLevels("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, levels.Default)
	assert.Empty(t, levels.Components)
}

func TestSetLevel(t *testing.T) {
	restore(t)

	buf := &bytes.Buffer{}
	SetOutput(buf)
	SetLevel(LevelError)

	Logger("lvl").Warn("dropped")
	Logger("lvl").Error("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

// TestSetFormat_KeepsLevels 测试只修改格式时保留组件级别
func TestSetFormat_KeepsLevels(t *testing.T) {
	restore(t)

	buf := &bytes.Buffer{}
	SetOutput(buf)
	require.NoError(t, Configure("chatty=debug,warn", "text"))

	require.NoError(t, SetFormat("json"))

	Logger("chatty").Debug("visible")
	Logger("quiet").Info("hidden")

	out := buf.String()
	assert.Contains(t, out, `"msg":"visible"`)
	assert.NotContains(t, out, "hidden")
	assert.Error(t, SetFormat("xml"))
}

// TestSetLevels_KeepsFormat 测试只修改级别时保留格式
func TestSetLevels_KeepsFormat(t *testing.T) {
	restore(t)

	buf := &bytes.Buffer{}
	SetOutput(buf)
	require.NoError(t, Configure("", "json"))

	require.NoError(t, SetLevels("debug"))

	Logger("json").Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Error(t, SetLevels("verbose"))
}
