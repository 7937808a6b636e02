package logger

import (
	"os"
	"path/filepath"
	"testing"

	"patterns_homework/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig(t *testing.T) {
	t.Helper()
	require.NoError(t, config.Init())
}

func TestLoggerInit(t *testing.T) {
	setupConfig(t)

	err := Init()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, Level())

	// 测试日志函数
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
	Debug("Test debug message")
}

func TestLoggerWithFile(t *testing.T) {
	setupConfig(t)

	tempDir := filepath.Join(t.TempDir(), "logs")
	config.GetConfig().Logging.File = "test.log"
	config.GetConfig().Logging.Dir = tempDir
	config.GetConfig().Logging.Level = "info"

	err := Init()
	require.NoError(t, err)

	testMessage := "Test log message"
	Info(testMessage)

	logFile := filepath.Join(tempDir, "test.log")
	assert.FileExists(t, logFile)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), testMessage)
}

func TestLoggerWithJSONFormat(t *testing.T) {
	setupConfig(t)

	tempDir := t.TempDir()
	config.GetConfig().Logging.Format = "json"
	config.GetConfig().Logging.File = "json.log"
	config.GetConfig().Logging.Dir = tempDir

	require.NoError(t, Init())
	WithField("family", "authentic").Warn("JSON format test")

	content, err := os.ReadFile(filepath.Join(tempDir, "json.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"family":"authentic"`)
	assert.Contains(t, string(content), `"msg":"JSON format test"`)
}

func TestLoggerWithFields(t *testing.T) {
	setupConfig(t)
	require.NoError(t, Init())

	entry := WithField("test_key", "test_value")
	assert.NotNil(t, entry)

	entry = WithFields(logrus.Fields{
		"field1": "value1",
		"field2": 123,
	})
	assert.NotNil(t, entry)
	assert.Len(t, entry.Data, 2)
}

func TestLoggerLevels(t *testing.T) {
	setupConfig(t)
	config.GetConfig().Logging.Level = "debug"
	require.NoError(t, Init())
	assert.Equal(t, logrus.DebugLevel, Level())

	Debugf("Debug format: %s", "test")
	Infof("Info format: %s", "test")
	Warnf("Warning format: %s", "test")
	Errorf("Error format: %s", "test")
}

func TestLoggerInvalidLevel(t *testing.T) {
	setupConfig(t)
	config.GetConfig().Logging.Level = "invalid_level"

	err := Init()
	require.NoError(t, err) // 应该使用默认级别
	assert.Equal(t, logrus.WarnLevel, Level())
}

func TestLoggerUnwritableFile(t *testing.T) {
	setupConfig(t)

	// 目录位置被普通文件占用
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	config.GetConfig().Logging.File = "test.log"
	config.GetConfig().Logging.Dir = blocker

	assert.Error(t, Init())
}
