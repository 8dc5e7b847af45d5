package main

import (
	"bytes"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(WithDefaults())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", config.BindAddress)
	assert.Equal(t, "/dev/ttyUSB0", config.SerialPort)
	assert.Equal(t, 9600, config.BaudRate)
	assert.Equal(t, 8, config.DataBits)
	assert.Equal(t, 300*time.Millisecond, config.ReadTimeout)
	assert.Equal(t, 300*time.Millisecond, config.WriteTimeout)
	assert.Equal(t, "info", config.LogLevel)
	assert.Empty(t, config.MQTTBroker)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Run("Overrides defaults", func(t *testing.T) {
		t.Setenv("SERIAL_PORT", "/dev/ttyS1")
		t.Setenv("BAUD_RATE", "115200")
		t.Setenv("READ_TIMEOUT", "1s")
		t.Setenv("MQTT_BROKER", "tcp://localhost:1883")

		config, err := LoadConfig(WithDefaults(), WithEnv())
		require.NoError(t, err)

		assert.Equal(t, "/dev/ttyS1", config.SerialPort)
		assert.Equal(t, 115200, config.BaudRate)
		assert.Equal(t, time.Second, config.ReadTimeout)
		assert.Equal(t, 300*time.Millisecond, config.WriteTimeout)
		assert.Equal(t, "tcp://localhost:1883", config.MQTTBroker)
	})

	t.Run("Rejects malformed values", func(t *testing.T) {
		t.Setenv("DATA_BITS", "eight")

		_, err := LoadConfig(WithDefaults(), WithEnv())
		assert.ErrorContains(t, err, "DATA_BITS")
	})
}

func TestLoadConfigFlags(t *testing.T) {
	newFlagSet := func() *flag.FlagSet {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(&bytes.Buffer{})
		fs.String("serial-port", "/dev/ttyUSB0", "")
		fs.Int("baud-rate", 9600, "")
		fs.Duration("write-timeout", 300*time.Millisecond, "")
		fs.String("log-level", "info", "")
		return fs
	}

	t.Run("Only explicit flags override", func(t *testing.T) {
		t.Setenv("SERIAL_PORT", "/dev/ttyS1")

		fs := newFlagSet()
		require.NoError(t, fs.Parse([]string{"-baud-rate", "19200", "-write-timeout", "2s"}))

		config, err := LoadConfig(WithDefaults(), WithEnv(), WithFlags(fs))
		require.NoError(t, err)

		assert.Equal(t, "/dev/ttyS1", config.SerialPort)
		assert.Equal(t, 19200, config.BaudRate)
		assert.Equal(t, 2*time.Second, config.WriteTimeout)
		assert.Equal(t, "info", config.LogLevel)
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", "json")

	logger.Info("hidden")
	logger.Warn("shown", "port", "/dev/ttyUSB0")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	newLogger(&buf, "debug", "console").Debug("console output")
	assert.Contains(t, buf.String(), "console output")
}
