package modem

import (
	"time"

	"go.bug.st/serial"
	"golang.org/x/text/encoding/charmap"
)

// Config holds the serial line parameters a Modem opens its port with.
// Parity, stop bits and character encoding are fixed by the protocol and
// not configurable.
type Config struct {
	PortName     string
	BaudRate     int
	DataBits     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (c *Config) setDefaults() {
	if c.BaudRate == 0 {
		c.BaudRate = 9600
	}
	if c.DataBits == 0 {
		c.DataBits = 8
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 300 * time.Millisecond
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 300 * time.Millisecond
	}
}

func (c Config) lineConfig() LineConfig {
	return LineConfig{
		PortName:     c.PortName,
		BaudRate:     c.BaudRate,
		DataBits:     c.DataBits,
		Parity:       serial.NoParity,
		StopBits:     serial.OneStopBit,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
		Encoding:     charmap.ISO8859_1,
	}
}

// ConfigBuilder assembles a Config. Unset fields take the defaults
// 9600 baud, 8 data bits and 300ms read and write timeouts.
type ConfigBuilder struct {
	config Config
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

func (b *ConfigBuilder) WithPortName(name string) *ConfigBuilder {
	b.config.PortName = name
	return b
}

func (b *ConfigBuilder) WithBaudRate(rate int) *ConfigBuilder {
	b.config.BaudRate = rate
	return b
}

func (b *ConfigBuilder) WithDataBits(bits int) *ConfigBuilder {
	b.config.DataBits = bits
	return b
}

func (b *ConfigBuilder) WithReadTimeout(d time.Duration) *ConfigBuilder {
	b.config.ReadTimeout = d
	return b
}

func (b *ConfigBuilder) WithWriteTimeout(d time.Duration) *ConfigBuilder {
	b.config.WriteTimeout = d
	return b
}

// Build returns the assembled Config. Values are not validated here; the
// transport rejects invalid line parameters when the port is opened.
func (b *ConfigBuilder) Build() Config {
	c := b.config
	c.setDefaults()
	return c
}
