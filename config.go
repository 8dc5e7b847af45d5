package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	// BindAddress is the address the server listens on (e.g. "0.0.0.0:8080")
	BindAddress string
	// SerialPort is the path to the modem's serial port (e.g. "/dev/ttyUSB0")
	SerialPort string
	// BaudRate is the baud rate for serial communication with the modem (e.g. 9600)
	BaudRate int
	// DataBits is the number of data bits per character (5 to 8)
	DataBits int
	// ReadTimeout and WriteTimeout are the serial line timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// LogLevel sets the logging level (e.g. "debug", "info", "warn", "error")
	LogLevel string
	// LogFormat selects the log output: "json" or "console"
	LogFormat string

	// MQTTBroker enables MQTT ingress when set (e.g. "tcp://localhost:1883")
	MQTTBroker   string
	MQTTTopic    string
	MQTTClientID string
	MQTTUsername string
	MQTTPassword string
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config) error

// LoadConfig creates a new config by applying the given options in order
func LoadConfig(opts ...ConfigOption) (*Config, error) {
	config := &Config{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// WithDefaults applies default configuration values
func WithDefaults() ConfigOption {
	return func(c *Config) error {
		c.BindAddress = "0.0.0.0:8080"
		c.SerialPort = "/dev/ttyUSB0"
		c.BaudRate = 9600
		c.DataBits = 8
		c.ReadTimeout = 300 * time.Millisecond
		c.WriteTimeout = 300 * time.Millisecond
		c.LogLevel = "info"
		c.LogFormat = "json"
		c.MQTTTopic = "sms/send"
		c.MQTTClientID = "smsport"
		return nil
	}
}

// WithEnv loads configuration from environment variables
func WithEnv() ConfigOption {
	return func(c *Config) error {
		if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
			c.BindAddress = addr
		}

		if serial := os.Getenv("SERIAL_PORT"); serial != "" {
			c.SerialPort = serial
		}

		if baud := os.Getenv("BAUD_RATE"); baud != "" {
			b, err := strconv.Atoi(baud)
			if err != nil {
				return fmt.Errorf("BAUD_RATE: %w", err)
			}
			c.BaudRate = b
		}

		if bits := os.Getenv("DATA_BITS"); bits != "" {
			b, err := strconv.Atoi(bits)
			if err != nil {
				return fmt.Errorf("DATA_BITS: %w", err)
			}
			c.DataBits = b
		}

		if timeout := os.Getenv("READ_TIMEOUT"); timeout != "" {
			d, err := time.ParseDuration(timeout)
			if err != nil {
				return fmt.Errorf("READ_TIMEOUT: %w", err)
			}
			c.ReadTimeout = d
		}

		if timeout := os.Getenv("WRITE_TIMEOUT"); timeout != "" {
			d, err := time.ParseDuration(timeout)
			if err != nil {
				return fmt.Errorf("WRITE_TIMEOUT: %w", err)
			}
			c.WriteTimeout = d
		}

		if level := os.Getenv("LOG_LEVEL"); level != "" {
			c.LogLevel = level
		}

		if format := os.Getenv("LOG_FORMAT"); format != "" {
			c.LogFormat = format
		}

		if broker := os.Getenv("MQTT_BROKER"); broker != "" {
			c.MQTTBroker = broker
		}
		if topic := os.Getenv("MQTT_TOPIC"); topic != "" {
			c.MQTTTopic = topic
		}
		if id := os.Getenv("MQTT_CLIENT_ID"); id != "" {
			c.MQTTClientID = id
		}
		if user := os.Getenv("MQTT_USERNAME"); user != "" {
			c.MQTTUsername = user
		}
		if pass := os.Getenv("MQTT_PASSWORD"); pass != "" {
			c.MQTTPassword = pass
		}

		return nil
	}
}

// WithFlags loads configuration from command-line flags. Only flags set
// explicitly on the command line override earlier options.
func WithFlags(fSet *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		var err error
		fSet.Visit(func(f *flag.Flag) {
			if err != nil {
				return
			}
			value := f.Value.String()
			switch f.Name {
			case "bind-address":
				c.BindAddress = value
			case "serial-port":
				c.SerialPort = value
			case "baud-rate":
				c.BaudRate, err = strconv.Atoi(value)
			case "data-bits":
				c.DataBits, err = strconv.Atoi(value)
			case "read-timeout":
				c.ReadTimeout, err = time.ParseDuration(value)
			case "write-timeout":
				c.WriteTimeout, err = time.ParseDuration(value)
			case "log-level":
				c.LogLevel = value
			case "log-format":
				c.LogFormat = value
			case "mqtt-broker":
				c.MQTTBroker = value
			case "mqtt-topic":
				c.MQTTTopic = value
			case "mqtt-client-id":
				c.MQTTClientID = value
			}
			if err != nil {
				err = fmt.Errorf("-%s: %w", f.Name, err)
			}
		})
		return err
	}
}
