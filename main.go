package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"i4.energy/across/smsport/modem"
)

func main() {
	flag.String("serial-port", "/dev/ttyUSB0", "Serial port to connect to the modem")
	flag.Int("baud-rate", 9600, "Baud rate for serial communication")
	flag.Int("data-bits", 8, "Data bits per character (5 to 8)")
	flag.Duration("read-timeout", 300*time.Millisecond, "Serial read timeout")
	flag.Duration("write-timeout", 300*time.Millisecond, "Serial write timeout")
	flag.String("bind-address", "0.0.0.0:8080", "Bind address for the HTTP server")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.String("log-format", "json", "Log format (json, console)")
	flag.String("mqtt-broker", "", "MQTT broker URL; enables MQTT ingress when set")
	flag.String("mqtt-topic", "sms/send", "MQTT topic carrying send requests")
	flag.String("mqtt-client-id", "smsport", "MQTT client identifier")
	listPorts := flag.Bool("list-ports", false, "List available serial ports and exit")
	flag.Parse()

	if *listPorts {
		ports, err := modem.ListPorts()
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to list serial ports:", err)
			os.Exit(1)
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	config, err := LoadConfig(WithDefaults(), WithEnv(), WithFlags(flag.CommandLine))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, config.LogLevel, config.LogFormat)

	m, err := modem.New(
		modem.NewSerialTransport(logger.With("component", "serial")),
		modem.WithLogger(logger.With("component", "modem")),
	)
	if err != nil {
		logger.Error("Failed to create modem", "error", err)
		os.Exit(1)
	}

	modemConfig := modem.NewConfigBuilder().
		WithPortName(config.SerialPort).
		WithBaudRate(config.BaudRate).
		WithDataBits(config.DataBits).
		WithReadTimeout(config.ReadTimeout).
		WithWriteTimeout(config.WriteTimeout).
		Build()

	if err := m.Open(modemConfig); err != nil {
		logger.Error("Failed to open modem port", "error", err, "port", config.SerialPort)
		os.Exit(1)
	}

	logger.Info("Starting SMS port", "port", config.SerialPort, "baud_rate", config.BaudRate)

	var mqttClient mqtt.Client
	if config.MQTTBroker != "" {
		mqttClient, err = startMQTT(config, logger.With("component", "mqtt"), m)
		if err != nil {
			logger.Error("Failed to start MQTT ingress", "error", err)
			m.Close()
			os.Exit(1)
		}
	}

	httpServer := &http.Server{
		Addr: config.BindAddress,
		Handler: &Server{
			Logger: logger.With("component", "server"),
			Modem:  m,
		},
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("Closing HTTP server")
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to gracefully shutdown server", "error", err)
	}

	if mqttClient != nil {
		logger.Info("Disconnecting from MQTT broker")
		mqttClient.Disconnect(250)
	}

	// Close waits for any command still in flight.
	logger.Info("Closing modem connection")
	if err := m.Close(); err != nil {
		logger.Error("Failed to close modem", "error", err)
		os.Exit(1)
	}
}
