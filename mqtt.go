package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// sendTimeout bounds how long an MQTT-triggered send may wait for the modem
// to become free. A workflow that has started is never interrupted.
const sendTimeout = time.Minute

// mqttIngress sends the SMS requests published on a topic.
type mqttIngress struct {
	logger *slog.Logger
	modem  Messenger
}

func (h *mqttIngress) handle(_ mqtt.Client, msg mqtt.Message) {
	logger := h.logger.With("topic", msg.Topic())

	var req sendRequest
	if err := json.Unmarshal(msg.Payload(), &req); err != nil {
		logger.Warn("Discarding malformed MQTT payload", "error", err)
		return
	}
	if err := req.validate(); err != nil {
		logger.Warn("Discarding MQTT request", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	sent, err := h.modem.SendMessage(ctx, req.To, req.Message)
	switch {
	case err != nil:
		logger.Error("Failed to send SMS", "error", err, "to", req.To)
	case !sent:
		logger.Warn("SMS rejected by modem", "to", req.To)
	default:
		logger.Info("SMS sent successfully", "to", req.To, "message_length", len(req.Message))
	}
}

// startMQTT connects to the configured broker and subscribes to the send
// topic. The subscription is renewed on every reconnect.
func startMQTT(config *Config, logger *slog.Logger, m Messenger) (mqtt.Client, error) {
	ingress := &mqttIngress{logger: logger, modem: m}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(config.MQTTBroker)
	opts.SetClientID(config.MQTTClientID)
	if config.MQTTUsername != "" {
		opts.SetUsername(config.MQTTUsername)
		opts.SetPassword(config.MQTTPassword)
	}
	opts.SetOrderMatters(false)
	opts.SetAutoReconnect(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", "error", err)
	})
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		logger.Info("MQTT connected, subscribing", "topic", config.MQTTTopic)
		token := c.Subscribe(config.MQTTTopic, 1, ingress.handle)
		if token.Wait() && token.Error() != nil {
			logger.Error("MQTT subscribe failed", "error", token.Error(), "topic", config.MQTTTopic)
		}
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to MQTT broker %s: %w", config.MQTTBroker, token.Error())
	}
	return client, nil
}
