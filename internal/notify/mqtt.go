// Package notify nudges a device over MQTT when a command is queued for it,
// so it can poll right away instead of waiting for its next interval. The
// queue stays the only delivery path; a lost nudge only delays the poll.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

var (
	ErrPublishTimeout = errors.New("mqtt publish timed out")
	ErrPublishFailed  = errors.New("mqtt publish failed")
)

type Config struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	Timeout     time.Duration
}

// Wakeup is the message body published to <prefix>/<device_id>/commands.
type Wakeup struct {
	DeviceID  string    `json:"device_id"`
	CommandID int64     `json:"command_id"`
	QueuedAt  time.Time `json:"queued_at"`
}

type MQTTNotifier struct {
	client  mqtt.Client
	prefix  string
	timeout time.Duration
}

func New(ctx context.Context, cfg Config) (*MQTTNotifier, error) {
	const fn = "Notify:New"
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(10 * time.Second).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		slog.ErrorContext(ctx, "MQTT connection lost", "error", err)
	}
	opts.OnConnect = func(_ mqtt.Client) {
		slog.InfoContext(ctx, "MQTT connected", "broker", cfg.Broker)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := mqtt.NewClient(opts)
	if tk := client.Connect(); !tk.WaitTimeout(timeout) {
		// SetConnectRetry keeps trying in the background.
		slog.WarnContext(ctx, "MQTT broker not reachable yet, retrying in background", "broker", cfg.Broker)
	} else if tk.Error() != nil {
		return nil, fmt.Errorf("%s:%w", fn, tk.Error())
	}

	return &MQTTNotifier{
		client:  client,
		prefix:  strings.TrimRight(cfg.TopicPrefix, "/"),
		timeout: timeout,
	}, nil
}

func (n *MQTTNotifier) Topic(deviceID string) string {
	return n.prefix + "/" + deviceID + "/commands"
}

// CommandQueued publishes a wake-up for deviceID.
func (n *MQTTNotifier) CommandQueued(ctx context.Context, deviceID string, commandID int64) error {
	const fn = "Notify:CommandQueued"
	body, err := json.Marshal(Wakeup{
		DeviceID:  deviceID,
		CommandID: commandID,
		QueuedAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}

	tk := n.client.Publish(n.Topic(deviceID), 1, false, body)
	if !tk.WaitTimeout(n.timeout) {
		return fmt.Errorf("%s:%w", fn, ErrPublishTimeout)
	}
	if err := tk.Error(); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrPublishFailed, err)
	}
	slog.DebugContext(ctx, "Published wake-up", "device_id", deviceID, "command_id", commandID)
	return nil
}

func (n *MQTTNotifier) Close() {
	n.client.Disconnect(250)
}
