package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Steps:
// 1. Queue feed:30 and camera_on for a fresh device
// 2. Poll three times, expect feed:30, camera_on, none
// 3. Check an invalid camera action is rejected and queues nothing
// 4. Upload a feed log and read it back from /logs
// 5. If KAFKA_BROKERS is set, read the telemetry event back from the topic

var baseURL = "http://localhost:8080"

func main() {
	if v := os.Getenv("FEEDER_URL"); v != "" {
		baseURL = v
	}
	deviceID := fmt.Sprintf("e2e-%d", time.Now().UnixNano())
	failed := false
	check := func(name string, ok bool, detail any) {
		if ok {
			fmt.Println("PASS", name)
			return
		}
		failed = true
		fmt.Println("FAIL", name, detail)
	}

	for _, text := range []string{"feed:30", "camera_on"} {
		status, body := do(http.MethodPost, "/api/send_command", map[string]string{"device_id": deviceID, "command": text})
		check("send "+text, status == http.StatusOK, body)
	}

	var polled []string
	for range 3 {
		_, body := do(http.MethodGet, "/api/command/"+deviceID, nil)
		var resp struct {
			Command string `json:"command"`
		}
		json.Unmarshal(body, &resp)
		polled = append(polled, resp.Command)
	}
	check("poll order", strings.Join(polled, ",") == "feed:30,camera_on,none", polled)

	status, body := do(http.MethodPost, "/api/camera/up?device_id="+url.QueryEscape(deviceID), nil)
	check("invalid camera action", status == http.StatusBadRequest, string(body))
	_, body = do(http.MethodGet, "/api/devices/"+deviceID+"/commands", nil)
	check("nothing queued after invalid action", strings.Contains(string(body), `"commands":[]`), string(body))

	status, body = do(http.MethodPost, "/api/upload_log?device_id="+url.QueryEscape(deviceID), map[string]any{"amount": 12.5, "result": "success"})
	check("upload log", status == http.StatusOK, string(body))
	_, body = do(http.MethodGet, "/logs?device_id="+url.QueryEscape(deviceID), nil)
	var logs struct {
		Logs []struct {
			Amount *float64 `json:"amount"`
			Result *string  `json:"result"`
		} `json:"logs"`
	}
	json.Unmarshal(body, &logs)
	check("log read back",
		len(logs.Logs) > 0 && logs.Logs[0].Amount != nil && *logs.Logs[0].Amount == 12.5 &&
			logs.Logs[0].Result != nil && *logs.Logs[0].Result == "success",
		string(body))

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		check("telemetry event on kafka", findTelemetry(brokers, deviceID), deviceID)
	}

	if failed {
		os.Exit(1)
	}
}

func do(method, path string, body any) (int, []byte) {
	var r io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		r = bytes.NewBuffer(payload)
	}
	req, err := http.NewRequest(method, baseURL+path, r)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

func findTelemetry(brokers, deviceID string) bool {
	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "feeder-telemetry"
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     strings.Split(brokers, ","),
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			fmt.Println("kafka read:", err)
			return false
		}
		if string(m.Key) == deviceID {
			return true
		}
	}
}
