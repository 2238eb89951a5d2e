package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Simulates a feeder: polls for commands, reports feed results and the
// hopper level, and announces a stream URL once at startup.

type commandResponse struct {
	Command string `json:"command"`
}

func main() {
	baseURL := "http://localhost:8080"
	if v := os.Getenv("FEEDER_URL"); v != "" {
		baseURL = v
	}
	deviceID := "feeder-1"
	if v := os.Getenv("DEVICE_ID"); v != "" {
		deviceID = v
	}
	query := "?device_id=" + deviceID

	post(baseURL+"/api/update_ngrok"+query, map[string]any{"url": "https://" + deviceID + ".example.ngrok.app"})

	level := 100.0
	for {
		resp, err := http.Get(baseURL + "/api/get_command" + query)
		if err != nil {
			fmt.Println("poll failed:", err)
			time.Sleep(5 * time.Second)
			continue
		}
		var cmd commandResponse
		err = json.NewDecoder(resp.Body).Decode(&cmd)
		resp.Body.Close()
		if err != nil {
			fmt.Println("bad poll response:", err)
			time.Sleep(5 * time.Second)
			continue
		}

		switch {
		case cmd.Command == "none":
		case strings.HasPrefix(cmd.Command, "feed:"):
			amount, err := strconv.ParseFloat(strings.TrimPrefix(cmd.Command, "feed:"), 64)
			if err != nil {
				post(baseURL+"/api/upload_log"+query, map[string]any{"amount": nil, "result": "bad_portion"})
				break
			}
			fmt.Printf("feeding %.1fg\n", amount)
			level = max(level-amount/10, 0)
			post(baseURL+"/api/upload_log"+query, map[string]any{"amount": amount, "result": "success"})
			post(baseURL+"/api/update_level"+query, map[string]any{"level": level})
		case cmd.Command == "camera_on", cmd.Command == "camera_off":
			fmt.Println("camera:", cmd.Command)
		default:
			fmt.Println("unknown command:", cmd.Command)
		}

		// Weight sensor noise on the multi-device status route.
		post(baseURL+"/api/update", map[string]any{
			"device_id": deviceID,
			"weight":    200 + rand.Float64()*20,
			"level":     level,
		})
		time.Sleep(3 * time.Second)
	}
}

func post(url string, body any) {
	payload, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		fmt.Println("POST", url, "failed:", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fmt.Println("POST", url, "status:", resp.Status, string(b))
	}
}
