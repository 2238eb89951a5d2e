// Package command defines the instructions queued for the feeder and their
// text form on the wire ("feed:30", "camera_on").
package command

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type Kind string

const (
	KindFeed      Kind = "feed"
	KindCameraOn  Kind = "camera_on"
	KindCameraOff Kind = "camera_off"
	// KindRaw carries pushed text that is not one of the known kinds.
	KindRaw Kind = "raw"
)

// None is what a poll answers when nothing is pending.
const None = "none"

var (
	ErrInvalid = errors.New("invalid command")
	ErrEmpty   = errors.New("empty command")
)

// DeviceID is the canonical form of a device id: every command, schedule,
// reading and setting is stored and looked up under it.
func DeviceID(raw string) string {
	return strings.TrimSpace(raw)
}

type Command struct {
	Kind    Kind
	Payload string
}

// Feed builds a feed command for the given portion in grams.
func Feed(portion float64) (Command, error) {
	if math.IsNaN(portion) || math.IsInf(portion, 0) || portion <= 0 {
		return Command{}, ErrInvalid
	}
	return Command{Kind: KindFeed, Payload: formatPortion(portion)}, nil
}

// Camera builds a camera toggle command. action must be "on" or "off".
func Camera(action string) (Command, error) {
	switch action {
	case "on":
		return Command{Kind: KindCameraOn}, nil
	case "off":
		return Command{Kind: KindCameraOff}, nil
	}
	return Command{}, ErrInvalid
}

// ParsePortion accepts the portion as typed into a form or JSON body.
func ParsePortion(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalid
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalid
	}
	return v, nil
}

// Parse turns wire text into a Command. Known kinds are validated; anything
// else is kept verbatim as KindRaw.
func Parse(text string) (Command, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == None {
		return Command{}, ErrEmpty
	}
	kind, payload, hasPayload := strings.Cut(text, ":")
	switch Kind(kind) {
	case KindFeed:
		portion, err := ParsePortion(payload)
		if err != nil {
			return Command{}, ErrInvalid
		}
		return Feed(portion)
	case KindCameraOn, KindCameraOff:
		if hasPayload {
			return Command{}, ErrInvalid
		}
		return Command{Kind: Kind(kind)}, nil
	}
	return Command{Kind: KindRaw, Payload: text}, nil
}

// New rebuilds a Command from stored columns.
func New(kind, payload string) Command {
	return Command{Kind: Kind(kind), Payload: payload}
}

func (c Command) String() string {
	switch c.Kind {
	case KindRaw:
		return c.Payload
	case KindCameraOn, KindCameraOff:
		return string(c.Kind)
	}
	if c.Payload == "" {
		return string(c.Kind)
	}
	return string(c.Kind) + ":" + c.Payload
}

func formatPortion(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
