package db

import (
	"time"

	"pet-feeder-backend/internal/command"
)

type Command struct {
	ID        int64     `db:"id" json:"id"`
	DeviceID  string    `db:"device_id" json:"device_id"`
	Kind      string    `db:"kind" json:"kind"`
	Payload   string    `db:"payload" json:"payload"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Text is the wire form handed to the polling device.
func (c Command) Text() string {
	return command.New(c.Kind, c.Payload).String()
}

type Schedule struct {
	ID          int64     `db:"id" json:"id"`
	DeviceID    string    `db:"device_id" json:"device_id"`
	TimeOfDay   string    `db:"time_of_day" json:"time"`
	Portion     float64   `db:"portion" json:"portion"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	LastFiredOn *string   `db:"last_fired_on" json:"last_fired_on,omitempty"`
}

type FeedLog struct {
	ID        int64     `db:"id" json:"id"`
	DeviceID  string    `db:"device_id" json:"device_id"`
	Amount    *float64  `db:"amount" json:"amount"`
	Result    *string   `db:"result" json:"result"`
	CreatedAt time.Time `db:"created_at" json:"timestamp"`
}

type SensorData struct {
	ID        int64     `db:"id" json:"id"`
	DeviceID  string    `db:"device_id" json:"device_id"`
	Level     *float64  `db:"level" json:"level"`
	Weight    *float64  `db:"weight" json:"weight,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"timestamp"`
}
