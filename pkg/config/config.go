// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"time"
)

// Server holds the HTTP listener configuration.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// Guard holds balance-guard tuning.
type Guard struct {
	// Timeout bounds a single guard acquisition. Exceeding it surfaces a
	// recoverable busy error instead of a hang.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"5s"`
}

// Notify holds notification-pipeline tuning.
type Notify struct {
	// Buffer caps the queue of pending notification events; events beyond
	// it are dropped rather than blocking transfers.
	Buffer int `envconfig:"BUFFER" default:"1024"`
}

// Log holds logger configuration.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX" default:"transfers"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// App is the root application configuration.
type App struct {
	Env    string `envconfig:"ENV" default:"development"`
	Server Server `envconfig:"SERVER"`
	Guard  Guard  `envconfig:"GUARD"`
	Notify Notify `envconfig:"NOTIFY"`
	Log    Log    `envconfig:"LOG"`
}
