package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultPath = "configs/config.yaml"

type Config struct {
	Data struct {
		RoomsFile        string `yaml:"rooms_file"`
		ReservationsFile string `yaml:"reservations_file"`
	} `yaml:"data"`

	Audit struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"audit"`

	Export struct {
		Path string `yaml:"path"`
	} `yaml:"export"`

	Monitoring struct {
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`

	Booking struct {
		PaymentDelayMS int `yaml:"payment_delay_ms"`
	} `yaml:"booking"`

	// SeedRooms is the fallback catalog used only when the rooms file is
	// empty or absent at startup.
	SeedRooms []SeedRoom `yaml:"seed_rooms"`
}

type SeedRoom struct {
	Number   int     `yaml:"number"`
	Category string  `yaml:"category"`
	Price    float64 `yaml:"price"`
}

// Load reads the YAML config. With an empty path the default location is
// tried and a missing file falls back to built-in defaults; an explicit
// path that cannot be read is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg := &Config{}
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Data.RoomsFile == "" {
		c.Data.RoomsFile = "rooms.csv"
	}
	if c.Data.ReservationsFile == "" {
		c.Data.ReservationsFile = "reservations.csv"
	}
	if c.Audit.Path == "" {
		c.Audit.Path = "audit.log"
	}
	if c.Export.Path == "" {
		c.Export.Path = "reservations_report.xlsx"
	}
	if c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
	if c.Booking.PaymentDelayMS == 0 {
		c.Booking.PaymentDelayMS = 800
	}
	if len(c.SeedRooms) == 0 {
		c.SeedRooms = []SeedRoom{
			{Number: 101, Category: "Standard", Price: 2500},
			{Number: 102, Category: "Standard", Price: 2500},
			{Number: 201, Category: "Deluxe", Price: 4000},
			{Number: 202, Category: "Deluxe", Price: 4500},
			{Number: 301, Category: "Suite", Price: 8000},
		}
	}
}

// PaymentDelay converts the configured pause into a duration. A negative
// value disables the pause entirely.
func (c *Config) PaymentDelay() time.Duration {
	if c.Booking.PaymentDelayMS < 0 {
		return 0
	}
	return time.Duration(c.Booking.PaymentDelayMS) * time.Millisecond
}
