package server

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/antroute/model"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400

func (wss WalkSessionState) Name() string {
	switch wss {
	case WS_NEW:
		return "WS_NEW"
	case WS_WALK:
		return "WS_WALK"
	case WS_OVER:
		return "WS_OVER"
	case WS_ERR:
		return "WS_ERR"
	default:
		return fmt.Sprintf("n/a:%d", wss)
	}
}

type Config struct {
	Port      string
	RouteFile string
	Interval  time.Duration
	Level     log.Level
}

// ConfigFrom reads PORT, ROUTE, TICK and LOG_LEVEL through getenv,
// normally os.Getenv.
func ConfigFrom(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:      getenv("PORT"),
		RouteFile: getenv("ROUTE"),
		Interval:  DefaultInterval,
		Level:     log.InfoLevel,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Defaulting to port %s", cfg.Port)
	}
	if tick := getenv("TICK"); tick != "" {
		d, err := time.ParseDuration(tick)
		if err != nil {
			return cfg, fmt.Errorf("TICK: %w", err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("TICK: %s is not positive", tick)
		}
		cfg.Interval = d
	}
	if level := getenv("LOG_LEVEL"); level != "" {
		l, err := log.ParseLevel(level)
		if err != nil {
			return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		cfg.Level = l
	}
	return cfg, nil
}

// LoadRoute reads the configured route file, or DefaultRoute without one.
func (c Config) LoadRoute() (*model.Route, error) {
	if c.RouteFile == "" {
		return Parse(DefaultRoute)
	}
	return Load(c.RouteFile)
}
