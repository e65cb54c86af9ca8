package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names an optional YAML file read before the environment.
const PathEnv = "TICTACTOE_CONFIG"

type Config struct {
	Log       Log       `yaml:"log"`
	Telemetry Telemetry `yaml:"telemetry"`
	Game      Game      `yaml:"game"`
}

type Log struct {
	Level   string `yaml:"level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	File    string `yaml:"file" env:"TICTACTOE_LOG_FILE"`
	NoColor bool   `yaml:"no-color" env:"TICTACTOE_LOG_NO_COLOR" env-default:"false"`
}

type Telemetry struct {
	Exporter    string `yaml:"exporter" env:"TICTACTOE_OTEL_EXPORTER" env-default:"none" validate:"oneof=none stdout otlp"`
	Endpoint    string `yaml:"endpoint" env:"TICTACTOE_OTEL_ENDPOINT" env-default:"localhost:4317" validate:"omitempty,hostname_port"`
	ServiceName string `yaml:"service-name" env:"TICTACTOE_SERVICE_NAME" env-default:"tic-tac-toe" validate:"required"`
}

type Game struct {
	// MoveTimeout bounds how long a player may take to enter a move. Zero
	// waits forever.
	MoveTimeout time.Duration `yaml:"move-timeout" env:"TICTACTOE_MOVE_TIMEOUT" env-default:"0s" validate:"gte=0"`
	NoColor     bool          `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the file named by TICTACTOE_CONFIG, if set, then applies
// environment overrides and defaults. With nothing set it returns the
// defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv(PathEnv); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load for program start-up.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
