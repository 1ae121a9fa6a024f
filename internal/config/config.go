package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Redis    Redis  `yaml:"redis"`
	Arena    Arena  `yaml:"arena"`
	Stats    Stats  `yaml:"stats"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Arena describes the automated matches run on start.
type Arena struct {
	PlayerX     string        `yaml:"player-x" env:"ARENA_PLAYER_X" env-default:"impossible"`
	PlayerO     string        `yaml:"player-o" env:"ARENA_PLAYER_O" env-default:"easy"`
	Games       int           `yaml:"games" env:"ARENA_GAMES" env-default:"10"`
	Seed        uint64        `yaml:"seed" env:"ARENA_SEED" env-default:"0"`
	MoveTimeout time.Duration `yaml:"move-timeout" env:"ARENA_MOVE_TIMEOUT" env-default:"5s"`
}

type Stats struct {
	Enabled         bool  `yaml:"enabled" env:"STATS_ENABLED"`
	LeaderboardSize int64 `yaml:"leaderboard-size" env:"STATS_LEADERBOARD_SIZE" env-default:"10"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
