package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/hotseat/consts"
)

const (
	EnvDisplayDelay = "UNO_DISPLAY_DELAY"
	EnvNoColor      = "UNO_NO_COLOR"
	EnvSeed         = "UNO_SEED"
	EnvFile         = "UNO_ENV_FILE"

	DefaultEnvFile = ".env"
)

type Config struct {
	DisplayDelay time.Duration
	NoColor      bool
	// Seed fixes the shuffle; 0 seeds from the clock.
	Seed    int64
	EnvFile string
}

func Default() Config {
	return Config{EnvFile: DefaultEnvFile}
}

// Load reads the dotenv file, if there is one, then the environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	cfg := Default()
	if envFile := os.Getenv(EnvFile); envFile != "" {
		cfg.EnvFile = envFile
	}
	if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load %s: %w", cfg.EnvFile, err)
	}

	if value, ok := os.LookupEnv(EnvDisplayDelay); ok {
		delay, err := time.ParseDuration(value)
		if err != nil || delay < 0 {
			return cfg, fmt.Errorf("%s=%q: %w", EnvDisplayDelay, value, consts.ErrorsConfigInvalid)
		}
		cfg.DisplayDelay = delay
	}
	if value, ok := os.LookupEnv(EnvNoColor); ok {
		noColor, err := strconv.ParseBool(value)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvNoColor, value, consts.ErrorsConfigInvalid)
		}
		cfg.NoColor = noColor
	}
	if value, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvSeed, value, consts.ErrorsConfigInvalid)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
