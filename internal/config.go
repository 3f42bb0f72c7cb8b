package internal

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"sentiment-lab/cleaning"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config carries every tunable of the preparation pipeline. Defaults match
// the settings the corpus was originally prepared with.
type Config struct {
	DatasetPath    string  `env:"DATASET_PATH,required=true" validate:"required"`
	CleanedPath    string  `env:"CLEANED_PATH,default=data/processed/cleaned_data.csv" validate:"required"`
	BadgerFilepath string  `env:"BADGER_FILEPATH,required=true" validate:"required"`
	BlugeFilepath  string  `env:"BLUGE_FILEPATH,required=true" validate:"required"`
	LogLevel       string  `env:"LOG_LEVEL,default=info"`
	CleaningPreset string  `env:"CLEANING_PRESET,default=fast" validate:"oneof=fast full"`
	SampleSize     int     `env:"SAMPLE_SIZE" validate:"gte=0"`
	TestSize       float64 `env:"TEST_SIZE,default=0.2" validate:"gt=0,lt=1"`
	MaxFeatures    int     `env:"MAX_FEATURES,default=10000" validate:"gt=0"`
	MinDF          int     `env:"MIN_DF,default=5" validate:"gte=1"`
	MaxDF          float64 `env:"MAX_DF,default=0.95" validate:"gt=0,lte=1"`
	NGramMin       int     `env:"NGRAM_MIN,default=1" validate:"gte=1"`
	NGramMax       int     `env:"NGRAM_MAX,default=2" validate:"gtefield=NGramMin"`
	Seed           int64   `env:"SEED,default=42"`
}

// LoadConfig reads .env when present, unmarshals the environment and
// validates the result. SAMPLE_SIZE left at zero falls back to the
// preset's own sample size.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Preset resolves the configured cleaning preset.
func (c Config) Preset() cleaning.Preset {
	return cleaning.Presets[c.CleaningPreset]
}

// EffectiveSampleSize returns the explicit sample size, or the preset
// default when none was set.
func (c Config) EffectiveSampleSize() int {
	if c.SampleSize > 0 {
		return c.SampleSize
	}
	return c.Preset().SampleSize
}

// LoggerFromLevel builds the process logger at the configured level.
func LoggerFromLevel(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
