// Package config resolves runtime settings from defaults, a .env file, the environment and flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/colorhunt/constants"
)

// ErrInvalid is returned for any setting that fails to parse or validate
var ErrInvalid = errors.New("invalid configuration")

// Capture source kinds
const (
	SourceSynthetic = "synthetic"
	SourceImages    = "images"
)

// Color modes
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// EnvPrefix is prepended to every environment key
const EnvPrefix = "COLORHUNT_"

// Config holds every runtime setting
type Config struct {
	Source       string
	ImagesDir    string
	ImageHold    int
	Seed         int64
	TotalTime    time.Duration
	TickInterval time.Duration
	Mirror       bool
	ColorMode    string
	PaletteSize  int
	Mute         bool
	Volume       int // 0-100
	Debug        bool
	LogLevel     string
	LogDir       string
	Keys         string // extra key bindings, "key=action,..."
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Source:       SourceSynthetic,
		ImageHold:    30,
		TotalTime:    constants.TotalGameTime,
		TickInterval: constants.GameUpdateInterval,
		Mirror:       true,
		ColorMode:    ColorAuto,
		PaletteSize:  64,
		Volume:       50,
		LogLevel:     "debug",
		LogDir:       "logs",
	}
}

// Load resolves settings using ./.env
func Load(args []string) (*Config, error) {
	return LoadFrom(".env", args)
}

// LoadFrom resolves settings in order: defaults, envFile, process environment, args
// A missing envFile is not an error
func LoadFrom(envFile string, args []string) (*Config, error) {
	cfg := Default()

	vals := make(map[string]string)
	if envFile != "" {
		fileVals, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: read %s: %v", ErrInvalid, envFile, err)
		}
		for k, v := range fileVals {
			vals[k] = v
		}
	}
	for key := range cfg.envSetters() {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			vals[EnvPrefix+key] = v
		}
	}
	if err := cfg.applyEnv(vals); err != nil {
		return nil, err
	}

	fset := flag.NewFlagSet("colorhunt", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	cfg.bindFlags(fset)
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envSetters maps unprefixed env keys to parsers
func (c *Config) envSetters() map[string]func(string) error {
	return map[string]func(string) error{
		"SOURCE":     func(v string) error { c.Source = v; return nil },
		"IMAGES":     func(v string) error { c.ImagesDir = v; return nil },
		"IMAGE_HOLD": intSetter(&c.ImageHold),
		"SEED":       func(v string) (err error) { c.Seed, err = strconv.ParseInt(v, 10, 64); return },
		"TOTAL_TIME": durationSetter(&c.TotalTime),
		"TICK":       durationSetter(&c.TickInterval),
		"MIRROR":     boolSetter(&c.Mirror),
		"COLOR":      func(v string) error { c.ColorMode = v; return nil },
		"PALETTE":    intSetter(&c.PaletteSize),
		"MUTE":       boolSetter(&c.Mute),
		"VOLUME":     intSetter(&c.Volume),
		"DEBUG":      boolSetter(&c.Debug),
		"LOG_LEVEL":  func(v string) error { c.LogLevel = v; return nil },
		"LOG_DIR":    func(v string) error { c.LogDir = v; return nil },
		"KEYS":       func(v string) error { c.Keys = v; return nil },
	}
}

func (c *Config) applyEnv(vals map[string]string) error {
	for key, set := range c.envSetters() {
		v, ok := vals[EnvPrefix+key]
		if !ok {
			continue
		}
		if err := set(v); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, v, err)
		}
	}
	return nil
}

func (c *Config) bindFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.Source, "source", c.Source, "Capture source: synthetic, images")
	fset.StringVar(&c.ImagesDir, "images", c.ImagesDir, "Directory of frames for the images source")
	fset.IntVar(&c.ImageHold, "hold", c.ImageHold, "Ticks each image is shown for the images source")
	fset.Int64Var(&c.Seed, "seed", c.Seed, "Random seed for targets and camera noise (0 = time)")
	fset.DurationVar(&c.TotalTime, "time", c.TotalTime, "Round length")
	fset.DurationVar(&c.TickInterval, "tick", c.TickInterval, "Game tick interval")
	fset.BoolVar(&c.Mirror, "mirror", c.Mirror, "Mirror frames horizontally")
	fset.StringVar(&c.ColorMode, "color", c.ColorMode, "Color mode: auto, truecolor, 256")
	fset.IntVar(&c.PaletteSize, "palette", c.PaletteSize, "Backdrop palette size in 256-color mode")
	fset.BoolVar(&c.Mute, "mute", c.Mute, "Disable sound")
	fset.IntVar(&c.Volume, "volume", c.Volume, "Master volume 0-100")
	fset.BoolVar(&c.Debug, "debug", c.Debug, "Write logs and show the status line")
	fset.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level when -debug is set")
	fset.StringVar(&c.LogDir, "log-dir", c.LogDir, "Log directory when -debug is set")
	fset.StringVar(&c.Keys, "keys", c.Keys, "Extra key bindings, e.g. \"z=card_red,space=start\"")
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	switch c.Source {
	case SourceSynthetic:
	case SourceImages:
		if c.ImagesDir == "" {
			return fmt.Errorf("%w: source %q needs an images directory", ErrInvalid, c.Source)
		}
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalid, c.Source)
	}

	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: unknown color mode %q", ErrInvalid, c.ColorMode)
	}

	if c.TotalTime <= 0 {
		return fmt.Errorf("%w: round length must be positive, got %v", ErrInvalid, c.TotalTime)
	}
	if c.TickInterval < time.Millisecond || c.TickInterval > time.Second {
		return fmt.Errorf("%w: tick interval %v outside 1ms..1s", ErrInvalid, c.TickInterval)
	}
	if c.PaletteSize < 2 || c.PaletteSize > 256 {
		return fmt.Errorf("%w: palette size %d outside 2..256", ErrInvalid, c.PaletteSize)
	}
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("%w: volume %d outside 0..100", ErrInvalid, c.Volume)
	}
	if c.ImageHold < 1 {
		return fmt.Errorf("%w: image hold must be at least 1, got %d", ErrInvalid, c.ImageHold)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func intSetter(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func boolSetter(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func durationSetter(dst *time.Duration) func(string) error {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}
}
