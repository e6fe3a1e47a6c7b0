package config

import (
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/puluc/board"
)

const (
	ConfigDebug             = "debug"
	ConfigFile              = "config-file"
	ConfigSeed              = "seed"
	ConfigFirstPlayer       = "first-player"
	ConfigExactRemovalBonus = "exact-removal-bonus"
	ConfigAutoplayGames     = "autoplay-games"
	ConfigAutoplayThreads   = "autoplay-threads"
	ConfigAutoplayLogfile   = "autoplay-logfile"
	ConfigAutoplaySummary   = "autoplay-summary"
	ConfigHistoryFile       = "history-file"
	ConfigCPUProfile        = "cpu-profile"
)

// Config is backed by viper. Values come from, in order of precedence,
// command-line flags, PULUC_* environment variables, an optional YAML
// config file, and the defaults below.
type Config struct {
	*viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigSeed, "")
	v.SetDefault(ConfigFirstPlayer, "white")
	v.SetDefault(ConfigExactRemovalBonus, true)
	v.SetDefault(ConfigAutoplayGames, 1000)
	v.SetDefault(ConfigAutoplayThreads, runtime.NumCPU())
	v.SetDefault(ConfigAutoplayLogfile, "")
	v.SetDefault(ConfigAutoplaySummary, "")
	v.SetDefault(ConfigHistoryFile, "/tmp/puluc_readline.tmp")
	v.SetDefault(ConfigCPUProfile, "")
}

// DefaultConfig returns a config with defaults only. Useful for tests.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{Viper: v}
}

// Load parses args and merges in the environment and config file.
func (c *Config) Load(args []string) error {
	v := viper.New()
	setDefaults(v)

	fs := pflag.NewFlagSet("puluc", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigFile, "", "path to a YAML config file")
	fs.String(ConfigSeed, "", "seed for reproducible stick throws; empty for a random game")
	fs.String(ConfigFirstPlayer, "white", "which color moves first")
	fs.Bool(ConfigExactRemovalBonus, true, "an exact throw off the track earns another turn")
	fs.Int(ConfigAutoplayGames, 1000, "number of games to autoplay")
	fs.Int(ConfigAutoplayThreads, runtime.NumCPU(), "number of autoplay workers")
	fs.String(ConfigAutoplayLogfile, "", "per-turn CSV log for autoplay; empty to skip")
	fs.String(ConfigAutoplaySummary, "", "YAML summary file for autoplay; empty to skip")
	fs.String(ConfigHistoryFile, "/tmp/puluc_readline.tmp", "shell history file")
	fs.String(ConfigCPUProfile, "", "write a CPU profile here")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	v.SetEnvPrefix("puluc")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(ConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	c.Viper = v
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// Rules builds the game rules from the config.
func (c *Config) Rules() (board.Rules, error) {
	first, err := board.ParseColor(c.GetString(ConfigFirstPlayer))
	if err != nil {
		return board.Rules{}, err
	}
	return board.Rules{
		FirstPlayer:       first,
		ExactRemovalBonus: c.GetBool(ConfigExactRemovalBonus),
	}, nil
}

// Seed returns the configured seed bytes, or nil for a random game.
func (c *Config) Seed() []byte {
	s := c.GetString(ConfigSeed)
	if s == "" {
		return nil
	}
	return []byte(s)
}

// SanitizedSettings is everything, for logging at startup.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
