package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/trim21/errgo"
)

type Log struct {
	Level string `toml:"level"`
}

type Search struct {
	// MaxDistance caps both searches; 0 disables the cap.
	MaxDistance int64 `toml:"max_distance"`
	ReturnPath  bool  `toml:"return_path"`
}

type Config struct {
	Log    Log    `toml:"log"`
	Search Search `toml:"search"`
}

func Default() Config {
	return Config{
		Log: Log{Level: "info"},
	}
}

// LoadFromFile decodes path over the defaults. An empty path yields the defaults.
func LoadFromFile(path string) (Config, error) {
	var cfg = Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, errgo.Wrap(err, "config file does not exist")
		}

		return cfg, errgo.Wrap(err, "failed to parse config file")
	}

	if cfg.Search.MaxDistance < 0 {
		return cfg, fmt.Errorf("%w: %d in %s", ErrNegativeMaxDistance, cfg.Search.MaxDistance, path)
	}

	return cfg, nil
}
