package config

import (
	"os"
	"sync"
)

type SeedConfig struct {
	// Path to a YAML data set. Empty means the embedded sample data.
	Path string
}

var (
	seedConfig *SeedConfig
	seedOnce   sync.Once
)

func LoadSeedConfig() *SeedConfig {
	seedOnce.Do(func() {
		seedConfig = &SeedConfig{
			Path: os.Getenv("SEED_FILE"),
		}
	})
	return seedConfig
}
