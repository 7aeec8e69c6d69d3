package module

import "polesplit/internal/platform/config"

// Options holds configuration settings for the runs module
type Options struct {
	HardLimit int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("CORE_RUNS_")
	return Options{
		HardLimit: rf.MayInt("HARD_LIMIT", 50),
	}
}
