package module

import "polesplit/internal/platform/config"

// Options holds configuration settings for the process module
type Options struct {
	Workers int
	Prefix  string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	pf := cfg.Prefix("PROCESS_")
	return Options{
		Workers: pf.MayInt("WORKERS", 0),
		Prefix:  pf.MayString("JOB_PREFIX", ""),
	}
}
