package config

import (
	log "github.com/sirupsen/logrus"
)

// InitLogging configures the process-wide logrus logger.
func InitLogging(cfg *Config) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.WithError(err).Warnf("unknown log level %q, falling back to info", cfg.Log.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.IsDevelopment() {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		return
	}
	log.SetFormatter(&log.JSONFormatter{})
}
