// Package config loads the tester command's settings with viper.
//
// Settings come from, in increasing priority: defaults, an optional TOML
// file, and TESTER_ environment variables (TESTER_TESTER_DELAY,
// TESTER_LOG_LEVEL and so on).
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bjaus/tester"
)

const (
	KeyDelay             = "tester.delay"
	KeyAutoProcessEvents = "tester.auto_process_events"
	KeyLogLevel          = "log.level"
	KeyScreenWidth       = "screen.width"
	KeyScreenHeight      = "screen.height"
)

// Settings is the resolved configuration.
type Settings struct {
	Delay             time.Duration
	AutoProcessEvents bool
	LogLevel          logrus.Level
	ScreenWidth       int
	ScreenHeight      int
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDelay, time.Duration(0))
	v.SetDefault(KeyAutoProcessEvents, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyScreenWidth, 80)
	v.SetDefault(KeyScreenHeight, 24)

	v.SetEnvPrefix("tester")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the settings. path names a TOML file and may be empty.
func Load(path string) (*Settings, error) {
	v := newViper()
	if path != "" {
		v.SetConfigType("toml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, errors.Wrap(err, KeyLogLevel)
	}
	delay := v.GetDuration(KeyDelay)
	if delay < 0 {
		return nil, errors.Errorf("%s must not be negative, got %s", KeyDelay, delay)
	}
	s := &Settings{
		Delay:             delay,
		AutoProcessEvents: v.GetBool(KeyAutoProcessEvents),
		LogLevel:          level,
		ScreenWidth:       v.GetInt(KeyScreenWidth),
		ScreenHeight:      v.GetInt(KeyScreenHeight),
	}
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return nil, errors.Errorf("screen must have a positive size, got %dx%d", s.ScreenWidth, s.ScreenHeight)
	}
	return s, nil
}

// Options returns the wrapper options the settings imply.
func (s *Settings) Options() []tester.Option {
	return []tester.Option{
		tester.WithDelay(s.Delay),
		tester.WithAutoProcessEvents(s.AutoProcessEvents),
	}
}

// Logger returns a logger writing text at the configured level.
func (s *Settings) Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	logger.SetLevel(s.LogLevel)
	return logger
}
