// Package config flag backed settings
package config

import (
	"sync"

	"github.com/Laisky/errors/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config settings of the program
//
// enhance viper.Viper with threadsafe.
// Only command line flags are bound, there is no config file
// and no environment variable.
type Config struct {
	sync.RWMutex

	v *viper.Viper
}

// Shared is the settings for this project
//
// Basic Usage
//
//	import "github.com/Laisky/bsearch-bench/config"
//
//	config.Shared.GetInt("int-size")
var Shared = New()

// New new settings
func New() *Config {
	return &Config{
		v: viper.New(),
	}
}

// BindPFlags bind pflags to settings
func (s *Config) BindPFlags(p *pflag.FlagSet) error {
	s.Lock()
	defer s.Unlock()

	if err := s.v.BindPFlags(p); err != nil {
		return errors.Wrap(err, "bind pflags")
	}

	return nil
}

// Get get setting by key
func (s *Config) Get(key string) any {
	s.RLock()
	defer s.RUnlock()

	return s.v.Get(key)
}

// GetString get setting by key
func (s *Config) GetString(key string) string {
	s.RLock()
	defer s.RUnlock()

	return s.v.GetString(key)
}

// GetBool get setting by key
func (s *Config) GetBool(key string) bool {
	s.RLock()
	defer s.RUnlock()

	return s.v.GetBool(key)
}

// GetInt get setting by key
func (s *Config) GetInt(key string) int {
	s.RLock()
	defer s.RUnlock()

	return s.v.GetInt(key)
}

// GetInt64 get setting by key
func (s *Config) GetInt64(key string) int64 {
	s.RLock()
	defer s.RUnlock()

	return s.v.GetInt64(key)
}

// Set set setting by key
func (s *Config) Set(key string, val any) {
	s.Lock()
	defer s.Unlock()

	s.v.Set(key, val)
}

// IsSet check whether exists
func (s *Config) IsSet(key string) bool {
	s.RLock()
	defer s.RUnlock()

	return s.v.IsSet(key)
}

// Unmarshal unmarshals the config into a Struct. Make sure that the
// `mapstructure` tags on the fields of the structure are properly set.
func (s *Config) Unmarshal(obj any) error {
	s.RLock()
	defer s.RUnlock()

	if err := s.v.Unmarshal(obj); err != nil {
		return errors.Wrap(err, "unmarshal settings")
	}

	return nil
}
