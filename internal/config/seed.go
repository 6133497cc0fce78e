package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/keivanh/keepwarm/internal/domain"
)

// Seed is the optional YAML file imported into the store on startup for
// keys that are not present yet.
//
//	targets:
//	  - https://app.example.com
//	settings:
//	  maxRetries: 2
//	  delaySeconds: 1
type Seed struct {
	Targets  []string      `yaml:"targets"`
	Settings *SeedSettings `yaml:"settings"`
}

type SeedSettings struct {
	MaxRetries   int `yaml:"maxRetries"`
	DelaySeconds int `yaml:"delaySeconds"`
}

// Policy converts the seeded settings into a sanitized retry policy.
func (s *SeedSettings) Policy() domain.RetryPolicy {
	return domain.RetryPolicy{MaxRetries: s.MaxRetries, DelaySeconds: s.DelaySeconds}.Sanitized()
}

// LoadSeed reads and parses a seed file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &s, nil
}
