package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// SeedAdmin is an administrator account provisioned at startup.
type SeedAdmin struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	StaffID  string `yaml:"staff_id"`
	Password string `yaml:"password"`
}

// SeedCatalog holds the static catalog loaded from SEED_FILE.
type SeedCatalog struct {
	Categories []string    `yaml:"categories"`
	Tags       []string    `yaml:"tags"`
	Admins     []SeedAdmin `yaml:"admins"`
}

func LoadSeed(path string) (*SeedCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) (*SeedCatalog, error) {
	var seed SeedCatalog
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for i, a := range seed.Admins {
		if strings.TrimSpace(a.Email) == "" || a.Password == "" {
			return nil, fmt.Errorf("seed admin #%d: email and password are required", i+1)
		}
	}
	return &seed, nil
}

// AllowsCategory reports whether category is accepted. An empty catalog accepts anything.
func (s *SeedCatalog) AllowsCategory(category string) bool {
	if s == nil || len(s.Categories) == 0 {
		return true
	}
	for _, c := range s.Categories {
		if strings.EqualFold(c, strings.TrimSpace(category)) {
			return true
		}
	}
	return false
}
