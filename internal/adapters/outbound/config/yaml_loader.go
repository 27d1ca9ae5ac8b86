package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tillbook/tillbook/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".tillbook.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .tillbook.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

// Load reads the configuration file at path.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(path string) (domain.Config, error) {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	// Keys absent from the file keep their defaults; an explicit 0 is kept as 0.
	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig fills settings left blank in the file from the defaults. Blank strings
// mean "not set"; numbers are taken as written.
func mergeConfig(base, override domain.Config) domain.Config {
	result := override

	if result.DataDir == "" {
		result.DataDir = base.DataDir
	}
	if result.ReceiptsDir == "" {
		result.ReceiptsDir = base.ReceiptsDir
	}
	if result.ReceiptNaming == "" {
		result.ReceiptNaming = base.ReceiptNaming
	}
	if result.Validation == "" {
		result.Validation = base.Validation
	}
	if result.CommitMode == "" {
		result.CommitMode = base.CommitMode
	}
	if result.Timezone == "" {
		result.Timezone = base.Timezone
	}

	return result
}
