// Package config loads the optional seer.yaml settings file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader reading domain.SettingsFileName.
func NewLoader() *Loader {
	return &Loader{Filename: domain.SettingsFileName}
}

// Load reads the settings from dir. A missing file yields zero settings.
func (l *Loader) Load(dir string) (domain.Settings, error) {
	path := filepath.Join(dir, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // Settings path is derived from the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Settings{}, nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	var settings domain.Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	if err := validate(&settings); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	return settings, nil
}

func validate(settings *domain.Settings) error {
	if settings.Parallelism < 0 {
		return zerr.With(domain.ErrInvalidParallelism, "parallelism", settings.Parallelism)
	}
	settings.Format = strings.ToLower(strings.TrimSpace(settings.Format))
	switch settings.Format {
	case "", domain.FormatText, domain.FormatJSON:
	default:
		return zerr.With(domain.ErrUnknownOutputFormat, "format", settings.Format)
	}
	if settings.StatCacheSize < 0 {
		settings.StatCacheSize = 0
	}
	return nil
}
