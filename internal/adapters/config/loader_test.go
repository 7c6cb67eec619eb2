package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seer/internal/adapters/config"
	"go.trai.ch/seer/internal/core/domain"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.SettingsFileName), []byte(content), 0o600))
	return dir
}

func TestLoader_Load(t *testing.T) {
	dir := writeSettings(t, `
parallelism: 4
disabledPredictors:
  - ArtifactsSdk
  - CodeAnalysisRuleSet
statCacheSize: 4096
format: JSON
`)

	settings, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{
		Parallelism:        4,
		DisabledPredictors: []string{"ArtifactsSdk", "CodeAnalysisRuleSet"},
		StatCacheSize:      4096,
		Format:             domain.FormatJSON,
	}, settings)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	settings, err := config.NewLoader().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{}, settings)
}

func TestLoader_Load_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed yaml", content: "parallelism: [", wantErr: domain.ErrSettingsParseFailed},
		{name: "negative parallelism", content: "parallelism: -1", wantErr: domain.ErrInvalidParallelism},
		{name: "unknown format", content: "format: xml", wantErr: domain.ErrUnknownOutputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.NewLoader().Load(writeSettings(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr.Error())
		})
	}
}
