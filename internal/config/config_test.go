package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde slash", in: "~/austrich/key.json", want: filepath.Join(home, "austrich", "key.json")},
		{name: "bare tilde", in: "~", want: home},
		{name: "absolute unchanged", in: "/etc/austrich.yaml", want: "/etc/austrich.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestLoadAPIConfig(t *testing.T) {
	viper.Reset()
	t.Setenv("AUSTRICH_API_URL", "")

	cfg := LoadAPIConfig()
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)

	viper.Set("api.base_url", "https://grader.example.edu/")
	viper.Set("api.timeout", "90s")
	defer viper.Reset()

	cfg = LoadAPIConfig()
	assert.Equal(t, "https://grader.example.edu", cfg.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestAnalysisModelDefault(t *testing.T) {
	viper.Reset()
	assert.Equal(t, DefaultAnalysisModel, AnalysisModel())

	viper.Set("analysis.model_id", "custom-model")
	defer viper.Reset()
	assert.Equal(t, "custom-model", AnalysisModel())
}
