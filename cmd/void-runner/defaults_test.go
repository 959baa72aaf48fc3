package main

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/void-runner/internal/config"
)

func TestDefaultsPrintsLoadableConfig(t *testing.T) {
	var out bytes.Buffer
	defaultsCmd.SetOut(&out)
	defer defaultsCmd.SetOut(nil)

	runDefaults(defaultsCmd, nil)

	var cfg config.RunnerConfig
	if err := yaml.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("defaults output is not valid YAML: %v", err)
	}
	if cfg != config.DefaultRunnerConfig() {
		t.Errorf("defaults output decodes to %+v, expected the built-in config", cfg)
	}
}
