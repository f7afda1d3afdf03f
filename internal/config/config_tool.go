package config

import "fmt"

// ToolConfig is the configuration view used by the rosterctl command-line
// tool. It needs neither a bot token nor admin ids.
type ToolConfig struct {
	// App carries the category and chunk settings.
	App App
	// Storage carries the roster and user log locations.
	Storage Storage
}

// GetToolConfig builds and validates the rosterctl configuration from the
// defaults, a .env file and environment variables. Command-line flags are
// owned by the tool itself and applied by the caller via overrides.
func GetToolConfig(overrides ToolConfig) (*ToolConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withJSON().
		withOverrides(&StructuredConfig{App: overrides.App, Storage: overrides.Storage}).
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	toolCfg := &ToolConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
	}

	return toolCfg, toolCfg.validate()
}

func (b *configBuilder) withOverrides(cfg *StructuredConfig) *configBuilder {
	b.configs = append(b.configs, cfg)
	return b
}
