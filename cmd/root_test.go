package cmd

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"detect", "host", "list", "cursor", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestLoadConfig_DefaultsWhenUnset(t *testing.T) {
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.StripHeight != 60 {
		t.Errorf("StripHeight = %d, want the built-in 60", cfg.StripHeight)
	}
	if len(cfg.Targets) != 8 {
		t.Errorf("Targets = %d colors, want the built-in 8", len(cfg.Targets))
	}
}
