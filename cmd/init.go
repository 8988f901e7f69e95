package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pders01/fna-context/internal/config"
	"github.com/spf13/cobra"
)

var initProjectRoot string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Write a default config.toml for fna-context.

The file is written to the path given by --config, or to
$HOME/.config/fna-context/config.toml. An existing file is left alone.

Examples:
  fna-context init
  fna-context init --project ~/nutrition-pwa`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initProjectRoot, "project", "", "Project root of the nutrition app (default: current directory)")
}

type fileConfig struct {
	Project  projectSection  `toml:"project"`
	Document documentSection `toml:"document"`
	Section  sectionSection  `toml:"section"`
	Health   healthSection   `toml:"health"`
	Routes   routesSection   `toml:"routes"`
}

type projectSection struct {
	Root         string `toml:"root"`
	Database     string `toml:"database"`
	ServerSource string `toml:"server_source"`
	GitHub       string `toml:"github"`
	PublicURL    string `toml:"public_url"`
	TunnelConfig string `toml:"tunnel_config"`
}

type documentSection struct {
	Path string `toml:"path"`
}

type sectionSection struct {
	Marker      string   `toml:"marker"`
	NextMarkers []string `toml:"next_markers"`
}

type healthSection struct {
	URL     string `toml:"url"`
	Timeout string `toml:"timeout"`
}

type routesSection struct {
	Patterns []string `toml:"patterns"`
}

func defaultFileConfig(root string) fileConfig {
	return fileConfig{
		Project: projectSection{
			Root:         root,
			Database:     "nutrition.db",
			ServerSource: "server.js",
			GitHub:       "https://github.com/gtalwar12/forensic-nutrition-app",
			PublicURL:    "https://nutrition.dev-home-mini.me",
			TunnelConfig: "~/.cloudflared/config.yml",
		},
		Document: documentSection{Path: "~/.claude/CLAUDE.md"},
		Section: sectionSection{
			Marker:      config.DefaultMarker,
			NextMarkers: config.DefaultNextMarkers,
		},
		Health: healthSection{
			URL:     config.DefaultHealthURL,
			Timeout: config.DefaultHealthTimeout.String(),
		},
		Routes: routesSection{Patterns: config.DefaultRoutePatterns},
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		dir, err := configDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(dir, "config.toml")
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config already exists: %s\n", configPath)
		return nil
	}

	root := initProjectRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		root = wd
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(defaultFileConfig(root)); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("✓ Created default config: %s\n", configPath)
	fmt.Println("  Run: fna-context update")

	return nil
}
