package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultMarker opens the managed section in the target document
	DefaultMarker = "- if i type FNA"
	// DefaultHealthURL is probed to decide whether the server is running
	DefaultHealthURL = "http://localhost:3000/summary"
	// DefaultHealthTimeout bounds the health probe
	DefaultHealthTimeout = 5 * time.Second
)

// DefaultNextMarkers each start the section after the managed one
var DefaultNextMarkers = []string{"\n---\n", "\n- if i type "}

// DefaultRoutePatterns are counted in the server source as route declarations
var DefaultRoutePatterns = []string{"app.get(", "app.post(", "app.put(", "app.delete("}

// Config carries every path and endpoint a run touches
type Config struct {
	ProjectRoot   string
	DatabasePath  string
	ServerSource  string
	DocumentPath  string
	TemplatePath  string
	GitHubURL     string
	PublicURL     string
	TunnelConfig  string
	Marker        string
	NextMarkers   []string
	HealthURL     string
	HealthTimeout time.Duration
	RoutePatterns []string
}

// SetDefaults registers default values for every key Load reads
func SetDefaults(v *viper.Viper) {
	v.SetDefault("project.root", ".")
	v.SetDefault("project.database", "nutrition.db")
	v.SetDefault("project.server_source", "server.js")
	v.SetDefault("project.github", "https://github.com/gtalwar12/forensic-nutrition-app")
	v.SetDefault("project.public_url", "https://nutrition.dev-home-mini.me")
	v.SetDefault("project.tunnel_config", "~/.cloudflared/config.yml")
	v.SetDefault("document.path", "~/.claude/CLAUDE.md")
	v.SetDefault("section.marker", DefaultMarker)
	v.SetDefault("section.next_markers", DefaultNextMarkers)
	v.SetDefault("health.url", DefaultHealthURL)
	v.SetDefault("health.timeout", DefaultHealthTimeout)
	v.SetDefault("routes.patterns", DefaultRoutePatterns)
	v.SetDefault("template.path", "")
}

// Load builds a Config from viper, resolving project files against the root
func Load(v *viper.Viper) (*Config, error) {
	root, err := ExpandPath(v.GetString("project.root"))
	if err != nil {
		return nil, err
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	doc, err := ExpandPath(v.GetString("document.path"))
	if err != nil {
		return nil, err
	}
	if doc == "" {
		return nil, fmt.Errorf("document.path is required")
	}

	tmpl, err := ExpandPath(v.GetString("template.path"))
	if err != nil {
		return nil, err
	}

	tunnel, err := ExpandPath(v.GetString("project.tunnel_config"))
	if err != nil {
		return nil, err
	}

	marker := v.GetString("section.marker")
	if marker == "" {
		return nil, fmt.Errorf("section.marker cannot be empty")
	}

	timeout := v.GetDuration("health.timeout")
	if timeout <= 0 {
		timeout = DefaultHealthTimeout
	}

	return &Config{
		ProjectRoot:   root,
		DatabasePath:  resolve(root, v.GetString("project.database")),
		ServerSource:  resolve(root, v.GetString("project.server_source")),
		DocumentPath:  doc,
		TemplatePath:  tmpl,
		GitHubURL:     v.GetString("project.github"),
		PublicURL:     v.GetString("project.public_url"),
		TunnelConfig:  tunnel,
		Marker:        marker,
		NextMarkers:   v.GetStringSlice("section.next_markers"),
		HealthURL:     v.GetString("health.url"),
		HealthTimeout: timeout,
		RoutePatterns: v.GetStringSlice("routes.patterns"),
	}, nil
}

// ExpandPath replaces a leading ~ with the user's home directory
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func resolve(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
