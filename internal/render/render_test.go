package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pders01/fna-context/internal/models"
	"github.com/pders01/fna-context/internal/section"
)

func sampleInput() Input {
	return Input{
		Report: models.Report{
			Stats: models.StatsSnapshot{
				TotalMeals:    42,
				MealsToday:    3,
				ProfileExists: true,
				CalTarget:     1850,
				ProfileName:   "Sam",
			},
			Server:      models.StatusRunning,
			Endpoints:   10,
			GeneratedAt: time.Date(2026, 10, 17, 9, 5, 0, 0, time.FixedZone("PDT", -7*3600)),
		},
		Marker:       "- if i type FNA",
		ProjectRoot:  "/srv/nutrition-pwa",
		DatabasePath: "/srv/nutrition-pwa/nutrition.db",
		GitHubURL:    "https://github.com/example/fna",
		PublicURL:    "https://nutrition.example.com",
		HealthURL:    "http://localhost:3000/summary",
		TunnelConfig: "/home/sam/.cloudflared/config.yml",
	}
}

func TestRenderDefaultTemplate(t *testing.T) {
	out, err := Render(sampleInput())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.HasPrefix(out, "- if i type FNA - then remember this") {
		t.Errorf("block should start with marker line, got %q", out[:40])
	}

	wantLines := []string{
		"CURRENT STATUS (auto-updated 2026-10-17 09:05 PDT):",
		"- Server: Running",
		"- Total meals logged: 42",
		"- Meals today: 3",
		"- Profile configured: Yes",
		"- Daily calorie target: 1850",
		"- server.js - Express server (10 endpoints)",
		"- Project root: /srv/nutrition-pwa/",
		"- Local URL: http://localhost:3000",
		"- Path: /srv/nutrition-pwa/nutrition.db",
		"curl http://localhost:3000/summary",
		"curl https://nutrition.example.com/summary",
		"FEATURES:",
		"- Two-stage AI analysis (10x cheaper than Sonnet)",
		"- Mobile-first dark theme",
		"CLOUDFLARE TUNNEL:",
		"- Route: nutrition.example.com → http://127.0.0.1:3000",
		"- Config: /home/sam/.cloudflared/config.yml",
		"COST:",
		"- Typical: < $0.05/day",
		"# Restart server",
		"lsof -ti:3000 | xargs kill -9; node server.js &",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Errorf("rendered block missing %q", line)
		}
	}

	if !strings.HasSuffix(out, "\n") {
		t.Error("rendered block should end with a newline")
	}
}

func TestRenderStoppedWithoutProfile(t *testing.T) {
	in := sampleInput()
	in.Report.Server = models.StatusStopped
	in.Report.Stats = models.DefaultSnapshot()

	out, err := Render(in)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, line := range []string{"- Server: Stopped", "- Profile configured: No", "- Daily calorie target: 2000"} {
		if !strings.Contains(out, line) {
			t.Errorf("rendered block missing %q", line)
		}
	}
}

func TestRenderIsSafeToSplice(t *testing.T) {
	in := sampleInput()
	out, err := Render(in)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if strings.Count(out, in.Marker) != 1 {
		t.Errorf("marker should appear exactly once, got %d", strings.Count(out, in.Marker))
	}
	body := out[len(in.Marker):]
	if _, ok := section.NextMarker(body, []string{"\n---\n", "\n- if i type "}); ok {
		t.Error("rendered body contains a next-section marker")
	}
}

func TestRenderCustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.tmpl")
	text := "{{.Marker}}\nmeals={{.Report.Stats.TotalMeals}} server={{.Report.Server}}"
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}

	r, err := New(path)
	if err != nil {
		t.Fatalf("failed to load template: %v", err)
	}

	out, err := r.Render(sampleInput())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	want := "- if i type FNA\nmeals=42 server=Running\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing.tmpl")); err == nil {
		t.Error("expected error for missing template")
	}

	path := filepath.Join(t.TempDir(), "bad.tmpl")
	if err := os.WriteFile(path, []byte("{{.Marker"), 0644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	if _, err := New(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestRenderUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unknown.tmpl")
	if err := os.WriteFile(path, []byte("{{.Nope}}"), 0644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}

	r, err := New(path)
	if err != nil {
		t.Fatalf("failed to load template: %v", err)
	}
	if _, err := r.Render(sampleInput()); err == nil {
		t.Error("expected execution error for unknown field")
	}
}

func TestLocalURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:3000/summary", "http://localhost:3000"},
		{"https://example.com:8443/health?x=1", "https://example.com:8443"},
		{"not a url", "not a url"},
	}

	for _, tt := range tests {
		if got := (Input{HealthURL: tt.in}).LocalURL(); got != tt.want {
			t.Errorf("LocalURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestURLHelpers(t *testing.T) {
	tests := []struct {
		name       string
		health     string
		public     string
		wantPort   string
		wantOrigin string
		wantPublic string
		wantHost   string
	}{
		{
			name:       "localhost with port",
			health:     "http://localhost:3000/summary",
			public:     "https://nutrition.example.com",
			wantPort:   "3000",
			wantOrigin: "http://127.0.0.1:3000",
			wantPublic: "https://nutrition.example.com/summary",
			wantHost:   "nutrition.example.com",
		},
		{
			name:       "default https port",
			health:     "https://10.0.0.5/health?full=1",
			public:     "https://app.example.com/",
			wantPort:   "443",
			wantOrigin: "https://10.0.0.5:443",
			wantPublic: "https://app.example.com/health?full=1",
			wantHost:   "app.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{HealthURL: tt.health, PublicURL: tt.public}
			if got := in.Port(); got != tt.wantPort {
				t.Errorf("Port() = %q, want %q", got, tt.wantPort)
			}
			if got := in.TunnelOrigin(); got != tt.wantOrigin {
				t.Errorf("TunnelOrigin() = %q, want %q", got, tt.wantOrigin)
			}
			if got := in.PublicHealthURL(); got != tt.wantPublic {
				t.Errorf("PublicHealthURL() = %q, want %q", got, tt.wantPublic)
			}
			if got := in.PublicHost(); got != tt.wantHost {
				t.Errorf("PublicHost() = %q, want %q", got, tt.wantHost)
			}
		})
	}
}
