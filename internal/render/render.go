// Package render turns a run report into the status block spliced into the
// target document.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"text/template"

	"github.com/pders01/fna-context/internal/models"
)

// TimestampLayout formats the "auto-updated" time in the status block
const TimestampLayout = "2006-01-02 15:04 MST"

//go:embed templates/fna.md.tmpl
var defaultTemplate string

// Input is everything the status block template can reference
type Input struct {
	Report       models.Report
	Marker       string
	ProjectRoot  string
	DatabasePath string
	GitHubURL    string
	PublicURL    string
	HealthURL    string
	TunnelConfig string
}

// UpdatedAt returns the report time in TimestampLayout
func (in Input) UpdatedAt() string {
	return in.Report.GeneratedAt.Format(TimestampLayout)
}

// LocalURL is the scheme and host of the health endpoint
func (in Input) LocalURL() string {
	u, err := url.Parse(in.HealthURL)
	if err != nil || u.Host == "" {
		return in.HealthURL
	}
	return u.Scheme + "://" + u.Host
}

// PublicHost is the host name of the public URL
func (in Input) PublicHost() string {
	u, err := url.Parse(in.PublicURL)
	if err != nil || u.Host == "" {
		return in.PublicURL
	}
	return u.Host
}

// PublicHealthURL is the health endpoint path served through the public URL
func (in Input) PublicHealthURL() string {
	u, err := url.Parse(in.HealthURL)
	if err != nil || u.Host == "" {
		return in.PublicURL
	}
	return strings.TrimSuffix(in.PublicURL, "/") + u.RequestURI()
}

// Port is the local server port, defaulting from the scheme
func (in Input) Port() string {
	u, err := url.Parse(in.HealthURL)
	if err != nil || u.Host == "" {
		return ""
	}
	if p := u.Port(); p != "" {
		return p
	}
	if u.Scheme == "https" {
		return "443"
	}
	return "80"
}

// TunnelOrigin is the loopback origin the tunnel forwards to
func (in Input) TunnelOrigin() string {
	u, err := url.Parse(in.HealthURL)
	if err != nil || u.Host == "" {
		return in.HealthURL
	}
	host := u.Hostname()
	if host == "localhost" {
		host = "127.0.0.1"
	}
	return u.Scheme + "://" + net.JoinHostPort(host, in.Port())
}

// Renderer executes the status block template
type Renderer struct {
	tmpl *template.Template
}

// New returns a Renderer using the template at path, or the built-in
// template when path is empty.
func New(path string) (*Renderer, error) {
	text := defaultTemplate
	name := "fna"
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template: %w", err)
		}
		text = string(data)
		name = path
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the template. The output always ends with a newline.
func (r *Renderer) Render(in Input) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, in); err != nil {
		return "", fmt.Errorf("failed to render status block: %w", err)
	}

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// Render renders in with the built-in template
func Render(in Input) (string, error) {
	r, err := New("")
	if err != nil {
		return "", err
	}
	return r.Render(in)
}
