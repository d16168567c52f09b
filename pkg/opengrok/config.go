package opengrok

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultMaxCount = 1000
	DefaultSort     = "relevancy"
)

// Config is the content of the configuration file.
type Config struct {
	DefaultInstance string                    `mapstructure:"default_instance"`
	Instances       map[string]InstanceConfig `mapstructure:"instances"`
}

// InstanceConfig describes one OpenGrok server.
type InstanceConfig struct {
	Server   string   `mapstructure:"server"`
	User     string   `mapstructure:"user"`
	Password string   `mapstructure:"password"`
	Projects []string `mapstructure:"projects"`
}

func (c *Config) Validate() error {
	if c.DefaultInstance != "" {
		if _, ok := c.Instances[c.DefaultInstance]; !ok {
			return fmt.Errorf("default_instance: unknown instance %q", c.DefaultInstance)
		}
	}
	for name, inst := range c.Instances {
		if name == "all" {
			return fmt.Errorf("instance name 'all' is reserved")
		}
		if inst.Server == "" {
			return fmt.Errorf("instance %q: missing 'server'", name)
		}
	}
	return nil
}

// Instance returns the instance with the given name, or the default instance
// if name is empty. The second return value is false when no instance applies.
func (c *Config) Instance(name string) (InstanceConfig, bool) {
	if name == "" {
		name = c.DefaultInstance
	}
	if name == "" {
		return InstanceConfig{}, false
	}
	inst, ok := c.Instances[name]
	return inst, ok
}

// RenderOptions control how match records are written out.
type RenderOptions struct {
	// List prints each distinct file once instead of every match.
	List bool
	// NoLines omits line numbers in match mode.
	NoLines bool
	// Null terminates list-mode lines with a NUL byte instead of a newline.
	Null bool
	// Color decorates output with terminal escapes.
	Color bool
	// Hyperlink wraps identifiers in OSC-8 links to the xref page.
	Hyperlink bool
}

// SearchConfig is the fully resolved configuration of one search run.
type SearchConfig struct {
	Query    string
	Server   string
	User     string
	Password string
	Projects []string
	Path     string
	Type     string
	Sort     string
	MaxCount int
	Render   RenderOptions
	// Verbose logs the assembled API URL at info level.
	Verbose bool
}

// MultiProject reports whether output needs project disambiguation.
func (c *SearchConfig) MultiProject() bool {
	return len(c.Projects) > 1
}

func (c *SearchConfig) Validate() error {
	if strings.TrimSpace(c.Query) == "" {
		return fmt.Errorf("empty query")
	}
	if c.Server == "" {
		return fmt.Errorf("missing server address")
	}
	u, err := url.Parse(c.Server)
	if err != nil {
		return fmt.Errorf("invalid server address %q: %w", c.Server, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server address %q: scheme must be http or https", c.Server)
	}
	if c.MaxCount < 1 {
		return fmt.Errorf("max-count must be positive, got %d", c.MaxCount)
	}
	return nil
}

// SplitProjects splits a comma-separated project list, dropping empty entries.
func SplitProjects(s string) []string {
	var projects []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			projects = append(projects, p)
		}
	}
	return projects
}
