// Package config loads named-request definitions for the run command
// from YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level file structure.
type Config struct {
	Environments map[string]Environment `json:"environments,omitempty" yaml:"environments,omitempty"`
	Requests     map[string]Request     `json:"requests" yaml:"requests"`
}

// Environment holds a base URL and headers shared by the requests
// that reference it.
type Environment struct {
	BaseURL string            `json:"baseUrl" yaml:"baseUrl"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// Request is one named request definition.
type Request struct {
	Environment string            `json:"environment,omitempty" yaml:"environment,omitempty"`
	Method      string            `json:"method,omitempty" yaml:"method,omitempty"`
	URL         string            `json:"url" yaml:"url"`
	Headers     map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Query       map[string]string `json:"query,omitempty" yaml:"query,omitempty"`
	Body        any               `json:"body,omitempty" yaml:"body,omitempty"`
	Timeout     string            `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Load reads and validates a config file, choosing the decoder by
// file extension (.yaml/.yml/.json).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q (want .yaml, .yml, or .json)", ext)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Requests) == 0 {
		return fmt.Errorf("config defines no requests")
	}
	for name, req := range c.Requests {
		if req.URL == "" {
			return fmt.Errorf("request %q has no url", name)
		}
		if req.Environment != "" {
			if _, ok := c.Environments[req.Environment]; !ok {
				return fmt.Errorf("request %q references unknown environment %q", name, req.Environment)
			}
		}
		if req.Timeout != "" {
			if _, err := time.ParseDuration(req.Timeout); err != nil {
				return fmt.Errorf("request %q has invalid timeout %q: %w", name, req.Timeout, err)
			}
		}
	}
	return nil
}

// ResolvedRequest is a request with its environment folded in.
type ResolvedRequest struct {
	Method     string
	URL        string
	Headers    map[string]string
	Query      map[string]string
	Body       any
	Timeout    time.Duration
	HasTimeout bool
}

// Resolve looks up a named request and merges its environment's base
// URL and headers. Request headers win over environment headers.
func (c *Config) Resolve(name string) (*ResolvedRequest, error) {
	req, ok := c.Requests[name]
	if !ok {
		return nil, fmt.Errorf("unknown request %q", name)
	}

	resolved := &ResolvedRequest{
		Method:  req.Method,
		URL:     req.URL,
		Headers: make(map[string]string),
		Query:   req.Query,
		Body:    req.Body,
	}
	if resolved.Method == "" {
		resolved.Method = "GET"
	}

	if req.Environment != "" {
		env := c.Environments[req.Environment]
		resolved.URL = env.BaseURL + req.URL
		for k, v := range env.Headers {
			resolved.Headers[k] = v
		}
	}
	for k, v := range req.Headers {
		resolved.Headers[k] = v
	}

	if req.Timeout != "" {
		d, err := time.ParseDuration(req.Timeout)
		if err != nil {
			return nil, fmt.Errorf("request %q has invalid timeout %q: %w", name, req.Timeout, err)
		}
		resolved.Timeout = d
		resolved.HasTimeout = true
	}

	return resolved, nil
}
