package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout; the
	// agent call uses zero by default and settles per the remote
	// service's own contract.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-summarizer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AgentConfig holds settings for the remote summarization agent.
type AgentConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the agent inference endpoint URL. Empty selects the
	// compiled-in default.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// AgentID selects the remote summarization configuration. The
	// default is the fixed arXiv summarizer agent.
	AgentID string `json:"agent_id" yaml:"agent_id"`

	// APIKey authenticates against the agent API. Usually loaded from
	// .secrets/lyzr-api-key rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// UserID identifies the calling user to the agent API.
	UserID string `json:"user_id,omitempty" yaml:"user_id,omitempty"`
}

// LookupConfig holds settings for the direct arXiv metadata lookup.
type LookupConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries bounds retry attempts on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ServerConfig holds settings for the web frontend.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// AllowedOrigins lists CORS origins permitted to call the JSON API.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`

	// ReadTimeout and WriteTimeout bound request handling. WriteTimeout
	// must accommodate the agent call, which itself has no timeout.
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
}

// HistoryConfig holds settings for the local summary history store.
type HistoryConfig struct {
	// Path is the SQLite database file (default "history/summaries.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of listed entries (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all component configurations.
type Config struct {
	Agent   AgentConfig   `json:"agent" yaml:"agent"`
	Lookup  LookupConfig  `json:"lookup" yaml:"lookup"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	History HistoryConfig `json:"history" yaml:"history"`
}
