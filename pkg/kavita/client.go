package kavita

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds client configuration.
type Config struct {
	BaseURL    string       // Required: Kavita server URL (e.g. https://kavita.example.com)
	Username   string       // Required: account username
	APIKey     string       // Required: account API key
	HTTPClient *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Kavita API operations.
type Client struct {
	baseURL    string
	username   string
	apiKey     string
	token      string
	httpClient *http.Client
	logger     Logger
}

// NewClient creates a new Kavita API client.
//
// Returns an error if required configuration (BaseURL, Username, APIKey)
// is missing. The client is unauthenticated until Login is called.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("kavita: BaseURL is required")
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("kavita: Username is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("kavita: APIKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

// SetToken sets the bearer token used for authenticated requests.
// Login calls this automatically; it is exposed for callers that
// persist tokens across invocations.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token, empty before Login.
func (c *Client) Token() string {
	return c.token
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
