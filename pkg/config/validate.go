package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	// api.base_url must be an absolute http(s) URL.
	if c.API.BaseURL == "" {
		errs = append(errs, fmt.Errorf("api.base_url is required"))
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, fmt.Errorf("api.base_url must be an absolute http or https URL, got %q", c.API.BaseURL))
	}

	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be >= 0, got %s", c.API.Timeout))
	}

	switch c.Auth.AuthType() {
	case "none":
	case "apikey":
		if c.Auth.APIKey == "" && c.Auth.APIKeyFile == "" {
			errs = append(errs, fmt.Errorf("auth.api_key or auth.api_key_file is required when auth.type is \"apikey\""))
		}
	case "jwt":
		if c.Auth.Token == "" && c.Auth.TokenFile == "" {
			errs = append(errs, fmt.Errorf("auth.token or auth.token_file is required when auth.type is \"jwt\""))
		}
	default:
		errs = append(errs, fmt.Errorf("auth.type must be \"none\", \"apikey\", or \"jwt\", got %q", c.Auth.Type))
	}

	if c.Auth.RateLimitRPM < 0 {
		errs = append(errs, fmt.Errorf("auth.rate_limit_rpm must be >= 0, got %d", c.Auth.RateLimitRPM))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json", "":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be \"text\" or \"json\", got %q", c.Logging.Format))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port))
	}

	return errors.Join(errs...)
}
