package httpclientx

import "github.com/apitour/apitour-cli/internal/model"

// Config is the configuration shared by every request helper of this
// package. Service clients build one per process and pass it around.
type Config struct {
	// Authorization is the OPTIONAL value of the Authorization header.
	Authorization string

	// Client is the MANDATORY client sending the requests. Its timeout
	// bounds each request together with the context.
	Client model.HTTPClient

	// Logger is the OPTIONAL logger for request and response traces.
	Logger model.Logger

	// UserAgent is the OPTIONAL User-Agent. We use
	// [model.HTTPHeaderUserAgent] when empty.
	UserAgent string
}

func (c *Config) logger() model.Logger {
	return model.ValidLoggerOrDefault(c.Logger)
}

func (c *Config) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return model.HTTPHeaderUserAgent
}
