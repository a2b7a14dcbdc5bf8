package urx

import "github.com/rs/zerolog"

// Option configures an Observable.
type Option func(*config)

type config struct {
	log  zerolog.Logger
	name string
}

func newConfig(opts []Option) config {
	c := config{log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.name != "" {
		c.log = c.log.With().Str("observable", c.name).Logger()
	}
	return c
}

// WithLogger sets the logger used for lifecycle messages. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithName labels every log line of the observable with name.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
