// Package request holds the HTTP-like request records streamed by the demo
// and the handlers that consume them.
package request

import "time"

type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

type Status int

const (
	StatusOK                  Status = 200
	StatusInternalServerError Status = 500
)

// Request is one record of the demo stream.
type Request struct {
	Method Method            `yaml:"method" validate:"required,oneof=GET POST"`
	Host   string            `yaml:"host" validate:"required,hostname"`
	Path   string            `yaml:"path" validate:"required"`
	Body   map[string]any    `yaml:"body,omitempty"`
	Params map[string]string `yaml:"params,omitempty"`
}

// Mocks returns the built-in requests: creating a user, then fetching it.
func Mocks(now time.Time) []Request {
	user := map[string]any{
		"name":       "User Name",
		"age":        26,
		"roles":      []string{"user", "admin"},
		"createdAt":  now,
		"isDeleated": false,
	}
	return []Request{
		{
			Method: MethodPost,
			Host:   "service.example",
			Path:   "user",
			Body:   user,
			Params: map[string]string{},
		},
		{
			Method: MethodGet,
			Host:   "service.example",
			Path:   "user",
			Params: map[string]string{"id": "3f5h67s4s"},
		},
	}
}
