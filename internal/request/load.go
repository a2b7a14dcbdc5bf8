package request

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var ErrNoRequests = errors.New("no requests defined")

type file struct {
	Requests []Request `yaml:"requests"`
}

// Decode reads a YAML document with a top-level "requests" list.
func Decode(r io.Reader) ([]Request, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRequests
		}
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	if len(f.Requests) == 0 {
		return nil, ErrNoRequests
	}
	return f.Requests, nil
}

// LoadFile decodes the requests file at path.
func LoadFile(path string) ([]Request, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open requests file: %w", err)
	}
	defer fh.Close()

	reqs, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return reqs, nil
}

var validate = validator.New()

// Validate checks every request and reports all invalid ones.
func Validate(reqs []Request) error {
	var errs error
	for i := range reqs {
		if err := validate.Struct(reqs[i]); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("request %d: %w", i, err))
		}
	}
	return errs
}
