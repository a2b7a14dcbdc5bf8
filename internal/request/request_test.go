package request

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const requestsYAML = `
requests:
  - method: POST
    host: service.example
    path: user
    body:
      name: User Name
      age: 26
  - method: GET
    host: service.example
    path: user
    params:
      id: 3f5h67s4s
`

func TestMocksAreValid(t *testing.T) {
	reqs := Mocks(time.Now())
	require.Len(t, reqs, 2)
	assert.Equal(t, MethodPost, reqs[0].Method)
	assert.Equal(t, "3f5h67s4s", reqs[1].Params["id"])
	require.NoError(t, Validate(reqs))
}

func TestDecode(t *testing.T) {
	reqs, err := Decode(strings.NewReader(requestsYAML))
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "User Name", reqs[0].Body["name"])
	assert.Equal(t, MethodGet, reqs[1].Method)
	require.NoError(t, Validate(reqs))
}

func TestDecodeErrors(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		_, err := Decode(strings.NewReader(""))
		require.ErrorIs(t, err, ErrNoRequests)
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := Decode(strings.NewReader("requests: []\n"))
		require.ErrorIs(t, err, ErrNoRequests)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Decode(strings.NewReader("requests:\n  - verb: GET\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode requests")
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.yaml")
	require.NoError(t, os.WriteFile(path, []byte(requestsYAML), 0o600))

	reqs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, reqs, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidateReportsEveryInvalidRequest(t *testing.T) {
	reqs := []Request{
		{Method: "DELETE", Host: "service.example", Path: "user"},
		{Method: MethodGet, Host: "service.example", Path: "user"},
		{Method: MethodGet, Host: "", Path: ""},
	}

	err := Validate(reqs)
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "request 0")
	assert.Contains(t, errs[1].Error(), "request 2")
}

func TestHandlerConsumesStream(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(zerolog.New(&buf))

	sub := Source(Mocks(time.Now()), 0).Subscribe(h.Handlers())
	sub.Unsubscribe()

	assert.Equal(t, Stats{Handled: 2, Complete: true}, h.Stats())
	assert.Equal(t, 2, strings.Count(buf.String(), `"message":"handled request"`))
	assert.Contains(t, buf.String(), `"message":"complete"`)
}

func TestSourceInjectedFailure(t *testing.T) {
	h := NewHandler(zerolog.Nop())
	var streamErr error
	handlers := h.Handlers()
	next := handlers.Error
	handlers.Error = func(err error) {
		streamErr = err
		next(err)
	}

	Source(Mocks(time.Now()), 1).Subscribe(handlers)

	assert.Equal(t, Stats{Handled: 1, Failed: 1}, h.Stats())
	require.True(t, errors.Is(streamErr, ErrInjectedFailure))
}

func TestSourceFailAfterBeyondLength(t *testing.T) {
	h := NewHandler(zerolog.Nop())
	Source(Mocks(time.Now()), 5).Subscribe(h.Handlers())

	assert.Equal(t, Stats{Handled: 2, Complete: true}, h.Stats())
}

func TestHandlerStatuses(t *testing.T) {
	h := NewHandler(zerolog.Nop())
	assert.Equal(t, StatusOK, h.Handle(Request{Method: MethodGet}))
	assert.Equal(t, StatusInternalServerError, h.HandleError(errors.New("x")))
}
