package request

import (
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/spectonic/urx"
)

// Stats counts what a Handler has seen.
type Stats struct {
	Handled  uint64
	Failed   uint64
	Complete bool
}

// Handler consumes a request stream. Each request is answered with
// StatusOK; a stream error is answered with StatusInternalServerError.
type Handler struct {
	log      zerolog.Logger
	handled  *atomic.Uint64
	failed   *atomic.Uint64
	complete *atomic.Bool
}

func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log:      log.With().Str("component", "request_handler").Logger(),
		handled:  atomic.NewUint64(0),
		failed:   atomic.NewUint64(0),
		complete: atomic.NewBool(false),
	}
}

func (h *Handler) Handle(req Request) Status {
	h.handled.Inc()
	h.log.Info().
		Str("method", string(req.Method)).
		Str("host", req.Host).
		Str("path", req.Path).
		Int("status", int(StatusOK)).
		Msg("handled request")
	return StatusOK
}

func (h *Handler) HandleError(err error) Status {
	h.failed.Inc()
	h.log.Error().Err(err).Int("status", int(StatusInternalServerError)).Msg("request stream failed")
	return StatusInternalServerError
}

func (h *Handler) HandleComplete() {
	h.complete.Store(true)
	h.log.Info().Msg("complete")
}

func (h *Handler) Stats() Stats {
	return Stats{
		Handled:  h.handled.Load(),
		Failed:   h.failed.Load(),
		Complete: h.complete.Load(),
	}
}

// Handlers adapts h to a urx handler set.
func (h *Handler) Handlers() urx.Handlers[Request] {
	return urx.Handlers[Request]{
		Next:     func(req Request) { h.Handle(req) },
		Error:    func(err error) { h.HandleError(err) },
		Complete: h.HandleComplete,
	}
}
