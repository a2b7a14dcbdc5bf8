package request

import (
	"errors"
	"fmt"

	"github.com/spectonic/urx"
)

var ErrInjectedFailure = errors.New("injected failure")

// Source streams reqs. With failAfter > 0 the stream errors with
// ErrInjectedFailure after that many requests instead of completing.
func Source(reqs []Request, failAfter int, opts ...urx.Option) urx.Observable[Request] {
	if failAfter <= 0 {
		return urx.From(reqs, opts...)
	}
	return urx.Create(func(obs *urx.Observer[Request]) urx.Teardown {
		for i, req := range reqs {
			if i == failAfter {
				obs.Error(fmt.Errorf("after %d requests: %w", failAfter, ErrInjectedFailure))
				return nil
			}
			obs.Next(req)
		}
		obs.Complete()
		return nil
	}, opts...)
}
