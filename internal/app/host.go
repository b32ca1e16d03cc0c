package app

import (
	"errors"

	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/engine"
	"github.com/dshills/modalcore/internal/logging"
)

// HostActionFunc handles a declared action the document does not implement.
type HostActionFunc func(id string) error

// host is the document as the session sees it. Actions the document does
// not know go to the fallback, standing in for the real host editor.
type host struct {
	*engine.Document
	fallback HostActionFunc
}

// Actions returns the host as its own action dispatcher.
func (h *host) Actions() editor.HostActions {
	return h
}

// Dispatch runs a document action, or the fallback for unknown IDs.
func (h *host) Dispatch(actionID string) error {
	err := h.Document.Dispatch(actionID)
	if !errors.Is(err, editor.ErrUnknownAction) {
		return err
	}
	if h.fallback == nil {
		return err
	}
	return h.fallback(actionID)
}

// logHostAction is the default fallback.
func logHostAction(id string) error {
	logging.Info("host_action", "action", id)
	return nil
}

var _ editor.Adaptor = (*host)(nil)
var _ editor.TextInserter = (*host)(nil)
