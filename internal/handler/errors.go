package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration names no listen address, leaving nothing to serve.
var errNoHandlersAreCreated = errors.New("no handlers are created")
