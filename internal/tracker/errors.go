package tracker

import "errors"

// ErrAlreadyTracking is returned when a session is started while another
// one is still open.
var ErrAlreadyTracking = errors.New("a session is already running")

// ErrNotTracking is returned when stop is called with no open session.
var ErrNotTracking = errors.New("no session is running")

// ErrNothingToContinue indicates continue was called on an empty log.
var ErrNothingToContinue = errors.New("no previous session to continue")
