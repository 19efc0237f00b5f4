package sim

import "errors"

// ErrInvalidInput flags process sets or parameters rejected before a
// simulation starts: duplicate or negative pids, non-positive burst times,
// negative arrival times, non-positive round-robin quantum.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvariantViolation flags a selection loop that found no runnable
// process while unfinished work remains past every arrival. This is
// unreachable unless the engine itself is defective; the run aborts rather
// than work around it.
var ErrInvariantViolation = errors.New("scheduling invariant violation")
