// Package stubkit implements a call-recording test double for verifying
// interactions with collaborators in unit tests. A Stub keeps an ordered
// ledger of every invocation made against it and replays a pre-programmed
// FIFO queue of simulated failures, so a test can drive the error paths of
// the code under test and verify the exact call history afterward.
//
// A Stub is typically embedded in one or more fakes implementing a real
// collaborator's interface. Sharing a single Stub across several fakes is
// the intended way to obtain one globally ordered ledger spanning all of
// them. The Stub is strictly single-threaded: it must be driven by one
// test goroutine at a time and provides no locking.
//
// Deep argument comparison uses github.com/google/go-cmp and is defined
// for plain data only (primitives, slices, maps, exported struct fields).
// Functions, channels, and cyclic values as recorded arguments are
// unsupported.
package stubkit

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestingT is the subset of testing.TB the stub needs from the test it is
// bound to. *testing.T and *testing.B satisfy it.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// Stub records invocations made against it and injects simulated failures
// queued by the test. The zero value is not usable; construct with New.
type Stub struct {
	t       TestingT
	log     *zap.Logger
	cmpOpts []cmp.Option
	calls   []Call
	errs    []error
}

// Option configures a Stub at construction.
type Option func(*Stub)

// WithLogger attaches a logger that traces ledger and queue activity at
// debug level. Useful when a failing interaction test needs a blow-by-blow
// account of what the code under test actually did.
func WithLogger(log *zap.Logger) Option {
	return func(s *Stub) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCmpOptions appends go-cmp options applied by CheckCalls and
// CheckCall, e.g. cmpopts.EquateApprox for float arguments or a custom
// comparer for types with unexported fields.
func WithCmpOptions(opts ...cmp.Option) Option {
	return func(s *Stub) {
		s.cmpOpts = append(s.cmpOpts, opts...)
	}
}

// New returns an empty Stub bound to t. All Check helpers and PopNoErr
// report failures against the bound t.
func New(t TestingT, opts ...Option) *Stub {
	s := &Stub{
		t:   t,
		log: zap.NewNop(),
		// nil and empty argument lists mean the same thing in a ledger
		cmpOpts: []cmp.Option{cmpopts.EquateEmpty()},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetErrors replaces the entire error queue, discarding any previously
// queued, unconsumed entries. A nil entry means "this call succeeds".
// The stub takes ownership of the provided sequence.
func (s *Stub) SetErrors(errs ...error) {
	s.errs = errs
	s.log.Debug("stub errors programmed", zap.Int("queued", len(errs)))
}

// AddCall appends an invocation record to the ledger. Every stubbed
// operation must call it, before and independent of any error simulation,
// so that failing calls are recorded too. AddCall cannot fail.
func (s *Stub) AddCall(name string, args ...any) {
	s.calls = append(s.calls, Call{Name: name, Args: args})
	s.log.Debug("stub call recorded",
		zap.String("func", name),
		zap.Int("args", len(args)))
}

// ResetCalls clears the ledger. The error queue is untouched, so a test
// can reset between phases without reprogramming its outcomes.
func (s *Stub) ResetCalls() {
	s.calls = nil
	s.log.Debug("stub calls reset")
}

// MaybeErr pops the front slot of the error queue and returns it as the
// stubbed operation's outcome. An empty queue, or a nil slot, yields nil.
// Stubbed operations that can fail must call it exactly once per call,
// after AddCall.
func (s *Stub) MaybeErr() error {
	if len(s.errs) == 0 {
		return nil
	}
	err := s.errs[0]
	s.errs = s.errs[1:]
	if err != nil {
		s.log.Debug("stub error injected", zap.Error(err))
	}
	return err
}

// PopNoErr pops the front slot of the error queue exactly like MaybeErr,
// but a non-nil slot is a test-authoring bug: the test queued a failure
// against an operation whose signature cannot fail. That fails the bound
// test rather than propagating the queued error.
func (s *Stub) PopNoErr() {
	s.t.Helper()
	require.NoError(s.t, s.MaybeErr(),
		"error queued against an operation that cannot fail")
}

// Calls returns a copy of the ledger in call order. Mutating the returned
// slice does not affect the stub; the Args slice inside each Call is
// shared with the internal record.
func (s *Stub) Calls() []Call {
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// Errors returns a copy of the pending, not yet consumed error queue.
func (s *Stub) Errors() []error {
	out := make([]error, len(s.errs))
	copy(out, s.errs)
	return out
}
