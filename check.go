package stubkit

import (
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// CheckCalls asserts that the ledger deep-equals expected: same length,
// same order, element-wise equal calls. Fails the bound test on mismatch
// with a go-cmp diff.
func (s *Stub) CheckCalls(expected ...Call) {
	s.t.Helper()
	if diff := cmp.Diff(expected, s.calls, s.cmpOpts...); diff != "" {
		require.Failf(s.t, "recorded calls mismatch", "(-want +got):\n%s", diff)
	}
}

// CheckCall asserts that index is a valid ledger position and that the
// entry there deep-equals a Call built from name and args. The bound
// check fails before any comparison is attempted.
func (s *Stub) CheckCall(index int, name string, args ...any) {
	s.t.Helper()
	require.GreaterOrEqual(s.t, index, 0, "negative call index")
	require.Less(s.t, index, len(s.calls),
		"call index out of range: %d calls recorded", len(s.calls))
	want := Call{Name: name, Args: args}
	if diff := cmp.Diff(want, s.calls[index], s.cmpOpts...); diff != "" {
		require.Failf(s.t, "recorded call mismatch", "index %d (-want +got):\n%s", index, diff)
	}
}

// CheckCallNames asserts that the ordered sequence of recorded operation
// names equals names exactly.
func (s *Stub) CheckCallNames(names ...string) {
	s.t.Helper()
	var got []string
	for _, c := range s.calls {
		got = append(got, c.Name)
	}
	require.Equal(s.t, names, got, "recorded call names")
}

// CheckNoCalls asserts that the ledger is empty.
func (s *Stub) CheckNoCalls() {
	s.t.Helper()
	require.Empty(s.t, s.calls, "expected no recorded calls")
}

// CheckErrors asserts that the error queue has been fully consumed, i.e.
// the scenario exercised every programmed outcome. Catches tests that
// queue more failures than the code under test ever triggers.
func (s *Stub) CheckErrors() {
	s.t.Helper()
	require.Empty(s.t, s.errs, "unconsumed programmed errors")
}
