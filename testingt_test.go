package stubkit

import (
	"errors"
	"fmt"
	"testing"
)

// errFailNow is the sentinel recovered by expectFailure when the fake
// TestingT aborts the check under test, mirroring testing.T's Goexit.
var errFailNow = errors.New("fail now")

// recordingT captures assertion failures so the failure paths of the
// Check helpers can be tested without failing the real test.
type recordingT struct {
	failed   bool
	messages []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Errorf(format string, args ...any) {
	r.failed = true
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failed = true
	panic(errFailNow)
}

// expectFailure runs fn against a fresh recordingT and returns it for
// inspection. A FailNow abort is swallowed; any other panic is real.
func expectFailure(t *testing.T, fn func(tt *recordingT)) *recordingT {
	t.Helper()
	rt := &recordingT{}
	func() {
		defer func() {
			if r := recover(); r != nil && r != errFailNow {
				panic(r)
			}
		}()
		fn(rt)
	}()
	return rt
}
