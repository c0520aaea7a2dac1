package stubkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSender and fakeReceiver stand in for two collaborators of the code
// under test. They share one Stub so the test sees a single globally
// ordered ledger across both.
type fakeSender struct {
	s *Stub
}

func (f *fakeSender) Send(msg string) error {
	f.s.AddCall("send", msg)
	return f.s.MaybeErr()
}

type fakeReceiver struct {
	s *Stub
}

func (f *fakeReceiver) Recv() string {
	f.s.AddCall("recv")
	f.s.PopNoErr()
	return "ok"
}

func TestSharedLedgerOrdering(t *testing.T) {
	t.Run("interleaved calls land in one ordered ledger", func(t *testing.T) {
		s := New(t)
		sender := &fakeSender{s: s}
		receiver := &fakeReceiver{s: s}

		require.NoError(t, sender.Send("x"))
		require.Equal(t, "ok", receiver.Recv())

		s.CheckCallNames("send", "recv")
		s.CheckCalls(C("send", "x"), C("recv"))
	})

	t.Run("wrong expected order fails", func(t *testing.T) {
		rt := expectFailure(t, func(tt *recordingT) {
			s := New(tt)
			sender := &fakeSender{s: s}
			receiver := &fakeReceiver{s: s}

			_ = sender.Send("x")
			receiver.Recv()

			s.CheckCallNames("recv", "send")
		})
		require.True(t, rt.failed)
	})
}

func TestErrorInjectionEndToEnd(t *testing.T) {
	boom := errors.New("boom")

	s := New(t)
	sender := &fakeSender{s: s}
	s.SetErrors(nil, boom)

	require.NoError(t, sender.Send("first"))
	require.ErrorIs(t, sender.Send("second"), boom)

	// the failing call was recorded too
	s.CheckCallNames("send", "send")
	s.CheckErrors()
}

func TestResetBetweenPhases(t *testing.T) {
	s := New(t)
	sender := &fakeSender{s: s}

	// phase 1: happy path
	require.NoError(t, sender.Send("warmup"))
	s.CheckCalls(C("send", "warmup"))

	// phase 2: fresh ledger, newly programmed outcomes
	s.ResetCalls()
	s.SetErrors(errors.New("phase2"))
	require.Error(t, sender.Send("real"))
	s.CheckCalls(C("send", "real"))
	s.CheckErrors()
}
