// Package patch provides replace-and-restore helpers for tests that need
// to swap out a function variable or a package-level value, the statically
// typed equivalent of monkey-patching. Callers are expected to route the
// behavior they want to stub through a variable (or injected capability)
// that a test can point somewhere else; patch does the pointing and hands
// back a restore closure for deferred cleanup.
package patch

import (
	"fmt"
	"reflect"

	"stubkit"
)

// Value replaces *target with replacement and returns a function that
// restores the original value.
func Value[T any](target *T, replacement T) (restore func()) {
	orig := *target
	*target = replacement
	return func() { *target = orig }
}

// Func replaces the function variable pointed to by fnptr with one that
// ignores its arguments and returns rets. fnptr must be a non-nil pointer
// to a function variable, rets must match the function's results in count
// and assignability (nil stands in for a zero result); Func panics
// otherwise, since a mismatched patch is a test-authoring bug. The
// returned restore reinstates the original function.
func Func(fnptr any, rets ...any) (restore func()) {
	return replaceFunc(nil, "", fnptr, rets)
}

// FuncCall is Func with ledger recording: every invocation of the
// replacement first records name and the received arguments on s, then
// returns the fixed values. It ties a patched function into the same
// globally ordered call history as the fakes sharing s.
func FuncCall(s *stubkit.Stub, name string, fnptr any, rets ...any) (restore func()) {
	return replaceFunc(s, name, fnptr, rets)
}

func replaceFunc(s *stubkit.Stub, name string, fnptr any, rets []any) func() {
	ptr := reflect.ValueOf(fnptr)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Func {
		panic("patch: fnptr must be a non-nil pointer to a function variable")
	}
	fn := ptr.Elem()
	ft := fn.Type()
	if ft.NumOut() != len(rets) {
		panic(fmt.Sprintf("patch: function returns %d values, %d provided", ft.NumOut(), len(rets)))
	}
	out := make([]reflect.Value, len(rets))
	for i, ret := range rets {
		v := reflect.New(ft.Out(i)).Elem()
		if ret != nil {
			rv := reflect.ValueOf(ret)
			if !rv.Type().AssignableTo(ft.Out(i)) {
				panic(fmt.Sprintf("patch: result %d: %s is not assignable to %s", i, rv.Type(), ft.Out(i)))
			}
			v.Set(rv)
		}
		out[i] = v
	}

	orig := reflect.New(ft).Elem()
	orig.Set(fn)
	fn.Set(reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		if s != nil {
			rec := make([]any, len(args))
			for i, a := range args {
				rec[i] = a.Interface()
			}
			s.AddCall(name, rec...)
		}
		return out
	}))
	return func() { fn.Set(orig) }
}
