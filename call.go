package stubkit

import (
	"fmt"
	"strings"
)

// Call is one recorded invocation: the stubbed operation's name and the
// positional arguments it received. Two Calls are equal iff their names
// match and their argument lists are deep-equal element-wise.
type Call struct {
	Name string
	Args []any
}

// C builds a Call literal. It keeps expectation lists terse:
//
//	s.CheckCalls(stubkit.C("send", "x"), stubkit.C("recv"))
func C(name string, args ...any) Call {
	return Call{Name: name, Args: args}
}

// String renders the call as name(arg1, arg2, ...) for diagnostics.
func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprintf("%v", a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}
