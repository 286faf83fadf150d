package assert

import "fmt"

// That panics with the formatted message when Enabled and cond is false.
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
