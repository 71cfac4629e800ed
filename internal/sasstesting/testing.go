// Package sasstesting carries forward the teacher's IsTest/PanicWhen test
// seam (internal/godartsasstesting), generalized from the Transpiler's two
// injection points to this driver's child-actor and supervisor critical
// sections.
package sasstesting

import (
	"os"
	"strings"
	"sync/atomic"
)

// IsTest reports whether we're running as a test.
var IsTest bool

func init() {
	for _, arg := range os.Args {
		if strings.HasPrefix(arg, "-test.") {
			IsTest = true
			break
		}
	}
}

type PanicWhen uint8

func (p PanicWhen) Has(flag PanicWhen) bool {
	return p&flag != 0
}

const (
	// ShouldPanicInChildSend injects a failure into childProcess.send, the
	// way the teacher's (never-finished) ShouldPanicInSendInbound1/2 meant
	// to exercise sendInbound's failure path.
	ShouldPanicInChildSend PanicWhen = 1 << iota
	// ShouldPanicInFault injects a failure at the top of Host.fault, to
	// exercise what happens when the fault handler itself is entered
	// reentrantly or unexpectedly.
	ShouldPanicInFault
)

var armed atomic.Uint32

// Arm enables the given injection points for the remainder of the process.
// Test-only: every call site guards on IsTest, so this has no effect
// outside `go test`.
func Arm(flags PanicWhen) { armed.Store(uint32(flags)) }

// Disarm clears every injection point.
func Disarm() { armed.Store(0) }

// ShouldFail reports whether flag is currently armed. Despite the
// PanicWhen name kept from the teacher's seam, armed injection points
// return an error into the normal fault path rather than raising a real
// panic: child.go's reader goroutine runs unrecovered, and a bare panic
// there would crash the test binary instead of exercising the supervisor's
// restart path.
func ShouldFail(flag PanicWhen) bool {
	return IsTest && PanicWhen(armed.Load()).Has(flag)
}
