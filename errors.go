package sasshost

import (
	"fmt"
	"path"
	"strings"
)

// ProtocolError reports a transport or protocol contract violation: a
// malformed frame, an unknown compilation or importer id, a missing
// required field, or the compiler's own ProtocolError message. Per §7, a
// ProtocolError always triggers the fault handler and fails every active
// request on the supervisor. A FunctionCallRequest naming an unknown
// function name or id is not a ProtocolError: it is answered with an
// error FunctionCallResponse and the supervisor is not faulted.
type ProtocolError struct {
	// Op names the stage that detected the violation, e.g. "decode frame",
	// "canonicalize", "version handshake".
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("sass embedded protocol error: %s", e.Err)
	}
	return fmt.Sprintf("sass embedded protocol error: %s: %s", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func newProtocolError(op string, format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{Op: op, Err: fmt.Errorf(format, args...)}
}

// LifecycleError reports misuse of the public API: compiling after
// shutdown, reiniting after shutdown, a bad Options value, or a missing
// compiler binary. It never faults the supervisor (§7), except when it is
// the error a user-requested Reinit or Shutdown injects into the fault
// handler.
type LifecycleError struct {
	Op  string
	Err error
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("sasshost: %s: %s", e.Op, e.Err)
}

func (e *LifecycleError) Unwrap() error { return e.Err }

func newLifecycleError(op string, format string, args ...interface{}) *LifecycleError {
	return &LifecycleError{Op: op, Err: fmt.Errorf(format, args...)}
}

// ErrShutdown is returned by Compile*/Reinit when the Host has been, or is
// about to be, shut down.
var ErrShutdown = &LifecycleError{Op: "compile", Err: fmt.Errorf("host is shut down")}

// CompilerError is returned from CompileString/CompileFile when Dart Sass
// itself rejected the input (syntax error, @error). It is local to the
// request: the supervisor stays Running (§7, S2).
type CompilerError struct {
	Message    string `json:"message"`
	StackTrace string `json:"-"`
	Formatted  string `json:"-"`
	Span       struct {
		Text  string `json:"text"`
		Start struct {
			Offset int `json:"offset"`
			Line   int `json:"line"`
			Column int `json:"column"`
		} `json:"start"`
		End struct {
			Offset int `json:"offset"`
			Line   int `json:"line"`
			Column int `json:"column"`
		} `json:"end"`
		Url     string `json:"url"`
		Context string `json:"context"`
	} `json:"span"`
}

func (e CompilerError) Error() string {
	span := e.Span
	file := path.Clean(strings.TrimPrefix(span.Url, "file:"))
	return fmt.Sprintf("file: %q, context: %q: %s", file, span.Context, e.Message)
}

