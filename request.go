package sasshost

import (
	"sync"
	"time"

	"github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

// callbackState tracks whether a user callback (importer or function) is
// currently running for a request, per §4.3's three-state machine.
type callbackState int

const (
	callbackNormal callbackState = iota
	callbackInClient
	callbackInClientWithPendingError
)

// request is the common contract every live request satisfies, §3's
// tagged variant {CompilationRequest, VersionRequest} collapsed to an
// interface per §9's design note.
type request interface {
	// receive handles one OutboundMessage addressed to this request's
	// compilation id (or, for a version query, any OutboundMessage at
	// all — there is exactly one). It returns a non-nil error only for
	// protocol violations; those propagate to the fault handler.
	receive(msg *embeddedsass.OutboundMessage) error

	// cancel completes the request with err, or — if a user callback is
	// currently running — records err to fire once that callback
	// returns (§4.3: InClientWithPendingError).
	cancel(err error)

	// armTimer starts the per-request timeout, if enabled. onFire is
	// called at most once, from a background goroutine, if the timer
	// expires before the request completes.
	armTimer(d time.Duration, onFire func())

	// debugLabel names the request for diagnostics (timeout messages).
	debugLabel() string
}

// baseRequest implements the completion/callback/timer bookkeeping shared
// by every request kind (§4.3's "both kinds" lifecycle), embedded into
// compilationRequest and versionRequest.
type baseRequest struct {
	id    requestID
	label string

	mu       sync.Mutex
	state    callbackState
	pending  error
	done     bool
	timer    *time.Timer
	complete func(error)
}

func newBaseRequest(id requestID, label string, complete func(error)) baseRequest {
	return baseRequest{id: id, label: label, complete: complete}
}

func (b *baseRequest) debugLabel() string { return b.label }

func (b *baseRequest) armTimer(d time.Duration, onFire func()) {
	if d <= 0 {
		return
	}
	b.mu.Lock()
	if b.done {
		b.mu.Unlock()
		return
	}
	b.timer = time.AfterFunc(d, func() {
		b.mu.Lock()
		fired := !b.done
		b.mu.Unlock()
		if fired {
			onFire()
		}
	})
	b.mu.Unlock()
}

func (b *baseRequest) cancelTimer() {
	if b.timer != nil {
		b.timer.Stop()
	}
}

// startCallback brackets a user callback invocation (§4.3
// client_starting).
func (b *baseRequest) startCallback() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == callbackNormal {
		b.state = callbackInClient
	}
}

// endCallback brackets the end of a user callback (§4.3 client_stopped):
// if a cancellation arrived while the callback was running, it fires now.
func (b *baseRequest) endCallback() {
	b.mu.Lock()
	pending := b.pending
	wasPending := b.state == callbackInClientWithPendingError
	b.state = callbackNormal
	b.mu.Unlock()

	if wasPending {
		b.finish(pending)
	}
}

// cancelRequest implements §4.3's cancel(err): complete immediately from
// Normal, or upgrade to InClientWithPendingError from InClient.
func (b *baseRequest) cancelRequest(err error) {
	b.mu.Lock()
	switch b.state {
	case callbackInClient:
		b.state = callbackInClientWithPendingError
		b.pending = err
		b.mu.Unlock()
		return
	default:
		b.mu.Unlock()
		b.finish(err)
	}
}

// finish is the single-shot completion sink (§3: "completion-sink
// (single-shot)"); only the first call has any effect.
func (b *baseRequest) finish(err error) {
	b.mu.Lock()
	if b.done {
		b.mu.Unlock()
		return
	}
	b.done = true
	b.mu.Unlock()

	b.cancelTimer()
	if b.complete != nil {
		b.complete(err)
	}
}

func (b *baseRequest) isDone() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.done
}
