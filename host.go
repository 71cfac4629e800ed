package sasshost

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/sass-contrib/embedded-host-go/functions"
	"github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
	"github.com/sass-contrib/embedded-host-go/internal/sasstesting"
)

// moduleVersion identifies this driver in Versions.PackageVersion, the way
// the teacher's Version const identifies godartsass builds.
const moduleVersion = "0.1.0"

// defaultHandshakeTimeout bounds the version handshake when Options.Timeout
// is unset, per §4.5's health check.
const defaultHandshakeTimeout = 60 * time.Second

// supervisorState is §4.5's state table, collapsed from its tagged-union
// form (Checking(child), Running(child), Quiescing(child)) to an enum plus
// the Host.child field, since in Go the child handle is just a pointer that
// is non-nil iff state ∈ {Checking, Running, Quiescing}.
type supervisorState int

const (
	stateInitializing supervisorState = iota
	stateChecking
	stateRunning
	stateBroken
	stateQuiescing
	stateShutdown
)

func (s supervisorState) String() string {
	switch s {
	case stateInitializing:
		return "initializing"
	case stateChecking:
		return "checking"
	case stateRunning:
		return "running"
	case stateBroken:
		return "broken"
	case stateQuiescing:
		return "quiescing"
	case stateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Host is the supervisor actor of §4.5/§5: one compiler child process,
// restarted on fault, multiplexing compilations over its single pipe. All
// exported methods are safe for concurrent use.
//
// Adapted from the teacher's Transpiler: the teacher has one child for its
// whole lifetime and a terminal Close; Host generalizes that into the full
// state machine, restarting the child instead of just tearing it down.
type Host struct {
	mu        sync.Mutex
	stateCond *sync.Cond
	state     supervisorState
	stateErr  error

	shutdownRequested bool

	bin  string
	args []string

	settings Settings

	sendMu         sync.Mutex
	child          *childProcess
	pendingVersion *versionRequest
	registry       *requestRegistry

	globalFunctions *functions.FunctionRegistry

	// quiesceSem enforces §5's single-quiesce-waiter invariant: only one
	// fault may be tearing the child down and cancelling live requests at
	// a time. In practice h.mu already serializes entry into the quiescing
	// branch of fault, so this never blocks; it exists to make the
	// invariant explicit and machine-checked rather than implicit in the
	// state machine, grounded on the same acquire/release-around-a-
	// critical-section pattern a process supervisor in the example pack
	// uses around its own recovery path.
	quiesceSem *semaphore.Weighted

	versions   Versions
	startCount int
}

// Start resolves opts, spawns the compiler process, and blocks until the
// version handshake completes (or ctx is done, or the spawn/handshake
// fails), mirroring the teacher's Start but against the fuller state
// machine of §4.5.
func Start(ctx context.Context, opts Options) (*Host, error) {
	settings, err := opts.settings()
	if err != nil {
		return nil, newLifecycleError("start", "%s", err)
	}
	bin, err := settings.resolveBinary()
	if err != nil {
		return nil, newLifecycleError("start", "%s", err)
	}
	globalFuncs, err := functions.NewFunctionRegistry(settings.globalFunctions)
	if err != nil {
		return nil, newLifecycleError("start", "invalid GlobalFunctions: %s", err)
	}

	h := &Host{
		settings:        settings,
		bin:             bin,
		registry:        newRequestRegistry(),
		globalFunctions: globalFuncs,
		quiesceSem:      semaphore.NewWeighted(1),
		state:           stateInitializing,
	}
	h.stateCond = sync.NewCond(&h.mu)

	go h.spawnAndHandshake()

	if err := h.awaitState(ctx, stateRunning); err != nil {
		return nil, err
	}
	return h, nil
}

// spawnAndHandshake is the body of §4.5's "run() loop iteration": spawn a
// child, run the version handshake, land in Running or Broken. It is
// (re)launched by Start and by the fault handler every time the state
// machine returns to Initializing, which is what gives the Host its
// restart-on-fault behavior.
func (h *Host) spawnAndHandshake() {
	h.mu.Lock()
	if h.shutdownRequested {
		h.state = stateShutdown
		h.stateCond.Broadcast()
		h.mu.Unlock()
		return
	}
	if h.state != stateInitializing {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	child, err := startChild(h.bin, h.args)
	if err != nil {
		h.mu.Lock()
		if h.shutdownRequested {
			h.state = stateShutdown
		} else {
			h.state = stateBroken
			h.stateErr = fmt.Errorf("spawn compiler process: %w", err)
		}
		h.stateCond.Broadcast()
		h.mu.Unlock()
		return
	}
	child.setTerminationHook(func(err error) { h.fault(err) })
	go h.readLoop(child)

	h.mu.Lock()
	h.child = child
	h.startCount++
	if h.shutdownRequested {
		h.state = stateShutdown
		h.stateCond.Broadcast()
		h.mu.Unlock()
		child.stop()
		return
	}
	h.state = stateChecking
	h.mu.Unlock()

	h.runVersionHandshake()
}

// runVersionHandshake implements §4.5's health check: send a VersionRequest
// on the compilation-id-0 channel, wait for exactly one VersionResponse
// within the timeout, and validate its protocol_version range.
func (h *Host) runVersionHandshake() {
	versionID := nextID()
	done := make(chan struct{})
	var versions Versions
	var verr error
	pv := newVersionRequest(versionID, func(v Versions, err error) {
		versions, verr = v, err
		close(done)
	})

	h.mu.Lock()
	h.pendingVersion = pv
	h.mu.Unlock()

	timeout := h.settings.timeout
	if timeout <= 0 {
		timeout = defaultHandshakeTimeout
	}
	pv.armTimer(timeout, func() {
		pv.cancel(newProtocolError("version handshake", "timed out waiting for VersionResponse"))
	})

	reqMsg := &embeddedsass.InboundMessage{
		Message: &embeddedsass.InboundMessage_VersionRequest_{
			VersionRequest: &embeddedsass.InboundMessage_VersionRequest{Id: versionID},
		},
	}
	if err := h.sendInbound(0, reqMsg); err != nil {
		return
	}

	<-done

	h.mu.Lock()
	if h.pendingVersion == pv {
		h.pendingVersion = nil
	}
	h.mu.Unlock()

	if verr != nil {
		h.fault(verr)
		return
	}
	if err := checkProtocolVersion(versions.ProtocolVersion); err != nil {
		h.fault(newProtocolError("version handshake", "%s", err))
		return
	}

	h.mu.Lock()
	if h.state != stateChecking {
		h.mu.Unlock()
		return
	}
	versions.PackageVersion = moduleVersion
	h.versions = versions
	h.state = stateRunning
	h.stateCond.Broadcast()
	h.mu.Unlock()
}

// readLoop drains one child's decoded frames until it exits (stopped, or
// crashed — the latter surfaces separately via the termination hook).
func (h *Host) readLoop(child *childProcess) {
	for fr := range child.inbound {
		msg, err := embeddedsass.UnmarshalOutboundMessage(fr.payload)
		if err != nil {
			h.fault(newProtocolError("decode", "malformed OutboundMessage: %s", err))
			continue
		}
		h.dispatch(fr.compilationID, msg)
	}
}

// dispatch routes one OutboundMessage by its frame's compilation id, per
// §4.1/§4.3: id 0 addresses the pending version query (or a top-level
// ProtocolError), anything else addresses a live compilation.
func (h *Host) dispatch(compID compilationID, msg *embeddedsass.OutboundMessage) {
	if e, ok := msg.Message.(*embeddedsass.OutboundMessage_Error); ok {
		h.fault(newProtocolError("compiler", "%s", e.Error.Message))
		return
	}

	if compID == 0 {
		h.mu.Lock()
		pv := h.pendingVersion
		h.mu.Unlock()
		if pv == nil {
			h.fault(newProtocolError("dispatch", "unexpected message with no compilation id: %T", msg.Message))
			return
		}
		if err := pv.receive(msg); err != nil {
			h.fault(err)
		}
		return
	}

	req, ok := h.registry.get(compID)
	if !ok {
		h.fault(newProtocolError("dispatch", "unknown compilation id %d", compID))
		return
	}
	if err := req.receive(msg); err != nil {
		h.fault(err)
	}
}

// sendInbound marshals and writes one InboundMessage addressed to compID,
// serialized through sendMu — §5's "frames written to the child are
// serialized per the child handle" — and routes write failures to the
// fault handler.
func (h *Host) sendInbound(compID compilationID, msg *embeddedsass.InboundMessage) error {
	payload, err := msg.Marshal()
	if err != nil {
		return newProtocolError("send", "marshal %T: %s", msg.Message, err)
	}

	h.mu.Lock()
	child := h.child
	h.mu.Unlock()
	if child == nil {
		return newLifecycleError("send", "no active compiler process")
	}

	h.sendMu.Lock()
	err = child.send(frame{compilationID: compID, payload: payload})
	h.sendMu.Unlock()

	if err != nil {
		h.fault(err)
		return err
	}
	return nil
}

// fault is §4.5's single fault-handler entry point: from Running/Checking
// it quiesces (stop the child, cancel every active request), then — unless
// a shutdown is pending — loops back to Initializing and relaunches.
func (h *Host) fault(err error) {
	if sasstesting.ShouldFail(sasstesting.ShouldPanicInFault) {
		err = fmt.Errorf("sasstesting: injected fault: %w", err)
	}

	h.mu.Lock()
	switch h.state {
	case stateRunning, stateChecking:
		h.state = stateQuiescing
		h.stateErr = err
	case stateQuiescing:
		// The quiesce already in flight owns request cancellation and the
		// next state transition; only hurry its child along.
		h.stateErr = err
		child := h.child
		h.mu.Unlock()
		if child != nil {
			child.stop()
		}
		return
	default:
		h.mu.Unlock()
		return
	}
	child := h.child
	pv := h.pendingVersion
	h.pendingVersion = nil
	h.mu.Unlock()

	// Only one quiesce (child teardown + request cancellation) runs at a
	// time; h.mu already makes re-entering this branch impossible while one
	// is in flight, so Acquire never actually blocks in practice.
	if err := h.quiesceSem.Acquire(context.Background(), 1); err != nil {
		return
	}
	if pv != nil {
		pv.cancel(err)
	}
	h.registry.cancelAll(err)
	if child != nil {
		child.stop()
	}
	h.quiesceSem.Release(1)

	h.mu.Lock()
	h.child = nil
	if h.shutdownRequested {
		h.state = stateShutdown
		h.stateCond.Broadcast()
		h.mu.Unlock()
		return
	}
	h.state = stateInitializing
	h.stateCond.Broadcast()
	h.mu.Unlock()

	go h.spawnAndHandshake()
}

// awaitState blocks until the Host reaches want, a terminal state, or ctx
// is done. Compile calls and Reinit/Start all wait this way, per §5's
// "new compile calls ... suspend on a state-change condition".
func (h *Host) awaitState(ctx context.Context, want supervisorState) error {
	wake := make(chan struct{})
	defer close(wake)
	go func() {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			h.stateCond.Broadcast()
			h.mu.Unlock()
		case <-wake:
		}
	}()

	h.mu.Lock()
	defer h.mu.Unlock()
	for {
		switch h.state {
		case want:
			return nil
		case stateBroken:
			return newLifecycleError("start", "compiler process is broken: %s", h.stateErr)
		case stateShutdown:
			return ErrShutdown
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		h.stateCond.Wait()
	}
}

// Reinit implements §4.5's Reinit: injects a synthetic fault (or, from
// Broken, re-enters Initializing directly) and waits for the state machine
// to settle back into Running.
func (h *Host) Reinit(ctx context.Context) error {
	h.mu.Lock()
	switch h.state {
	case stateShutdown:
		h.mu.Unlock()
		return ErrShutdown
	case stateBroken:
		h.state = stateInitializing
		h.stateErr = nil
		h.stateCond.Broadcast()
		h.mu.Unlock()
		go h.spawnAndHandshake()
	default:
		h.mu.Unlock()
		h.fault(newLifecycleError("reinit", "user-requested reinit"))
	}
	return h.awaitState(ctx, stateRunning)
}

// Shutdown implements §4.5's Shutdown: marks the Host terminal, drives
// whatever state it is currently in to Shutdown, and waits for that to
// land.
func (h *Host) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	if h.shutdownRequested {
		h.mu.Unlock()
		return h.awaitState(ctx, stateShutdown)
	}
	h.shutdownRequested = true
	state := h.state
	h.mu.Unlock()

	switch state {
	case stateShutdown:
		return nil
	case stateBroken:
		h.mu.Lock()
		h.state = stateShutdown
		h.stateCond.Broadcast()
		h.mu.Unlock()
	case stateInitializing:
		// spawnAndHandshake (already in flight, or about to run) observes
		// shutdownRequested at its next synchronization point and lands in
		// Shutdown itself.
	default:
		h.fault(newLifecycleError("shutdown", "host is shutting down"))
	}
	return h.awaitState(ctx, stateShutdown)
}

// CompilerProcessID reports the running child's pid, or -1 if none is
// currently alive.
func (h *Host) CompilerProcessID() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.child == nil {
		return -1
	}
	return h.child.pid()
}

// Versions reports the identity of the currently running compiler, as
// captured by the last successful version handshake.
func (h *Host) Versions() (Versions, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != stateRunning {
		return Versions{}, newLifecycleError("versions", "host is not running")
	}
	return h.versions, nil
}

// CompileString compiles args.Source per §6's public API. args.Importer,
// if set, is consulted first, then this Host's GlobalImporters, then
// args.Importers and args.IncludePaths; functions come from the Host's
// GlobalFunctions.
func (h *Host) CompileString(ctx context.Context, args CompileStringArgs) (CompilerResult, error) {
	syntax := args.SourceSyntax
	if syntax == "" {
		syntax = SourceSyntaxSCSS
	}
	style := args.OutputStyle
	if style == "" {
		style = h.settings.outputStyle
	}

	var strImporter *ImporterEntry
	if args.Importer.Importer != nil || args.Importer.FilesystemImporter != nil ||
		args.Importer.NodePackageImporter != "" || args.Importer.LoadPath != "" {
		e := args.Importer
		strImporter = &e
	}

	perCompile := append(append([]ImporterEntry{}, args.Importers...), importersFromIncludePaths(args.IncludePaths)...)
	importers := newEffectiveImporters(strImporter, h.settings.globalImporters, perCompile)

	input := &embeddedsass.InboundMessage_CompileRequest_String_{
		String_: &embeddedsass.InboundMessage_CompileRequest_StringInput{
			Source: args.Source,
			Url:    args.URL,
			Syntax: wireSyntax(syntax),
		},
	}

	return h.compile(ctx, input, importers, style, args.EnableSourceMap)
}

// CompileFile compiles the stylesheet at path per §6's public API.
func (h *Host) CompileFile(ctx context.Context, path string, args CompileFileArgs) (CompilerResult, error) {
	style := args.OutputStyle
	if style == "" {
		style = h.settings.outputStyle
	}

	perCompile := append(append([]ImporterEntry{}, args.Importers...), importersFromIncludePaths(args.IncludePaths)...)
	importers := newEffectiveImporters(nil, h.settings.globalImporters, perCompile)

	input := &embeddedsass.InboundMessage_CompileRequest_Path{Path: path}

	return h.compile(ctx, input, importers, style, args.EnableSourceMap)
}

// compile is §4.5's "send path for compilation": wait for Running, register
// a compilationRequest, write the framed CompileRequest, and block for its
// completion or ctx cancellation.
func (h *Host) compile(ctx context.Context, input embeddedsass.isInboundMessage_CompileRequest_Input, importers *effectiveImporters, style OutputStyle, sourceMap bool) (CompilerResult, error) {
	if err := h.awaitState(ctx, stateRunning); err != nil {
		return CompilerResult{}, err
	}

	id := nextID()
	done := make(chan struct{})
	var result CompilerResult
	var resultErr error
	req := newCompilationRequest(id, fmt.Sprintf("compile#%d", id), h, importers, h.globalFunctions, func(r CompilerResult, err error) {
		h.registry.remove(id)
		result, resultErr = r, err
		close(done)
	})

	h.mu.Lock()
	if h.state != stateRunning {
		h.mu.Unlock()
		return CompilerResult{}, newLifecycleError("compile", "host is not running")
	}
	h.registry.insert(id, req)
	h.mu.Unlock()

	req.armTimer(h.settings.timeout, func() {
		// §4.3/§4.5/§7: a compile timeout is a ProtocolError that must reach
		// the supervisor's fault handler, not just complete this one
		// request. The child is presumed wedged, so every sibling
		// compilation needs cancelling and the process needs restarting,
		// the same as any other protocol fault.
		h.fault(newProtocolError("compile", "Timeout: %s did not complete within %.3gs", req.debugLabel(), h.settings.timeout.Seconds()))
	})

	msg := &embeddedsass.InboundMessage{
		Message: &embeddedsass.InboundMessage_CompileRequest_{
			CompileRequest: &embeddedsass.InboundMessage_CompileRequest{
				Id:                      id,
				Input:                   input,
				Importers:               importers.wireImporters(),
				Style:                   wireOutputStyle(style),
				SourceMap:               sourceMap,
				SourceMapIncludeSources: sourceMap,
				QuietDeps:               h.settings.warningLevel == WarningLevelQuietDeps,
				Verbose:                 h.settings.warningLevel == WarningLevelVerbose,
				Alert:                   h.settings.alert,
				FatalDeprecations:       h.settings.deprecations.Fatal,
				SilenceDeprecations:     h.settings.deprecations.Silence,
				FutureDeprecations:      h.settings.deprecations.Future,
			},
		},
	}

	if err := h.sendInbound(id, msg); err != nil {
		req.cancel(err)
	}

	select {
	case <-done:
		return result, resultErr
	case <-ctx.Done():
		req.cancel(ctx.Err())
		<-done
		return result, resultErr
	}
}
