package sasshost

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"regexp"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sass-contrib/embedded-host-go/internal/sasstesting"
)

// childProcess owns the compiler process's stdin/stdout and exposes a
// reliable send and an inbound frame stream, per §4.2. It is the "child
// actor" of §5: its own mutex guards exactly the stopping flag and the
// termination hook, nothing else.
//
// Adapted from the teacher's conn.go: StdinPipe/StdoutPipe stand in for
// the source's socketpair (a real AF_UNIX socketpair needs per-OS syscalls
// Go's os/exec does not expose portably; see DESIGN.md).
type childProcess struct {
	cmd *exec.Cmd
	in  io.WriteCloser
	out io.ReadCloser

	stdErr *tailBuffer

	inbound chan frame

	mu          sync.Mutex
	stopping    bool
	onTerminate func(error)

	eg     *errgroup.Group
	egStop context.CancelFunc
}

// tailBuffer discards everything it holds whenever a write would take it
// past `limit` bytes, then keeps that write, used to capture the tail of
// the child's stderr for restart diagnostics without an unbounded buffer
// (kept from the teacher's conn.go).
type tailBuffer struct {
	limit int
	bytes.Buffer
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	if len(p)+b.Buffer.Len() > b.limit {
		b.Reset()
	}
	return b.Buffer.Write(p)
}

var brokenPipeRe = regexp.MustCompile("Broken pipe|pipe is being closed")

// startChild spawns bin with args, wiring its stdio per §4.2. The process's
// current directory defaults to the host's, matching the spec.
func startChild(bin string, args []string) (*childProcess, error) {
	cmd := exec.Command(bin, args...)

	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		in.Close()
		return nil, err
	}

	stdErr := &tailBuffer{limit: 4096}
	cmd.Stderr = stdErr

	c := &childProcess{
		cmd:     cmd,
		in:      in,
		out:     out,
		stdErr:  stdErr,
		inbound: make(chan frame, 16),
	}

	if err := cmd.Start(); err != nil {
		in.Close()
		out.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.egStop = cancel
	eg, ctx := errgroup.WithContext(ctx)
	c.eg = eg
	eg.Go(func() error {
		return c.readLoop(ctx)
	})

	return c, nil
}

// readLoop is the dedicated reader goroutine §4.2/§9 requires; it feeds
// decoded frames to c.inbound until the process exits or stop() cancels
// it. On cancellation it returns nil (no error surfaced), matching §4.2's
// "codec task returns normally on cancellation".
func (c *childProcess) readLoop(ctx context.Context) error {
	defer close(c.inbound)

	fr := newFrameReader(bufio.NewReader(c.out))
	for {
		fm, err := fr.readFrame()
		if err != nil {
			c.mu.Lock()
			stopping := c.stopping
			hook := c.onTerminate
			c.mu.Unlock()

			if stopping {
				return nil
			}
			if hook != nil {
				if err == io.EOF {
					hook(io.ErrUnexpectedEOF)
				} else {
					hook(err)
				}
			}
			return err
		}

		select {
		case c.inbound <- fm:
		case <-ctx.Done():
			return nil
		}
	}
}

// setTerminationHook installs hook, invoked at most once, the first time
// the read loop observes the child exit unexpectedly (§4.2: "only
// meaningful if stopping == false").
func (c *childProcess) setTerminationHook(hook func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTerminate = hook
}

// send writes a single frame to the child's stdin. Callers are
// responsible for serializing concurrent sends (§5: "frames written to
// the child are serialized per the child handle").
func (c *childProcess) send(fm frame) error {
	if sasstesting.ShouldFail(sasstesting.ShouldPanicInChildSend) {
		return errors.New("sasstesting: injected child send failure")
	}
	out := encodeFrame(fm.compilationID, fm.payload)
	n, err := c.in.Write(out)
	if err != nil {
		return err
	}
	if n != len(out) {
		return errEmptyWrite
	}
	return nil
}

// stop implements §4.2's shutdown contract: suppress the termination
// hook, kill the process, and cancel the read loop without surfacing an
// error for the resulting EOF.
func (c *childProcess) stop() error {
	c.mu.Lock()
	if c.stopping {
		c.mu.Unlock()
		return nil
	}
	c.stopping = true
	c.onTerminate = nil
	c.mu.Unlock()

	c.egStop()

	writeErr := c.in.Close()
	readErr := c.out.Close()
	// Process may already have exited on its own (stdin EOF); the kill is
	// advisory, waitWithTimeout below carries the authoritative result.
	_ = c.cmd.Process.Kill()

	waitErr := c.waitWithTimeout()
	_ = c.eg.Wait()

	if writeErr != nil {
		return writeErr
	}
	if readErr != nil {
		return readErr
	}
	return waitErr
}

// waitWithTimeout mirrors the teacher's conn.go: dart-sass-embedded exits
// on its own on stdin EOF, this just bounds how long we wait for that.
func (c *childProcess) waitWithTimeout() error {
	result := make(chan error, 1)
	go func() { result <- c.cmd.Wait() }()
	select {
	case err := <-result:
		if _, ok := err.(*exec.ExitError); ok {
			if brokenPipeRe.MatchString(c.stdErr.String()) {
				return nil
			}
		}
		return err
	case <-time.After(2 * time.Second):
		return errors.New("timed out waiting for compiler process to exit")
	}
}

func (c *childProcess) pid() int {
	if c.cmd.Process == nil {
		return -1
	}
	return c.cmd.Process.Pid
}
