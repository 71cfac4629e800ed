package sasshost

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

type stubRequest struct {
	label      string
	cancelErrs []error
}

func (s *stubRequest) receive(msg *embeddedsass.OutboundMessage) error { return nil }
func (s *stubRequest) cancel(err error)                                { s.cancelErrs = append(s.cancelErrs, err) }
func (s *stubRequest) armTimer(d time.Duration, onFire func())         {}
func (s *stubRequest) debugLabel() string                              { return s.label }

var _ request = (*stubRequest)(nil)

func TestRequestRegistryInsertGetRemove(t *testing.T) {
	c := qt.New(t)

	reg := newRequestRegistry()
	c.Assert(reg.len(), qt.Equals, 0)

	req := &stubRequest{label: "one"}
	reg.insert(1, req)
	c.Assert(reg.len(), qt.Equals, 1)

	got, ok := reg.get(1)
	c.Assert(ok, qt.Equals, true)
	c.Assert(got, qt.Equals, request(req))

	reg.remove(1)
	c.Assert(reg.len(), qt.Equals, 0)

	_, ok = reg.get(1)
	c.Assert(ok, qt.Equals, false)
}

func TestRequestRegistryCancelAll(t *testing.T) {
	c := qt.New(t)

	reg := newRequestRegistry()
	r1 := &stubRequest{label: "one"}
	r2 := &stubRequest{label: "two"}
	reg.insert(1, r1)
	reg.insert(2, r2)

	sentinel := newLifecycleError("test", "boom")
	reg.cancelAll(sentinel)

	c.Assert(reg.len(), qt.Equals, 0)
	c.Assert(r1.cancelErrs, qt.DeepEquals, []error{sentinel})
	c.Assert(r2.cancelErrs, qt.DeepEquals, []error{sentinel})
}

func TestNextIDMonotonicFromBase(t *testing.T) {
	c := qt.New(t)

	a := nextID()
	b := nextID()
	c.Assert(b, qt.Equals, a+1)
	c.Assert(a >= baseImporterID, qt.Equals, true)
}

func TestValidateURL(t *testing.T) {
	c := qt.New(t)

	_, err := validateURL("file:///foo/bar.scss")
	c.Assert(err, qt.IsNil)

	_, err = validateURL("://not a url")
	c.Assert(err, qt.Not(qt.IsNil))
}
