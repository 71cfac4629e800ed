package sasshost

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/sass-contrib/embedded-host-go/internal/sasstesting"
)

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

func TestChildSendInjection(t *testing.T) {
	c := qt.New(t)
	buf := &bytes.Buffer{}
	child := &childProcess{in: nopWriteCloser{buf}}

	err := child.send(frame{compilationID: 1, payload: []byte("hello")})
	c.Assert(err, qt.IsNil)
	c.Assert(buf.Len() > 0, qt.Equals, true)

	sasstesting.Arm(sasstesting.ShouldPanicInChildSend)
	defer sasstesting.Disarm()

	err = child.send(frame{compilationID: 1, payload: []byte("world")})
	c.Assert(err, qt.Not(qt.IsNil))
}
