package sasshost

import (
	"bufio"
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEncodeDecodeFrameRoundTrip(t *testing.T) {
	c := qt.New(t)

	for _, id := range []uint32{0, 1, 4000, 4000000, 0xFFFFFFFF} {
		payload := []byte("a compiled payload")
		encoded := encodeFrame(id, payload)

		fr := newFrameReader(bufio.NewReader(bytes.NewReader(encoded)))
		fm, err := fr.readFrame()
		c.Assert(err, qt.IsNil)
		c.Assert(fm.compilationID, qt.Equals, id)
		c.Assert(fm.payload, qt.DeepEquals, payload)
	}
}

func TestEncodeDecodeMultipleFrames(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	buf.Write(encodeFrame(1, []byte("first")))
	buf.Write(encodeFrame(2, []byte("second")))

	fr := newFrameReader(bufio.NewReader(&buf))

	fm1, err := fr.readFrame()
	c.Assert(err, qt.IsNil)
	c.Assert(fm1.compilationID, qt.Equals, uint32(1))
	c.Assert(string(fm1.payload), qt.Equals, "first")

	fm2, err := fr.readFrame()
	c.Assert(err, qt.IsNil)
	c.Assert(fm2.compilationID, qt.Equals, uint32(2))
	c.Assert(string(fm2.payload), qt.Equals, "second")
}

func TestReadFrameEOF(t *testing.T) {
	c := qt.New(t)

	fr := newFrameReader(bufio.NewReader(bytes.NewReader(nil)))
	_, err := fr.readFrame()
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestReadUvarintOverflow(t *testing.T) {
	c := qt.New(t)

	// 9 continuation bytes followed by a tenth byte > 1 overflows 64 bits.
	overflow := bytes.Repeat([]byte{0xFF}, 9)
	overflow = append(overflow, 0x02)
	_, err := readUvarint(bufio.NewReader(bytes.NewReader(overflow)))
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestEncodedLengthOfID(t *testing.T) {
	c := qt.New(t)

	c.Assert(encodedLengthOfID(0), qt.Equals, 1)
	c.Assert(encodedLengthOfID(127), qt.Equals, 1)
	c.Assert(encodedLengthOfID(128), qt.Equals, 2)
	c.Assert(encodedLengthOfID(baseImporterID), qt.Equals, 2)
}
