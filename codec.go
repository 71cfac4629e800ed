package sasshost

import (
	"bufio"
	"errors"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// frame is a decoded wire frame: the compilation id it belongs to (0 for
// non-compilation messages: version queries, top-level protocol errors)
// and the protobuf-serialized OutboundMessage body.
type frame struct {
	compilationID uint32
	payload       []byte
}

// encodeFrame renders (compilationID, payload) into the wire format §4.1
// specifies: varint(body_len) · varint(compilation_id) · body, where
// body_len includes the compilation-id varint's own length.
func encodeFrame(compilationID uint32, payload []byte) []byte {
	idBuf := protowire.AppendVarint(nil, uint64(compilationID))
	bodyLen := uint64(len(idBuf) + len(payload))

	out := protowire.AppendVarint(nil, bodyLen)
	out = append(out, idBuf...)
	out = append(out, payload...)
	return out
}

// encodedLengthOfID returns the varint-encoded length of a compilation id,
// the §4.1 "helper for pre-sizing the varint compilation-ID" bullet.
func encodedLengthOfID(id uint32) int {
	return len(protowire.AppendVarint(nil, uint64(id)))
}

// frameReader incrementally reads frames off a *bufio.Reader. It has no
// goroutine of its own: the child actor's read loop drives it one frame at
// a time, blocking on the underlying reader exactly at the suspension
// points §5 lists (receiving a frame).
type frameReader struct {
	r *bufio.Reader
}

func newFrameReader(r *bufio.Reader) *frameReader {
	return &frameReader{r: r}
}

// readFrame blocks until a full frame is available, or returns the
// underlying read error (typically io.EOF on child exit).
func (fr *frameReader) readFrame() (frame, error) {
	bodyLen, err := readUvarint(fr.r)
	if err != nil {
		return frame{}, err
	}

	body := make([]byte, bodyLen)
	if _, err := io.ReadFull(fr.r, body); err != nil {
		return frame{}, err
	}

	id, n := protowire.ConsumeVarint(body)
	if n < 0 {
		return frame{}, newProtocolError("decode frame", "malformed compilation-id varint: %w", protowire.ParseError(n))
	}
	if id > 0xFFFFFFFF {
		return frame{}, newProtocolError("decode frame", "compilation-id %d does not fit in 32 bits", id)
	}

	return frame{compilationID: uint32(id), payload: body[n:]}, nil
}

// readUvarint reads a base-128 varint, rejecting anything wider than 64
// bits (§4.1, §8 property 2) rather than silently overflowing.
func readUvarint(r *bufio.Reader) (uint64, error) {
	var x uint64
	var s uint
	for i := 0; ; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b < 0x80 {
			if i > 9 || (i == 9 && b > 1) {
				return 0, newProtocolError("decode frame", "varint overflows 64 bits")
			}
			return x | uint64(b)<<s, nil
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
}

var errEmptyWrite = errors.New("sasshost: short write to child process")
