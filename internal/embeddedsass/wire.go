package embeddedsass

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// appendUint32 writes a proto3 varint field, skipping the zero value.
func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendEnum(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(uint32(v)))
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, protowire.EncodeDouble(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, []byte(v))
}

func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendMessage(b []byte, num protowire.Number, body []byte) []byte {
	if body == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

func appendStrings(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, []byte(v))
	}
	return b
}

func appendUint32s(b []byte, num protowire.Number, vs []uint32) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(v))
	}
	return b
}

// ErrProtocol is returned by Unmarshal when the wire bytes violate the
// protobuf encoding this package expects (malformed tag, truncated varint,
// fixed64 or length-delimited field) or carry an unrecognized list
// separator or calculation operator. A field's wire type is not checked
// against its field number.
type ErrProtocol struct {
	Context string
	Err     error
}

func (e *ErrProtocol) Error() string {
	return fmt.Sprintf("embeddedsass: malformed %s: %s", e.Context, e.Err)
}

func (e *ErrProtocol) Unwrap() error { return e.Err }

func protocolErrf(ctx, format string, args ...interface{}) error {
	return &ErrProtocol{Context: ctx, Err: fmt.Errorf(format, args...)}
}

// fieldIterator walks the top-level fields of a message body, dispatching
// each (field number, wire value) pair to fn. It mirrors the loop every
// generated Unmarshal method runs, factored out once since this package
// hand-writes what protoc-gen-go would otherwise generate per message.
func fieldIterator(ctx string, b []byte, fn func(num protowire.Number, typ protowire.Type, v []byte, n int) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protocolErrf(ctx, "bad tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		consumed, err := fn(num, typ, b, 0)
		if err != nil {
			return err
		}
		if consumed < 0 || consumed > len(b) {
			return protocolErrf(ctx, "bad field %d", num)
		}
		b = b[consumed:]
	}
	return nil
}

func consumeVarint(ctx string, b []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protocolErrf(ctx, "bad varint: %w", protowire.ParseError(n))
	}
	return v, n, nil
}

func consumeFixed64(ctx string, b []byte) (float64, int, error) {
	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, 0, protocolErrf(ctx, "bad fixed64: %w", protowire.ParseError(n))
	}
	return protowire.DecodeDouble(v), n, nil
}

func consumeBytes(ctx string, b []byte) ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protocolErrf(ctx, "bad length-delimited field: %w", protowire.ParseError(n))
	}
	return v, n, nil
}

func consumeString(ctx string, b []byte) (string, int, error) {
	v, n, err := consumeBytes(ctx, b)
	if err != nil {
		return "", 0, err
	}
	return string(v), n, nil
}
