package sasshost

import "github.com/sass-contrib/embedded-host-go/internal/embeddedsass"

// versionRequest is the health-check specifics of §4.3: a compilation-less
// request (id carried on a compilation_id-0 frame) expecting exactly one
// VersionResponse.
type versionRequest struct {
	baseRequest

	versions   Versions
	onComplete func(Versions, error)
}

func newVersionRequest(id requestID, onComplete func(Versions, error)) *versionRequest {
	r := &versionRequest{onComplete: onComplete}
	r.baseRequest = newBaseRequest(id, "version", func(err error) {
		onComplete(r.versions, err)
	})
	return r
}

func (r *versionRequest) receive(msg *embeddedsass.OutboundMessage) error {
	resp, ok := msg.Message.(*embeddedsass.OutboundMessage_VersionResponse_)
	if !ok {
		return newProtocolError("version handshake", "expected VersionResponse, got %T", msg.Message)
	}
	r.versions = Versions{
		ProtocolVersion:       resp.VersionResponse.ProtocolVersion,
		CompilerVersion:       resp.VersionResponse.CompilerVersion,
		ImplementationVersion: resp.VersionResponse.ImplementationVersion,
		ImplementationName:    resp.VersionResponse.ImplementationName,
	}
	r.baseRequest.finish(nil)
	return nil
}

func (r *versionRequest) cancel(err error) {
	r.baseRequest.cancelRequest(err)
}

var _ request = (*versionRequest)(nil)
