package sasshost

import (
	"net/url"
	"time"

	"github.com/sass-contrib/embedded-host-go/functions"
	"github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

// compilationRequest is the CompilationRequest specifics of §4.3: it holds
// the effective importer list, the per-compilation function table, and the
// accumulating diagnostic list, and routes every OutboundMessage kind the
// compiler may address to this compilation.
type compilationRequest struct {
	baseRequest

	host      *Host
	importers *effectiveImporters
	funcs     *functions.FunctionRegistry

	messages []CompilerMessage
	result   CompilerResult

	onComplete func(CompilerResult, error)
}

func newCompilationRequest(id requestID, label string, host *Host, importers *effectiveImporters, funcs *functions.FunctionRegistry, onComplete func(CompilerResult, error)) *compilationRequest {
	r := &compilationRequest{
		host:       host,
		importers:  importers,
		funcs:      funcs,
		onComplete: onComplete,
	}
	r.baseRequest = newBaseRequest(id, label, func(err error) {
		onComplete(r.result, err)
	})
	return r
}

func (r *compilationRequest) armTimer(d time.Duration, onFire func()) {
	r.baseRequest.armTimer(d, onFire)
}

// receive dispatches one OutboundMessage to this compilation, per §4.3's
// "Receive routing by inbound submessage kind".
func (r *compilationRequest) receive(msg *embeddedsass.OutboundMessage) error {
	switch x := msg.Message.(type) {
	case *embeddedsass.OutboundMessage_CompileResponse_:
		return r.receiveCompileResponse(x.CompileResponse)
	case *embeddedsass.OutboundMessage_LogEvent_:
		return r.receiveLogEvent(x.LogEvent)
	case *embeddedsass.OutboundMessage_CanonicalizeRequest_:
		return r.receiveCanonicalize(x.CanonicalizeRequest)
	case *embeddedsass.OutboundMessage_ImportRequest_:
		return r.receiveImport(x.ImportRequest)
	case *embeddedsass.OutboundMessage_FileImportRequest_:
		return r.receiveFileImport(x.FileImportRequest)
	case *embeddedsass.OutboundMessage_FunctionCallRequest_:
		return r.receiveFunctionCall(x.FunctionCallRequest)
	default:
		return newProtocolError("compile", "unexpected message kind %T for compilation %d", msg.Message, r.id)
	}
}

func (r *compilationRequest) cancel(err error) {
	r.baseRequest.cancelRequest(err)
}

func (r *compilationRequest) receiveCompileResponse(resp *embeddedsass.OutboundMessage_CompileResponse) error {
	switch x := resp.Result.(type) {
	case *embeddedsass.OutboundMessage_CompileResponse_Success:
		r.result = CompilerResult{
			CSS:        x.Success.Css,
			SourceMap:  x.Success.SourceMap,
			LoadedURLs: filterValidURLs(x.Success.LoadedUrls),
			Messages:   r.messages,
		}
		r.baseRequest.finish(nil)
		return nil
	case *embeddedsass.OutboundMessage_CompileResponse_Failure:
		r.baseRequest.finish(compilerErrorFromFailure(x.Failure))
		return nil
	default:
		return newProtocolError("compile", "CompileResponse for %d has neither success nor failure", resp.Id)
	}
}

func filterValidURLs(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, u := range raw {
		if _, err := url.Parse(u); err != nil {
			continue
		}
		out = append(out, u)
	}
	return out
}

func compilerErrorFromFailure(f *embeddedsass.OutboundMessage_CompileResponse_CompileFailure) CompilerError {
	ce := CompilerError{
		Message:    f.Message,
		StackTrace: f.StackTrace,
		Formatted:  f.Formatted,
	}
	if f.Span != nil {
		ce.Span.Text = f.Span.Text
		ce.Span.Url = f.Span.Url
		ce.Span.Context = f.Span.Context
		ce.Span.Start.Offset = int(f.Span.Start.Offset)
		ce.Span.Start.Line = int(f.Span.Start.Line)
		ce.Span.Start.Column = int(f.Span.Start.Column)
		if f.Span.End != nil {
			ce.Span.End.Offset = int(f.Span.End.Offset)
			ce.Span.End.Line = int(f.Span.End.Line)
			ce.Span.End.Column = int(f.Span.End.Column)
		}
	}
	return ce
}

func (r *compilationRequest) receiveLogEvent(e *embeddedsass.OutboundMessage_LogEvent) error {
	var kind MessageKind
	switch e.Type {
	case embeddedsass.LogEventType_WARNING:
		kind = MessageWarning
	case embeddedsass.LogEventType_DEBUG:
		kind = MessageDebug
	case embeddedsass.LogEventType_DEPRECATION_WARNING:
		kind = MessageDeprecation
	default:
		return newProtocolError("log-event", "unrecognized log event type %d", e.Type)
	}
	msg := CompilerMessage{
		Kind:       kind,
		Message:    e.Message,
		StackTrace: e.StackTrace,
		Formatted:  e.Formatted,
	}
	if e.Span != nil {
		msg.Span = &SourceSpan{
			Text:    e.Span.Text,
			URL:     e.Span.Url,
			Context: e.Span.Context,
			Start: SourceLocation{
				Offset: int(e.Span.Start.Offset),
				Line:   int(e.Span.Start.Line),
				Column: int(e.Span.Start.Column),
			},
		}
		if e.Span.End != nil {
			msg.Span.End = &SourceLocation{
				Offset: int(e.Span.End.Offset),
				Line:   int(e.Span.End.Line),
				Column: int(e.Span.End.Column),
			}
		}
	}
	r.messages = append(r.messages, msg)
	return nil
}

func (r *compilationRequest) receiveCanonicalize(req *embeddedsass.OutboundMessage_CanonicalizeRequest) error {
	entry, err := r.importers.resolve(req.ImporterId, "canonicalize")
	if err != nil {
		return newProtocolError("canonicalize", "%s", err)
	}

	r.startCallback()
	defer r.endCallback()

	var response *embeddedsass.InboundMessage_CanonicalizeResponse
	switch {
	case entry.Importer != nil:
		canonical, resolveErr := entry.Importer.CanonicalizeURL(req.Url, req.FromImport, req.ContainingUrl)
		if resolveErr != nil {
			response = &embeddedsass.InboundMessage_CanonicalizeResponse{
				Id:     req.Id,
				Result: &embeddedsass.InboundMessage_CanonicalizeResponse_Error{Error: resolveErr.Error()},
			}
		} else {
			response = &embeddedsass.InboundMessage_CanonicalizeResponse{
				Id:     req.Id,
				Result: &embeddedsass.InboundMessage_CanonicalizeResponse_Url{Url: canonical},
			}
		}
	case entry.FilesystemImporter != nil:
		resolved, resolveErr := entry.FilesystemImporter.Resolve(req.Url, req.FromImport, req.ContainingUrl)
		if resolveErr != nil {
			response = &embeddedsass.InboundMessage_CanonicalizeResponse{
				Id:     req.Id,
				Result: &embeddedsass.InboundMessage_CanonicalizeResponse_Error{Error: resolveErr.Error()},
			}
		} else {
			response = &embeddedsass.InboundMessage_CanonicalizeResponse{
				Id:     req.Id,
				Result: &embeddedsass.InboundMessage_CanonicalizeResponse_Url{Url: resolved},
			}
		}
	default:
		return newProtocolError("canonicalize", "importer %d cannot canonicalize", req.ImporterId)
	}

	return r.host.sendInbound(r.id, &embeddedsass.InboundMessage{
		Message: &embeddedsass.InboundMessage_CanonicalizeResponse_{CanonicalizeResponse: response},
	})
}

func (r *compilationRequest) receiveImport(req *embeddedsass.OutboundMessage_ImportRequest) error {
	if _, err := validateURL(req.Url); err != nil {
		return newProtocolError("import", "%s", err)
	}
	entry, err := r.importers.resolve(req.ImporterId, "import")
	if err != nil {
		return newProtocolError("import", "%s", err)
	}

	r.startCallback()
	defer r.endCallback()

	result, loadErr := entry.Importer.Load(req.Url)
	var response *embeddedsass.InboundMessage_ImportResponse
	if loadErr != nil {
		response = &embeddedsass.InboundMessage_ImportResponse{
			Id:     req.Id,
			Result: &embeddedsass.InboundMessage_ImportResponse_Error{Error: loadErr.Error()},
		}
	} else {
		response = &embeddedsass.InboundMessage_ImportResponse{
			Id: req.Id,
			Result: &embeddedsass.InboundMessage_ImportResponse_Success{
				Success: &embeddedsass.InboundMessage_ImportResponse_ImportSuccess{
					Contents:     result.Contents,
					SourceMapUrl: result.SourceMapURL,
					Syntax:       wireSyntax(result.Syntax),
				},
			},
		}
	}

	return r.host.sendInbound(r.id, &embeddedsass.InboundMessage{
		Message: &embeddedsass.InboundMessage_ImportResponse_{ImportResponse: response},
	})
}

func (r *compilationRequest) receiveFileImport(req *embeddedsass.OutboundMessage_FileImportRequest) error {
	entry, err := r.importers.resolve(req.ImporterId, "file-import")
	if err != nil {
		return newProtocolError("file-import", "%s", err)
	}

	r.startCallback()
	defer r.endCallback()

	fileURL, resolveErr := entry.FilesystemImporter.Resolve(req.Url, req.FromImport, req.ContainingUrl)
	var response *embeddedsass.InboundMessage_FileImportResponse
	if resolveErr != nil {
		response = &embeddedsass.InboundMessage_FileImportResponse{
			Id:     req.Id,
			Result: &embeddedsass.InboundMessage_FileImportResponse_Error{Error: resolveErr.Error()},
		}
	} else {
		response = &embeddedsass.InboundMessage_FileImportResponse{
			Id:     req.Id,
			Result: &embeddedsass.InboundMessage_FileImportResponse_FileUrl{FileUrl: fileURL},
		}
	}

	return r.host.sendInbound(r.id, &embeddedsass.InboundMessage{
		Message: &embeddedsass.InboundMessage_FileImportResponse_{FileImportResponse: response},
	})
}

func (r *compilationRequest) receiveFunctionCall(req *embeddedsass.OutboundMessage_FunctionCallRequest) error {
	r.startCallback()
	defer r.endCallback()

	registry := r.funcs
	if registry == nil {
		registry = r.host.globalFunctions
	}
	if registry == nil {
		return newProtocolError("function-call", "no function registry configured for compilation %d", r.id)
	}

	response := registry.Execute(req)
	return r.host.sendInbound(r.id, &embeddedsass.InboundMessage{
		Message: &embeddedsass.InboundMessage_FunctionCallResponse_{FunctionCallResponse: response},
	})
}

var _ request = (*compilationRequest)(nil)
