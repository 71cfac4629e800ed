package embeddedsass

import "google.golang.org/protobuf/encoding/protowire"

// Syntax is the Sass source syntax of a stylesheet.
type Syntax int32

const (
	Syntax_SCSS Syntax = iota
	Syntax_INDENTED
	Syntax_CSS
)

var Syntax_value = map[string]int32{"SCSS": 0, "INDENTED": 1, "CSS": 2}
var Syntax_name = map[int32]string{0: "SCSS", 1: "INDENTED", 2: "CSS"}

// OutputStyle is the requested CSS output formatting.
type OutputStyle int32

const (
	OutputStyle_EXPANDED OutputStyle = iota
	OutputStyle_COMPRESSED
	OutputStyle_NESTED
	OutputStyle_COMPACT
)

var OutputStyle_value = map[string]int32{"EXPANDED": 0, "COMPRESSED": 1, "NESTED": 2, "COMPACT": 3}
var OutputStyle_name = map[int32]string{0: "EXPANDED", 1: "COMPRESSED", 2: "NESTED", 3: "COMPACT"}

// LogEventType distinguishes warnings, deprecations and @debug output.
type LogEventType int32

const (
	LogEventType_WARNING LogEventType = iota
	LogEventType_DEBUG
	LogEventType_DEPRECATION_WARNING
)

// SourceSpan locates a region of a Sass source file.
type SourceSpan struct {
	Text    string
	Start   SourceSpan_Location
	End     *SourceSpan_Location
	Url     string
	Context string
}

type SourceSpan_Location struct {
	Offset uint32
	Line   uint32
	Column uint32
}

// --- InboundMessage ---

type InboundMessage struct {
	Message isInboundMessage_Message
}

type isInboundMessage_Message interface{ isInboundMessage_Message() }

type InboundMessage_CompileRequest_ struct {
	CompileRequest *InboundMessage_CompileRequest
}
type InboundMessage_CanonicalizeResponse_ struct {
	CanonicalizeResponse *InboundMessage_CanonicalizeResponse
}
type InboundMessage_ImportResponse_ struct {
	ImportResponse *InboundMessage_ImportResponse
}
type InboundMessage_FileImportResponse_ struct {
	FileImportResponse *InboundMessage_FileImportResponse
}
type InboundMessage_FunctionCallResponse_ struct {
	FunctionCallResponse *InboundMessage_FunctionCallResponse
}
type InboundMessage_VersionRequest_ struct {
	VersionRequest *InboundMessage_VersionRequest
}

func (*InboundMessage_CompileRequest_) isInboundMessage_Message()        {}
func (*InboundMessage_CanonicalizeResponse_) isInboundMessage_Message()  {}
func (*InboundMessage_ImportResponse_) isInboundMessage_Message()        {}
func (*InboundMessage_FileImportResponse_) isInboundMessage_Message()    {}
func (*InboundMessage_FunctionCallResponse_) isInboundMessage_Message()  {}
func (*InboundMessage_VersionRequest_) isInboundMessage_Message()        {}

type InboundMessage_CompileRequest struct {
	Id                      uint32
	Input                   isInboundMessage_CompileRequest_Input
	Importers               []*InboundMessage_CompileRequest_Importer
	Style                   OutputStyle
	SourceMap               bool
	SourceMapIncludeSources bool
	Charset                 bool
	QuietDeps               bool
	Verbose                 bool
	Alert                   bool
	FatalDeprecations       []string
	SilenceDeprecations     []string
	FutureDeprecations      []string
}

type isInboundMessage_CompileRequest_Input interface {
	isInboundMessage_CompileRequest_Input()
}

type InboundMessage_CompileRequest_String_ struct {
	String_ *InboundMessage_CompileRequest_StringInput
}
type InboundMessage_CompileRequest_Path struct{ Path string }

func (*InboundMessage_CompileRequest_String_) isInboundMessage_CompileRequest_Input() {}
func (*InboundMessage_CompileRequest_Path) isInboundMessage_CompileRequest_Input()    {}

type InboundMessage_CompileRequest_StringInput struct {
	Source string
	Url    string
	Syntax Syntax
	// Importer, if non-nil, is the importer used to resolve relative loads
	// from the string source itself (e.g. url() within it).
	Importer *InboundMessage_CompileRequest_Importer
}

// InboundMessage_CompileRequest_Importer is one entry of the effective
// importer list §4.3 describes: [string_importer?] ++ global_importers ++
// per_compile_importers, each tagged by which resolver kind backs it.
type InboundMessage_CompileRequest_Importer struct {
	Importer isInboundMessage_CompileRequest_Importer_Importer
}

type isInboundMessage_CompileRequest_Importer_Importer interface {
	isInboundMessage_CompileRequest_Importer_Importer()
}

type InboundMessage_CompileRequest_Importer_Path struct{ Path string }
type InboundMessage_CompileRequest_Importer_ImporterId struct{ ImporterId uint32 }
type InboundMessage_CompileRequest_Importer_FileImporterId struct{ FileImporterId uint32 }
type InboundMessage_CompileRequest_Importer_NodePackageImporter struct {
	NodePackageImporter string
}

func (*InboundMessage_CompileRequest_Importer_Path) isInboundMessage_CompileRequest_Importer_Importer() {
}
func (*InboundMessage_CompileRequest_Importer_ImporterId) isInboundMessage_CompileRequest_Importer_Importer() {
}
func (*InboundMessage_CompileRequest_Importer_FileImporterId) isInboundMessage_CompileRequest_Importer_Importer() {
}
func (*InboundMessage_CompileRequest_Importer_NodePackageImporter) isInboundMessage_CompileRequest_Importer_Importer() {
}

type InboundMessage_CanonicalizeResponse struct {
	Id     uint32
	Result isInboundMessage_CanonicalizeResponse_Result
}
type isInboundMessage_CanonicalizeResponse_Result interface {
	isInboundMessage_CanonicalizeResponse_Result()
}
type InboundMessage_CanonicalizeResponse_Url struct{ Url string }
type InboundMessage_CanonicalizeResponse_Error struct{ Error string }

func (*InboundMessage_CanonicalizeResponse_Url) isInboundMessage_CanonicalizeResponse_Result()   {}
func (*InboundMessage_CanonicalizeResponse_Error) isInboundMessage_CanonicalizeResponse_Result() {}

type InboundMessage_ImportResponse struct {
	Id     uint32
	Result isInboundMessage_ImportResponse_Result
}
type isInboundMessage_ImportResponse_Result interface {
	isInboundMessage_ImportResponse_Result()
}
type InboundMessage_ImportResponse_Success struct {
	Success *InboundMessage_ImportResponse_ImportSuccess
}
type InboundMessage_ImportResponse_Error struct{ Error string }

func (*InboundMessage_ImportResponse_Success) isInboundMessage_ImportResponse_Result() {}
func (*InboundMessage_ImportResponse_Error) isInboundMessage_ImportResponse_Result()   {}

type InboundMessage_ImportResponse_ImportSuccess struct {
	Contents     string
	SourceMapUrl string
	Syntax       Syntax
}

type InboundMessage_FileImportResponse struct {
	Id     uint32
	Result isInboundMessage_FileImportResponse_Result
}
type isInboundMessage_FileImportResponse_Result interface {
	isInboundMessage_FileImportResponse_Result()
}
type InboundMessage_FileImportResponse_FileUrl struct{ FileUrl string }
type InboundMessage_FileImportResponse_Error struct{ Error string }

func (*InboundMessage_FileImportResponse_FileUrl) isInboundMessage_FileImportResponse_Result() {}
func (*InboundMessage_FileImportResponse_Error) isInboundMessage_FileImportResponse_Result()   {}

type InboundMessage_FunctionCallResponse struct {
	Id                    uint32
	Result                isInboundMessage_FunctionCallResponse_Result
	AccessedArgumentLists []uint32
}
type isInboundMessage_FunctionCallResponse_Result interface {
	isInboundMessage_FunctionCallResponse_Result()
}
type InboundMessage_FunctionCallResponse_Success struct{ Success *Value }
type InboundMessage_FunctionCallResponse_Error struct{ Error string }

func (*InboundMessage_FunctionCallResponse_Success) isInboundMessage_FunctionCallResponse_Result() {}
func (*InboundMessage_FunctionCallResponse_Error) isInboundMessage_FunctionCallResponse_Result()   {}

type InboundMessage_VersionRequest struct {
	Id uint32
}

// --- OutboundMessage ---

type OutboundMessage struct {
	Message isOutboundMessage_Message
}

type isOutboundMessage_Message interface{ isOutboundMessage_Message() }

type OutboundMessage_CompileResponse_ struct {
	CompileResponse *OutboundMessage_CompileResponse
}
type OutboundMessage_CanonicalizeRequest_ struct {
	CanonicalizeRequest *OutboundMessage_CanonicalizeRequest
}
type OutboundMessage_ImportRequest_ struct {
	ImportRequest *OutboundMessage_ImportRequest
}
type OutboundMessage_FileImportRequest_ struct {
	FileImportRequest *OutboundMessage_FileImportRequest
}
type OutboundMessage_FunctionCallRequest_ struct {
	FunctionCallRequest *OutboundMessage_FunctionCallRequest
}
type OutboundMessage_LogEvent_ struct{ LogEvent *OutboundMessage_LogEvent }
type OutboundMessage_VersionResponse_ struct {
	VersionResponse *OutboundMessage_VersionResponse
}
type OutboundMessage_Error struct{ Error *ProtocolError }

func (*OutboundMessage_CompileResponse_) isOutboundMessage_Message()     {}
func (*OutboundMessage_CanonicalizeRequest_) isOutboundMessage_Message() {}
func (*OutboundMessage_ImportRequest_) isOutboundMessage_Message()       {}
func (*OutboundMessage_FileImportRequest_) isOutboundMessage_Message()   {}
func (*OutboundMessage_FunctionCallRequest_) isOutboundMessage_Message() {}
func (*OutboundMessage_LogEvent_) isOutboundMessage_Message()            {}
func (*OutboundMessage_VersionResponse_) isOutboundMessage_Message()     {}
func (*OutboundMessage_Error) isOutboundMessage_Message()                {}

type ProtocolError struct {
	Id      uint32
	Type    ProtocolErrorType
	Message string
}

type ProtocolErrorType int32

const (
	ProtocolErrorType_PARSE ProtocolErrorType = iota
	ProtocolErrorType_PARAMS
	ProtocolErrorType_INTERNAL
)

type OutboundMessage_CompileResponse struct {
	Id     uint32
	Result isOutboundMessage_CompileResponse_Result
}
type isOutboundMessage_CompileResponse_Result interface {
	isOutboundMessage_CompileResponse_Result()
}
type OutboundMessage_CompileResponse_Success struct {
	Success *OutboundMessage_CompileResponse_CompileSuccess
}
type OutboundMessage_CompileResponse_Failure struct {
	Failure *OutboundMessage_CompileResponse_CompileFailure
}

func (*OutboundMessage_CompileResponse_Success) isOutboundMessage_CompileResponse_Result() {}
func (*OutboundMessage_CompileResponse_Failure) isOutboundMessage_CompileResponse_Result() {}

type OutboundMessage_CompileResponse_CompileSuccess struct {
	Css        string
	SourceMap  string
	LoadedUrls []string
}

type OutboundMessage_CompileResponse_CompileFailure struct {
	Message    string
	Span       *SourceSpan
	StackTrace string
	Formatted  string
}

type OutboundMessage_CanonicalizeRequest struct {
	Id            uint32
	CompilationId uint32
	ImporterId    uint32
	Url           string
	FromImport    bool
	ContainingUrl string
}

func (r *OutboundMessage_CanonicalizeRequest) GetUrl() string { return r.Url }
func (r *OutboundMessage_CanonicalizeRequest) GetId() uint32  { return r.Id }

type OutboundMessage_ImportRequest struct {
	Id            uint32
	CompilationId uint32
	ImporterId    uint32
	Url           string
	FromImport    bool
}

func (r *OutboundMessage_ImportRequest) GetUrl() string { return r.Url }
func (r *OutboundMessage_ImportRequest) GetId() uint32  { return r.Id }

type OutboundMessage_FileImportRequest struct {
	Id            uint32
	CompilationId uint32
	ImporterId    uint32
	Url           string
	FromImport    bool
	ContainingUrl string
}

func (r *OutboundMessage_FileImportRequest) GetUrl() string { return r.Url }
func (r *OutboundMessage_FileImportRequest) GetId() uint32  { return r.Id }

type OutboundMessage_FunctionCallRequest struct {
	Id            uint32
	CompilationId uint32
	Identifier    isOutboundMessage_FunctionCallRequest_Identifier
	Arguments     []*Value
}

func (r *OutboundMessage_FunctionCallRequest) GetName() string {
	if x, ok := r.Identifier.(*OutboundMessage_FunctionCallRequest_Name); ok {
		return x.Name
	}
	return ""
}

func (r *OutboundMessage_FunctionCallRequest) GetFunctionId() uint32 {
	if x, ok := r.Identifier.(*OutboundMessage_FunctionCallRequest_FunctionId); ok {
		return x.FunctionId
	}
	return 0
}

type isOutboundMessage_FunctionCallRequest_Identifier interface {
	isOutboundMessage_FunctionCallRequest_Identifier()
}
type OutboundMessage_FunctionCallRequest_Name struct{ Name string }
type OutboundMessage_FunctionCallRequest_FunctionId struct{ FunctionId uint32 }

func (*OutboundMessage_FunctionCallRequest_Name) isOutboundMessage_FunctionCallRequest_Identifier() {
}
func (*OutboundMessage_FunctionCallRequest_FunctionId) isOutboundMessage_FunctionCallRequest_Identifier() {
}

type OutboundMessage_LogEvent struct {
	CompilationId uint32
	Type          LogEventType
	Message       string
	Span          *SourceSpan
	StackTrace    string
	Formatted     string
}

func (e *OutboundMessage_LogEvent) GetMessage() string { return e.Message }

type OutboundMessage_VersionResponse struct {
	Id                    uint32
	ProtocolVersion       string
	CompilerVersion       string
	ImplementationVersion string
	ImplementationName    string
}

// --- message-level marshal ---

func (m *InboundMessage) Marshal() ([]byte, error) {
	var b []byte
	switch x := m.Message.(type) {
	case *InboundMessage_CompileRequest_:
		b = appendMessage(b, 1, x.CompileRequest.marshal())
	case *InboundMessage_CanonicalizeResponse_:
		b = appendMessage(b, 2, x.CanonicalizeResponse.marshal())
	case *InboundMessage_ImportResponse_:
		b = appendMessage(b, 3, x.ImportResponse.marshal())
	case *InboundMessage_FileImportResponse_:
		b = appendMessage(b, 4, x.FileImportResponse.marshal())
	case *InboundMessage_FunctionCallResponse_:
		b = appendMessage(b, 5, x.FunctionCallResponse.marshal())
	case *InboundMessage_VersionRequest_:
		b = appendMessage(b, 6, x.VersionRequest.marshal())
	}
	return b, nil
}

func (r *InboundMessage_CompileRequest) marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, r.Id)
	switch x := r.Input.(type) {
	case *InboundMessage_CompileRequest_String_:
		b = appendMessage(b, 2, x.String_.marshal())
	case *InboundMessage_CompileRequest_Path:
		b = appendString(b, 3, x.Path)
	}
	for _, imp := range r.Importers {
		b = appendMessage(b, 4, imp.marshal())
	}
	b = appendEnum(b, 5, int32(r.Style))
	b = appendBool(b, 6, r.SourceMap)
	b = appendBool(b, 7, r.SourceMapIncludeSources)
	b = appendBool(b, 8, r.Charset)
	b = appendBool(b, 9, r.QuietDeps)
	b = appendBool(b, 10, r.Verbose)
	b = appendBool(b, 11, r.Alert)
	b = appendStrings(b, 12, r.FatalDeprecations)
	b = appendStrings(b, 13, r.SilenceDeprecations)
	b = appendStrings(b, 14, r.FutureDeprecations)
	return b
}

func (s *InboundMessage_CompileRequest_StringInput) marshal() []byte {
	var b []byte
	b = appendString(b, 1, s.Source)
	b = appendString(b, 2, s.Url)
	b = appendEnum(b, 3, int32(s.Syntax))
	if s.Importer != nil {
		b = appendMessage(b, 4, s.Importer.marshal())
	}
	return b
}

func (i *InboundMessage_CompileRequest_Importer) marshal() []byte {
	var b []byte
	switch x := i.Importer.(type) {
	case *InboundMessage_CompileRequest_Importer_Path:
		b = appendString(b, 1, x.Path)
	case *InboundMessage_CompileRequest_Importer_ImporterId:
		b = appendUint32(b, 2, x.ImporterId)
	case *InboundMessage_CompileRequest_Importer_FileImporterId:
		b = appendUint32(b, 3, x.FileImporterId)
	case *InboundMessage_CompileRequest_Importer_NodePackageImporter:
		b = appendString(b, 4, x.NodePackageImporter)
	}
	return b
}

func (r *InboundMessage_CanonicalizeResponse) marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, r.Id)
	switch x := r.Result.(type) {
	case *InboundMessage_CanonicalizeResponse_Url:
		b = appendString(b, 2, x.Url)
	case *InboundMessage_CanonicalizeResponse_Error:
		b = appendString(b, 3, x.Error)
	}
	return b
}

func (r *InboundMessage_ImportResponse) marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, r.Id)
	switch x := r.Result.(type) {
	case *InboundMessage_ImportResponse_Success:
		b = appendMessage(b, 2, x.Success.marshal())
	case *InboundMessage_ImportResponse_Error:
		b = appendString(b, 3, x.Error)
	}
	return b
}

func (s *InboundMessage_ImportResponse_ImportSuccess) marshal() []byte {
	var b []byte
	b = appendString(b, 1, s.Contents)
	b = appendString(b, 2, s.SourceMapUrl)
	b = appendEnum(b, 3, int32(s.Syntax))
	return b
}

func (r *InboundMessage_FileImportResponse) marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, r.Id)
	switch x := r.Result.(type) {
	case *InboundMessage_FileImportResponse_FileUrl:
		b = appendString(b, 2, x.FileUrl)
	case *InboundMessage_FileImportResponse_Error:
		b = appendString(b, 3, x.Error)
	}
	return b
}

func (r *InboundMessage_FunctionCallResponse) marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, r.Id)
	switch x := r.Result.(type) {
	case *InboundMessage_FunctionCallResponse_Success:
		b = appendMessage(b, 2, x.Success.Marshal())
	case *InboundMessage_FunctionCallResponse_Error:
		b = appendString(b, 3, x.Error)
	}
	b = appendUint32s(b, 4, r.AccessedArgumentLists)
	return b
}

func (r *InboundMessage_VersionRequest) marshal() []byte {
	return appendUint32(nil, 1, r.Id)
}

func (s *SourceSpan) marshal() []byte {
	if s == nil {
		return nil
	}
	var b []byte
	b = appendString(b, 1, s.Text)
	b = appendMessage(b, 2, s.Start.marshal())
	if s.End != nil {
		b = appendMessage(b, 3, s.End.marshal())
	}
	b = appendString(b, 4, s.Url)
	b = appendString(b, 5, s.Context)
	return b
}

func (l SourceSpan_Location) marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, l.Offset)
	b = appendUint32(b, 2, l.Line)
	b = appendUint32(b, 3, l.Column)
	return b
}

// --- message-level unmarshal ---

func UnmarshalOutboundMessage(b []byte) (*OutboundMessage, error) {
	m := new(OutboundMessage)
	err := fieldIterator("OutboundMessage", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			body, n, err := consumeBytes("OutboundMessage.compile_response", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalCompileResponse(body)
			if err != nil {
				return 0, err
			}
			m.Message = &OutboundMessage_CompileResponse_{CompileResponse: x}
			return n, nil
		case 2:
			body, n, err := consumeBytes("OutboundMessage.canonicalize_request", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalCanonicalizeRequest(body)
			if err != nil {
				return 0, err
			}
			m.Message = &OutboundMessage_CanonicalizeRequest_{CanonicalizeRequest: x}
			return n, nil
		case 3:
			body, n, err := consumeBytes("OutboundMessage.import_request", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalImportRequest(body)
			if err != nil {
				return 0, err
			}
			m.Message = &OutboundMessage_ImportRequest_{ImportRequest: x}
			return n, nil
		case 4:
			body, n, err := consumeBytes("OutboundMessage.file_import_request", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalFileImportRequest(body)
			if err != nil {
				return 0, err
			}
			m.Message = &OutboundMessage_FileImportRequest_{FileImportRequest: x}
			return n, nil
		case 5:
			body, n, err := consumeBytes("OutboundMessage.function_call_request", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalFunctionCallRequest(body)
			if err != nil {
				return 0, err
			}
			m.Message = &OutboundMessage_FunctionCallRequest_{FunctionCallRequest: x}
			return n, nil
		case 6:
			body, n, err := consumeBytes("OutboundMessage.log_event", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalLogEvent(body)
			if err != nil {
				return 0, err
			}
			m.Message = &OutboundMessage_LogEvent_{LogEvent: x}
			return n, nil
		case 7:
			body, n, err := consumeBytes("OutboundMessage.version_response", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalVersionResponse(body)
			if err != nil {
				return 0, err
			}
			m.Message = &OutboundMessage_VersionResponse_{VersionResponse: x}
			return n, nil
		case 8:
			body, n, err := consumeBytes("OutboundMessage.error", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalProtocolError(body)
			if err != nil {
				return 0, err
			}
			m.Message = &OutboundMessage_Error{Error: x}
			return n, nil
		default:
			return skipUnknown("OutboundMessage", typ, rest)
		}
	})
	return m, err
}

func unmarshalCompileResponse(b []byte) (*OutboundMessage_CompileResponse, error) {
	r := new(OutboundMessage_CompileResponse)
	err := fieldIterator("CompileResponse", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("compile_response.id", rest)
			if err != nil {
				return 0, err
			}
			r.Id = uint32(v)
			return n, nil
		case 2:
			body, n, err := consumeBytes("compile_response.success", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalCompileSuccess(body)
			if err != nil {
				return 0, err
			}
			r.Result = &OutboundMessage_CompileResponse_Success{Success: x}
			return n, nil
		case 3:
			body, n, err := consumeBytes("compile_response.failure", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalCompileFailure(body)
			if err != nil {
				return 0, err
			}
			r.Result = &OutboundMessage_CompileResponse_Failure{Failure: x}
			return n, nil
		default:
			return skipUnknown("CompileResponse", typ, rest)
		}
	})
	return r, err
}

func unmarshalCompileSuccess(b []byte) (*OutboundMessage_CompileResponse_CompileSuccess, error) {
	s := new(OutboundMessage_CompileResponse_CompileSuccess)
	err := fieldIterator("CompileSuccess", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeString("compile_success.css", rest)
			if err != nil {
				return 0, err
			}
			s.Css = v
			return n, nil
		case 2:
			v, n, err := consumeString("compile_success.source_map", rest)
			if err != nil {
				return 0, err
			}
			s.SourceMap = v
			return n, nil
		case 3:
			v, n, err := consumeString("compile_success.loaded_urls", rest)
			if err != nil {
				return 0, err
			}
			s.LoadedUrls = append(s.LoadedUrls, v)
			return n, nil
		default:
			return skipUnknown("CompileSuccess", typ, rest)
		}
	})
	return s, err
}

func unmarshalCompileFailure(b []byte) (*OutboundMessage_CompileResponse_CompileFailure, error) {
	f := new(OutboundMessage_CompileResponse_CompileFailure)
	err := fieldIterator("CompileFailure", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeString("compile_failure.message", rest)
			if err != nil {
				return 0, err
			}
			f.Message = v
			return n, nil
		case 2:
			body, n, err := consumeBytes("compile_failure.span", rest)
			if err != nil {
				return 0, err
			}
			s, err := unmarshalSourceSpan(body)
			if err != nil {
				return 0, err
			}
			f.Span = s
			return n, nil
		case 3:
			v, n, err := consumeString("compile_failure.stack_trace", rest)
			if err != nil {
				return 0, err
			}
			f.StackTrace = v
			return n, nil
		case 4:
			v, n, err := consumeString("compile_failure.formatted", rest)
			if err != nil {
				return 0, err
			}
			f.Formatted = v
			return n, nil
		default:
			return skipUnknown("CompileFailure", typ, rest)
		}
	})
	return f, err
}

func unmarshalSourceSpan(b []byte) (*SourceSpan, error) {
	s := new(SourceSpan)
	err := fieldIterator("SourceSpan", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeString("span.text", rest)
			if err != nil {
				return 0, err
			}
			s.Text = v
			return n, nil
		case 2:
			body, n, err := consumeBytes("span.start", rest)
			if err != nil {
				return 0, err
			}
			loc, err := unmarshalLocation(body)
			if err != nil {
				return 0, err
			}
			s.Start = loc
			return n, nil
		case 3:
			body, n, err := consumeBytes("span.end", rest)
			if err != nil {
				return 0, err
			}
			loc, err := unmarshalLocation(body)
			if err != nil {
				return 0, err
			}
			s.End = &loc
			return n, nil
		case 4:
			v, n, err := consumeString("span.url", rest)
			if err != nil {
				return 0, err
			}
			s.Url = v
			return n, nil
		case 5:
			v, n, err := consumeString("span.context", rest)
			if err != nil {
				return 0, err
			}
			s.Context = v
			return n, nil
		default:
			return skipUnknown("SourceSpan", typ, rest)
		}
	})
	return s, err
}

func unmarshalLocation(b []byte) (SourceSpan_Location, error) {
	var l SourceSpan_Location
	err := fieldIterator("SourceSpan.Location", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("location.offset", rest)
			if err != nil {
				return 0, err
			}
			l.Offset = uint32(v)
			return n, nil
		case 2:
			v, n, err := consumeVarint("location.line", rest)
			if err != nil {
				return 0, err
			}
			l.Line = uint32(v)
			return n, nil
		case 3:
			v, n, err := consumeVarint("location.column", rest)
			if err != nil {
				return 0, err
			}
			l.Column = uint32(v)
			return n, nil
		default:
			return skipUnknown("SourceSpan.Location", typ, rest)
		}
	})
	return l, err
}

func unmarshalCanonicalizeRequest(b []byte) (*OutboundMessage_CanonicalizeRequest, error) {
	r := new(OutboundMessage_CanonicalizeRequest)
	err := fieldIterator("CanonicalizeRequest", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("canon.id", rest)
			if err != nil {
				return 0, err
			}
			r.Id = uint32(v)
			return n, nil
		case 2:
			v, n, err := consumeVarint("canon.compilation_id", rest)
			if err != nil {
				return 0, err
			}
			r.CompilationId = uint32(v)
			return n, nil
		case 3:
			v, n, err := consumeVarint("canon.importer_id", rest)
			if err != nil {
				return 0, err
			}
			r.ImporterId = uint32(v)
			return n, nil
		case 4:
			v, n, err := consumeString("canon.url", rest)
			if err != nil {
				return 0, err
			}
			r.Url = v
			return n, nil
		case 5:
			v, n, err := consumeVarint("canon.from_import", rest)
			if err != nil {
				return 0, err
			}
			r.FromImport = v != 0
			return n, nil
		case 6:
			v, n, err := consumeString("canon.containing_url", rest)
			if err != nil {
				return 0, err
			}
			r.ContainingUrl = v
			return n, nil
		default:
			return skipUnknown("CanonicalizeRequest", typ, rest)
		}
	})
	return r, err
}

func unmarshalImportRequest(b []byte) (*OutboundMessage_ImportRequest, error) {
	r := new(OutboundMessage_ImportRequest)
	err := fieldIterator("ImportRequest", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("import.id", rest)
			if err != nil {
				return 0, err
			}
			r.Id = uint32(v)
			return n, nil
		case 2:
			v, n, err := consumeVarint("import.compilation_id", rest)
			if err != nil {
				return 0, err
			}
			r.CompilationId = uint32(v)
			return n, nil
		case 3:
			v, n, err := consumeVarint("import.importer_id", rest)
			if err != nil {
				return 0, err
			}
			r.ImporterId = uint32(v)
			return n, nil
		case 4:
			v, n, err := consumeString("import.url", rest)
			if err != nil {
				return 0, err
			}
			r.Url = v
			return n, nil
		case 5:
			v, n, err := consumeVarint("import.from_import", rest)
			if err != nil {
				return 0, err
			}
			r.FromImport = v != 0
			return n, nil
		default:
			return skipUnknown("ImportRequest", typ, rest)
		}
	})
	return r, err
}

func unmarshalFileImportRequest(b []byte) (*OutboundMessage_FileImportRequest, error) {
	r := new(OutboundMessage_FileImportRequest)
	err := fieldIterator("FileImportRequest", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("file_import.id", rest)
			if err != nil {
				return 0, err
			}
			r.Id = uint32(v)
			return n, nil
		case 2:
			v, n, err := consumeVarint("file_import.compilation_id", rest)
			if err != nil {
				return 0, err
			}
			r.CompilationId = uint32(v)
			return n, nil
		case 3:
			v, n, err := consumeVarint("file_import.importer_id", rest)
			if err != nil {
				return 0, err
			}
			r.ImporterId = uint32(v)
			return n, nil
		case 4:
			v, n, err := consumeString("file_import.url", rest)
			if err != nil {
				return 0, err
			}
			r.Url = v
			return n, nil
		case 5:
			v, n, err := consumeVarint("file_import.from_import", rest)
			if err != nil {
				return 0, err
			}
			r.FromImport = v != 0
			return n, nil
		case 6:
			v, n, err := consumeString("file_import.containing_url", rest)
			if err != nil {
				return 0, err
			}
			r.ContainingUrl = v
			return n, nil
		default:
			return skipUnknown("FileImportRequest", typ, rest)
		}
	})
	return r, err
}

func unmarshalFunctionCallRequest(b []byte) (*OutboundMessage_FunctionCallRequest, error) {
	r := new(OutboundMessage_FunctionCallRequest)
	err := fieldIterator("FunctionCallRequest", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("func.id", rest)
			if err != nil {
				return 0, err
			}
			r.Id = uint32(v)
			return n, nil
		case 2:
			v, n, err := consumeVarint("func.compilation_id", rest)
			if err != nil {
				return 0, err
			}
			r.CompilationId = uint32(v)
			return n, nil
		case 3:
			v, n, err := consumeString("func.name", rest)
			if err != nil {
				return 0, err
			}
			r.Identifier = &OutboundMessage_FunctionCallRequest_Name{Name: v}
			return n, nil
		case 4:
			v, n, err := consumeVarint("func.function_id", rest)
			if err != nil {
				return 0, err
			}
			r.Identifier = &OutboundMessage_FunctionCallRequest_FunctionId{FunctionId: uint32(v)}
			return n, nil
		case 5:
			body, n, err := consumeBytes("func.arguments", rest)
			if err != nil {
				return 0, err
			}
			v, err := UnmarshalValue(body)
			if err != nil {
				return 0, err
			}
			r.Arguments = append(r.Arguments, v)
			return n, nil
		default:
			return skipUnknown("FunctionCallRequest", typ, rest)
		}
	})
	return r, err
}

func unmarshalLogEvent(b []byte) (*OutboundMessage_LogEvent, error) {
	e := new(OutboundMessage_LogEvent)
	err := fieldIterator("LogEvent", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("log.compilation_id", rest)
			if err != nil {
				return 0, err
			}
			e.CompilationId = uint32(v)
			return n, nil
		case 2:
			v, n, err := consumeVarint("log.type", rest)
			if err != nil {
				return 0, err
			}
			e.Type = LogEventType(int32(v))
			return n, nil
		case 3:
			v, n, err := consumeString("log.message", rest)
			if err != nil {
				return 0, err
			}
			e.Message = v
			return n, nil
		case 4:
			body, n, err := consumeBytes("log.span", rest)
			if err != nil {
				return 0, err
			}
			s, err := unmarshalSourceSpan(body)
			if err != nil {
				return 0, err
			}
			e.Span = s
			return n, nil
		case 5:
			v, n, err := consumeString("log.stack_trace", rest)
			if err != nil {
				return 0, err
			}
			e.StackTrace = v
			return n, nil
		case 6:
			v, n, err := consumeString("log.formatted", rest)
			if err != nil {
				return 0, err
			}
			e.Formatted = v
			return n, nil
		default:
			return skipUnknown("LogEvent", typ, rest)
		}
	})
	return e, err
}

func unmarshalVersionResponse(b []byte) (*OutboundMessage_VersionResponse, error) {
	r := new(OutboundMessage_VersionResponse)
	err := fieldIterator("VersionResponse", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("version.id", rest)
			if err != nil {
				return 0, err
			}
			r.Id = uint32(v)
			return n, nil
		case 2:
			v, n, err := consumeString("version.protocol_version", rest)
			if err != nil {
				return 0, err
			}
			r.ProtocolVersion = v
			return n, nil
		case 3:
			v, n, err := consumeString("version.compiler_version", rest)
			if err != nil {
				return 0, err
			}
			r.CompilerVersion = v
			return n, nil
		case 4:
			v, n, err := consumeString("version.implementation_version", rest)
			if err != nil {
				return 0, err
			}
			r.ImplementationVersion = v
			return n, nil
		case 5:
			v, n, err := consumeString("version.implementation_name", rest)
			if err != nil {
				return 0, err
			}
			r.ImplementationName = v
			return n, nil
		default:
			return skipUnknown("VersionResponse", typ, rest)
		}
	})
	return r, err
}

func unmarshalProtocolError(b []byte) (*ProtocolError, error) {
	e := new(ProtocolError)
	err := fieldIterator("ProtocolError", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("proto_err.id", rest)
			if err != nil {
				return 0, err
			}
			e.Id = uint32(v)
			return n, nil
		case 2:
			v, n, err := consumeVarint("proto_err.type", rest)
			if err != nil {
				return 0, err
			}
			e.Type = ProtocolErrorType(int32(v))
			return n, nil
		case 3:
			v, n, err := consumeString("proto_err.message", rest)
			if err != nil {
				return 0, err
			}
			e.Message = v
			return n, nil
		default:
			return skipUnknown("ProtocolError", typ, rest)
		}
	})
	return e, err
}

func (e *ProtocolError) GetMessage() string { return e.Message }
