package sasshost

import (
	"fmt"

	"github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

// Importer resolves and loads `@use`/`@import`/`@forward` targets whose
// content only the host knows about (§6 "Importer contract (to host)").
type Importer interface {
	// CanonicalizeURL returns the canonical form of ruleURL if this
	// importer can resolve it, or ("", nil) to decline. containingURL is
	// the url of the stylesheet doing the importing, if any (§9: pinned
	// to Option<URL>, may be absent on v2+).
	CanonicalizeURL(ruleURL string, fromImport bool, containingURL string) (string, error)
	// Load returns the contents of a URL this importer has already
	// canonicalized.
	Load(canonicalURL string) (ImportResult, error)
}

// FilesystemImporter resolves a URL to a file:// URL that the compiler
// reads itself (§6 "Filesystem-importer contract").
type FilesystemImporter interface {
	Resolve(ruleURL string, fromImport bool, containingURL string) (fileURL string, err error)
}

// ImportResult is returned by Importer.Load for a resolved URL.
type ImportResult struct {
	Contents     string
	Syntax       SourceSyntax
	SourceMapURL string
}

// ImporterEntry is the tagged variant §3 calls ImportResolver: exactly one
// field is set. The name avoids colliding with the Importer interface.
type ImporterEntry struct {
	LoadPath            string
	Importer             Importer
	FilesystemImporter   FilesystemImporter
	NodePackageImporter string
}

func (e ImporterEntry) kind() string {
	switch {
	case e.Importer != nil:
		return "importer"
	case e.FilesystemImporter != nil:
		return "file-importer"
	case e.NodePackageImporter != "":
		return "node-package-importer"
	default:
		return "load-path"
	}
}

// effectiveImporters builds the per-compilation importer list §4.3
// describes: the importer entries in order, each assigned a local id
// starting at baseImporterID. stringImporter, if non-nil, always comes
// first (it backs the inline string passed to CompileString).
type effectiveImporters struct {
	entries []ImporterEntry
}

func newEffectiveImporters(stringImporter *ImporterEntry, global, perCompile []ImporterEntry) *effectiveImporters {
	var all []ImporterEntry
	if stringImporter != nil {
		all = append(all, *stringImporter)
	}
	all = append(all, global...)
	all = append(all, perCompile...)
	return &effectiveImporters{entries: all}
}

func (ei *effectiveImporters) len() int { return len(ei.entries) }

// wireImporters renders the list into the protobuf Importer messages sent
// on CompileRequest.importers, assigning each a local importer_id.
func (ei *effectiveImporters) wireImporters() []*embeddedsass.InboundMessage_CompileRequest_Importer {
	out := make([]*embeddedsass.InboundMessage_CompileRequest_Importer, 0, len(ei.entries))
	for i, e := range ei.entries {
		id := baseImporterID + uint32(i)
		var imp embeddedsass.InboundMessage_CompileRequest_Importer
		switch {
		case e.Importer != nil:
			imp.Importer = &embeddedsass.InboundMessage_CompileRequest_Importer_ImporterId{ImporterId: id}
		case e.FilesystemImporter != nil:
			imp.Importer = &embeddedsass.InboundMessage_CompileRequest_Importer_FileImporterId{FileImporterId: id}
		case e.NodePackageImporter != "":
			imp.Importer = &embeddedsass.InboundMessage_CompileRequest_Importer_NodePackageImporter{NodePackageImporter: e.NodePackageImporter}
		default:
			imp.Importer = &embeddedsass.InboundMessage_CompileRequest_Importer_Path{Path: e.LoadPath}
		}
		out = append(out, &imp)
	}
	return out
}

// resolve validates importerID against this compilation's list and the
// expected message kind, per §4.3's "Importer ID validation" and §8
// property 6: out-of-range or kind-mismatched ids are protocol errors,
// and the caller must not invoke any user callback in that case.
func (ei *effectiveImporters) resolve(importerID uint32, wantKind string) (ImporterEntry, error) {
	if importerID < baseImporterID || int(importerID-baseImporterID) >= len(ei.entries) {
		return ImporterEntry{}, fmt.Errorf("importer id %d out of range [%d, %d)", importerID, baseImporterID, baseImporterID+uint32(len(ei.entries)))
	}
	e := ei.entries[importerID-baseImporterID]
	switch wantKind {
	case "canonicalize":
		if e.Importer == nil && e.FilesystemImporter == nil && e.NodePackageImporter == "" && e.LoadPath == "" {
			return ImporterEntry{}, fmt.Errorf("importer id %d has no resolver", importerID)
		}
	case "import":
		if e.Importer == nil {
			return ImporterEntry{}, fmt.Errorf("importer id %d (%s) cannot handle ImportRequest", importerID, e.kind())
		}
	case "file-import":
		if e.FilesystemImporter == nil {
			return ImporterEntry{}, fmt.Errorf("importer id %d (%s) cannot handle FileImportRequest", importerID, e.kind())
		}
	}
	return e, nil
}
