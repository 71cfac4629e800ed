package sasshost

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cli/safeexec"

	"github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

// defaultDartSassEmbeddedName is the binary safeexec.LookPath resolves when
// neither Options.DartSassEmbeddedFilename nor $DART_SASS_EMBEDDED_NAME is
// set. Real distributions ship it as dart-sass-embedded or sass-embedded
// depending on release channel; the teacher hardcodes the former.
const defaultDartSassEmbeddedName = "dart-sass-embedded"

// dartSassEmbeddedNameEnv lets callers point at a locally built or
// differently named binary without touching Options, supplementing the
// teacher's compile-time constant (§9 dropped-feature note).
const dartSassEmbeddedNameEnv = "DART_SASS_EMBEDDED_NAME"

// Options configures a Host for its lifetime: Start validates and freezes
// these into a Settings, exactly as the teacher's Options.init does for
// its smaller Options type.
type Options struct {
	// Path to the dart-sass-embedded (or sass-embedded) binary. An absolute
	// filename, or a bare name resolved via $PATH. If empty,
	// $DART_SASS_EMBEDDED_NAME is consulted, then defaultDartSassEmbeddedName.
	DartSassEmbeddedFilename string

	// Timeout bounds each compilation; zero or negative means compilations
	// are not timed. The version handshake uses Timeout too, or 60s when it
	// is zero or negative. Importer and function callbacks are not timed
	// individually.
	Timeout time.Duration

	// GlobalImporters/GlobalFunctions apply to every compilation started on
	// this Host. GlobalImporters come after CompileStringArgs.Importer and
	// ahead of the per-call Importers/IncludePaths; GlobalFunctions are the
	// only functions a compilation can call.
	GlobalImporters []ImporterEntry
	GlobalFunctions map[string]interface{}

	// Default output style for compilations that don't set their own.
	OutputStyle OutputStyle

	// WarningLevel controls which LogEvents the compiler emits: "" (default,
	// all warnings), "quiet-deps" (suppress warnings from dependencies), or
	// "verbose" (do not deduplicate repeated warnings).
	WarningLevel WarningLevel

	// Deprecations partitions named deprecations into fatal/silenced/future
	// sets, mirroring the compiler's own three-way classification (§4.3).
	Deprecations Deprecations

	// Alert, if true, requests ANSI-colored/formatted log output from the
	// compiler in addition to the structured LogEvent fields.
	Alert bool
}

// WarningLevel selects a compiler-wide warning verbosity.
type WarningLevel string

const (
	WarningLevelDefault   WarningLevel = ""
	WarningLevelQuietDeps WarningLevel = "quiet-deps"
	WarningLevelVerbose   WarningLevel = "verbose"
)

// Deprecations partitions deprecation IDs into the compiler's three
// handling buckets (§4.3 CompileRequest fields).
type Deprecations struct {
	Fatal   []string
	Silence []string
	Future  []string
}

// Settings is the frozen, validated form of Options used by every
// compilation a Host runs, built once in Start by Options.settings.
type Settings struct {
	dartSassEmbeddedFilename string
	timeout                  time.Duration
	globalImporters          []ImporterEntry
	globalFunctions          map[string]interface{}
	outputStyle              OutputStyle
	warningLevel             WarningLevel
	deprecations             Deprecations
	alert                    bool
}

func (opts Options) settings() (Settings, error) {
	s := Settings{
		dartSassEmbeddedFilename: opts.DartSassEmbeddedFilename,
		timeout:                  opts.Timeout,
		globalImporters:          opts.GlobalImporters,
		globalFunctions:          opts.GlobalFunctions,
		outputStyle:              opts.OutputStyle,
		warningLevel:             opts.WarningLevel,
		deprecations:             opts.Deprecations,
		alert:                    opts.Alert,
	}
	if s.outputStyle == "" {
		s.outputStyle = OutputStyleExpanded
	}
	if _, ok := embeddedsass.OutputStyle_value[string(s.outputStyle)]; !ok {
		return Settings{}, fmt.Errorf("invalid OutputStyle %q", s.outputStyle)
	}
	switch s.warningLevel {
	case WarningLevelDefault, WarningLevelQuietDeps, WarningLevelVerbose:
	default:
		return Settings{}, fmt.Errorf("invalid WarningLevel %q", s.warningLevel)
	}
	if s.dartSassEmbeddedFilename == "" {
		s.dartSassEmbeddedFilename = os.Getenv(dartSassEmbeddedNameEnv)
	}
	if s.dartSassEmbeddedFilename == "" {
		s.dartSassEmbeddedFilename = defaultDartSassEmbeddedName
	}
	return s, nil
}

// resolveBinary finds the absolute path of the configured compiler binary,
// the way the teacher's Start does via safeexec.LookPath (preferred over
// exec.LookPath for its $PWD-relative-match rejection on Windows).
func (s Settings) resolveBinary() (string, error) {
	if strings.ContainsAny(s.dartSassEmbeddedFilename, `/\`) {
		if _, err := os.Stat(s.dartSassEmbeddedFilename); err != nil {
			return "", fmt.Errorf("dart-sass-embedded: %w", err)
		}
		return s.dartSassEmbeddedFilename, nil
	}
	p, err := safeexec.LookPath(s.dartSassEmbeddedFilename)
	if err != nil {
		return "", fmt.Errorf("dart-sass-embedded: %w", err)
	}
	return p, nil
}

// CompileStringArgs holds the arguments to CompileString.
type CompileStringArgs struct {
	Source string

	// URL identifies the source for diagnostics and import resolution;
	// optional.
	URL string

	// Defaults to SCSS.
	SourceSyntax SourceSyntax

	// Defaults to the Host's Options.OutputStyle.
	OutputStyle OutputStyle

	// Importer, if set, is the first importer consulted for every load in
	// the compilation, ahead of the Host's GlobalImporters and
	// Importers/IncludePaths below.
	Importer ImporterEntry

	// Importers/IncludePaths run after the string importer and the Host's
	// GlobalImporters, in order.
	Importers    []ImporterEntry
	IncludePaths []string

	// EnableSourceMap requests a source map alongside the CSS.
	EnableSourceMap bool
}

// CompileFileArgs holds the arguments to CompileFile.
type CompileFileArgs struct {
	OutputStyle     OutputStyle
	Importers       []ImporterEntry
	IncludePaths    []string
	EnableSourceMap bool
}

func importersFromIncludePaths(paths []string) []ImporterEntry {
	out := make([]ImporterEntry, 0, len(paths))
	for _, p := range paths {
		out = append(out, ImporterEntry{LoadPath: p})
	}
	return out
}

type (
	// OutputStyle selects CSS output formatting.
	OutputStyle string
	// SourceSyntax selects the parser used for a string compilation.
	SourceSyntax string
)

const (
	OutputStyleExpanded   OutputStyle = "EXPANDED"
	OutputStyleCompressed OutputStyle = "COMPRESSED"
	OutputStyleNested     OutputStyle = "NESTED"
	OutputStyleCompact    OutputStyle = "COMPACT"

	SourceSyntaxSCSS SourceSyntax = "SCSS"
	SourceSyntaxSASS SourceSyntax = "INDENTED"
	SourceSyntaxCSS  SourceSyntax = "CSS"
)

// ParseOutputStyle converts s into an OutputStyle, case-insensitively,
// falling back to OutputStyleExpanded for an unrecognized value.
func ParseOutputStyle(s string) OutputStyle {
	switch OutputStyle(strings.ToUpper(s)) {
	case OutputStyleNested:
		return OutputStyleNested
	case OutputStyleCompact:
		return OutputStyleCompact
	case OutputStyleCompressed:
		return OutputStyleCompressed
	case OutputStyleExpanded:
		return OutputStyleExpanded
	default:
		return OutputStyleExpanded
	}
}

// ParseSourceSyntax converts s into a SourceSyntax, case-insensitively,
// falling back to SourceSyntaxSCSS for an unrecognized value.
func ParseSourceSyntax(s string) SourceSyntax {
	switch SourceSyntax(strings.ToUpper(s)) {
	case SourceSyntaxSCSS:
		return SourceSyntaxSCSS
	case SourceSyntaxSASS, "SASS":
		return SourceSyntaxSASS
	case SourceSyntaxCSS:
		return SourceSyntaxCSS
	default:
		return SourceSyntaxSCSS
	}
}

func wireOutputStyle(s OutputStyle) embeddedsass.OutputStyle {
	return embeddedsass.OutputStyle(embeddedsass.OutputStyle_value[string(s)])
}

func wireSyntax(s SourceSyntax) embeddedsass.Syntax {
	switch s {
	case SourceSyntaxSASS:
		return embeddedsass.Syntax_INDENTED
	case SourceSyntaxCSS:
		return embeddedsass.Syntax_CSS
	default:
		return embeddedsass.Syntax_SCSS
	}
}
