package sasshost_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	sasshost "github.com/sass-contrib/embedded-host-go"
)

type testImporter struct {
	name    string
	content string
	syntax  sasshost.SourceSyntax

	failOnCanonicalize bool
	failOnLoad         bool
}

func (t testImporter) CanonicalizeURL(url string, fromImport bool, containingURL string) (string, error) {
	if t.failOnCanonicalize {
		return "", errors.New("failed")
	}
	if url != t.name {
		return "", nil
	}
	return "file:/my" + t.name + "/scss/" + url + "_myfile.scss", nil
}

func (t testImporter) Load(url string) (sasshost.ImportResult, error) {
	if t.failOnLoad {
		return sasshost.ImportResult{}, errors.New("failed")
	}
	if !strings.Contains(url, t.name) {
		panic("protocol error")
	}
	return sasshost.ImportResult{Contents: t.content, Syntax: t.syntax}, nil
}

func newTestHost(t *testing.T, opts sasshost.Options) (*sasshost.Host, func()) {
	t.Helper()
	opts.DartSassEmbeddedFilename = testBinaryName()
	host, err := sasshost.Start(context.Background(), opts)
	if err != nil {
		t.Skipf("no dart-sass-embedded binary available: %s", err)
	}
	return host, func() {
		if err := host.Shutdown(context.Background()); err != nil {
			t.Errorf("shutdown: %s", err)
		}
	}
}

func testBinaryName() string {
	if name := os.Getenv("DART_SASS_EMBEDDED_TEST_BINARY"); name != "" {
		return name
	}
	return "dart-sass-embedded"
}

func TestCompileStringVariants(t *testing.T) {
	c := qt.New(t)

	colorsImporter := testImporter{name: "colors", content: `$white: #fff`}
	indentedImporter := testImporter{
		name:   "main",
		content: "\n#main\n    color: blue\n",
		syntax: sasshost.SourceSyntaxSASS,
	}

	for _, test := range []struct {
		name       string
		args       sasshost.CompileStringArgs
		expectCSS  string
		shouldFail bool
	}{
		{
			name:      "output style compressed",
			args:      sasshost.CompileStringArgs{Source: "div { color: #ccc; }", OutputStyle: sasshost.OutputStyleCompressed},
			expectCSS: "div{color:#ccc}",
		},
		{
			name: "indented syntax",
			args: sasshost.CompileStringArgs{
				Source:       "$font: sans-serif\nbody\n  font: $font\n",
				SourceSyntax: sasshost.SourceSyntaxSASS,
				OutputStyle:  sasshost.OutputStyleCompressed,
			},
			expectCSS: "body{font:sans-serif}",
		},
		{
			name:      "importer",
			args:      sasshost.CompileStringArgs{Source: "@import \"colors\";\ndiv { p { color: $white; } }", Importer: sasshost.ImporterEntry{Importer: colorsImporter}},
			expectCSS: "div p {\n  color: #fff;\n}",
		},
		{
			name:      "importer with indented content",
			args:      sasshost.CompileStringArgs{Source: "@import \"main\";\n", Importer: sasshost.ImporterEntry{Importer: indentedImporter}},
			expectCSS: "#main {\n  color: blue;\n}",
		},
		{
			name:       "undefined variable",
			args:       sasshost.CompileStringArgs{Source: "div { color: $white; }"},
			shouldFail: true,
		},
		{
			name:       "import not found",
			args:       sasshost.CompileStringArgs{Source: `@import "foo";`},
			shouldFail: true,
		},
		{
			name:       "error in importer CanonicalizeURL",
			args:       sasshost.CompileStringArgs{Source: `@import "colors";`, Importer: sasshost.ImporterEntry{Importer: testImporter{name: "colors", failOnCanonicalize: true}}},
			shouldFail: true,
		},
		{
			name:       "@error rule",
			args:       sasshost.CompileStringArgs{Source: `@error "deliberate failure";`},
			shouldFail: true,
		},
	} {
		test := test
		c.Run(test.name, func(c *qt.C) {
			host, clean := newTestHost(t, sasshost.Options{})
			defer clean()

			result, err := host.CompileString(context.Background(), test.args)
			if test.shouldFail {
				c.Assert(err, qt.Not(qt.IsNil))
				// The supervisor should remain usable after a local compile error.
				_, err2 := host.CompileString(context.Background(), sasshost.CompileStringArgs{Source: "div{color:red}"})
				c.Assert(err2, qt.IsNil)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(result.CSS, qt.Equals, test.expectCSS)
		})
	}
}

func TestCompileStringSourceMap(t *testing.T) {
	c := qt.New(t)
	host, clean := newTestHost(t, sasshost.Options{})
	defer clean()

	result, err := host.CompileString(context.Background(), sasshost.CompileStringArgs{
		Source:          "div{color:blue;}",
		URL:             "file://myproject/main.scss",
		OutputStyle:     sasshost.OutputStyleCompressed,
		EnableSourceMap: true,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(result.CSS, qt.Equals, "div{color:blue}")
	c.Assert(result.SourceMap, qt.Not(qt.Equals), "")
}

func TestCompileStringParallel(t *testing.T) {
	c := qt.New(t)
	host, clean := newTestHost(t, sasshost.Options{})
	defer clean()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(num int) {
			defer wg.Done()
			for j := 0; j < 8; j++ {
				src := fmt.Sprintf("$c: #%03d;\ndiv { color: $c; }", num)
				result, err := host.CompileString(context.Background(), sasshost.CompileStringArgs{Source: src})
				c.Check(err, qt.IsNil)
				c.Check(result.CSS, qt.Equals, fmt.Sprintf("div {\n  color: #%03d;\n}", num))
				if c.Failed() {
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestHostFaultRestartsCompilerProcess(t *testing.T) {
	c := qt.New(t)
	host, clean := newTestHost(t, sasshost.Options{})
	defer clean()

	_, err := host.CompileString(context.Background(), sasshost.CompileStringArgs{Source: "div{color:red}"})
	c.Assert(err, qt.IsNil)

	firstPID := host.CompilerProcessID()
	c.Assert(firstPID, qt.Not(qt.Equals), -1)

	c.Assert(host.Reinit(context.Background()), qt.IsNil)

	secondPID := host.CompilerProcessID()
	c.Assert(secondPID, qt.Not(qt.Equals), firstPID)

	_, err = host.CompileString(context.Background(), sasshost.CompileStringArgs{Source: "div{color:red}"})
	c.Assert(err, qt.IsNil)
}

func TestHostVersions(t *testing.T) {
	c := qt.New(t)
	host, clean := newTestHost(t, sasshost.Options{})
	defer clean()

	versions, err := host.Versions()
	c.Assert(err, qt.IsNil)
	c.Assert(versions.ProtocolVersion, qt.Not(qt.Equals), "")
}

func TestCompileStringWarningMessages(t *testing.T) {
	c := qt.New(t)
	host, clean := newTestHost(t, sasshost.Options{})
	defer clean()

	result, err := host.CompileString(context.Background(), sasshost.CompileStringArgs{
		Source: `@warn "careful"; div { color: red; }`,
	})
	c.Assert(err, qt.IsNil)

	want := []sasshost.CompilerMessage{
		{Kind: sasshost.MessageWarning, Message: "careful"},
	}
	// Span/StackTrace/Formatted vary with the installed compiler's
	// diagnostics formatting, so the diff ignores them and checks only the
	// fields this driver itself controls (Kind, Message).
	diff := cmp.Diff(want, result.Messages, cmpopts.IgnoreFields(sasshost.CompilerMessage{}, "Span", "StackTrace", "Formatted"))
	c.Assert(diff, qt.Equals, "")
}

func TestHostShutdownRejectsFurtherCompiles(t *testing.T) {
	c := qt.New(t)
	host, clean := newTestHost(t, sasshost.Options{})
	clean()

	_, err := host.CompileString(context.Background(), sasshost.CompileStringArgs{Source: "div{color:red}"})
	c.Assert(errors.Is(err, sasshost.ErrShutdown), qt.Equals, true)
}
