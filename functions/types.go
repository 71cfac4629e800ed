// Package functions implements the protobuf-to-Sass-value mapping (§4.4)
// and the host function registry (§4.3 FunctionCallRequest routing) that
// let Go functions participate in a Sass compilation.
package functions

import "fmt"

// Identifier is an unquoted Sass string, as opposed to a quoted Go string.
type Identifier string

type Number struct {
	Value        float64
	Numerators   []string
	Denominators []string
}

type RGBColor struct {
	Red   uint32
	Green uint32
	Blue  uint32
	Alpha float64
}

func (c *RGBColor) String() string {
	if c.Alpha == 0 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.Red, c.Green, c.Blue)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %0.2f)", c.Red, c.Green, c.Blue, c.Alpha)
}

type HSLColor struct{ Hue, Saturation, Lightness, Alpha float64 }

func (c *HSLColor) String() string {
	if c.Alpha == 0 {
		return fmt.Sprintf("hsl(%f, %f, %f)", c.Hue, c.Saturation, c.Lightness)
	}
	return fmt.Sprintf("hsla(%f, %f, %f, %0.2f)", c.Hue, c.Saturation, c.Lightness, c.Alpha)
}

type HWBColor struct{ Hue, Whiteness, Blackness, Alpha float64 }

func (c *HWBColor) String() string {
	if c.Alpha == 0 {
		return fmt.Sprintf("hwb(%f, %f, %f)", c.Hue, c.Whiteness, c.Blackness)
	}
	return fmt.Sprintf("hwba(%f, %f, %f, %0.2f)", c.Hue, c.Whiteness, c.Blackness, c.Alpha)
}

// CompilerFunction is an opaque reference to a function defined in Sass
// itself, received as an argument and only meaningful passed back to the
// compiler (§4.4: "Compiler functions cross the wire as opaque IDs").
type CompilerFunction struct{ ID uint32 }

// HostFunction lets a Go function pass another Go function back to the
// compiler by reference (e.g. as a higher-order argument to a Sass
// function). ID is sent on the wire as given; this package does not assign
// one.
type HostFunction struct {
	ID uint32

	Signature string
}

// ArgumentList is a Sass argument list: positional Contents plus keyword
// Keywords, tagged with the wire ID the compiler assigned it. Reading
// Keywords marks the list as accessed (§4.3, §8 property 7); reading only
// Contents does not, mirroring the real protocol's rule that only keyword
// access needs to be reported back so the compiler can warn about
// never-consumed keyword arguments.
type ArgumentList struct {
	id       uint32
	monitor  *ArgAccessMonitor
	Contents []interface{}
	keywords map[string]interface{}
}

// Keywords returns the argument list's keyword arguments, marking this
// list's ID as accessed.
func (a *ArgumentList) Keywords() map[string]interface{} {
	if a.monitor != nil && a.id != 0 {
		a.monitor.record(a.id)
	}
	return a.keywords
}

// ID returns the wire ID the compiler assigned this argument list. Host-
// authored argument lists (built by Go code, not decoded from the wire)
// always have ID 0, which MarshalValue always re-encodes as 0 (§4.4:
// "encoding always writes id = 0 for host-authored lists").
func (a *ArgumentList) ID() uint32 { return a.id }

// ArgAccessMonitor collects the wire IDs of argument lists whose keywords
// were read during one FunctionCallRequest's argument decoding. The
// collected set becomes that response's accessed_argument_lists.
type ArgAccessMonitor struct {
	seen    map[uint32]bool
	ordered []uint32
}

func NewArgAccessMonitor() *ArgAccessMonitor {
	return &ArgAccessMonitor{seen: make(map[uint32]bool)}
}

func (m *ArgAccessMonitor) record(id uint32) {
	if id == 0 || m.seen[id] {
		return
	}
	m.seen[id] = true
	m.ordered = append(m.ordered, id)
}

// Accessed returns the distinct, non-zero argument-list IDs accessed so
// far, in first-access order.
func (m *ArgAccessMonitor) Accessed() []uint32 {
	out := make([]uint32, len(m.ordered))
	copy(out, m.ordered)
	return out
}
