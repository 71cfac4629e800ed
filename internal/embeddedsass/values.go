package embeddedsass

import "google.golang.org/protobuf/encoding/protowire"

// SingletonValue is the wire representation of the three Sass singletons.
// TRUE is declared first so it is also the proto3 zero value: code that
// calls GetSingleton() on a Value that isn't a singleton at all gets TRUE
// back, never NULL, so callers can safely compare against
// SingletonValue_NULL to test "is this value null" without a type switch.
type SingletonValue int32

const (
	SingletonValue_TRUE SingletonValue = iota
	SingletonValue_FALSE
	SingletonValue_NULL
)

// ListSeparator is the wire representation of a Sass list's separator.
type ListSeparator int32

const (
	ListSeparator_COMMA ListSeparator = iota
	ListSeparator_SLASH
	ListSeparator_SPACE
	ListSeparator_UNDECIDED
)

var listSeparatorName = map[int32]string{0: "COMMA", 1: "SLASH", 2: "SPACE", 3: "UNDECIDED"}

func (s ListSeparator) String() string {
	if n, ok := listSeparatorName[int32(s)]; ok {
		return n
	}
	return "UNRECOGNIZED"
}

// CalculationOperator is the wire representation of a binary calculation
// operator.
type CalculationOperator int32

const (
	CalculationOperator_PLUS CalculationOperator = iota
	CalculationOperator_MINUS
	CalculationOperator_TIMES
	CalculationOperator_DIVIDE
)

// Value is the Sass value oneof. Value is exactly the `Value` field of the
// real protocol's `Value` message: the concrete Value_* types implement
// isValue_Value the way protoc-gen-go generates oneof members.
type Value struct {
	Value isValue_Value
}

type isValue_Value interface{ isValue_Value() }

type Value_String_ struct{ String_ *Value_String }
type Value_Number_ struct{ Number *Value_Number }
type Value_RgbColor_ struct{ RgbColor *Value_RgbColor }
type Value_HslColor_ struct{ HslColor *Value_HslColor }
type Value_HwbColor_ struct{ HwbColor *Value_HwbColor }
type Value_List_ struct{ List *Value_List }
type Value_Map_ struct{ Map *Value_Map }
type Value_Singleton struct{ Singleton SingletonValue }
type Value_CompilerFunction_ struct{ CompilerFunction *Value_CompilerFunction }
type Value_HostFunction_ struct{ HostFunction *Value_HostFunction }
type Value_ArgumentList_ struct{ ArgumentList *Value_ArgumentList }
type Value_Calculation_ struct{ Calculation *Value_Calculation }

func (*Value_String_) isValue_Value()           {}
func (*Value_Number_) isValue_Value()           {}
func (*Value_RgbColor_) isValue_Value()         {}
func (*Value_HslColor_) isValue_Value()         {}
func (*Value_HwbColor_) isValue_Value()         {}
func (*Value_List_) isValue_Value()             {}
func (*Value_Map_) isValue_Value()              {}
func (*Value_Singleton) isValue_Value()         {}
func (*Value_CompilerFunction_) isValue_Value() {}
func (*Value_HostFunction_) isValue_Value()     {}
func (*Value_ArgumentList_) isValue_Value()     {}
func (*Value_Calculation_) isValue_Value()      {}

func (v *Value) GetSingleton() SingletonValue {
	if x, ok := v.GetValue().(*Value_Singleton); ok {
		return x.Singleton
	}
	return SingletonValue_TRUE
}

func (v *Value) GetValue() isValue_Value {
	if v == nil {
		return nil
	}
	return v.Value
}

func (v *Value) GetString_() *Value_String {
	if x, ok := v.GetValue().(*Value_String_); ok {
		return x.String_
	}
	return nil
}

func (v *Value) GetArgumentList() *Value_ArgumentList {
	if x, ok := v.GetValue().(*Value_ArgumentList_); ok {
		return x.ArgumentList
	}
	return nil
}

type Value_String struct {
	Text   string
	Quoted bool
}

type Value_Number struct {
	Value        float64
	Numerators   []string
	Denominators []string
}

type Value_RgbColor struct {
	Red   uint32
	Green uint32
	Blue  uint32
	Alpha float64
}

type Value_HslColor struct {
	Hue        float64
	Saturation float64
	Lightness  float64
	Alpha      float64
}

type Value_HwbColor struct {
	Hue       float64
	Whiteness float64
	Blackness float64
	Alpha     float64
}

// PreferredColorFormat enumerates the three wire color variants. Nothing in
// this module reads it: functions.MarshalValue picks the wire variant from
// the Go color type it is given.
type PreferredColorFormat int32

const (
	PreferredColorFormat_RGB PreferredColorFormat = iota
	PreferredColorFormat_HSL
	PreferredColorFormat_HWB
)

type Value_List struct {
	Separator   ListSeparator
	HasBrackets bool
	Contents    []*Value
}

type Value_Map struct {
	Entries []*Value_Map_Entry
}

type Value_Map_Entry struct {
	Key   *Value
	Value *Value
}

type Value_CompilerFunction struct {
	Id uint32
}

type Value_HostFunction struct {
	Id        uint32
	Signature string
}

// Value_ArgumentList is a Sass argument list: a positional Value list plus
// keyword arguments, tagged with the wire id the compiler assigned it so a
// function body that reads its keywords can be echoed back in
// accessed_argument_lists (§4.3, §8 property 7).
type Value_ArgumentList struct {
	Id        uint32
	Contents  []*Value
	Keywords  map[string]*Value
	Separator ListSeparator
}

type Value_Calculation struct {
	Name      string
	Arguments []*CalculationValue
}

// CalculationValue is the recursive calculation-argument oneof: a plain
// number/value, an unquoted string, a string interpolation, or a nested
// binary operation.
type CalculationValue struct {
	Value isCalculationValue_Value
}

type isCalculationValue_Value interface{ isCalculationValue_Value() }

type CalculationValue_Number struct{ Number *Value_Number }
type CalculationValue_String_ struct{ String_ string }
type CalculationValue_Interpolation struct{ Interpolation string }
type CalculationValue_Operation struct{ Operation *CalculationOperation }

func (*CalculationValue_Number) isCalculationValue_Value()        {}
func (*CalculationValue_String_) isCalculationValue_Value()       {}
func (*CalculationValue_Interpolation) isCalculationValue_Value() {}
func (*CalculationValue_Operation) isCalculationValue_Value()     {}

type CalculationOperation struct {
	Operator CalculationOperator
	Left     *CalculationValue
	Right    *CalculationValue
}

// --- marshal ---

func (v *Value) Marshal() []byte {
	if v == nil || v.Value == nil {
		return nil
	}
	var b []byte
	switch x := v.Value.(type) {
	case *Value_String_:
		b = appendMessage(b, 1, x.String_.marshal())
	case *Value_Number_:
		b = appendMessage(b, 2, x.Number.marshal())
	case *Value_RgbColor_:
		b = appendMessage(b, 3, x.RgbColor.marshal())
	case *Value_HslColor_:
		b = appendMessage(b, 4, x.HslColor.marshal())
	case *Value_HwbColor_:
		b = appendMessage(b, 5, x.HwbColor.marshal())
	case *Value_List_:
		b = appendMessage(b, 6, x.List.marshal())
	case *Value_Map_:
		b = appendMessage(b, 7, x.Map.marshal())
	case *Value_Singleton:
		b = appendEnum(b, 8, int32(x.Singleton))
	case *Value_CompilerFunction_:
		b = appendMessage(b, 9, x.CompilerFunction.marshal())
	case *Value_HostFunction_:
		b = appendMessage(b, 10, x.HostFunction.marshal())
	case *Value_ArgumentList_:
		b = appendMessage(b, 11, x.ArgumentList.marshal())
	case *Value_Calculation_:
		b = appendMessage(b, 12, x.Calculation.marshal())
	}
	return b
}

func (s *Value_String) marshal() []byte {
	var b []byte
	b = appendString(b, 1, s.Text)
	b = appendBool(b, 2, s.Quoted)
	return b
}

func (n *Value_Number) marshal() []byte {
	var b []byte
	b = appendDouble(b, 1, n.Value)
	b = appendStrings(b, 2, n.Numerators)
	b = appendStrings(b, 3, n.Denominators)
	return b
}

func (c *Value_RgbColor) marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, c.Red)
	b = appendUint32(b, 2, c.Green)
	b = appendUint32(b, 3, c.Blue)
	b = appendDouble(b, 4, c.Alpha)
	return b
}

func (c *Value_HslColor) marshal() []byte {
	var b []byte
	b = appendDouble(b, 1, c.Hue)
	b = appendDouble(b, 2, c.Saturation)
	b = appendDouble(b, 3, c.Lightness)
	b = appendDouble(b, 4, c.Alpha)
	return b
}

func (c *Value_HwbColor) marshal() []byte {
	var b []byte
	b = appendDouble(b, 1, c.Hue)
	b = appendDouble(b, 2, c.Whiteness)
	b = appendDouble(b, 3, c.Blackness)
	b = appendDouble(b, 4, c.Alpha)
	return b
}

func (l *Value_List) marshal() []byte {
	var b []byte
	b = appendEnum(b, 1, int32(l.Separator))
	b = appendBool(b, 2, l.HasBrackets)
	for _, c := range l.Contents {
		b = appendMessage(b, 3, c.Marshal())
	}
	return b
}

func (m *Value_Map) marshal() []byte {
	var b []byte
	for _, e := range m.Entries {
		b = appendMessage(b, 1, e.marshal())
	}
	return b
}

func (e *Value_Map_Entry) marshal() []byte {
	var b []byte
	b = appendMessage(b, 1, e.Key.Marshal())
	b = appendMessage(b, 2, e.Value.Marshal())
	return b
}

func (f *Value_CompilerFunction) marshal() []byte {
	return appendUint32(nil, 1, f.Id)
}

func (f *Value_HostFunction) marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, f.Id)
	b = appendString(b, 2, f.Signature)
	return b
}

func (a *Value_ArgumentList) marshal() []byte {
	var b []byte
	b = appendUint32(b, 1, a.Id)
	for _, c := range a.Contents {
		b = appendMessage(b, 2, c.Marshal())
	}
	for k, v := range a.Keywords {
		var e []byte
		e = appendString(e, 1, k)
		e = appendMessage(e, 2, v.Marshal())
		b = appendMessage(b, 3, e)
	}
	b = appendEnum(b, 4, int32(a.Separator))
	return b
}

func (c *Value_Calculation) marshal() []byte {
	var b []byte
	b = appendString(b, 1, c.Name)
	for _, a := range c.Arguments {
		b = appendMessage(b, 2, a.marshal())
	}
	return b
}

func (c *CalculationValue) marshal() []byte {
	if c == nil || c.Value == nil {
		return nil
	}
	var b []byte
	switch x := c.Value.(type) {
	case *CalculationValue_Number:
		b = appendMessage(b, 1, x.Number.marshal())
	case *CalculationValue_String_:
		b = appendString(b, 2, x.String_)
	case *CalculationValue_Interpolation:
		b = appendString(b, 3, x.Interpolation)
	case *CalculationValue_Operation:
		b = appendMessage(b, 4, x.Operation.marshal())
	}
	return b
}

func (o *CalculationOperation) marshal() []byte {
	var b []byte
	b = appendEnum(b, 1, int32(o.Operator))
	b = appendMessage(b, 2, o.Left.marshal())
	b = appendMessage(b, 3, o.Right.marshal())
	return b
}

// --- unmarshal ---

func UnmarshalValue(b []byte) (*Value, error) {
	v := new(Value)
	err := fieldIterator("Value", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			body, n, err := consumeBytes("Value.string", rest)
			if err != nil {
				return 0, err
			}
			s, err := unmarshalValueString(body)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_String_{String_: s}
			return n, nil
		case 2:
			body, n, err := consumeBytes("Value.number", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalValueNumber(body)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_Number_{Number: x}
			return n, nil
		case 3:
			body, n, err := consumeBytes("Value.rgb_color", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalRgbColor(body)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_RgbColor_{RgbColor: x}
			return n, nil
		case 4:
			body, n, err := consumeBytes("Value.hsl_color", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalHslColor(body)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_HslColor_{HslColor: x}
			return n, nil
		case 5:
			body, n, err := consumeBytes("Value.hwb_color", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalHwbColor(body)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_HwbColor_{HwbColor: x}
			return n, nil
		case 6:
			body, n, err := consumeBytes("Value.list", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalList(body)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_List_{List: x}
			return n, nil
		case 7:
			body, n, err := consumeBytes("Value.map", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalMap(body)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_Map_{Map: x}
			return n, nil
		case 8:
			e, n, err := consumeVarint("Value.singleton", rest)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_Singleton{Singleton: SingletonValue(int32(e))}
			return n, nil
		case 9:
			body, n, err := consumeBytes("Value.compiler_function", rest)
			if err != nil {
				return 0, err
			}
			id, _, err := consumeVarintField("Value.compiler_function", body, 1)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_CompilerFunction_{CompilerFunction: &Value_CompilerFunction{Id: uint32(id)}}
			return n, nil
		case 10:
			body, n, err := consumeBytes("Value.host_function", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalHostFunction(body)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_HostFunction_{HostFunction: x}
			return n, nil
		case 11:
			body, n, err := consumeBytes("Value.argument_list", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalArgumentList(body)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_ArgumentList_{ArgumentList: x}
			return n, nil
		case 12:
			body, n, err := consumeBytes("Value.calculation", rest)
			if err != nil {
				return 0, err
			}
			x, err := unmarshalCalculation(body)
			if err != nil {
				return 0, err
			}
			v.Value = &Value_Calculation_{Calculation: x}
			return n, nil
		default:
			return skipUnknown("Value", typ, rest)
		}
	})
	return v, err
}

func skipUnknown(ctx string, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(0, typ, b)
	if n < 0 {
		return 0, protocolErrf(ctx, "bad field value: %w", protowire.ParseError(n))
	}
	return n, nil
}

func consumeVarintField(ctx string, b []byte, wantField protowire.Number) (uint64, int, error) {
	var value uint64
	err := fieldIterator(ctx, b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		if num == wantField {
			v, n, err := consumeVarint(ctx, rest)
			if err != nil {
				return 0, err
			}
			value = v
			return n, nil
		}
		return skipUnknown(ctx, typ, rest)
	})
	return value, 0, err
}

func unmarshalValueString(b []byte) (*Value_String, error) {
	s := new(Value_String)
	err := fieldIterator("Value.String", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeString("Value.String.text", rest)
			if err != nil {
				return 0, err
			}
			s.Text = v
			return n, nil
		case 2:
			v, n, err := consumeVarint("Value.String.quoted", rest)
			if err != nil {
				return 0, err
			}
			s.Quoted = v != 0
			return n, nil
		default:
			return skipUnknown("Value.String", typ, rest)
		}
	})
	return s, err
}

func unmarshalValueNumber(b []byte) (*Value_Number, error) {
	n := new(Value_Number)
	err := fieldIterator("Value.Number", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, c, err := consumeFixed64("Value.Number.value", rest)
			if err != nil {
				return 0, err
			}
			n.Value = v
			return c, nil
		case 2:
			v, c, err := consumeString("Value.Number.numerators", rest)
			if err != nil {
				return 0, err
			}
			n.Numerators = append(n.Numerators, v)
			return c, nil
		case 3:
			v, c, err := consumeString("Value.Number.denominators", rest)
			if err != nil {
				return 0, err
			}
			n.Denominators = append(n.Denominators, v)
			return c, nil
		default:
			return skipUnknown("Value.Number", typ, rest)
		}
	})
	return n, err
}

func unmarshalRgbColor(b []byte) (*Value_RgbColor, error) {
	c := new(Value_RgbColor)
	err := fieldIterator("Value.RgbColor", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("rgb.red", rest)
			if err != nil {
				return 0, err
			}
			c.Red = uint32(v)
			return n, nil
		case 2:
			v, n, err := consumeVarint("rgb.green", rest)
			if err != nil {
				return 0, err
			}
			c.Green = uint32(v)
			return n, nil
		case 3:
			v, n, err := consumeVarint("rgb.blue", rest)
			if err != nil {
				return 0, err
			}
			c.Blue = uint32(v)
			return n, nil
		case 4:
			v, n, err := consumeFixed64("rgb.alpha", rest)
			if err != nil {
				return 0, err
			}
			c.Alpha = v
			return n, nil
		default:
			return skipUnknown("Value.RgbColor", typ, rest)
		}
	})
	return c, err
}

func unmarshalHslColor(b []byte) (*Value_HslColor, error) {
	c := new(Value_HslColor)
	fields := []*float64{&c.Hue, &c.Saturation, &c.Lightness, &c.Alpha}
	err := fieldIterator("Value.HslColor", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		if num >= 1 && int(num) <= len(fields) {
			v, n, err := consumeFixed64("hsl", rest)
			if err != nil {
				return 0, err
			}
			*fields[num-1] = v
			return n, nil
		}
		return skipUnknown("Value.HslColor", typ, rest)
	})
	return c, err
}

func unmarshalHwbColor(b []byte) (*Value_HwbColor, error) {
	c := new(Value_HwbColor)
	fields := []*float64{&c.Hue, &c.Whiteness, &c.Blackness, &c.Alpha}
	err := fieldIterator("Value.HwbColor", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		if num >= 1 && int(num) <= len(fields) {
			v, n, err := consumeFixed64("hwb", rest)
			if err != nil {
				return 0, err
			}
			*fields[num-1] = v
			return n, nil
		}
		return skipUnknown("Value.HwbColor", typ, rest)
	})
	return c, err
}

func unmarshalList(b []byte) (*Value_List, error) {
	l := new(Value_List)
	err := fieldIterator("Value.List", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			e, n, err := consumeVarint("list.separator", rest)
			if err != nil {
				return 0, err
			}
			if e > 3 {
				return 0, protocolErrf("Value.List", "unrecognized separator %d", e)
			}
			l.Separator = ListSeparator(int32(e))
			return n, nil
		case 2:
			v, n, err := consumeVarint("list.has_brackets", rest)
			if err != nil {
				return 0, err
			}
			l.HasBrackets = v != 0
			return n, nil
		case 3:
			body, n, err := consumeBytes("list.contents", rest)
			if err != nil {
				return 0, err
			}
			v, err := UnmarshalValue(body)
			if err != nil {
				return 0, err
			}
			l.Contents = append(l.Contents, v)
			return n, nil
		default:
			return skipUnknown("Value.List", typ, rest)
		}
	})
	return l, err
}

func unmarshalMap(b []byte) (*Value_Map, error) {
	m := new(Value_Map)
	err := fieldIterator("Value.Map", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		if num != 1 {
			return skipUnknown("Value.Map", typ, rest)
		}
		body, n, err := consumeBytes("map.entries", rest)
		if err != nil {
			return 0, err
		}
		e, err := unmarshalMapEntry(body)
		if err != nil {
			return 0, err
		}
		m.Entries = append(m.Entries, e)
		return n, nil
	})
	return m, err
}

func unmarshalMapEntry(b []byte) (*Value_Map_Entry, error) {
	e := new(Value_Map_Entry)
	err := fieldIterator("Value.Map.Entry", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			body, n, err := consumeBytes("entry.key", rest)
			if err != nil {
				return 0, err
			}
			v, err := UnmarshalValue(body)
			if err != nil {
				return 0, err
			}
			e.Key = v
			return n, nil
		case 2:
			body, n, err := consumeBytes("entry.value", rest)
			if err != nil {
				return 0, err
			}
			v, err := UnmarshalValue(body)
			if err != nil {
				return 0, err
			}
			e.Value = v
			return n, nil
		default:
			return skipUnknown("Value.Map.Entry", typ, rest)
		}
	})
	return e, err
}

func unmarshalHostFunction(b []byte) (*Value_HostFunction, error) {
	f := new(Value_HostFunction)
	err := fieldIterator("Value.HostFunction", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("host_function.id", rest)
			if err != nil {
				return 0, err
			}
			f.Id = uint32(v)
			return n, nil
		case 2:
			v, n, err := consumeString("host_function.signature", rest)
			if err != nil {
				return 0, err
			}
			f.Signature = v
			return n, nil
		default:
			return skipUnknown("Value.HostFunction", typ, rest)
		}
	})
	return f, err
}

func unmarshalArgumentList(b []byte) (*Value_ArgumentList, error) {
	a := new(Value_ArgumentList)
	err := fieldIterator("Value.ArgumentList", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint("arglist.id", rest)
			if err != nil {
				return 0, err
			}
			a.Id = uint32(v)
			return n, nil
		case 2:
			body, n, err := consumeBytes("arglist.contents", rest)
			if err != nil {
				return 0, err
			}
			v, err := UnmarshalValue(body)
			if err != nil {
				return 0, err
			}
			a.Contents = append(a.Contents, v)
			return n, nil
		case 3:
			body, n, err := consumeBytes("arglist.keywords", rest)
			if err != nil {
				return 0, err
			}
			k, v, err := unmarshalKeywordEntry(body)
			if err != nil {
				return 0, err
			}
			if a.Keywords == nil {
				a.Keywords = make(map[string]*Value)
			}
			a.Keywords[k] = v
			return n, nil
		case 4:
			e, n, err := consumeVarint("arglist.separator", rest)
			if err != nil {
				return 0, err
			}
			if e > 3 {
				return 0, protocolErrf("Value.ArgumentList", "unrecognized separator %d", e)
			}
			a.Separator = ListSeparator(int32(e))
			return n, nil
		default:
			return skipUnknown("Value.ArgumentList", typ, rest)
		}
	})
	return a, err
}

func unmarshalKeywordEntry(b []byte) (string, *Value, error) {
	var key string
	var val *Value
	err := fieldIterator("Value.ArgumentList.KeywordsEntry", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeString("keyword.key", rest)
			if err != nil {
				return 0, err
			}
			key = v
			return n, nil
		case 2:
			body, n, err := consumeBytes("keyword.value", rest)
			if err != nil {
				return 0, err
			}
			v, err := UnmarshalValue(body)
			if err != nil {
				return 0, err
			}
			val = v
			return n, nil
		default:
			return skipUnknown("Value.ArgumentList.KeywordsEntry", typ, rest)
		}
	})
	return key, val, err
}

func unmarshalCalculation(b []byte) (*Value_Calculation, error) {
	c := new(Value_Calculation)
	err := fieldIterator("Value.Calculation", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeString("calc.name", rest)
			if err != nil {
				return 0, err
			}
			c.Name = v
			return n, nil
		case 2:
			body, n, err := consumeBytes("calc.arguments", rest)
			if err != nil {
				return 0, err
			}
			v, err := unmarshalCalculationValue(body)
			if err != nil {
				return 0, err
			}
			c.Arguments = append(c.Arguments, v)
			return n, nil
		default:
			return skipUnknown("Value.Calculation", typ, rest)
		}
	})
	return c, err
}

func unmarshalCalculationValue(b []byte) (*CalculationValue, error) {
	cv := new(CalculationValue)
	err := fieldIterator("CalculationValue", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			body, n, err := consumeBytes("calcvalue.number", rest)
			if err != nil {
				return 0, err
			}
			v, err := unmarshalValueNumber(body)
			if err != nil {
				return 0, err
			}
			cv.Value = &CalculationValue_Number{Number: v}
			return n, nil
		case 2:
			v, n, err := consumeString("calcvalue.string", rest)
			if err != nil {
				return 0, err
			}
			cv.Value = &CalculationValue_String_{String_: v}
			return n, nil
		case 3:
			v, n, err := consumeString("calcvalue.interpolation", rest)
			if err != nil {
				return 0, err
			}
			cv.Value = &CalculationValue_Interpolation{Interpolation: v}
			return n, nil
		case 4:
			body, n, err := consumeBytes("calcvalue.operation", rest)
			if err != nil {
				return 0, err
			}
			v, err := unmarshalCalculationOperation(body)
			if err != nil {
				return 0, err
			}
			cv.Value = &CalculationValue_Operation{Operation: v}
			return n, nil
		default:
			return skipUnknown("CalculationValue", typ, rest)
		}
	})
	return cv, err
}

func unmarshalCalculationOperation(b []byte) (*CalculationOperation, error) {
	o := new(CalculationOperation)
	err := fieldIterator("CalculationOperation", b, func(num protowire.Number, typ protowire.Type, rest []byte, _ int) (int, error) {
		switch num {
		case 1:
			e, n, err := consumeVarint("calcop.operator", rest)
			if err != nil {
				return 0, err
			}
			if e > 3 {
				return 0, protocolErrf("CalculationOperation", "unrecognized operator %d", e)
			}
			o.Operator = CalculationOperator(int32(e))
			return n, nil
		case 2:
			body, n, err := consumeBytes("calcop.left", rest)
			if err != nil {
				return 0, err
			}
			v, err := unmarshalCalculationValue(body)
			if err != nil {
				return 0, err
			}
			o.Left = v
			return n, nil
		case 3:
			body, n, err := consumeBytes("calcop.right", rest)
			if err != nil {
				return 0, err
			}
			v, err := unmarshalCalculationValue(body)
			if err != nil {
				return 0, err
			}
			o.Right = v
			return n, nil
		default:
			return skipUnknown("CalculationOperation", typ, rest)
		}
	})
	return o, err
}
