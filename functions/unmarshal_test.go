package functions

import (
	"reflect"
	"testing"

	qt "github.com/frankban/quicktest"

	sass "github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

func TestUnmarshalScalarValues(t *testing.T) {
	c := qt.New(t)

	str, err := UnmarshalValue(&sass.Value{Value: &sass.Value_String_{String_: &sass.Value_String{Text: "hi", Quoted: true}}}, reflect.TypeOf(""), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(str.Interface(), qt.Equals, "hi")

	b, err := UnmarshalValue(&sass.Value{Value: &sass.Value_Singleton{Singleton: sass.SingletonValue_TRUE}}, reflect.TypeOf(true), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(b.Interface(), qt.Equals, true)

	null, err := UnmarshalValue(&sass.Value{Value: &sass.Value_Singleton{Singleton: sass.SingletonValue_NULL}}, reflect.TypeOf(""), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(null.IsValid(), qt.Equals, false)
}

func TestUnmarshalDynamicString(t *testing.T) {
	c := qt.New(t)

	quoted, err := UnmarshalValue(&sass.Value{Value: &sass.Value_String_{String_: &sass.Value_String{Text: "a", Quoted: true}}}, reflect.TypeOf((*interface{})(nil)).Elem(), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(quoted.Interface(), qt.Equals, "a")

	unquoted, err := UnmarshalValue(&sass.Value{Value: &sass.Value_String_{String_: &sass.Value_String{Text: "bold", Quoted: false}}}, reflect.TypeOf((*interface{})(nil)).Elem(), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(unquoted.Interface(), qt.Equals, Identifier("bold"))
}

func TestUnmarshalListIntoSlice(t *testing.T) {
	c := qt.New(t)

	wire := &sass.Value{Value: &sass.Value_List_{List: &sass.Value_List{
		Contents: []*sass.Value{
			{Value: &sass.Value_String_{String_: &sass.Value_String{Text: "a", Quoted: true}}},
			{Value: &sass.Value_String_{String_: &sass.Value_String{Text: "b", Quoted: true}}},
		},
	}}}

	out, err := UnmarshalValue(wire, reflect.TypeOf([]string{}), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(out.Interface(), qt.DeepEquals, []string{"a", "b"})
}

func TestUnmarshalMapIntoGoMap(t *testing.T) {
	c := qt.New(t)

	wire := &sass.Value{Value: &sass.Value_Map_{Map: &sass.Value_Map{Entries: []*sass.Value_Map_Entry{
		{
			Key:   &sass.Value{Value: &sass.Value_String_{String_: &sass.Value_String{Text: "k", Quoted: true}}},
			Value: &sass.Value{Value: &sass.Value_String_{String_: &sass.Value_String{Text: "v", Quoted: true}}},
		},
	}}}}

	out, err := UnmarshalValue(wire, reflect.TypeOf(map[string]string{}), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(out.Interface(), qt.DeepEquals, map[string]string{"k": "v"})
}

func TestUnmarshalMapDuplicateKeyErrors(t *testing.T) {
	c := qt.New(t)

	dup := &sass.Value{Value: &sass.Value_String_{String_: &sass.Value_String{Text: "k", Quoted: true}}}
	wire := &sass.Value{Value: &sass.Value_Map_{Map: &sass.Value_Map{Entries: []*sass.Value_Map_Entry{
		{Key: dup, Value: dup},
		{Key: dup, Value: dup},
	}}}}

	_, err := UnmarshalValue(wire, reflect.TypeOf(map[string]string{}), nil)
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestUnmarshalArgumentListKeywordsMarksAccessed(t *testing.T) {
	c := qt.New(t)

	monitor := NewArgAccessMonitor()
	wire := &sass.Value{Value: &sass.Value_ArgumentList_{ArgumentList: &sass.Value_ArgumentList{
		Id: 7,
		Contents: []*sass.Value{
			{Value: &sass.Value_String_{String_: &sass.Value_String{Text: "a", Quoted: true}}},
		},
		Keywords: map[string]*sass.Value{
			"$k": {Value: &sass.Value_String_{String_: &sass.Value_String{Text: "v", Quoted: true}}},
		},
	}}}

	out, err := UnmarshalValue(wire, argumentListType, monitor)
	c.Assert(err, qt.IsNil)

	al := out.Interface().(*ArgumentList)
	c.Assert(al.ID(), qt.Equals, uint32(7))
	c.Assert(len(al.Contents), qt.Equals, 1)
	c.Assert(len(monitor.Accessed()), qt.Equals, 0)

	kw := al.Keywords()
	c.Assert(kw["$k"], qt.Equals, "v")
	c.Assert(monitor.Accessed(), qt.DeepEquals, []uint32{7})
}

func TestUnmarshalCompilerFunction(t *testing.T) {
	c := qt.New(t)

	wire := &sass.Value{Value: &sass.Value_CompilerFunction_{CompilerFunction: &sass.Value_CompilerFunction{Id: 9}}}
	out, err := UnmarshalValue(wire, compilerFuncType, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(out.Interface().(*CompilerFunction).ID, qt.Equals, uint32(9))
}
