package functions

import (
	"reflect"
	"testing"

	qt "github.com/frankban/quicktest"

	sass "github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

func TestMarshalScalarValues(t *testing.T) {
	c := qt.New(t)

	str, err := MarshalValue(reflect.ValueOf("hello"))
	c.Assert(err, qt.IsNil)
	c.Assert(str.GetString_().Text, qt.Equals, "hello")
	c.Assert(str.GetString_().Quoted, qt.Equals, true)

	ident, err := MarshalValue(reflect.ValueOf(Identifier("bold")))
	c.Assert(err, qt.IsNil)
	c.Assert(ident.GetString_().Text, qt.Equals, "bold")
	c.Assert(ident.GetString_().Quoted, qt.Equals, false)

	boolTrue, err := MarshalValue(reflect.ValueOf(true))
	c.Assert(err, qt.IsNil)
	c.Assert(boolTrue.GetSingleton(), qt.Equals, sass.SingletonValue_TRUE)

	null, err := MarshalValue(reflect.ValueOf(nil))
	c.Assert(err, qt.IsNil)
	c.Assert(null.GetSingleton(), qt.Equals, sass.SingletonValue_NULL)
}

func TestMarshalSliceProducesList(t *testing.T) {
	c := qt.New(t)

	out, err := MarshalValue(reflect.ValueOf([]interface{}{"a", "b"}))
	c.Assert(err, qt.IsNil)

	list, ok := out.Value.(*sass.Value_List_)
	c.Assert(ok, qt.Equals, true)
	c.Assert(list.List.Separator, qt.Equals, sass.ListSeparator_COMMA)
	c.Assert(list.List.HasBrackets, qt.Equals, false)
	c.Assert(len(list.List.Contents), qt.Equals, 2)
	c.Assert(list.List.Contents[0].GetString_().Text, qt.Equals, "a")
}

func TestMarshalMapProducesEntries(t *testing.T) {
	c := qt.New(t)

	out, err := MarshalValue(reflect.ValueOf(map[string]interface{}{"k": "v"}))
	c.Assert(err, qt.IsNil)

	m, ok := out.Value.(*sass.Value_Map_)
	c.Assert(ok, qt.Equals, true)
	c.Assert(len(m.Map.Entries), qt.Equals, 1)
	c.Assert(m.Map.Entries[0].Key.GetString_().Text, qt.Equals, "k")
	c.Assert(m.Map.Entries[0].Value.GetString_().Text, qt.Equals, "v")
}

func TestMarshalColors(t *testing.T) {
	c := qt.New(t)

	rgb, err := MarshalValue(reflect.ValueOf(&RGBColor{Red: 1, Green: 2, Blue: 3, Alpha: 1}))
	c.Assert(err, qt.IsNil)
	c.Assert(rgb.Value.(*sass.Value_RgbColor_).RgbColor.Red, qt.Equals, uint32(1))

	hsl, err := MarshalValue(reflect.ValueOf(&HSLColor{Hue: 10}))
	c.Assert(err, qt.IsNil)
	c.Assert(hsl.Value.(*sass.Value_HslColor_).HslColor.Hue, qt.Equals, 10.0)
}

func TestMarshalArgumentListReencodesIDZero(t *testing.T) {
	c := qt.New(t)

	al := &ArgumentList{id: 42, Contents: []interface{}{"x"}}
	out, err := MarshalValue(reflect.ValueOf(al))
	c.Assert(err, qt.IsNil)

	wire, ok := out.Value.(*sass.Value_ArgumentList_)
	c.Assert(ok, qt.Equals, true)
	c.Assert(wire.ArgumentList.Id, qt.Equals, uint32(0))
	c.Assert(len(wire.ArgumentList.Contents), qt.Equals, 1)
}

func TestMarshalUnknownTypeErrors(t *testing.T) {
	c := qt.New(t)

	_, err := MarshalValue(reflect.ValueOf(struct{ X int }{X: 1}))
	c.Assert(err, qt.Not(qt.IsNil))
}
