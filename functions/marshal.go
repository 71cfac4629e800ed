package functions

import (
	"fmt"
	"reflect"

	sass "github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

// MarshalValue converts a Go value returned by a host function (or
// supplied as a global) into its wire Value, per §4.4. Adapted from the
// teacher's reflection-based MarshalValue; the color branch picks a wire
// oneof variant per Go type, which stands in for the spec's
// "preferred_format" selection since each of RGBColor/HSLColor/HWBColor
// round-trips through its own wire arm.
func MarshalValue(input reflect.Value) (returns *sass.Value, err error) {
	if !input.IsValid() {
		return &sass.Value{Value: &sass.Value_Singleton{Singleton: sass.SingletonValue_NULL}}, nil
	}

	returns = new(sass.Value)

	// Array/slice/map values are dispatched on reflect.Kind ahead of the
	// concrete-type switch below, since a []interface{} or map[string]T
	// never matches any of that switch's cases and would otherwise fall
	// through to its "unknown value" default.
	switch input.Kind() {
	case reflect.Array, reflect.Slice:
		var contents []*sass.Value
		for i := 0; i < input.Len(); i++ {
			content, err := MarshalValue(input.Index(i))
			if err != nil {
				return nil, err
			}
			contents = append(contents, content)
		}
		returns.Value = &sass.Value_List_{
			List: &sass.Value_List{
				Separator:   sass.ListSeparator_COMMA,
				HasBrackets: false,
				Contents:    contents,
			},
		}
		return returns, nil
	case reflect.Map:
		iter := input.MapRange()
		var entries []*sass.Value_Map_Entry
		for iter.Next() {
			entry := new(sass.Value_Map_Entry)
			key, err := MarshalValue(iter.Key())
			if err != nil {
				return nil, err
			}
			value, err := MarshalValue(iter.Value())
			if err != nil {
				return nil, err
			}
			entry.Key, entry.Value = key, value
			entries = append(entries, entry)
		}
		returns.Value = &sass.Value_Map_{Map: &sass.Value_Map{Entries: entries}}
		return returns, nil
	}

	switch c := input.Interface().(type) {
	case string:
		returns.Value = &sass.Value_String_{
			String_: &sass.Value_String{Text: c, Quoted: true},
		}
	case bool:
		var value sass.SingletonValue
		if c {
			value = sass.SingletonValue_TRUE
		} else {
			value = sass.SingletonValue_FALSE
		}
		returns.Value = &sass.Value_Singleton{Singleton: value}
	case nil:
		returns.Value = &sass.Value_Singleton{Singleton: sass.SingletonValue_NULL}
	case Identifier:
		returns.Value = &sass.Value_String_{
			String_: &sass.Value_String{Text: string(c), Quoted: false},
		}
	case *Number:
		returns.Value = &sass.Value_Number_{
			Number: &sass.Value_Number{
				Value:        c.Value,
				Numerators:   c.Numerators,
				Denominators: c.Denominators,
			},
		}
	case *RGBColor:
		returns.Value = &sass.Value_RgbColor_{
			RgbColor: &sass.Value_RgbColor{
				Red:   c.Red,
				Green: c.Green,
				Blue:  c.Blue,
				Alpha: c.Alpha,
			},
		}
	case *HSLColor:
		returns.Value = &sass.Value_HslColor_{
			HslColor: &sass.Value_HslColor{
				Hue:        c.Hue,
				Saturation: c.Saturation,
				Lightness:  c.Lightness,
				Alpha:      c.Alpha,
			},
		}
	case *HWBColor:
		returns.Value = &sass.Value_HwbColor_{
			HwbColor: &sass.Value_HwbColor{
				Hue:       c.Hue,
				Whiteness: c.Whiteness,
				Blackness: c.Blackness,
				Alpha:     c.Alpha,
			},
		}
	case *CompilerFunction:
		returns.Value = &sass.Value_CompilerFunction_{
			CompilerFunction: &sass.Value_CompilerFunction{
				Id: c.ID,
			},
		}
	case *HostFunction:
		returns.Value = &sass.Value_HostFunction_{
			HostFunction: &sass.Value_HostFunction{
				Id:        c.ID,
				Signature: c.Signature,
			},
		}
	case *ArgumentList:
		contents, err := marshalSlice(c.Contents)
		if err != nil {
			return nil, err
		}
		keywords := make(map[string]*sass.Value, len(c.keywords))
		for k, kv := range c.keywords {
			mv, err := MarshalValue(reflect.ValueOf(kv))
			if err != nil {
				return nil, err
			}
			keywords[k] = mv
		}
		returns.Value = &sass.Value_ArgumentList_{
			ArgumentList: &sass.Value_ArgumentList{
				// Host-authored argument lists always re-encode as id 0
				// (§4.4): only the compiler mints argument-list ids.
				Id:        0,
				Contents:  contents,
				Keywords:  keywords,
				Separator: sass.ListSeparator_SPACE,
			},
		}
	default:
		err = fmt.Errorf("unknown value %T", c)
	}
	return
}

func marshalSlice(vs []interface{}) ([]*sass.Value, error) {
	out := make([]*sass.Value, 0, len(vs))
	for _, v := range vs {
		mv, err := MarshalValue(reflect.ValueOf(v))
		if err != nil {
			return nil, err
		}
		out = append(out, mv)
	}
	return out, nil
}
