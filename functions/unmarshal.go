package functions

import (
	"fmt"
	"reflect"

	sass "github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

var (
	argumentListType  = reflect.TypeOf((*ArgumentList)(nil))
	numberType        = reflect.TypeOf((*Number)(nil))
	rgbColorType      = reflect.TypeOf((*RGBColor)(nil))
	hslColorType      = reflect.TypeOf((*HSLColor)(nil))
	hwbColorType      = reflect.TypeOf((*HWBColor)(nil))
	compilerFuncType  = reflect.TypeOf((*CompilerFunction)(nil))
	hostFuncType      = reflect.TypeOf((*HostFunction)(nil))
	emptyInterfaceType = reflect.TypeOf((*interface{})(nil)).Elem()
)

// UnmarshalValue converts a wire Value into a Go value of inType, for
// dispatch to a host function parameter (§4.4). monitor, if non-nil, is
// threaded into any *ArgumentList produced so that later calls to its
// Keywords method record access, per §4.3/§8 property 7 (only a read of
// an argument list's keywords — not its positional contents — marks that
// list's id as accessed).
func UnmarshalValue(input *sass.Value, inType reflect.Type, monitor *ArgAccessMonitor) (returns reflect.Value, err error) {
	if input.GetSingleton() == sass.SingletonValue_NULL {
		returns = reflect.ValueOf((interface{})(nil))
		return
	}
	if inType == argumentListType {
		if x, ok := input.Value.(*sass.Value_ArgumentList_); ok {
			return reflect.ValueOf(argumentListFromWire(x.ArgumentList, monitor)), nil
		}
	}
	// A bare interface{} target (e.g. ArgumentList.Contents elements, or map
	// values keyed by dynamic Sass values) decodes by the wire value's own
	// concrete shape rather than a caller-chosen Go type.
	if inType == emptyInterfaceType {
		return unmarshalDynamic(input, monitor)
	}
	// Number/color/compiler-function parameters are concrete pointer types
	// (Kind() == Ptr, not Interface), so they are matched by identity
	// against inType directly rather than folded into the Kind() switch
	// below.
	switch inType {
	case numberType:
		if x, ok := input.Value.(*sass.Value_Number_); ok {
			return reflect.ValueOf(&Number{
				Value:        x.Number.Value,
				Numerators:   x.Number.Numerators,
				Denominators: x.Number.Denominators,
			}), nil
		}
	case rgbColorType:
		if x, ok := input.Value.(*sass.Value_RgbColor_); ok {
			return reflect.ValueOf(&RGBColor{
				Red:   x.RgbColor.Red,
				Green: x.RgbColor.Green,
				Blue:  x.RgbColor.Blue,
				Alpha: x.RgbColor.Alpha,
			}), nil
		}
	case hslColorType:
		if x, ok := input.Value.(*sass.Value_HslColor_); ok {
			return reflect.ValueOf(&HSLColor{
				Hue:        x.HslColor.Hue,
				Saturation: x.HslColor.Saturation,
				Lightness:  x.HslColor.Lightness,
				Alpha:      x.HslColor.Alpha,
			}), nil
		}
	case hwbColorType:
		if x, ok := input.Value.(*sass.Value_HwbColor_); ok {
			return reflect.ValueOf(&HWBColor{
				Hue:       x.HwbColor.Hue,
				Whiteness: x.HwbColor.Whiteness,
				Blackness: x.HwbColor.Blackness,
				Alpha:     x.HwbColor.Alpha,
			}), nil
		}
	case compilerFuncType:
		if x, ok := input.Value.(*sass.Value_CompilerFunction_); ok {
			return reflect.ValueOf(&CompilerFunction{ID: x.CompilerFunction.Id}), nil
		}
	case hostFuncType:
		if x, ok := input.Value.(*sass.Value_HostFunction_); ok {
			return reflect.ValueOf(&HostFunction{ID: x.HostFunction.Id, Signature: x.HostFunction.Signature}), nil
		}
	}

	returns = reflect.New(inType).Elem()
	switch inType.Kind() {
	case reflect.String:
		if str := input.GetString_(); str != nil {
			returns = reflect.ValueOf(str.Text)
		}
	case reflect.Bool:
		if x, ok := input.Value.(*sass.Value_Singleton); ok {
			returns.SetBool(x.Singleton == sass.SingletonValue_TRUE)
		}
	case reflect.Array, reflect.Slice:
		var element reflect.Value
		var contents []*sass.Value
		if x, ok := input.Value.(*sass.Value_List_); ok {
			contents = x.List.Contents
		}
		if x, ok := input.Value.(*sass.Value_ArgumentList_); ok && x.ArgumentList.Contents != nil {
			contents = x.ArgumentList.Contents
		}
		for i, content := range contents {
			element, err = UnmarshalValue(content, inType.Elem(), monitor)
			if err != nil {
				return
			}
			if inType.Kind() == reflect.Slice {
				returns = reflect.Append(returns, element)
			} else if i < returns.Len() {
				returns.Index(i).Set(element)
			}
		}
	case reflect.Map:
		returns = reflect.MakeMap(inType)
		if x, ok := input.Value.(*sass.Value_Map_); ok {
			var key reflect.Value
			var value reflect.Value
			seen := make(map[interface{}]bool, len(x.Map.Entries))
			for _, entry := range x.Map.Entries {
				key, err = UnmarshalValue(entry.Key, inType.Key(), monitor)
				if err != nil {
					return
				}
				if key.IsValid() && key.Comparable() {
					k := key.Interface()
					if seen[k] {
						err = fmt.Errorf("duplicate map key %v", k)
						return
					}
					seen[k] = true
				}
				value, err = UnmarshalValue(entry.Value, inType.Elem(), monitor)
				if err != nil {
					return
				}
				returns.SetMapIndex(key, value)
			}
		}
		if x, ok := input.Value.(*sass.Value_ArgumentList_); ok && x.ArgumentList.Keywords != nil {
			if monitor != nil && x.ArgumentList.Id != 0 {
				monitor.record(x.ArgumentList.Id)
			}
			var value reflect.Value
			for key, _value := range x.ArgumentList.Keywords {
				value, err = UnmarshalValue(_value, inType.Elem(), monitor)
				if err != nil {
					return
				}
				returns.SetMapIndex(reflect.ValueOf(key), value)
			}
		}
	}
	if !returns.IsValid() {
		err = fmt.Errorf("unknown value, expected type: %s, input type: %T", inType, input.Value)
	}
	return
}

// unmarshalDynamic decodes a wire Value into whatever Go shape best
// mirrors it, for positions where the caller has not committed to a
// concrete type: string, bool, nil, *Number, *RGBColor/*HSLColor/*HWBColor,
// *CompilerFunction, *HostFunction, *ArgumentList, []interface{}, or
// map[string]interface{}.
func unmarshalDynamic(input *sass.Value, monitor *ArgAccessMonitor) (reflect.Value, error) {
	switch x := input.Value.(type) {
	case nil:
		return reflect.ValueOf((interface{})(nil)), nil
	case *sass.Value_Singleton:
		switch x.Singleton {
		case sass.SingletonValue_TRUE:
			return reflect.ValueOf(true), nil
		case sass.SingletonValue_FALSE:
			return reflect.ValueOf(false), nil
		default:
			return reflect.ValueOf((interface{})(nil)), nil
		}
	case *sass.Value_String_:
		if x.String_.Quoted {
			return reflect.ValueOf(x.String_.Text), nil
		}
		return reflect.ValueOf(Identifier(x.String_.Text)), nil
	case *sass.Value_Number_:
		return UnmarshalValue(input, numberType, monitor)
	case *sass.Value_RgbColor_:
		return UnmarshalValue(input, rgbColorType, monitor)
	case *sass.Value_HslColor_:
		return UnmarshalValue(input, hslColorType, monitor)
	case *sass.Value_HwbColor_:
		return UnmarshalValue(input, hwbColorType, monitor)
	case *sass.Value_CompilerFunction_:
		return UnmarshalValue(input, compilerFuncType, monitor)
	case *sass.Value_HostFunction_:
		return UnmarshalValue(input, hostFuncType, monitor)
	case *sass.Value_ArgumentList_:
		return reflect.ValueOf(argumentListFromWire(x.ArgumentList, monitor)), nil
	case *sass.Value_List_:
		out := make([]interface{}, 0, len(x.List.Contents))
		for _, c := range x.List.Contents {
			v, err := unmarshalDynamic(c, monitor)
			if err != nil {
				return reflect.Value{}, err
			}
			out = append(out, v.Interface())
		}
		return reflect.ValueOf(out), nil
	case *sass.Value_Map_:
		out := make(map[string]interface{}, len(x.Map.Entries))
		for _, e := range x.Map.Entries {
			k, err := unmarshalDynamic(e.Key, monitor)
			if err != nil {
				return reflect.Value{}, err
			}
			ks, ok := k.Interface().(string)
			if !ok {
				return reflect.Value{}, fmt.Errorf("map key %v is not a string", k.Interface())
			}
			v, err := unmarshalDynamic(e.Value, monitor)
			if err != nil {
				return reflect.Value{}, err
			}
			out[ks] = v.Interface()
		}
		return reflect.ValueOf(out), nil
	default:
		return reflect.Value{}, fmt.Errorf("unknown dynamic value %T", x)
	}
}

func argumentListFromWire(w *sass.Value_ArgumentList, monitor *ArgAccessMonitor) *ArgumentList {
	al := &ArgumentList{id: w.Id, monitor: monitor}
	for _, v := range w.Contents {
		gv, err := UnmarshalValue(v, reflect.TypeOf((*interface{})(nil)).Elem(), monitor)
		if err != nil {
			continue
		}
		if gv.IsValid() {
			al.Contents = append(al.Contents, gv.Interface())
		} else {
			al.Contents = append(al.Contents, nil)
		}
	}
	if len(w.Keywords) > 0 {
		al.keywords = make(map[string]interface{}, len(w.Keywords))
		for k, v := range w.Keywords {
			gv, err := UnmarshalValue(v, reflect.TypeOf((*interface{})(nil)).Elem(), monitor)
			if err != nil {
				continue
			}
			if gv.IsValid() {
				al.keywords[k] = gv.Interface()
			} else {
				al.keywords[k] = nil
			}
		}
	}
	return al
}
