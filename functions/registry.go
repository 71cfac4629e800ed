package functions

import (
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

type functionProxy func([]*embeddedsass.Value, *ArgAccessMonitor) (*embeddedsass.Value, error)

// dynamicFunctionID hands out the ids a FunctionRegistry attaches to every
// function it registers, so a FunctionCallRequest that addresses a function
// by numeric id (a value produced by meta.get-function and later called
// back, rather than called by its static signature name) resolves to the
// same Go callback its name would. Shared across registries so ids never
// collide between a Host's global registry and its per-compilation ones.
var dynamicFunctionID atomic.Uint32

// FunctionRegistry maps Sass function signatures to Go functions, per §4.3's
// FunctionCallRequest-by-name-or-id dispatch and §4.4's value marshaling.
type FunctionRegistry struct {
	functions  map[string]functionProxy
	byID       map[uint32]functionProxy
	signatures []string
}

func NewFunctionRegistry(stubs map[string]interface{}) (registry *FunctionRegistry, err error) {
	registry = &FunctionRegistry{
		functions:  make(map[string]functionProxy),
		byID:       make(map[uint32]functionProxy),
		signatures: []string{},
	}
	if stubs == nil {
		return
	}
	for signature, function := range stubs {
		if err = registry.Register(signature, function); err != nil {
			return
		}
	}
	return
}

func (r *FunctionRegistry) Register(signature string, fn interface{}) (err error) {
	v := reflect.ValueOf(fn)
	t := v.Type()
	if !v.IsValid() || v.Kind() != reflect.Func {
		err = fmt.Errorf("function-registry: invalid function")
		return
	} else if t.NumOut() != 2 || !t.Out(1).Implements(reflect.TypeOf((*error)(nil)).Elem()) {
		err = fmt.Errorf("function-registry: tuple error, expected returns: (T, error)")
		return
	}
	var name string
	if openParen := strings.IndexRune(signature, '('); openParen == -1 {
		err = fmt.Errorf("%q is missing %q", signature, "(")
		return
	} else {
		name = signature[:openParen]
	}
	r.signatures = append(r.signatures, signature)
	proxy := func(inputs []*embeddedsass.Value, monitor *ArgAccessMonitor) (output *embeddedsass.Value, err error) {
		if len(inputs) != t.NumIn() {
			err = fmt.Errorf("arguments length error")
			return
		}
		var value reflect.Value
		var inputValues []reflect.Value
		for i := 0; i < t.NumIn(); i++ {
			value, err = UnmarshalValue(inputs[i], t.In(i), monitor)
			if err != nil {
				return
			}
			inputValues = append(inputValues, value)
		}
		outputValues := v.Call(inputValues)
		if !outputValues[1].IsNil() {
			err = outputValues[1].Interface().(error)
			return
		}
		output, err = MarshalValue(outputValues[0])
		return
	}
	r.functions[name] = proxy
	r.byID[dynamicFunctionID.Add(1)] = proxy
	return
}

// Execute dispatches one FunctionCallRequest and produces its response,
// including AccessedArgumentLists (§4.3): the set of argument-list ids
// whose Keywords were read while unmarshaling this call's arguments.
func (r *FunctionRegistry) Execute(request *embeddedsass.OutboundMessage_FunctionCallRequest) (response *embeddedsass.InboundMessage_FunctionCallResponse) {
	type Error = embeddedsass.InboundMessage_FunctionCallResponse_Error
	type Success = embeddedsass.InboundMessage_FunctionCallResponse_Success
	response = &embeddedsass.InboundMessage_FunctionCallResponse{Id: request.Id}
	monitor := NewArgAccessMonitor()
	if r == nil {
		response.Result = &Error{Error: "custom-function disabled"}
		response.AccessedArgumentLists = monitor.Accessed()
		return
	}
	var callback functionProxy
	var ok bool
	var notFound string
	if name := request.GetName(); name != "" {
		callback, ok = r.functions[name]
		notFound = fmt.Sprintf("%q not found", name)
	} else {
		id := request.GetFunctionId()
		callback, ok = r.byID[id]
		notFound = fmt.Sprintf("function id %d not found", id)
	}
	if !ok {
		response.Result = &Error{Error: notFound}
	} else if result, err := callback(request.Arguments, monitor); err != nil {
		response.Result = &Error{Error: err.Error()}
	} else {
		response.Result = &Success{Success: result}
	}
	response.AccessedArgumentLists = monitor.Accessed()
	return
}

func (r *FunctionRegistry) SignatureNames() []string {
	var signatures []string
	for _, signature := range r.signatures {
		signatures = append(signatures, strings.Clone(signature))
	}
	return signatures
}
