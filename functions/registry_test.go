package functions

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	sass "github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

func double(n *Number) (*Number, error) {
	return &Number{Value: n.Value * 2}, nil
}

func TestRegistryDispatchesByName(t *testing.T) {
	c := qt.New(t)

	reg, err := NewFunctionRegistry(map[string]interface{}{
		"double($n)": double,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(reg.SignatureNames(), qt.DeepEquals, []string{"double($n)"})

	req := &sass.OutboundMessage_FunctionCallRequest{
		Id:         1,
		Identifier: &sass.OutboundMessage_FunctionCallRequest_Name{Name: "double"},
		Arguments: []*sass.Value{
			{Value: &sass.Value_Number_{Number: &sass.Value_Number{Value: 21}}},
		},
	}

	resp := reg.Execute(req)
	c.Assert(resp.Id, qt.Equals, uint32(1))
	success, ok := resp.Result.(*sass.InboundMessage_FunctionCallResponse_Success)
	c.Assert(ok, qt.Equals, true)
	c.Assert(success.Success.Value.(*sass.Value_Number_).Number.Value, qt.Equals, 42.0)
}

func TestRegistryDispatchesByNumericID(t *testing.T) {
	c := qt.New(t)

	reg, err := NewFunctionRegistry(map[string]interface{}{
		"double($n)": double,
	})
	c.Assert(err, qt.IsNil)

	var id uint32
	for fid := range reg.byID {
		id = fid
	}

	req := &sass.OutboundMessage_FunctionCallRequest{
		Id:         2,
		Identifier: &sass.OutboundMessage_FunctionCallRequest_FunctionId{FunctionId: id},
		Arguments: []*sass.Value{
			{Value: &sass.Value_Number_{Number: &sass.Value_Number{Value: 10}}},
		},
	}

	resp := reg.Execute(req)
	success, ok := resp.Result.(*sass.InboundMessage_FunctionCallResponse_Success)
	c.Assert(ok, qt.Equals, true)
	c.Assert(success.Success.Value.(*sass.Value_Number_).Number.Value, qt.Equals, 20.0)
}

func TestRegistryUnknownNameReturnsError(t *testing.T) {
	c := qt.New(t)

	reg, err := NewFunctionRegistry(nil)
	c.Assert(err, qt.IsNil)

	req := &sass.OutboundMessage_FunctionCallRequest{
		Id:         3,
		Identifier: &sass.OutboundMessage_FunctionCallRequest_Name{Name: "missing"},
	}
	resp := reg.Execute(req)
	_, ok := resp.Result.(*sass.InboundMessage_FunctionCallResponse_Error)
	c.Assert(ok, qt.Equals, true)
}

func TestRegistryNilRegistryDisablesCustomFunctions(t *testing.T) {
	c := qt.New(t)

	var reg *FunctionRegistry
	req := &sass.OutboundMessage_FunctionCallRequest{
		Id:         4,
		Identifier: &sass.OutboundMessage_FunctionCallRequest_Name{Name: "anything"},
	}
	resp := reg.Execute(req)
	errResult, ok := resp.Result.(*sass.InboundMessage_FunctionCallResponse_Error)
	c.Assert(ok, qt.Equals, true)
	c.Assert(errResult.Error, qt.Equals, "custom-function disabled")
}

func TestRegisterRejectsNonFunctionSignatureMismatch(t *testing.T) {
	c := qt.New(t)

	reg, _ := NewFunctionRegistry(nil)

	err := reg.Register("double($n)", 5)
	c.Assert(err, qt.Not(qt.IsNil))

	err = reg.Register("noParen", func() (*Number, error) { return nil, nil })
	c.Assert(err, qt.Not(qt.IsNil))

	err = reg.Register("oneReturn($n)", func(n *Number) *Number { return n })
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestRegisterFunctionErrorPropagates(t *testing.T) {
	c := qt.New(t)

	reg, err := NewFunctionRegistry(map[string]interface{}{
		"fail($n)": func(n *Number) (*Number, error) { return nil, errors.New("boom") },
	})
	c.Assert(err, qt.IsNil)

	req := &sass.OutboundMessage_FunctionCallRequest{
		Id:         5,
		Identifier: &sass.OutboundMessage_FunctionCallRequest_Name{Name: "fail"},
		Arguments: []*sass.Value{
			{Value: &sass.Value_Number_{Number: &sass.Value_Number{Value: 1}}},
		},
	}
	resp := reg.Execute(req)
	errResult, ok := resp.Result.(*sass.InboundMessage_FunctionCallResponse_Error)
	c.Assert(ok, qt.Equals, true)
	c.Assert(errResult.Error, qt.Equals, "boom")
}
