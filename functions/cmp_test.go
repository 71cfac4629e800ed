package functions

import (
	"reflect"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"

	sass "github.com/sass-contrib/embedded-host-go/internal/embeddedsass"
)

// TestUnmarshalDynamicNestedTreeMatchesExpected decodes a nested
// list-of-maps wire value the way a host function receiving an untyped
// interface{} argument would, and diffs the result against the Go value it
// should produce with cmp.Diff rather than reflect.DeepEqual, since the
// decoded tree mixes []interface{} and map[string]interface{} at multiple
// levels and a failing qt.DeepEquals assertion on such a tree gives no
// indication of which leaf diverged.
func TestUnmarshalDynamicNestedTreeMatchesExpected(t *testing.T) {
	c := qt.New(t)

	wire := &sass.Value{Value: &sass.Value_List_{List: &sass.Value_List{
		Separator: sass.ListSeparator_COMMA,
		Contents: []*sass.Value{
			{Value: &sass.Value_Map_{Map: &sass.Value_Map{Entries: []*sass.Value_Map_Entry{
				{
					Key:   &sass.Value{Value: &sass.Value_String_{String_: &sass.Value_String{Text: "name", Quoted: true}}},
					Value: &sass.Value{Value: &sass.Value_String_{String_: &sass.Value_String{Text: "bold", Quoted: false}}},
				},
			}}}},
			{Value: &sass.Value_Singleton{Singleton: sass.SingletonValue_TRUE}},
		},
	}}}

	out, err := UnmarshalValue(wire, reflect.TypeOf((*interface{})(nil)).Elem(), nil)
	c.Assert(err, qt.IsNil)

	want := []interface{}{
		map[string]interface{}{"name": Identifier("bold")},
		true,
	}

	if diff := cmp.Diff(want, out.Interface()); diff != "" {
		t.Fatalf("decoded value tree mismatch (-want +got):\n%s", diff)
	}
}
