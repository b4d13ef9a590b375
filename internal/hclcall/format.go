package hclcall

import (
	"fmt"

	"github.com/vk/funcs/internal/params"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Format renders a value for display: JSON where cty can encode it, Go
// formatting of the native value otherwise (e.g. for opaque objects).
func Format(v cty.Value) string {
	if v == cty.NilVal || v.IsNull() {
		return "null"
	}
	if !v.IsWhollyKnown() {
		return "(unknown)"
	}
	if b, err := ctyjson.Marshal(v, v.Type()); err == nil {
		return string(b)
	}
	native, err := params.Native(v)
	if err != nil {
		return v.GoString()
	}
	return fmt.Sprintf("%v", native)
}
