package wittype

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"
)

// Name returns the WIT spelling of t, such as list<u8> or tuple<u8, bool>.
func Name(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		switch kind := v.Kind.(type) {
		case *wit.List:
			return "list<" + Name(kind.Type) + ">"
		case *wit.Tuple:
			names := make([]string, len(kind.Types))
			for i, typ := range kind.Types {
				names[i] = Name(typ)
			}
			return "tuple<" + strings.Join(names, ", ") + ">"
		}
		return "typedef"
	default:
		return fmt.Sprintf("%T", t)
	}
}
