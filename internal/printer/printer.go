package printer

import (
	"strconv"
	"strings"

	"mal/internal/types"
)

var escaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, `"`, `\"`)

// PrStr renders v as text. With readably set, strings are quoted and escaped
// so that the output reads back to the same value.
func PrStr(v types.Value, readably bool) string {
	var b strings.Builder
	write(&b, v, readably)
	return b.String()
}

func write(b *strings.Builder, v types.Value, readably bool) {
	switch val := v.(type) {
	case types.Number:
		b.WriteString(strconv.FormatInt(int64(val), 10))
	case types.Symbol:
		b.WriteString(string(val))
	case types.Keyword:
		b.WriteString(":" + val.Name())
	case types.String:
		if readably {
			b.WriteString(`"` + escaper.Replace(string(val)) + `"`)
		} else {
			b.WriteString(string(val))
		}
	case types.Boolean:
		b.WriteString(strconv.FormatBool(bool(val)))
	case types.Nil:
		b.WriteString("nil")
	case types.Error:
		b.WriteString(val.Message)
	case types.List:
		writeSeq(b, val.Elems(), "(", ")", readably)
	case types.Vector:
		writeSeq(b, val.Elems(), "[", "]", readably)
	case nil:
		b.WriteString("nil")
	default:
		panic("printer: unknown value type")
	}
}

func writeSeq(b *strings.Builder, elems []types.Value, left, right string, readably bool) {
	b.WriteString(left)
	for i, elem := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		write(b, elem, readably)
	}
	b.WriteString(right)
}
