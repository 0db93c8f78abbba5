package adt

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// String renders the instance as "#<Maybe just value:5>". Nullary cases render
// as "#<Maybe nothing>" and anonymous types omit the type name.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	b := &strings.Builder{}
	b.WriteString("#<")
	if v.typ.name != "" {
		b.WriteString(v.typ.name)
		b.WriteByte(' ')
	}
	c := v.typ.schema.cases[v.tag]
	b.WriteString(c.Name)
	for i, f := range c.Fields {
		b.WriteByte(' ')
		b.WriteString(f)
		b.WriteByte(':')
		renderField(b, v.fields[i])
	}
	b.WriteByte('>')
	return b.String()
}

// Inspect is String; it mirrors the "inspect" method name of the dispatch table.
func (v *Value) Inspect() string { return v.String() }

func renderField(b *strings.Builder, x any) {
	switch t := x.(type) {
	case nil:
		b.WriteString("nil")
		return
	case *Value:
		b.WriteString(t.String())
		return
	case string:
		b.WriteString(strconv.Quote(t))
		return
	case fmt.Stringer:
		b.WriteString(t.String())
		return
	case error:
		b.WriteString(t.Error())
		return
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			renderField(b, rv.Index(i).Interface())
		}
		b.WriteByte(']')
	default:
		fmt.Fprintf(b, "%v", x)
	}
}
