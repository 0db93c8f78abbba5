// Package codec provides wire codecs for adt instances.
package codec

import (
	"bytes"
	"context"

	json "github.com/goccy/go-json"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/i18n"
)

// NumberMode selects how JSON numbers in field values are decoded.
type NumberMode int

const (
	// NumberJSONNumber keeps numbers as json.Number (preserves precision).
	NumberJSONNumber NumberMode = iota
	// NumberFloat64 decodes numbers as float64.
	NumberFloat64
)

// JSONOpt configures the JSON codec. The zero value uses NumberJSONNumber
// and compact output.
type JSONOpt struct {
	NumberMode NumberMode
	Indent     string
}

// JSON returns a Codec that converts instances of t to and from their JSON
// wire form.
func JSON(t *adt.Type, opts ...JSONOpt) adt.Codec[[]byte] {
	c := &jsonCodec{t: t}
	if len(opts) > 0 {
		c.opt = opts[0]
	}
	return c
}

type jsonCodec struct {
	t   *adt.Type
	opt JSONOpt
}

func (c *jsonCodec) Encode(ctx context.Context, v *adt.Value) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkType(c.t, v); err != nil {
		return nil, err
	}
	if c.opt.Indent != "" {
		return json.MarshalIndent(v.Wire(), "", c.opt.Indent)
	}
	return json.Marshal(v)
}

func (c *jsonCodec) Decode(ctx context.Context, b []byte) (*adt.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if c.opt.NumberMode == NumberJSONNumber {
		dec.UseNumber()
	}
	var w adt.Wire
	if err := dec.Decode(&w); err != nil {
		return nil, parseError(err)
	}
	if dec.More() {
		return nil, adt.Issues{adt.Root().Issue(adt.CodeParseError, i18n.T(adt.CodeParseError, nil))}
	}
	return c.t.FromWire(w)
}

func checkType(t *adt.Type, v *adt.Value) error {
	if v == nil {
		return adt.Issues{adt.Root().Issue(adt.CodeTypeMismatch, i18n.T(adt.CodeTypeMismatch, nil))}
	}
	if v.Type() != t {
		it := adt.Root().Field("type").Issue(adt.CodeTypeMismatch, i18n.T(adt.CodeTypeMismatch, nil),
			"want", t.Name(), "got", v.Type().Name())
		return adt.Issues{it}
	}
	return nil
}

func parseError(err error) error {
	it := adt.Root().Issue(adt.CodeParseError, i18n.T(adt.CodeParseError, nil))
	it.Hint = err.Error()
	it.Cause = err
	return adt.Issues{it}
}
