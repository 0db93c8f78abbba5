package codec

import (
	"bytes"
	"context"

	"gopkg.in/yaml.v3"

	"github.com/nkpart/adt"
)

// YAML returns a Codec that converts instances of t to and from their YAML
// wire form. Unknown top-level keys are rejected.
func YAML(t *adt.Type) adt.Codec[[]byte] {
	return &yamlCodec{t: t}
}

type yamlCodec struct {
	t *adt.Type
}

func (c *yamlCodec) Encode(ctx context.Context, v *adt.Value) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkType(c.t, v); err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

func (c *yamlCodec) Decode(ctx context.Context, b []byte) (*adt.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var w adt.Wire
	if err := dec.Decode(&w); err != nil {
		return nil, parseError(err)
	}
	return c.t.FromWire(w)
}
