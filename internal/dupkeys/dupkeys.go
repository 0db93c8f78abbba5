// Package dupkeys finds duplicate object keys in JSON input, which ordinary
// decoding into maps silently collapses.
package dupkeys

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Dup is one duplicated key and the JSON Pointer of its object.
type Dup struct {
	Key  string
	Path string
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	seg          string // segment of this container inside its parent
	lastKey      string
	index        int
}

// Find scans data and returns every duplicated key in input order. Syntax
// errors are returned as is.
func Find(data []byte) ([]Dup, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out []Dup
	var stack []frame

	// childSeg is the pointer segment a value opened now would occupy.
	childSeg := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindObject {
			return escape(top.lastKey)
		}
		return strconv.Itoa(top.index)
	}
	// valueDone advances the parent after a complete value.
	valueDone := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.kind == kindObject {
			top.expectingKey = true
		} else {
			top.index++
		}
	}
	pointer := func() string {
		var b strings.Builder
		for _, f := range stack[1:] {
			b.WriteByte('/')
			b.WriteString(f.seg)
		}
		if b.Len() == 0 {
			return "/"
		}
		return b.String()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return out, io.ErrUnexpectedEOF
			}
			return out, nil
		}
		if err != nil {
			return out, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{kind: kindObject, keys: map[string]struct{}{}, expectingKey: true, seg: childSeg()})
			case '[':
				stack = append(stack, frame{kind: kindArray, seg: childSeg()})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObject && top.expectingKey {
					if _, dup := top.keys[v]; dup {
						out = append(out, Dup{Key: v, Path: pointer()})
					}
					top.keys[v] = struct{}{}
					top.lastKey = v
					top.expectingKey = false
					continue
				}
			}
			valueDone()
		default:
			valueDone()
		}
	}
}

func escape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
