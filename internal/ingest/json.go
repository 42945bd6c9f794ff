// Package ingest turns JSON documents into values ready to be inserted.
package ingest

import (
	"errors"
	"fmt"

	"github.com/valyala/fastjson"
)

// ErrUnsupportedShape is returned for JSON that does not carry string values.
var ErrUnsupportedShape = errors.New("unsupported JSON shape")

// Decoder parses JSON value documents. It is safe for concurrent use.
type Decoder struct {
	parser fastjson.ParserPool
}

// NewDecoder returns a ready Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Values extracts values from body in document order.
//
// Accepted shapes:
//
//	"a"
//	["a", "b"]
//	{"value": "a"}
//	{"values": ["a", "b"]}
//	[{"value": "a"}, "b", {"values": ["c"]}]
func (d *Decoder) Values(body []byte) ([]string, error) {
	p := d.parser.Get()
	defer d.parser.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var out []string
	if v.Type() == fastjson.TypeArray {
		arr, _ := v.Array()
		for i, item := range arr {
			if out, err = appendItem(out, item); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return out, nil
	}

	return appendItem(out, v)
}

// Values parses body with a throwaway parser.
func Values(body []byte) ([]string, error) {
	return NewDecoder().Values(body)
}

// appendItem handles a single string or object.
func appendItem(out []string, v *fastjson.Value) ([]string, error) {
	switch v.Type() {
	case fastjson.TypeString:
		return append(out, string(v.GetStringBytes())), nil

	case fastjson.TypeObject:
		if single := v.Get("value"); single != nil {
			if single.Type() != fastjson.TypeString {
				return nil, fmt.Errorf("%w: \"value\" is %s", ErrUnsupportedShape, single.Type())
			}
			out = append(out, string(single.GetStringBytes()))
		}
		if many := v.Get("values"); many != nil {
			arr, err := many.Array()
			if err != nil {
				return nil, fmt.Errorf("%w: \"values\" is %s", ErrUnsupportedShape, many.Type())
			}
			for _, item := range arr {
				if item.Type() != fastjson.TypeString {
					return nil, fmt.Errorf("%w: \"values\" holds %s", ErrUnsupportedShape, item.Type())
				}
				out = append(out, string(item.GetStringBytes()))
			}
		}
		if v.Get("value") == nil && v.Get("values") == nil {
			return nil, fmt.Errorf("%w: object without \"value\" or \"values\"", ErrUnsupportedShape)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, v.Type())
	}
}
