// Package plist decodes XML property lists (.plist, .mobileconfig) into the
// generic node model used by the format adapters.
package plist

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/confsweep/confsweep/pkg/errors"
	"github.com/confsweep/confsweep/pkg/types"
)

// Parse decodes an XML property list document. The root value must be a
// dict; anything else is a parse error since payload bundles are always
// keyed documents.
func Parse(data []byte) (types.Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocParse, "invalid property list XML")
	}

	root := doc.SelectElement("plist")
	if root == nil {
		return nil, errors.New(errors.ErrDocParse, "missing <plist> root element")
	}

	elems := root.ChildElements()
	if len(elems) == 0 {
		return nil, errors.New(errors.ErrDocParse, "empty property list")
	}

	value, err := decodeValue(elems[0])
	if err != nil {
		return nil, err
	}

	node, ok := types.AsNode(value)
	if !ok {
		return nil, errors.New(errors.ErrDocParse, "property list root is not a dict")
	}
	return node, nil
}

func decodeValue(e *etree.Element) (any, error) {
	switch e.Tag {
	case "dict":
		return decodeDict(e)
	case "array":
		return decodeArray(e)
	case "string", "date", "data":
		return e.Text(), nil
	case "integer":
		n, err := strconv.ParseFloat(strings.TrimSpace(e.Text()), 64)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDocParse, "invalid integer %q", e.Text())
		}
		return n, nil
	case "real":
		n, err := strconv.ParseFloat(strings.TrimSpace(e.Text()), 64)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDocParse, "invalid real %q", e.Text())
		}
		return n, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return nil, errors.Newf(errors.ErrDocParse, "unsupported plist element <%s>", e.Tag)
	}
}

func decodeDict(e *etree.Element) (map[string]any, error) {
	dict := make(map[string]any)
	elems := e.ChildElements()
	for i := 0; i < len(elems); i++ {
		if elems[i].Tag != "key" {
			return nil, errors.Newf(errors.ErrDocParse, "expected <key>, found <%s>", elems[i].Tag)
		}
		if i+1 >= len(elems) {
			return nil, errors.Newf(errors.ErrDocParse, "dangling key %q", elems[i].Text())
		}
		value, err := decodeValue(elems[i+1])
		if err != nil {
			return nil, err
		}
		dict[elems[i].Text()] = value
		i++
	}
	return dict, nil
}

func decodeArray(e *etree.Element) ([]any, error) {
	var values []any
	for _, child := range e.ChildElements() {
		value, err := decodeValue(child)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
