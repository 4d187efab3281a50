// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3decode

import (
	"encoding/xml"
	"io"
	"strings"
)

// handler receives structural events from walk. Paths are slash-joined
// element names relative to the document root ("Contents/Key"). Unknown
// paths must be ignored by handlers: the service may add elements this
// client does not yet understand.
type handler struct {
	start func(path string, attrs []xml.Attr)
	text  func(path, value string) error
	end   func(path string) error
}

// frame is one open element on the walker stack.
type frame struct {
	name string
	leaf bool
	text strings.Builder
}

// walk consumes the document body after the root start element in a single
// forward pass, maintaining only the open-element path and the text of the
// innermost element. It returns on the root end element, on the first
// handler error, or on a parse error (premature EOF, unbalanced tags).
func walk(dec *xml.Decoder, h handler) error {
	var stack []frame

	path := func() string {
		names := make([]string, len(stack))
		for i := range stack {
			names[i] = stack[i].name
		}
		return strings.Join(names, "/")
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return io.ErrUnexpectedEOF
			}
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) > 0 {
				stack[len(stack)-1].leaf = false
			}
			stack = append(stack, frame{name: t.Name.Local, leaf: true})
			if h.start != nil {
				h.start(path(), t.Attr)
			}

		case xml.CharData:
			if len(stack) > 0 && stack[len(stack)-1].leaf {
				stack[len(stack)-1].text.Write(t)
			}

		case xml.EndElement:
			if len(stack) == 0 {
				// Root end element: the document body is done.
				return nil
			}
			p := path()
			top := &stack[len(stack)-1]
			if top.leaf && h.text != nil {
				if err := h.text(p, top.text.String()); err != nil {
					return err
				}
			}
			if h.end != nil {
				if err := h.end(p); err != nil {
					return err
				}
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// probeRoot advances the decoder to the document's root start element,
// skipping the prolog. It is how multi-phase decoders tell an expected
// result document apart from an in-body Error document.
func probeRoot(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}
