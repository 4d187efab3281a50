// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package s3decode turns S3 response byte streams into typed results.
//
// Every operation has a registered decode function. XML documents are
// consumed in a single forward pass with an explicit element-path stack and
// a builder value per operation; the raw document tree is never held in
// memory. Decoding has no retry policy of its own: decode and service
// errors always surface to the caller.
package s3decode

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3err"
)

// ErrUnknownOperation is returned by Resolve for an unregistered operation.
// This is a programming error in the caller, not a condition to retry.
var ErrUnknownOperation = errors.New("s3decode: unknown operation")

// DecodeFunc decodes one response body into the operation's result type.
// The stream must be positioned at the start of the document; the function
// consumes it to exhaustion or to the first unrecoverable parse error.
type DecodeFunc func(r io.Reader) (any, error)

// DecodeError reports malformed or unexpected XML. Partial holds whatever
// result fields were populated before the failure; the caller decides
// whether partial data is usable.
type DecodeError struct {
	Op      s3api.Operation
	Partial any
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// registry maps each operation to its decode function. The set is closed;
// it is populated in registry.go and never mutated after init.
var registry = map[s3api.Operation]DecodeFunc{}

// Resolve returns the decode function for the operation.
func Resolve(op s3api.Operation) (DecodeFunc, error) {
	fn, ok := registry[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	return fn, nil
}

// Decode resolves and runs the operation's decoder against the stream.
func Decode(op s3api.Operation, r io.Reader) (any, error) {
	fn, err := Resolve(op)
	if err != nil {
		return nil, err
	}
	res, err := fn(r)
	observeDecode(op, err)
	return res, err
}

// DecodeResponse decodes a transport response. Error statuses carry an
// Error XML document regardless of operation, so they are routed to the
// error-document decoder and returned as a service error with the HTTP
// status attached.
func DecodeResponse(op s3api.Operation, resp *s3api.Response) (any, error) {
	if resp.StatusCode >= http.StatusMultipleChoices {
		serr := decodeErrorBody(op, resp.Body)
		serr.HTTPCode = resp.StatusCode
		if serr.RequestID == "" && resp.Header != nil {
			serr.RequestID = resp.Header.Get("x-amz-request-id")
		}
		observeDecode(op, serr)
		return nil, serr
	}
	return Decode(op, resp.Body)
}

// bodyFunc decodes a document body into the result after the root element
// has been consumed.
type bodyFunc func(dec *xml.Decoder, res any) error

// docDecoder builds a DecodeFunc for an XML document operation. The root
// element is probed first: an Error root yields a service error for any
// operation, never a DecodeError and never a zero-valued success result.
func docDecoder(op s3api.Operation, body bodyFunc, newResult func() any) DecodeFunc {
	return func(r io.Reader) (any, error) {
		dec := xml.NewDecoder(r)
		root, err := probeRoot(dec)
		if err != nil {
			return nil, &DecodeError{Op: op, Err: err}
		}
		if root.Name.Local == "Error" {
			return nil, decodeErrorDoc(dec)
		}
		res := newResult()
		if err := body(dec, res); err != nil {
			return res, &DecodeError{Op: op, Partial: res, Err: err}
		}
		return res, nil
	}
}

// emptyDecoder builds the decode variant for operations with no output
// shape. It returns the result without reading any bytes.
func emptyDecoder(newResult func() any) DecodeFunc {
	return func(io.Reader) (any, error) {
		return newResult(), nil
	}
}

// decodeErrorDoc parses an Error document body after its root element has
// been consumed.
func decodeErrorDoc(dec *xml.Decoder) *s3err.Error {
	serr := &s3err.Error{}
	// Parse errors inside an error document are swallowed: whatever fields
	// were read still identify the failure better than a bare status code.
	_ = walk(dec, handler{
		text: func(path, value string) error {
			switch path {
			case "Code":
				serr.Code = value
			case "Message":
				serr.Message = value
			case "Resource":
				serr.Resource = value
			case "RequestId":
				serr.RequestID = value
			case "HostId":
				serr.HostID = value
			}
			return nil
		},
	})
	return serr
}

// decodeErrorBody decodes a full error response body, tolerating an empty
// or non-XML body (some operations return bare error statuses).
func decodeErrorBody(op s3api.Operation, r io.Reader) *s3err.Error {
	dec := xml.NewDecoder(r)
	root, err := probeRoot(dec)
	if err != nil || root.Name.Local != "Error" {
		return &s3err.Error{Code: "UnknownError", Message: op.String() + " failed"}
	}
	return decodeErrorDoc(dec)
}
