// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package s3err models the service-side XML error document and the error
// codes a client interprets.
// Based on: https://docs.aws.amazon.com/AmazonS3/latest/API/ErrorResponses.html#ErrorCodeList
package s3err

import (
	"errors"
	"net/http"
	"strings"
)

// Error is a decoded service error document. The service returns one of
// these as the response body for failed calls, and for a handful of
// operations (CopyObject, CompleteMultipartUpload) inside an HTTP 200
// response.
type Error struct {
	Code      string
	Message   string
	Resource  string
	RequestID string
	HostID    string
	// HTTPCode is the status the document arrived with; 200 for the
	// in-body error pattern.
	HTTPCode int
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code)
	b.WriteString(": ")
	if e.Resource != "" {
		b.WriteString(e.Resource)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

// IsServiceError reports whether err is (or wraps) a decoded service error.
func IsServiceError(err error) bool {
	var se *Error
	return errors.As(err, &se)
}

// CodeIs reports whether err is a service error carrying the given code.
func CodeIs(err error, code string) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == code
}

// ErrorCode is an enumeration of the S3 error codes this client
// distinguishes when classifying a decoded Error document.
type ErrorCode int

const (
	ErrNone ErrorCode = iota

	// Access
	ErrAccessDenied
	ErrInvalidAccessKeyID
	ErrSignatureDoesNotMatch
	ErrExpiredToken
	ErrInvalidToken

	// Bucket
	ErrNoSuchBucket
	ErrBucketAlreadyExists
	ErrBucketAlreadyOwnedByYou
	ErrBucketNotEmpty
	ErrInvalidBucketName
	ErrNoSuchBucketPolicy
	ErrNoSuchCORSConfiguration
	ErrNoSuchLifecycleConfiguration
	ErrNoSuchTagSet
	ErrNoSuchPublicAccessBlockConfiguration

	// Object
	ErrNoSuchKey
	ErrNoSuchVersion
	ErrInvalidObjectState
	ErrKeyTooLong

	// Multipart upload
	ErrNoSuchUpload
	ErrInvalidPart
	ErrInvalidPartOrder
	ErrTooManyParts
	ErrEntityTooSmall
	ErrEntityTooLarge

	// Request validation
	ErrInvalidRequest
	ErrInvalidArgument
	ErrInvalidRange
	ErrBadDigest
	ErrMalformedXML
	ErrInvalidCopySource
	ErrPreconditionFailed

	// Service / throttling
	ErrInternalError
	ErrNotImplemented
	ErrServiceUnavailable
	ErrSlowDown
)

// APIError carries the canonical code string, default description and HTTP
// status for one error code.
type APIError struct {
	Code           string
	Description    string
	HTTPStatusCode int
}

var errorCodeResponse = map[ErrorCode]APIError{
	ErrAccessDenied: {
		Code:           "AccessDenied",
		Description:    "Access Denied.",
		HTTPStatusCode: http.StatusForbidden,
	},
	ErrInvalidAccessKeyID: {
		Code:           "InvalidAccessKeyId",
		Description:    "The AWS access key ID you provided does not exist in our records.",
		HTTPStatusCode: http.StatusForbidden,
	},
	ErrSignatureDoesNotMatch: {
		Code:           "SignatureDoesNotMatch",
		Description:    "The request signature we calculated does not match the signature you provided. Check your key and signing method.",
		HTTPStatusCode: http.StatusForbidden,
	},
	ErrExpiredToken: {
		Code:           "ExpiredToken",
		Description:    "The provided token has expired.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrInvalidToken: {
		Code:           "InvalidToken",
		Description:    "The provided token is malformed or otherwise invalid.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrNoSuchBucket: {
		Code:           "NoSuchBucket",
		Description:    "The specified bucket does not exist.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrBucketAlreadyExists: {
		Code:           "BucketAlreadyExists",
		Description:    "The requested bucket name is not available. The bucket namespace is shared by all users of the system. Please select a different name and try again.",
		HTTPStatusCode: http.StatusConflict,
	},
	ErrBucketAlreadyOwnedByYou: {
		Code:           "BucketAlreadyOwnedByYou",
		Description:    "Your previous request to create the named bucket succeeded and you already own it.",
		HTTPStatusCode: http.StatusConflict,
	},
	ErrBucketNotEmpty: {
		Code:           "BucketNotEmpty",
		Description:    "The bucket you tried to delete is not empty.",
		HTTPStatusCode: http.StatusConflict,
	},
	ErrInvalidBucketName: {
		Code:           "InvalidBucketName",
		Description:    "The specified bucket is not valid.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrNoSuchBucketPolicy: {
		Code:           "NoSuchBucketPolicy",
		Description:    "The bucket policy does not exist.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrNoSuchCORSConfiguration: {
		Code:           "NoSuchCORSConfiguration",
		Description:    "The CORS configuration does not exist.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrNoSuchLifecycleConfiguration: {
		Code:           "NoSuchLifecycleConfiguration",
		Description:    "The lifecycle configuration does not exist.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrNoSuchTagSet: {
		Code:           "NoSuchTagSet",
		Description:    "The TagSet does not exist.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrNoSuchPublicAccessBlockConfiguration: {
		Code:           "NoSuchPublicAccessBlockConfiguration",
		Description:    "The public access block configuration was not found.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrNoSuchKey: {
		Code:           "NoSuchKey",
		Description:    "The specified key does not exist.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrNoSuchVersion: {
		Code:           "NoSuchVersion",
		Description:    "The specified version does not exist.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrInvalidObjectState: {
		Code:           "InvalidObjectState",
		Description:    "The operation is not valid for the current state of the object.",
		HTTPStatusCode: http.StatusForbidden,
	},
	ErrKeyTooLong: {
		Code:           "KeyTooLongError",
		Description:    "Your key is too long.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrNoSuchUpload: {
		Code:           "NoSuchUpload",
		Description:    "The specified multipart upload does not exist. The upload ID may be invalid, or the upload may have been aborted or completed.",
		HTTPStatusCode: http.StatusNotFound,
	},
	ErrInvalidPart: {
		Code:           "InvalidPart",
		Description:    "One or more of the specified parts could not be found. The part may not have been uploaded, or the specified entity tag may not match the part's entity tag.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrInvalidPartOrder: {
		Code:           "InvalidPartOrder",
		Description:    "The list of parts was not in ascending order. Parts must be ordered by part number.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrTooManyParts: {
		Code:           "TooManyParts",
		Description:    "You have attempted to upload more parts than Amazon S3 accepts.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrEntityTooSmall: {
		Code:           "EntityTooSmall",
		Description:    "Your proposed upload is smaller than the minimum allowed object size.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrEntityTooLarge: {
		Code:           "EntityTooLarge",
		Description:    "Your proposed upload exceeds the maximum allowed object size.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrInvalidRequest: {
		Code:           "InvalidRequest",
		Description:    "Invalid Request.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrInvalidArgument: {
		Code:           "InvalidArgument",
		Description:    "Invalid Argument.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrInvalidRange: {
		Code:           "InvalidRange",
		Description:    "The requested range is not satisfiable.",
		HTTPStatusCode: http.StatusRequestedRangeNotSatisfiable,
	},
	ErrBadDigest: {
		Code:           "BadDigest",
		Description:    "The Content-MD5 you specified did not match what we received.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrMalformedXML: {
		Code:           "MalformedXML",
		Description:    "The XML you provided was not well-formed or did not validate against our published schema.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrInvalidCopySource: {
		Code:           "InvalidArgument",
		Description:    "Copy Source must mention the source bucket and key: sourcebucket/sourcekey.",
		HTTPStatusCode: http.StatusBadRequest,
	},
	ErrPreconditionFailed: {
		Code:           "PreconditionFailed",
		Description:    "At least one of the pre-conditions you specified did not hold.",
		HTTPStatusCode: http.StatusPreconditionFailed,
	},
	ErrInternalError: {
		Code:           "InternalError",
		Description:    "We encountered an internal error. Please try again.",
		HTTPStatusCode: http.StatusInternalServerError,
	},
	ErrNotImplemented: {
		Code:           "NotImplemented",
		Description:    "A header you provided implies functionality that is not implemented.",
		HTTPStatusCode: http.StatusNotImplemented,
	},
	ErrServiceUnavailable: {
		Code:           "ServiceUnavailable",
		Description:    "Service is unable to handle request.",
		HTTPStatusCode: http.StatusServiceUnavailable,
	},
	ErrSlowDown: {
		Code:           "SlowDown",
		Description:    "Please reduce your request rate.",
		HTTPStatusCode: http.StatusServiceUnavailable,
	},
}

// codeToErrorCode is the reverse index, built once at init. Codes sharing a
// wire string (e.g. InvalidArgument) resolve to the first registered entry.
var codeToErrorCode = func() map[string]ErrorCode {
	m := make(map[string]ErrorCode, len(errorCodeResponse))
	for ec := ErrNone + 1; int(ec) <= len(errorCodeResponse); ec++ {
		api, ok := errorCodeResponse[ec]
		if !ok {
			continue
		}
		if _, exists := m[api.Code]; !exists {
			m[api.Code] = ec
		}
	}
	return m
}()

// Classify maps a decoded service error to an ErrorCode, or ErrNone when the
// code string is not one this client distinguishes.
func Classify(e *Error) ErrorCode {
	if e == nil {
		return ErrNone
	}
	return codeToErrorCode[e.Code]
}

// APIError returns the full APIError struct for this error code.
func (e ErrorCode) APIError() APIError {
	if err, ok := errorCodeResponse[e]; ok {
		return err
	}
	return APIError{
		Code:           "InternalError",
		Description:    "We encountered an internal error. Please try again.",
		HTTPStatusCode: http.StatusInternalServerError,
	}
}

// Code returns the S3 error code string.
func (e ErrorCode) Code() string {
	return e.APIError().Code
}

// Description returns the error description.
func (e ErrorCode) Description() string {
	return e.APIError().Description
}

// Error implements the error interface.
func (e ErrorCode) Error() string {
	return e.Description()
}

// HTTPStatusCode returns the HTTP status code for this error.
func (e ErrorCode) HTTPStatusCode() int {
	return e.APIError().HTTPStatusCode
}

// Retryable reports whether the service asks the client to try again.
// Whether to actually retry is the caller's policy.
func (e ErrorCode) Retryable() bool {
	switch e {
	case ErrInternalError, ErrServiceUnavailable, ErrSlowDown:
		return true
	}
	return false
}
