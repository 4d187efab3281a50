// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3consts"
)

// Request is the generic wire request handed to the transport collaborator.
// Typed per-operation requests build one of these via Build.
type Request struct {
	Op     Operation
	Method string
	Bucket string
	Key    string
	Query  url.Values
	Header http.Header
	Body   io.Reader
}

// Response is what the transport collaborator hands back. The body is passed
// to the decoder regardless of status code; error statuses carry an Error
// XML document the decoder family parses into a service error.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// Doer issues a wire request and returns the raw response. Implementations
// own connection management, timeouts and any signing; none of that happens
// in this layer.
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Builder is implemented by the typed per-operation requests. Build
// validates caller-supplied parameters and produces the wire request;
// contract violations surface here, before any round trip.
type Builder interface {
	Build() (*Request, error)
}

// ListObjectsRequest describes a v1 object listing call.
type ListObjectsRequest struct {
	Bucket       string
	Prefix       string
	Marker       string
	Delimiter    string
	EncodingType string
	MaxKeys      int
}

// Build produces the wire request for this listing.
func (r *ListObjectsRequest) Build() (*Request, error) {
	q := url.Values{}
	addString(q, s3consts.QueryPrefix, r.Prefix)
	addString(q, s3consts.QueryMarker, r.Marker)
	addString(q, s3consts.QueryDelimiter, r.Delimiter)
	addString(q, s3consts.QueryEncodingType, r.EncodingType)
	addInt(q, s3consts.QueryMaxKeys, r.MaxKeys)
	return &Request{Op: OpListObjects, Method: http.MethodGet, Bucket: r.Bucket, Query: q}, nil
}

// ListObjectsV2Request describes a v2 object listing call.
type ListObjectsV2Request struct {
	Bucket            string
	Prefix            string
	ContinuationToken string
	StartAfter        string
	Delimiter         string
	EncodingType      string
	MaxKeys           int
	FetchOwner        bool
}

// Build produces the wire request for this listing.
func (r *ListObjectsV2Request) Build() (*Request, error) {
	q := url.Values{}
	q.Set(s3consts.QueryListType, "2")
	addString(q, s3consts.QueryPrefix, r.Prefix)
	addString(q, s3consts.QueryContinuationToken, r.ContinuationToken)
	addString(q, s3consts.QueryStartAfter, r.StartAfter)
	addString(q, s3consts.QueryDelimiter, r.Delimiter)
	addString(q, s3consts.QueryEncodingType, r.EncodingType)
	addInt(q, s3consts.QueryMaxKeys, r.MaxKeys)
	if r.FetchOwner {
		q.Set(s3consts.QueryFetchOwner, "true")
	}
	return &Request{Op: OpListObjectsV2, Method: http.MethodGet, Bucket: r.Bucket, Query: q}, nil
}

// ListVersionsRequest describes an object version listing call.
//
// VersionIDMarker is only meaningful paired with KeyMarker; setting it alone
// is rejected here rather than deferred to the service.
type ListVersionsRequest struct {
	Bucket          string
	Prefix          string
	KeyMarker       string
	VersionIDMarker string
	Delimiter       string
	EncodingType    string
	MaxKeys         int
}

// Build validates the marker pairing and produces the wire request.
func (r *ListVersionsRequest) Build() (*Request, error) {
	if r.VersionIDMarker != "" && r.KeyMarker == "" {
		return nil, Violation(OpListVersions, "version-id-marker requires key-marker")
	}
	q := url.Values{}
	q.Set(s3consts.QueryVersions, "")
	addString(q, s3consts.QueryPrefix, r.Prefix)
	addString(q, s3consts.QueryKeyMarker, r.KeyMarker)
	addString(q, s3consts.QueryVersionIDMarker, r.VersionIDMarker)
	addString(q, s3consts.QueryDelimiter, r.Delimiter)
	addString(q, s3consts.QueryEncodingType, r.EncodingType)
	addInt(q, s3consts.QueryMaxKeys, r.MaxKeys)
	return &Request{Op: OpListVersions, Method: http.MethodGet, Bucket: r.Bucket, Query: q}, nil
}

// ListMultipartUploadsRequest describes an in-progress upload listing call.
// KeyMarker and UploadIDMarker resume jointly.
type ListMultipartUploadsRequest struct {
	Bucket         string
	Prefix         string
	KeyMarker      string
	UploadIDMarker string
	Delimiter      string
	EncodingType   string
	MaxUploads     int
}

// Build validates the marker pairing and produces the wire request.
func (r *ListMultipartUploadsRequest) Build() (*Request, error) {
	if r.UploadIDMarker != "" && r.KeyMarker == "" {
		return nil, Violation(OpListMultipartUploads, "upload-id-marker requires key-marker")
	}
	q := url.Values{}
	q.Set(s3consts.QueryUploads, "")
	addString(q, s3consts.QueryPrefix, r.Prefix)
	addString(q, s3consts.QueryKeyMarker, r.KeyMarker)
	addString(q, s3consts.QueryUploadIDMarker, r.UploadIDMarker)
	addString(q, s3consts.QueryDelimiter, r.Delimiter)
	addString(q, s3consts.QueryEncodingType, r.EncodingType)
	addInt(q, s3consts.QueryMaxUploads, r.MaxUploads)
	return &Request{Op: OpListMultipartUploads, Method: http.MethodGet, Bucket: r.Bucket, Query: q}, nil
}

// ListPartsRequest describes a part listing call for one upload id.
type ListPartsRequest struct {
	Bucket           string
	Key              string
	UploadID         string
	PartNumberMarker int
	MaxParts         int
}

// Build produces the wire request for this listing.
func (r *ListPartsRequest) Build() (*Request, error) {
	if r.UploadID == "" {
		return nil, Violation(OpListParts, "upload id is required")
	}
	q := url.Values{}
	q.Set(s3consts.QueryUploadID, r.UploadID)
	addInt(q, s3consts.QueryPartNumberMarker, r.PartNumberMarker)
	addInt(q, s3consts.QueryMaxParts, r.MaxParts)
	return &Request{Op: OpListParts, Method: http.MethodGet, Bucket: r.Bucket, Key: r.Key, Query: q}, nil
}

// ListBucketsRequest describes a bucket listing call.
type ListBucketsRequest struct{}

// Build produces the wire request for this listing.
func (r *ListBucketsRequest) Build() (*Request, error) {
	return &Request{Op: OpListBuckets, Method: http.MethodGet, Query: url.Values{}}, nil
}

func addString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func addInt(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}
