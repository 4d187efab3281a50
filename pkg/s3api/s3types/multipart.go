// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import (
	"encoding/xml"
	"time"
)

// InitiateMultipartUploadResult is the decoded response for
// CreateMultipartUpload. UploadID is an opaque token.
type InitiateMultipartUploadResult struct {
	Bucket   string
	Key      string
	UploadID string
}

// CompleteMultipartUploadRequest is the request body sent for
// CompleteMultipartUpload. The service requires parts in ascending part
// number order.
type CompleteMultipartUploadRequest struct {
	XMLName xml.Name       `xml:"CompleteMultipartUpload"`
	Parts   []CompletePart `xml:"Part"`
}

// CompletePart is one (part number, entity tag) pair in the complete
// request. The ETag must be echoed verbatim from the part upload response.
type CompletePart struct {
	PartNumber int    `xml:"PartNumber"`
	ETag       string `xml:"ETag"`
}

// CompleteMultipartUploadResult is the decoded response for
// CompleteMultipartUpload.
type CompleteMultipartUploadResult struct {
	Location string
	Bucket   string
	Key      string
	ETag     string
}

// PartSummary represents one part in a ListParts response.
type PartSummary struct {
	PartNumber   int
	LastModified time.Time
	ETag         string
	Size         int64
}

// ListPartsResult is the decoded ListPartsResult document.
type ListPartsResult struct {
	Bucket               string
	Key                  string
	UploadID             string
	Initiator            *Initiator
	Owner                *Owner
	StorageClass         string
	PartNumberMarker     int
	NextPartNumberMarker int
	MaxParts             int
	IsTruncated          bool
	Parts                []PartSummary
}

// MultipartUploadSummary represents one in-progress upload in a
// ListMultipartUploads response.
type MultipartUploadSummary struct {
	Key          string
	UploadID     string
	Initiator    *Initiator
	Owner        *Owner
	StorageClass string
	Initiated    time.Time
}

// ListMultipartUploadsResult is the decoded ListMultipartUploadsResult
// document.
type ListMultipartUploadsResult struct {
	Bucket             string
	KeyMarker          string
	UploadIDMarker     string
	NextKeyMarker      string
	NextUploadIDMarker string
	Prefix             string
	Delimiter          string
	EncodingType       string
	MaxUploads         int
	IsTruncated        bool
	Uploads            []MultipartUploadSummary
	CommonPrefixes     []CommonPrefix
}
