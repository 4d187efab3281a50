// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import "encoding/xml"

// DeleteObjectsRequest is the XML request body for DeleteObjects
// (multi-object delete).
type DeleteObjectsRequest struct {
	XMLName xml.Name            `xml:"Delete"`
	Quiet   bool                `xml:"Quiet"`
	Objects []DeleteObjectEntry `xml:"Object"`
}

// DeleteObjectEntry identifies one object to delete.
type DeleteObjectEntry struct {
	Key       string `xml:"Key"`
	VersionID string `xml:"VersionId,omitempty"`
}

// DeleteObjectsResult is the decoded DeleteResult document. Deletion is
// best-effort per key: a single response can carry both successes and
// per-key errors, and both lists are surfaced. Deciding whether the partial
// failure is fatal belongs to the caller.
type DeleteObjectsResult struct {
	Deleted []DeletedObject
	Errors  []DeleteError
}

// DeletedObject represents a successfully deleted object.
type DeletedObject struct {
	Key                   string
	VersionID             string
	DeleteMarker          bool
	DeleteMarkerVersionID string
}

// DeleteError represents one per-key deletion failure.
type DeleteError struct {
	Key       string
	VersionID string
	Code      string
	Message   string
}
