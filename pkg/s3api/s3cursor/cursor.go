// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package s3cursor makes truncation and continuation uniform across the
// four listing families while preserving each family's marker semantics.
//
// A Cursor is an immutable value derived from a decoded listing result,
// separate from the data the caller already holds. The manager translates
// cursors into next-page request parameters; it never reorders or
// deduplicates what the service returned.
package s3cursor

import (
	"errors"
	"fmt"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
)

// Family distinguishes which listing a cursor resumes.
type Family int

const (
	FamilyObjects Family = iota
	FamilyObjectsV2
	FamilyVersions
	FamilyUploads
	FamilyParts
)

var familyNames = map[Family]string{
	FamilyObjects:   "objects",
	FamilyObjectsV2: "objects-v2",
	FamilyVersions:  "versions",
	FamilyUploads:   "uploads",
	FamilyParts:     "parts",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "unknown"
}

// Cursor holds exactly the fields needed to resume one truncated listing.
type Cursor struct {
	Family Family

	// FamilyObjects
	Marker string

	// FamilyObjectsV2
	ContinuationToken string

	// FamilyVersions and FamilyUploads resume on KeyMarker jointly with
	// their second marker.
	KeyMarker       string
	VersionIDMarker string
	UploadIDMarker  string

	// FamilyParts
	PartNumberMarker int
}

// ErrNotTruncated is returned by Next for a complete listing. Callers must
// check IsTruncated first; this is a precondition, not a recoverable error.
var ErrNotTruncated = errors.New("s3cursor: listing is not truncated")

// IsTruncated reads the decoded truncation flag. Non-listing results are
// never truncated.
func IsTruncated(result any) bool {
	switch r := result.(type) {
	case *s3types.ListObjectsResult:
		return r.IsTruncated
	case *s3types.ListObjectsV2Result:
		return r.IsTruncated
	case *s3types.ListVersionsResult:
		return r.IsTruncated
	case *s3types.ListMultipartUploadsResult:
		return r.IsTruncated
	case *s3types.ListPartsResult:
		return r.IsTruncated
	}
	return false
}

// Next extracts the family-appropriate continuation cursor from a truncated
// listing result.
func Next(result any) (Cursor, error) {
	if !IsTruncated(result) {
		return Cursor{}, ErrNotTruncated
	}
	switch r := result.(type) {
	case *s3types.ListObjectsResult:
		return Cursor{Family: FamilyObjects, Marker: r.NextMarker}, nil
	case *s3types.ListObjectsV2Result:
		return Cursor{Family: FamilyObjectsV2, ContinuationToken: r.NextContinuationToken}, nil
	case *s3types.ListVersionsResult:
		return Cursor{
			Family:          FamilyVersions,
			KeyMarker:       r.NextKeyMarker,
			VersionIDMarker: r.NextVersionIDMarker,
		}, nil
	case *s3types.ListMultipartUploadsResult:
		return Cursor{
			Family:         FamilyUploads,
			KeyMarker:      r.NextKeyMarker,
			UploadIDMarker: r.NextUploadIDMarker,
		}, nil
	case *s3types.ListPartsResult:
		return Cursor{Family: FamilyParts, PartNumberMarker: r.NextPartNumberMarker}, nil
	}
	return Cursor{}, fmt.Errorf("s3cursor: unsupported result type %T", result)
}

// Apply produces the next page's request from a base request and a cursor.
// The base request is not mutated. Handing a cursor to a request of another
// family is a caller contract violation.
func Apply(base s3api.Builder, c Cursor) (s3api.Builder, error) {
	switch req := base.(type) {
	case *s3api.ListObjectsRequest:
		if c.Family != FamilyObjects {
			return nil, s3api.Violation(s3api.OpListObjects, "cursor family %s does not resume an object listing", c.Family)
		}
		next := *req
		next.Marker = c.Marker
		return &next, nil
	case *s3api.ListObjectsV2Request:
		if c.Family != FamilyObjectsV2 {
			return nil, s3api.Violation(s3api.OpListObjectsV2, "cursor family %s does not resume a v2 object listing", c.Family)
		}
		next := *req
		next.ContinuationToken = c.ContinuationToken
		next.StartAfter = ""
		return &next, nil
	case *s3api.ListVersionsRequest:
		if c.Family != FamilyVersions {
			return nil, s3api.Violation(s3api.OpListVersions, "cursor family %s does not resume a version listing", c.Family)
		}
		// Both markers travel together; a version-id-marker alone is
		// rejected by the request itself at Build time.
		next := *req
		next.KeyMarker = c.KeyMarker
		next.VersionIDMarker = c.VersionIDMarker
		return &next, nil
	case *s3api.ListMultipartUploadsRequest:
		if c.Family != FamilyUploads {
			return nil, s3api.Violation(s3api.OpListMultipartUploads, "cursor family %s does not resume an upload listing", c.Family)
		}
		next := *req
		next.KeyMarker = c.KeyMarker
		next.UploadIDMarker = c.UploadIDMarker
		return &next, nil
	case *s3api.ListPartsRequest:
		if c.Family != FamilyParts {
			return nil, s3api.Violation(s3api.OpListParts, "cursor family %s does not resume a part listing", c.Family)
		}
		next := *req
		next.PartNumberMarker = c.PartNumberMarker
		return &next, nil
	}
	return nil, fmt.Errorf("s3cursor: unsupported request type %T", base)
}
