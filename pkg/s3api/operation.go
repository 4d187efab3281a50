// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package s3api holds the operation identifiers, typed requests and the
// transport collaborator contract shared by the decoding, pagination and
// multipart packages.
package s3api

// Operation identifies one S3 API call. The set is closed and known at
// compile time; decoders are registered against it.
type Operation int

const (
	OpUnknown Operation = iota

	// Bucket operations
	OpListBuckets
	OpGetBucketLocation

	// Object listing operations
	OpListObjects
	OpListObjectsV2
	OpListVersions

	// Object operations
	OpCopyObject
	OpDeleteObjects
	OpGetObjectTagging
	OpSetObjectTagging
	OpDeleteObjectTagging
	OpGetObjectACL

	// Multipart upload operations
	OpInitiateMultipartUpload
	OpCompleteMultipartUpload
	OpAbortMultipartUpload
	OpCopyPart
	OpListParts
	OpListMultipartUploads

	// Public access block operations
	OpSetPublicAccessBlock
	OpDeletePublicAccessBlock
)

var operationNames = map[Operation]string{
	OpUnknown:                 "Unknown",
	OpListBuckets:             "ListBuckets",
	OpGetBucketLocation:       "GetBucketLocation",
	OpListObjects:             "ListObjects",
	OpListObjectsV2:           "ListObjectsV2",
	OpListVersions:            "ListVersions",
	OpCopyObject:              "CopyObject",
	OpDeleteObjects:           "DeleteObjects",
	OpGetObjectTagging:        "GetObjectTagging",
	OpSetObjectTagging:        "SetObjectTagging",
	OpDeleteObjectTagging:     "DeleteObjectTagging",
	OpGetObjectACL:            "GetObjectACL",
	OpInitiateMultipartUpload: "InitiateMultipartUpload",
	OpCompleteMultipartUpload: "CompleteMultipartUpload",
	OpAbortMultipartUpload:    "AbortMultipartUpload",
	OpCopyPart:                "CopyPart",
	OpListParts:               "ListParts",
	OpListMultipartUploads:    "ListMultipartUploads",
	OpSetPublicAccessBlock:    "SetPublicAccessBlock",
	OpDeletePublicAccessBlock: "DeletePublicAccessBlock",
}

// String returns the canonical S3 operation name.
func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return "Unknown"
}
