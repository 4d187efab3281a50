// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3consts

// http://docs.aws.amazon.com/AmazonS3/latest/dev/UploadingObjects.html
const (
	// MaxObjectSize is the maximum object size per PUT request (5GiB)
	MaxObjectSize = 1024 * 1024 * 1024 * 5
	// MinPartID is the smallest part number accepted for multipart upload
	MinPartID = 1
	// MaxPartID is the maximum Part ID for multipart upload (10000)
	// Acceptable values range from 1 to 10000 inclusive
	MaxPartID = 10000
	// MaxDeleteObjects is the maximum number of keys in one DeleteObjects request
	MaxDeleteObjects = 1000
)

// Query parameters understood by the listing and multipart APIs.
const (
	QueryMarker            = "marker"
	QueryKeyMarker         = "key-marker"
	QueryVersionIDMarker   = "version-id-marker"
	QueryUploadIDMarker    = "upload-id-marker"
	QueryPartNumberMarker  = "part-number-marker"
	QueryContinuationToken = "continuation-token"
	QueryStartAfter        = "start-after"
	QueryDelimiter         = "delimiter"
	QueryPrefix            = "prefix"
	QueryMaxKeys           = "max-keys"
	QueryMaxUploads        = "max-uploads"
	QueryMaxParts          = "max-parts"
	QueryEncodingType      = "encoding-type"
	QueryFetchOwner        = "fetch-owner"
	QueryListType          = "list-type"
	QueryUploads           = "uploads"
	QueryUploadID          = "uploadId"
	QueryPartNumber        = "partNumber"
	QueryVersions          = "versions"
	QueryDelete            = "delete"
	QueryTagging           = "tagging"
	QueryACL               = "acl"
	QueryLocation          = "location"
	QueryVersionID         = "versionId"
)

// Response headers the client surfaces back to callers.
const (
	// --- Core request / tracing ---
	XAmzRequestID = "x-amz-request-id"
	XAmzId2       = "x-amz-id-2"

	// --- Versioning ---
	XAmzVersionID    = "x-amz-version-id"
	XAmzDeleteMarker = "x-amz-delete-marker"

	// --- Copy source ---
	XAmzCopySource        = "x-amz-copy-source"
	XAmzCopySourceRange   = "x-amz-copy-source-range"
	XAmzCopySourceVersion = "x-amz-copy-source-version-id"

	// --- Multipart upload ---
	XAmzAbortDate   = "x-amz-abort-date"
	XAmzAbortRuleID = "x-amz-abort-rule-id"

	// --- Storage class ---
	XAmzStorageClass = "x-amz-storage-class"
)

// EncodingTypeURL is the only encoding-type value the service defines.
// When requested, keys, prefixes and markers come back percent-encoded.
const EncodingTypeURL = "url"

// Storage class values
const (
	StorageClassStandard           = "STANDARD"
	StorageClassReducedRedundancy  = "REDUCED_REDUNDANCY"
	StorageClassStandardIA         = "STANDARD_IA"
	StorageClassOnezoneIA          = "ONEZONE_IA"
	StorageClassIntelligentTiering = "INTELLIGENT_TIERING"
	StorageClassGlacier            = "GLACIER"
	StorageClassGlacierIR          = "GLACIER_IR"
	StorageClassDeepArchive        = "DEEP_ARCHIVE"
)
