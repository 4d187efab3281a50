// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

// Tag is one key/value pair in a tag set.
type Tag struct {
	Key   string
	Value string
}

// GetObjectTaggingResult is the decoded Tagging document.
type GetObjectTaggingResult struct {
	Tags []Tag
}
