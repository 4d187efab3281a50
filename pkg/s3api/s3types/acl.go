// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

// Grantee identifies who a grant applies to: a canonical user, a group URI
// or an email address, depending on Type.
type Grantee struct {
	Type        string
	ID          string
	DisplayName string
	URI         string
	Email       string
}

// Grant pairs a grantee with a permission.
type Grant struct {
	Grantee    Grantee
	Permission string
}

// AccessControlPolicy is the decoded AccessControlPolicy document.
type AccessControlPolicy struct {
	Owner  Owner
	Grants []Grant
}
