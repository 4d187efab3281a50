// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3decode

import (
	"encoding/xml"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
)

// Copy responses share a shape between CopyObjectResult and CopyPartResult.
// Both are multi-phase: the service can return HTTP 200 whose body is an
// Error document, which docDecoder surfaces as a service error before these
// run.

func decodeCopyObjectBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.CopyObjectResult)
	return walk(dec, handler{
		text: func(p, v string) error {
			switch p {
			case "ETag":
				res.ETag = v
			case "LastModified":
				t, err := parseTime(v)
				res.LastModified = t
				return err
			}
			return nil
		},
	})
}

func decodeCopyPartBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.CopyPartResult)
	return walk(dec, handler{
		text: func(p, v string) error {
			switch p {
			case "ETag":
				res.ETag = v
			case "LastModified":
				t, err := parseTime(v)
				res.LastModified = t
				return err
			}
			return nil
		},
	})
}

// deleteObjectsBuilder accumulates one DeleteResult document. Successes and
// per-key errors are both data here; aggregate failure is the caller's
// decision.
type deleteObjectsBuilder struct {
	res     *s3types.DeleteObjectsResult
	deleted *s3types.DeletedObject
	delErr  *s3types.DeleteError
}

var deleteObjectsFields = map[string]func(*deleteObjectsBuilder, string) error{
	"Deleted/Key": func(b *deleteObjectsBuilder, v string) error {
		if b.deleted != nil {
			b.deleted.Key = v
		}
		return nil
	},
	"Deleted/VersionId": func(b *deleteObjectsBuilder, v string) error {
		if b.deleted != nil {
			b.deleted.VersionID = v
		}
		return nil
	},
	"Deleted/DeleteMarker": func(b *deleteObjectsBuilder, v string) error {
		if b.deleted == nil {
			return nil
		}
		t, err := parseBool(v)
		b.deleted.DeleteMarker = t
		return err
	},
	"Deleted/DeleteMarkerVersionId": func(b *deleteObjectsBuilder, v string) error {
		if b.deleted != nil {
			b.deleted.DeleteMarkerVersionID = v
		}
		return nil
	},
	"Error/Key": func(b *deleteObjectsBuilder, v string) error {
		if b.delErr != nil {
			b.delErr.Key = v
		}
		return nil
	},
	"Error/VersionId": func(b *deleteObjectsBuilder, v string) error {
		if b.delErr != nil {
			b.delErr.VersionID = v
		}
		return nil
	},
	"Error/Code": func(b *deleteObjectsBuilder, v string) error {
		if b.delErr != nil {
			b.delErr.Code = v
		}
		return nil
	},
	"Error/Message": func(b *deleteObjectsBuilder, v string) error {
		if b.delErr != nil {
			b.delErr.Message = v
		}
		return nil
	},
}

func decodeDeleteObjectsBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.DeleteObjectsResult)
	b := &deleteObjectsBuilder{res: res}
	return walk(dec, handler{
		start: func(p string, _ []xml.Attr) {
			switch p {
			case "Deleted":
				b.deleted = &s3types.DeletedObject{}
			case "Error":
				b.delErr = &s3types.DeleteError{}
			}
		},
		text: func(p, v string) error {
			if set, ok := deleteObjectsFields[p]; ok {
				return set(b, v)
			}
			return nil
		},
		end: func(p string) error {
			switch p {
			case "Deleted":
				if b.deleted != nil {
					res.Deleted = append(res.Deleted, *b.deleted)
					b.deleted = nil
				}
			case "Error":
				if b.delErr != nil {
					res.Errors = append(res.Errors, *b.delErr)
					b.delErr = nil
				}
			}
			return nil
		},
	})
}

func decodeObjectTaggingBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.GetObjectTaggingResult)
	var tag *s3types.Tag
	return walk(dec, handler{
		start: func(p string, _ []xml.Attr) {
			if p == "TagSet/Tag" {
				tag = &s3types.Tag{}
			}
		},
		text: func(p, v string) error {
			switch p {
			case "TagSet/Tag/Key":
				if tag != nil {
					tag.Key = v
				}
			case "TagSet/Tag/Value":
				if tag != nil {
					tag.Value = v
				}
			}
			return nil
		},
		end: func(p string) error {
			if p == "TagSet/Tag" && tag != nil {
				res.Tags = append(res.Tags, *tag)
				tag = nil
			}
			return nil
		},
	})
}

func decodeAccessControlPolicyBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.AccessControlPolicy)
	var grant *s3types.Grant
	return walk(dec, handler{
		start: func(p string, attrs []xml.Attr) {
			switch p {
			case "AccessControlList/Grant":
				grant = &s3types.Grant{}
			case "AccessControlList/Grant/Grantee":
				if grant == nil {
					return
				}
				// Grantee kind rides on the xsi:type attribute.
				for _, a := range attrs {
					if a.Name.Local == "type" {
						grant.Grantee.Type = a.Value
					}
				}
			}
		},
		text: func(p, v string) error {
			switch p {
			case "Owner/ID":
				res.Owner.ID = v
			case "Owner/DisplayName":
				res.Owner.DisplayName = v
			case "AccessControlList/Grant/Permission":
				if grant != nil {
					grant.Permission = v
				}
			case "AccessControlList/Grant/Grantee/ID":
				if grant != nil {
					grant.Grantee.ID = v
				}
			case "AccessControlList/Grant/Grantee/DisplayName":
				if grant != nil {
					grant.Grantee.DisplayName = v
				}
			case "AccessControlList/Grant/Grantee/URI":
				if grant != nil {
					grant.Grantee.URI = v
				}
			case "AccessControlList/Grant/Grantee/EmailAddress":
				if grant != nil {
					grant.Grantee.Email = v
				}
			}
			return nil
		},
		end: func(p string) error {
			if p == "AccessControlList/Grant" && grant != nil {
				res.Grants = append(res.Grants, *grant)
				grant = nil
			}
			return nil
		},
	})
}
