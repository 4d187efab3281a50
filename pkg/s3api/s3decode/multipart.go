// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3decode

import (
	"encoding/xml"
	"strings"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3consts"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
)

func decodeInitiateMultipartUploadBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.InitiateMultipartUploadResult)
	return walk(dec, handler{
		text: func(p, v string) error {
			switch p {
			case "Bucket":
				res.Bucket = v
			case "Key":
				res.Key = v
			case "UploadId":
				res.UploadID = v
			}
			return nil
		},
	})
}

func decodeCompleteMultipartUploadBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.CompleteMultipartUploadResult)
	return walk(dec, handler{
		text: func(p, v string) error {
			switch p {
			case "Location":
				res.Location = v
			case "Bucket":
				res.Bucket = v
			case "Key":
				res.Key = v
			case "ETag":
				res.ETag = v
			}
			return nil
		},
	})
}

// listPartsBuilder accumulates one ListPartsResult document.
type listPartsBuilder struct {
	res  *s3types.ListPartsResult
	part *s3types.PartSummary
}

var listPartsFields = map[string]func(*listPartsBuilder, string) error{
	"Bucket":   func(b *listPartsBuilder, v string) error { b.res.Bucket = v; return nil },
	"Key":      func(b *listPartsBuilder, v string) error { b.res.Key = v; return nil },
	"UploadId": func(b *listPartsBuilder, v string) error { b.res.UploadID = v; return nil },
	"StorageClass": func(b *listPartsBuilder, v string) error {
		b.res.StorageClass = v
		return nil
	},
	"PartNumberMarker": func(b *listPartsBuilder, v string) error {
		n, err := parseInt(v)
		b.res.PartNumberMarker = n
		return err
	},
	"NextPartNumberMarker": func(b *listPartsBuilder, v string) error {
		n, err := parseInt(v)
		b.res.NextPartNumberMarker = n
		return err
	},
	"MaxParts": func(b *listPartsBuilder, v string) error {
		n, err := parseInt(v)
		b.res.MaxParts = n
		return err
	},
	"IsTruncated": func(b *listPartsBuilder, v string) error {
		t, err := parseBool(v)
		b.res.IsTruncated = t
		return err
	},
	"Initiator/ID": func(b *listPartsBuilder, v string) error {
		if b.res.Initiator != nil {
			b.res.Initiator.ID = v
		}
		return nil
	},
	"Initiator/DisplayName": func(b *listPartsBuilder, v string) error {
		if b.res.Initiator != nil {
			b.res.Initiator.DisplayName = v
		}
		return nil
	},
	"Owner/ID": func(b *listPartsBuilder, v string) error {
		if b.res.Owner != nil {
			b.res.Owner.ID = v
		}
		return nil
	},
	"Owner/DisplayName": func(b *listPartsBuilder, v string) error {
		if b.res.Owner != nil {
			b.res.Owner.DisplayName = v
		}
		return nil
	},
	"Part/PartNumber": func(b *listPartsBuilder, v string) error {
		if b.part == nil {
			return nil
		}
		n, err := parseInt(v)
		b.part.PartNumber = n
		return err
	},
	"Part/LastModified": func(b *listPartsBuilder, v string) error {
		if b.part == nil {
			return nil
		}
		t, err := parseTime(v)
		b.part.LastModified = t
		return err
	},
	"Part/ETag": func(b *listPartsBuilder, v string) error {
		if b.part != nil {
			b.part.ETag = v
		}
		return nil
	},
	"Part/Size": func(b *listPartsBuilder, v string) error {
		if b.part == nil {
			return nil
		}
		n, err := parseInt64(v)
		b.part.Size = n
		return err
	},
}

func decodeListPartsBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.ListPartsResult)
	b := &listPartsBuilder{res: res}
	return walk(dec, handler{
		start: func(p string, _ []xml.Attr) {
			switch p {
			case "Part":
				b.part = &s3types.PartSummary{}
			case "Initiator":
				res.Initiator = &s3types.Initiator{}
			case "Owner":
				res.Owner = &s3types.Owner{}
			}
		},
		text: func(p, v string) error {
			if set, ok := listPartsFields[p]; ok {
				return set(b, v)
			}
			return nil
		},
		end: func(p string) error {
			if p == "Part" && b.part != nil {
				res.Parts = append(res.Parts, *b.part)
				b.part = nil
			}
			return nil
		},
	})
}

// listUploadsBuilder accumulates one ListMultipartUploadsResult document.
type listUploadsBuilder struct {
	res    *s3types.ListMultipartUploadsResult
	upload *s3types.MultipartUploadSummary
}

var listUploadsFields = map[string]func(*listUploadsBuilder, string) error{
	"Bucket":    func(b *listUploadsBuilder, v string) error { b.res.Bucket = v; return nil },
	"KeyMarker": func(b *listUploadsBuilder, v string) error { b.res.KeyMarker = v; return nil },
	"UploadIdMarker": func(b *listUploadsBuilder, v string) error {
		b.res.UploadIDMarker = v
		return nil
	},
	"NextKeyMarker": func(b *listUploadsBuilder, v string) error {
		b.res.NextKeyMarker = v
		return nil
	},
	"NextUploadIdMarker": func(b *listUploadsBuilder, v string) error {
		b.res.NextUploadIDMarker = v
		return nil
	},
	"Prefix":    func(b *listUploadsBuilder, v string) error { b.res.Prefix = v; return nil },
	"Delimiter": func(b *listUploadsBuilder, v string) error { b.res.Delimiter = v; return nil },
	"EncodingType": func(b *listUploadsBuilder, v string) error {
		b.res.EncodingType = v
		return nil
	},
	"MaxUploads": func(b *listUploadsBuilder, v string) error {
		n, err := parseInt(v)
		b.res.MaxUploads = n
		return err
	},
	"IsTruncated": func(b *listUploadsBuilder, v string) error {
		t, err := parseBool(v)
		b.res.IsTruncated = t
		return err
	},
	"CommonPrefixes/Prefix": func(b *listUploadsBuilder, v string) error {
		b.res.CommonPrefixes = append(b.res.CommonPrefixes, s3types.CommonPrefix{Prefix: v})
		return nil
	},
}

// uploadEntryFields apply to children of one Upload element.
var uploadEntryFields = map[string]func(*s3types.MultipartUploadSummary, string) error{
	"Key":      func(u *s3types.MultipartUploadSummary, v string) error { u.Key = v; return nil },
	"UploadId": func(u *s3types.MultipartUploadSummary, v string) error { u.UploadID = v; return nil },
	"StorageClass": func(u *s3types.MultipartUploadSummary, v string) error {
		u.StorageClass = v
		return nil
	},
	"Initiated": func(u *s3types.MultipartUploadSummary, v string) error {
		t, err := parseTime(v)
		u.Initiated = t
		return err
	},
	"Initiator/ID": func(u *s3types.MultipartUploadSummary, v string) error {
		if u.Initiator != nil {
			u.Initiator.ID = v
		}
		return nil
	},
	"Initiator/DisplayName": func(u *s3types.MultipartUploadSummary, v string) error {
		if u.Initiator != nil {
			u.Initiator.DisplayName = v
		}
		return nil
	},
	"Owner/ID": func(u *s3types.MultipartUploadSummary, v string) error {
		if u.Owner != nil {
			u.Owner.ID = v
		}
		return nil
	},
	"Owner/DisplayName": func(u *s3types.MultipartUploadSummary, v string) error {
		if u.Owner != nil {
			u.Owner.DisplayName = v
		}
		return nil
	},
}

func decodeListMultipartUploadsBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.ListMultipartUploadsResult)
	b := &listUploadsBuilder{res: res}
	err := walk(dec, handler{
		start: func(p string, _ []xml.Attr) {
			switch p {
			case "Upload":
				b.upload = &s3types.MultipartUploadSummary{}
			case "Upload/Initiator":
				if b.upload != nil {
					b.upload.Initiator = &s3types.Initiator{}
				}
			case "Upload/Owner":
				if b.upload != nil {
					b.upload.Owner = &s3types.Owner{}
				}
			}
		},
		text: func(p, v string) error {
			if set, ok := listUploadsFields[p]; ok {
				return set(b, v)
			}
			if rest, found := strings.CutPrefix(p, "Upload/"); found && b.upload != nil {
				if set, ok := uploadEntryFields[rest]; ok {
					return set(b.upload, v)
				}
			}
			return nil
		},
		end: func(p string) error {
			if p == "Upload" && b.upload != nil {
				res.Uploads = append(res.Uploads, *b.upload)
				b.upload = nil
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	if res.EncodingType == s3consts.EncodingTypeURL {
		return unescapeListUploads(res)
	}
	return nil
}

func unescapeListUploads(res *s3types.ListMultipartUploadsResult) error {
	var err error
	if res.Prefix, err = unescapeKey(res.Prefix); err != nil {
		return err
	}
	if res.KeyMarker, err = unescapeKey(res.KeyMarker); err != nil {
		return err
	}
	if res.NextKeyMarker, err = unescapeKey(res.NextKeyMarker); err != nil {
		return err
	}
	if res.Delimiter, err = unescapeKey(res.Delimiter); err != nil {
		return err
	}
	for i := range res.Uploads {
		if res.Uploads[i].Key, err = unescapeKey(res.Uploads[i].Key); err != nil {
			return err
		}
	}
	for i := range res.CommonPrefixes {
		if res.CommonPrefixes[i].Prefix, err = unescapeKey(res.CommonPrefixes[i].Prefix); err != nil {
			return err
		}
	}
	return nil
}
