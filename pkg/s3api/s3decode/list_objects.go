// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3decode

import (
	"encoding/xml"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3consts"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
)

// listObjectsBuilder accumulates one ListBucketResult (v1) document.
type listObjectsBuilder struct {
	res *s3types.ListObjectsResult
	obj *s3types.ObjectSummary
}

var listObjectsFields = map[string]func(*listObjectsBuilder, string) error{
	"Name":      func(b *listObjectsBuilder, v string) error { b.res.Name = v; return nil },
	"Prefix":    func(b *listObjectsBuilder, v string) error { b.res.Prefix = v; return nil },
	"Marker":    func(b *listObjectsBuilder, v string) error { b.res.Marker = v; return nil },
	"Delimiter": func(b *listObjectsBuilder, v string) error { b.res.Delimiter = v; return nil },
	"EncodingType": func(b *listObjectsBuilder, v string) error {
		b.res.EncodingType = v
		return nil
	},
	"NextMarker": func(b *listObjectsBuilder, v string) error { b.res.NextMarker = v; return nil },
	"MaxKeys": func(b *listObjectsBuilder, v string) error {
		n, err := parseInt(v)
		b.res.MaxKeys = n
		return err
	},
	"IsTruncated": func(b *listObjectsBuilder, v string) error {
		t, err := parseBool(v)
		b.res.IsTruncated = t
		return err
	},
	"CommonPrefixes/Prefix": func(b *listObjectsBuilder, v string) error {
		b.res.CommonPrefixes = append(b.res.CommonPrefixes, s3types.CommonPrefix{Prefix: v})
		return nil
	},
	"Contents/Key": func(b *listObjectsBuilder, v string) error {
		if b.obj != nil {
			b.obj.Key = v
		}
		return nil
	},
	"Contents/LastModified": func(b *listObjectsBuilder, v string) error {
		if b.obj == nil {
			return nil
		}
		t, err := parseTime(v)
		b.obj.LastModified = t
		return err
	},
	"Contents/ETag": func(b *listObjectsBuilder, v string) error {
		if b.obj != nil {
			b.obj.ETag = v
		}
		return nil
	},
	"Contents/Size": func(b *listObjectsBuilder, v string) error {
		if b.obj == nil {
			return nil
		}
		n, err := parseInt64(v)
		b.obj.Size = n
		return err
	},
	"Contents/StorageClass": func(b *listObjectsBuilder, v string) error {
		if b.obj != nil {
			b.obj.StorageClass = v
		}
		return nil
	},
	"Contents/Owner/ID": func(b *listObjectsBuilder, v string) error {
		if b.obj != nil && b.obj.Owner != nil {
			b.obj.Owner.ID = v
		}
		return nil
	},
	"Contents/Owner/DisplayName": func(b *listObjectsBuilder, v string) error {
		if b.obj != nil && b.obj.Owner != nil {
			b.obj.Owner.DisplayName = v
		}
		return nil
	},
}

func decodeListObjectsBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.ListObjectsResult)
	b := &listObjectsBuilder{res: res}
	err := walk(dec, handler{
		start: func(p string, _ []xml.Attr) {
			switch p {
			case "Contents":
				b.obj = &s3types.ObjectSummary{}
			case "Contents/Owner":
				if b.obj != nil {
					b.obj.Owner = &s3types.Owner{}
				}
			}
		},
		text: func(p, v string) error {
			if set, ok := listObjectsFields[p]; ok {
				return set(b, v)
			}
			return nil
		},
		end: func(p string) error {
			if p == "Contents" && b.obj != nil {
				res.Contents = append(res.Contents, *b.obj)
				b.obj = nil
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	// Legacy v1 quirk: a truncated response with no delimiter omits
	// NextMarker. The last key (or last common prefix) is the resume point.
	if res.IsTruncated && res.NextMarker == "" {
		if n := len(res.Contents); n > 0 {
			res.NextMarker = res.Contents[n-1].Key
		} else if n := len(res.CommonPrefixes); n > 0 {
			res.NextMarker = res.CommonPrefixes[n-1].Prefix
		}
	}

	if res.EncodingType == s3consts.EncodingTypeURL {
		return unescapeListObjects(res)
	}
	return nil
}

func unescapeListObjects(res *s3types.ListObjectsResult) error {
	var err error
	if res.Prefix, err = unescapeKey(res.Prefix); err != nil {
		return err
	}
	if res.Marker, err = unescapeKey(res.Marker); err != nil {
		return err
	}
	if res.NextMarker, err = unescapeKey(res.NextMarker); err != nil {
		return err
	}
	if res.Delimiter, err = unescapeKey(res.Delimiter); err != nil {
		return err
	}
	for i := range res.Contents {
		if res.Contents[i].Key, err = unescapeKey(res.Contents[i].Key); err != nil {
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

// listObjectsV2Builder accumulates one ListBucketResult (v2) document.
type listObjectsV2Builder struct {
	res *s3types.ListObjectsV2Result
	obj *s3types.ObjectSummary
}

var listObjectsV2Fields = map[string]func(*listObjectsV2Builder, string) error{
	"Name":      func(b *listObjectsV2Builder, v string) error { b.res.Name = v; return nil },
	"Prefix":    func(b *listObjectsV2Builder, v string) error { b.res.Prefix = v; return nil },
	"Delimiter": func(b *listObjectsV2Builder, v string) error { b.res.Delimiter = v; return nil },
	"EncodingType": func(b *listObjectsV2Builder, v string) error {
		b.res.EncodingType = v
		return nil
	},
	"StartAfter": func(b *listObjectsV2Builder, v string) error { b.res.StartAfter = v; return nil },
	"ContinuationToken": func(b *listObjectsV2Builder, v string) error {
		b.res.ContinuationToken = v
		return nil
	},
	"NextContinuationToken": func(b *listObjectsV2Builder, v string) error {
		b.res.NextContinuationToken = v
		return nil
	},
	"MaxKeys": func(b *listObjectsV2Builder, v string) error {
		n, err := parseInt(v)
		b.res.MaxKeys = n
		return err
	},
	"KeyCount": func(b *listObjectsV2Builder, v string) error {
		n, err := parseInt(v)
		b.res.KeyCount = n
		return err
	},
	"IsTruncated": func(b *listObjectsV2Builder, v string) error {
		t, err := parseBool(v)
		b.res.IsTruncated = t
		return err
	},
	"CommonPrefixes/Prefix": func(b *listObjectsV2Builder, v string) error {
		b.res.CommonPrefixes = append(b.res.CommonPrefixes, s3types.CommonPrefix{Prefix: v})
		return nil
	},
	"Contents/Key": func(b *listObjectsV2Builder, v string) error {
		if b.obj != nil {
			b.obj.Key = v
		}
		return nil
	},
	"Contents/LastModified": func(b *listObjectsV2Builder, v string) error {
		if b.obj == nil {
			return nil
		}
		t, err := parseTime(v)
		b.obj.LastModified = t
		return err
	},
	"Contents/ETag": func(b *listObjectsV2Builder, v string) error {
		if b.obj != nil {
			b.obj.ETag = v
		}
		return nil
	},
	"Contents/Size": func(b *listObjectsV2Builder, v string) error {
		if b.obj == nil {
			return nil
		}
		n, err := parseInt64(v)
		b.obj.Size = n
		return err
	},
	"Contents/StorageClass": func(b *listObjectsV2Builder, v string) error {
		if b.obj != nil {
			b.obj.StorageClass = v
		}
		return nil
	},
	"Contents/Owner/ID": func(b *listObjectsV2Builder, v string) error {
		if b.obj != nil && b.obj.Owner != nil {
			b.obj.Owner.ID = v
		}
		return nil
	},
	"Contents/Owner/DisplayName": func(b *listObjectsV2Builder, v string) error {
		if b.obj != nil && b.obj.Owner != nil {
			b.obj.Owner.DisplayName = v
		}
		return nil
	},
}

func decodeListObjectsV2Body(dec *xml.Decoder, out any) error {
	res := out.(*s3types.ListObjectsV2Result)
	b := &listObjectsV2Builder{res: res}
	err := walk(dec, handler{
		start: func(p string, _ []xml.Attr) {
			switch p {
			case "Contents":
				b.obj = &s3types.ObjectSummary{}
			case "Contents/Owner":
				if b.obj != nil {
					b.obj.Owner = &s3types.Owner{}
				}
			}
		},
		text: func(p, v string) error {
			if set, ok := listObjectsV2Fields[p]; ok {
				return set(b, v)
			}
			return nil
		},
		end: func(p string) error {
			if p == "Contents" && b.obj != nil {
				res.Contents = append(res.Contents, *b.obj)
				b.obj = nil
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	if res.EncodingType == s3consts.EncodingTypeURL {
		return unescapeListObjectsV2(res)
	}
	return nil
}

func unescapeListObjectsV2(res *s3types.ListObjectsV2Result) error {
	var err error
	if res.Prefix, err = unescapeKey(res.Prefix); err != nil {
		return err
	}
	if res.StartAfter, err = unescapeKey(res.StartAfter); err != nil {
		return err
	}
	if res.Delimiter, err = unescapeKey(res.Delimiter); err != nil {
		return err
	}
	for i := range res.Contents {
		if res.Contents[i].Key, err = unescapeKey(res.Contents[i].Key); err != nil {
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
