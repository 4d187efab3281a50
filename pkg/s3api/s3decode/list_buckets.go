// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3decode

import (
	"encoding/xml"
	"io"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
)

// listBucketsBuilder accumulates one ListAllMyBucketsResult document.
type listBucketsBuilder struct {
	res    *s3types.ListBucketsResult
	bucket *s3types.Bucket
}

var listBucketsFields = map[string]func(*listBucketsBuilder, string) error{
	"Owner/ID": func(b *listBucketsBuilder, v string) error { b.res.Owner.ID = v; return nil },
	"Owner/DisplayName": func(b *listBucketsBuilder, v string) error {
		b.res.Owner.DisplayName = v
		return nil
	},
	"Buckets/Bucket/Name": func(b *listBucketsBuilder, v string) error {
		if b.bucket != nil {
			b.bucket.Name = v
		}
		return nil
	},
	"Buckets/Bucket/CreationDate": func(b *listBucketsBuilder, v string) error {
		if b.bucket == nil {
			return nil
		}
		t, err := parseTime(v)
		b.bucket.CreationDate = t
		return err
	},
	"Buckets/Bucket/BucketRegion": func(b *listBucketsBuilder, v string) error {
		if b.bucket != nil {
			b.bucket.Region = v
		}
		return nil
	},
}

func decodeListBucketsBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.ListBucketsResult)
	b := &listBucketsBuilder{res: res}
	return walk(dec, handler{
		start: func(p string, _ []xml.Attr) {
			if p == "Buckets/Bucket" {
				b.bucket = &s3types.Bucket{}
			}
		},
		text: func(p, v string) error {
			if set, ok := listBucketsFields[p]; ok {
				return set(b, v)
			}
			return nil
		},
		end: func(p string) error {
			if p == "Buckets/Bucket" && b.bucket != nil {
				res.Buckets = append(res.Buckets, *b.bucket)
				b.bucket = nil
			}
			return nil
		},
	})
}

// decodeBucketLocation handles the LocationConstraint document, whose value
// is the root element's own text. The legacy US standard region is reported
// as an empty constraint and normalized to "US".
func decodeBucketLocationBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.BucketLocation)
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.CharData:
			if depth == 0 {
				res.Location += string(t)
			}
		case xml.EndElement:
			if depth == 0 {
				if res.Location == "" {
					res.Location = "US"
				}
				return nil
			}
			depth--
		}
	}
}
