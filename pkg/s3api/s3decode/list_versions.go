// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3decode

import (
	"encoding/xml"
	"strings"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3consts"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
)

// listVersionsBuilder accumulates one ListVersionsResult document. Version
// and DeleteMarker entries share a summary shape and are appended in
// document order, which preserves the service's most-recent-first ordering
// within each key.
type listVersionsBuilder struct {
	res *s3types.ListVersionsResult
	cur *s3types.VersionSummary
}

var listVersionsFields = map[string]func(*listVersionsBuilder, string) error{
	"Name":      func(b *listVersionsBuilder, v string) error { b.res.Name = v; return nil },
	"Prefix":    func(b *listVersionsBuilder, v string) error { b.res.Prefix = v; return nil },
	"KeyMarker": func(b *listVersionsBuilder, v string) error { b.res.KeyMarker = v; return nil },
	"VersionIdMarker": func(b *listVersionsBuilder, v string) error {
		b.res.VersionIDMarker = v
		return nil
	},
	"NextKeyMarker": func(b *listVersionsBuilder, v string) error {
		b.res.NextKeyMarker = v
		return nil
	},
	"NextVersionIdMarker": func(b *listVersionsBuilder, v string) error {
		b.res.NextVersionIDMarker = v
		return nil
	},
	"Delimiter": func(b *listVersionsBuilder, v string) error { b.res.Delimiter = v; return nil },
	"EncodingType": func(b *listVersionsBuilder, v string) error {
		b.res.EncodingType = v
		return nil
	},
	"MaxKeys": func(b *listVersionsBuilder, v string) error {
		n, err := parseInt(v)
		b.res.MaxKeys = n
		return err
	},
	"IsTruncated": func(b *listVersionsBuilder, v string) error {
		t, err := parseBool(v)
		b.res.IsTruncated = t
		return err
	},
	"CommonPrefixes/Prefix": func(b *listVersionsBuilder, v string) error {
		b.res.CommonPrefixes = append(b.res.CommonPrefixes, s3types.CommonPrefix{Prefix: v})
		return nil
	},
}

// versionEntryFields apply to children of both Version and DeleteMarker.
var versionEntryFields = map[string]func(*s3types.VersionSummary, string) error{
	"Key":       func(s *s3types.VersionSummary, v string) error { s.Key = v; return nil },
	"VersionId": func(s *s3types.VersionSummary, v string) error { s.VersionID = v; return nil },
	"IsLatest": func(s *s3types.VersionSummary, v string) error {
		t, err := parseBool(v)
		s.IsLatest = t
		return err
	},
	"LastModified": func(s *s3types.VersionSummary, v string) error {
		t, err := parseTime(v)
		s.LastModified = t
		return err
	},
	"ETag": func(s *s3types.VersionSummary, v string) error { s.ETag = v; return nil },
	"Size": func(s *s3types.VersionSummary, v string) error {
		n, err := parseInt64(v)
		s.Size = n
		return err
	},
	"StorageClass": func(s *s3types.VersionSummary, v string) error { s.StorageClass = v; return nil },
	"Owner/ID": func(s *s3types.VersionSummary, v string) error {
		if s.Owner != nil {
			s.Owner.ID = v
		}
		return nil
	},
	"Owner/DisplayName": func(s *s3types.VersionSummary, v string) error {
		if s.Owner != nil {
			s.Owner.DisplayName = v
		}
		return nil
	},
}

// versionEntry splits a path below a Version or DeleteMarker element,
// returning the remainder and whether the entry is a delete marker.
func versionEntry(p string) (rest string, deleteMarker, ok bool) {
	if rest, found := strings.CutPrefix(p, "Version/"); found {
		return rest, false, true
	}
	if rest, found := strings.CutPrefix(p, "DeleteMarker/"); found {
		return rest, true, true
	}
	return "", false, false
}

func decodeListVersionsBody(dec *xml.Decoder, out any) error {
	res := out.(*s3types.ListVersionsResult)
	b := &listVersionsBuilder{res: res}
	err := walk(dec, handler{
		start: func(p string, _ []xml.Attr) {
			switch p {
			case "Version":
				b.cur = &s3types.VersionSummary{}
			case "DeleteMarker":
				b.cur = &s3types.VersionSummary{IsDeleteMarker: true}
			case "Version/Owner", "DeleteMarker/Owner":
				if b.cur != nil {
					b.cur.Owner = &s3types.Owner{}
				}
			}
		},
		text: func(p, v string) error {
			if set, ok := listVersionsFields[p]; ok {
				return set(b, v)
			}
			if rest, _, ok := versionEntry(p); ok && b.cur != nil {
				if set, ok := versionEntryFields[rest]; ok {
					return set(b.cur, v)
				}
			}
			return nil
		},
		end: func(p string) error {
			if (p == "Version" || p == "DeleteMarker") && b.cur != nil {
				res.Versions = append(res.Versions, *b.cur)
				b.cur = nil
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	if res.EncodingType == s3consts.EncodingTypeURL {
		return unescapeListVersions(res)
	}
	return nil
}

func unescapeListVersions(res *s3types.ListVersionsResult) error {
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
	for i := range res.Versions {
		if res.Versions[i].Key, err = unescapeKey(res.Versions[i].Key); err != nil {
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
