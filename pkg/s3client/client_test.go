// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3err"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3client"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func cannedResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_PathStyleURL(t *testing.T) {
	t.Parallel()

	var seen *http.Request
	client, err := s3client.NewClient(&s3client.Config{
		Endpoint:  "https://s3.example.com",
		PathStyle: true,
		RoundTripper: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			seen = r
			return cannedResponse(200, "<ListBucketResult></ListBucketResult>"), nil
		}),
	}, &http.Client{})
	require.NoError(t, err)

	req, err := (&s3api.ListObjectsRequest{Bucket: "logs", Prefix: "2024/"}).Build()
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "s3.example.com", seen.URL.Host)
	require.Equal(t, "/logs", seen.URL.Path)
	require.Equal(t, "2024/", seen.URL.Query().Get("prefix"))
}

func TestClient_VirtualHostURL(t *testing.T) {
	t.Parallel()

	var seen *http.Request
	client, err := s3client.NewClient(&s3client.Config{
		Endpoint: "https://s3.example.com",
		RoundTripper: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			seen = r
			return cannedResponse(200, "<ListBucketResult></ListBucketResult>"), nil
		}),
	}, &http.Client{})
	require.NoError(t, err)

	req, err := (&s3api.ListObjectsRequest{Bucket: "logs"}).Build()
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "logs.s3.example.com", seen.URL.Host)
	require.Equal(t, "/", seen.URL.Path)
}

func TestClient_KeyEscaping(t *testing.T) {
	t.Parallel()

	var seen *http.Request
	client, err := s3client.NewClient(&s3client.Config{
		Endpoint:  "https://s3.example.com",
		PathStyle: true,
		RoundTripper: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			seen = r
			return cannedResponse(200, "<ListPartsResult></ListPartsResult>"), nil
		}),
	}, &http.Client{})
	require.NoError(t, err)

	req, err := (&s3api.ListPartsRequest{
		Bucket: "media", Key: "2024/summer photo.jpg", UploadID: "u1",
	}).Build()
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Slashes separate segments; everything else is escaped per segment.
	require.Equal(t, "/media/2024/summer%20photo.jpg", seen.URL.EscapedPath())
}

func TestClient_BadEndpoint(t *testing.T) {
	t.Parallel()

	_, err := s3client.NewClient(&s3client.Config{Endpoint: "ftp://example.com"}, &http.Client{})
	require.Error(t, err)
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("connection refused")
	client, err := s3client.NewClient(&s3client.Config{
		Endpoint: "https://s3.example.com",
		RoundTripper: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, wantErr
		}),
	}, &http.Client{})
	require.NoError(t, err)

	req, err := (&s3api.ListBucketsRequest{}).Build()
	require.NoError(t, err)

	_, err = client.Do(context.Background(), req)

	var terr *s3api.TransportError
	require.ErrorAs(t, err, &terr)
	require.Equal(t, s3api.OpListBuckets, terr.Op)
	require.ErrorIs(t, err, wantErr)
}

func TestClient_ExecuteEndToEnd(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/logs" && r.URL.Query().Get("list-type") == "2":
			io.WriteString(w, `<ListBucketResult>
				<Name>logs</Name>
				<KeyCount>1</KeyCount>
				<Contents><Key>a.txt</Key><Size>10</Size></Contents>
			</ListBucketResult>`)
		case r.URL.Path == "/missing":
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `<Error><Code>NoSuchBucket</Code><Message>no bucket</Message></Error>`)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	client, err := s3client.NewClient(&s3client.Config{
		Endpoint:  srv.URL,
		PathStyle: true,
	}, srv.Client())
	require.NoError(t, err)

	t.Run("success decodes typed result", func(t *testing.T) {
		got, err := client.Execute(context.Background(), &s3api.ListObjectsV2Request{Bucket: "logs"})
		require.NoError(t, err)

		res := got.(*s3types.ListObjectsV2Result)
		require.Equal(t, "logs", res.Name)
		require.Len(t, res.Contents, 1)
		require.Equal(t, "a.txt", res.Contents[0].Key)
	})

	t.Run("error status decodes service error", func(t *testing.T) {
		_, err := client.Execute(context.Background(), &s3api.ListObjectsV2Request{Bucket: "missing"})

		var serr *s3err.Error
		require.ErrorAs(t, err, &serr)
		require.Equal(t, "NoSuchBucket", serr.Code)
		require.Equal(t, http.StatusNotFound, serr.HTTPCode)
	})

	t.Run("build violation surfaces before the wire", func(t *testing.T) {
		_, err := client.Execute(context.Background(), &s3api.ListVersionsRequest{
			Bucket: "logs", VersionIDMarker: "v1",
		})
		require.True(t, s3api.IsContractViolation(err))
	})
}

func TestPool_CachesClients(t *testing.T) {
	t.Parallel()

	pool := s3client.NewPool(time.Minute, 10)
	defer pool.Close()

	cfg := &s3client.Config{Endpoint: "https://s3.example.com", Region: "us-east-1"}
	a, err := pool.GetClient(cfg)
	require.NoError(t, err)
	b, err := pool.GetClient(cfg)
	require.NoError(t, err)
	require.Same(t, a, b)

	c, err := pool.GetClient(&s3client.Config{Endpoint: "https://s3.example.com", Region: "eu-west-1"})
	require.NoError(t, err)
	require.NotSame(t, a, c)
}
