package transport

import (
	"bytes"
	"io"
	"net/http"

	"github.com/klauspost/compress/gzip"

	"github.com/ANcpLua/qyl/pkg/debug"
)

// DefaultCompressionThreshold is the smallest body worth compressing.
const DefaultCompressionThreshold = 1024

// Compression returns middleware that gzips request bodies of at least
// threshold bytes. A server answering 415 gets exactly one retry with the
// uncompressed body.
func Compression(threshold int) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if r.Body == nil || r.Body == http.NoBody || r.GetBody == nil ||
				r.Header.Get("Content-Encoding") != "" || r.ContentLength < int64(threshold) {
				return next.RoundTrip(r)
			}

			plain, err := readBody(r)
			if err != nil {
				return nil, err
			}
			packed, err := gzipBytes(plain)
			if err != nil {
				return nil, err
			}

			zr := r.Clone(r.Context())
			zr.Header.Set("Content-Encoding", "gzip")
			setBody(zr, packed)

			resp, err := next.RoundTrip(zr)
			if err != nil || resp.StatusCode != http.StatusUnsupportedMediaType {
				return resp, err
			}

			debug.Log("transport", "server rejected gzip body, retrying uncompressed", "path", r.URL.Path)
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			retry := r.Clone(r.Context())
			setBody(retry, plain)
			return next.RoundTrip(retry)
		})
	}
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := r.GetBody()
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func setBody(r *http.Request, b []byte) {
	r.Body = io.NopCloser(bytes.NewReader(b))
	r.GetBody = func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(b)), nil }
	r.ContentLength = int64(len(b))
}

func gzipBytes(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
