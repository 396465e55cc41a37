package recordstore_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/pkg/recordstore"
)

const noSuchKeyXML = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message><Key>%s</Key></Error>`

// fakeS3 answers path-style GetObject, PutObject and DeleteObject for one
// bucket, enough for the driver's three calls.
type fakeS3 struct {
	bucket string

	mu      sync.Mutex
	objects map[string]string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key, ok := strings.CutPrefix(r.URL.Path, "/"+f.bucket+"/")
	if !ok {
		http.Error(w, "unknown bucket", http.StatusNotFound)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.objects[key] = string(body)
		w.Header().Set("ETag", `"fake"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		v, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, noSuchKeyXML, key)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, v)
	case http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newS3Store(t *testing.T, endpoint string) *recordstore.S3 {
	t.Helper()
	s, err := recordstore.NewS3(recordstore.S3Options{
		Bucket:   "shop",
		Region:   "us-east-1",
		Key:      "test",
		Secret:   "test",
		Endpoint: endpoint,
		Prefix:   "test:",
	})
	require.NoError(t, err)
	return s
}

func TestS3Store(t *testing.T) {
	fake := &fakeS3{bucket: "shop", objects: map[string]string{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	s := newS3Store(t, srv.URL)
	exerciseStore(t, s)

	require.NoError(t, s.Put("orders", "[]"))
	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, map[string]string{"test:orders": "[]"}, fake.objects, "objects live under the prefix")
}

func TestS3StoreReportsOtherErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
	}))
	defer srv.Close()

	s := newS3Store(t, srv.URL)
	_, ok, err := s.Get("cart")
	assert.False(t, ok)
	assert.ErrorContains(t, err, "recordstore/s3: get cart")
}

func TestS3StoreRequiresBucket(t *testing.T) {
	_, err := recordstore.NewS3(recordstore.S3Options{})
	assert.ErrorContains(t, err, "S3_BUCKET")
}
