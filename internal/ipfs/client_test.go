package ipfs

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfdapp/crowdfund-client/internal/config"
	"github.com/cfdapp/crowdfund-client/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.IPFS{
		APIAddress:     srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return client
}

// TestCat verifies path, method, arg parameter and body pass-through.
func TestCat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v0/cat", r.URL.Path)
		assert.Equal(t, "QmProfileHash", r.URL.Query().Get("arg"))
		_, _ = w.Write([]byte(`{"username":"alice"}`))
	})

	data, err := client.Cat(context.Background(), "QmProfileHash")
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice"}`, string(data))
}

// TestCat_NodeError verifies non-2xx responses surface as errors.
func TestCat_NodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid path", http.StatusInternalServerError)
	})

	_, err := client.Cat(context.Background(), "QmBadHash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path")
}

// TestAdd verifies the multipart upload and hash extraction.
func TestAdd(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v0/add", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.JSONEq(t, `{"username":"bob"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Name":"document.json","Hash":"QmNewHash","Size":"19"}`))
	})

	hash, err := client.Add(context.Background(), []byte(`{"username":"bob"}`))
	require.NoError(t, err)
	assert.Equal(t, "QmNewHash", hash)
}

// TestAdd_NoHash verifies a hashless node reply is an error.
func TestAdd_NoHash(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Add(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no hash")
}

// TestAddJSON verifies marshalling before upload.
func TestAddJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.JSONEq(t, `{"username":"carol","email":"","firstname":"","lastname":"","password":"","state":"","city":""}`,
			string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Hash":"QmJSON"}`))
	})

	hash, err := client.AddJSON(context.Background(), map[string]string{
		"username": "carol", "email": "", "firstname": "", "lastname": "",
		"password": "", "state": "", "city": "",
	})
	require.NoError(t, err)
	assert.Equal(t, "QmJSON", hash)
}

// TestNewClient_InvalidAddress verifies URL validation.
func TestNewClient_InvalidAddress(t *testing.T) {
	_, err := NewClient(config.IPFS{APIAddress: "   "}, logger.Nop())
	assert.Error(t, err)
}

// TestCat_Unreachable verifies transport failures surface.
func TestCat_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client, err := NewClient(config.IPFS{
		APIAddress:     srv.URL,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = client.Cat(context.Background(), "QmAny")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "cat request"))
}
