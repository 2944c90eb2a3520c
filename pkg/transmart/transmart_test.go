package transmart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayloadShape(t *testing.T) {
	p := NewPayload("en", "zh", []string{"Hello", "World"})

	assert.Equal(t, "auto_translation", p.Header.Fn)
	assert.Equal(t, "", p.Header.Session)
	assert.Equal(t, "", p.Header.User)
	assert.NotEmpty(t, p.Header.ClientKey)
	assert.Equal(t, "plain", p.Type)
	assert.Equal(t, "normal", p.ModelCategory)
	assert.Equal(t, "", p.TextDomain)
	assert.Equal(t, "en", p.Source.Lang)
	assert.Equal(t, []string{"Hello", "World"}, p.Source.TextList)
	assert.Equal(t, "zh", p.Target.Lang)
}

func TestNewPayloadFreshClientKey(t *testing.T) {
	a := NewPayload("en", "zh", []string{"x"})
	b := NewPayload("en", "zh", []string{"x"})
	assert.NotEqual(t, a.Header.ClientKey, b.Header.ClientKey)
}

func TestTranslateSuccess(t *testing.T) {
	var got Payload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"header":{"ret_code":"succ"},"auto_translation":["你好","世界"]}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, ts.Client())
	texts, err := client.Translate(context.Background(), "en", "zh", []string{"Hello", "World"})
	require.NoError(t, err)
	assert.Equal(t, []string{"你好", "世界"}, texts)
	assert.Equal(t, []string{"Hello", "World"}, got.Source.TextList)
}

func TestTranslateHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, ts.Client())
	_, err := client.Translate(context.Background(), "en", "zh", []string{"Hello"})

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
}

func TestTranslateBadRetCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"header":{"ret_code":"fail"},"auto_translation":null}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, ts.Client())
	_, err := client.Translate(context.Background(), "en", "zh", []string{"Hello"})

	var retErr *RetCodeError
	require.True(t, errors.As(err, &retErr))
	assert.Equal(t, http.StatusOK, retErr.StatusCode)
	assert.Equal(t, "fail", retErr.RetCode)
}

func TestTranslateUndecodableBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, ts.Client())
	_, err := client.Translate(context.Background(), "en", "zh", []string{"Hello"})

	var retErr *RetCodeError
	require.True(t, errors.As(err, &retErr))
	assert.Equal(t, http.StatusOK, retErr.StatusCode)
}

func TestTranslateShortResultList(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"header":{"ret_code":"succ"},"auto_translation":["你好"]}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, ts.Client())
	_, err := client.Translate(context.Background(), "en", "zh", []string{"Hello", "World"})

	var retErr *RetCodeError
	require.True(t, errors.As(err, &retErr))
	assert.Equal(t, "succ", retErr.RetCode)
}

func TestTranslateTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := NewClient(ts.URL, nil)
	_, err := client.Translate(context.Background(), "en", "zh", []string{"Hello"})
	require.Error(t, err)

	var httpErr *HTTPError
	var retErr *RetCodeError
	assert.False(t, errors.As(err, &httpErr))
	assert.False(t, errors.As(err, &retErr))
}
