package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode())
	}
	body, _ := io.ReadAll(resp.Body())
	if string(body) != "hello" {
		t.Errorf("Body = %q, want %q", body, "hello")
	}
}

func TestGet_SetsUserAgentAndHeaders(t *testing.T) {
	var gotUA, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	headers := http.Header{}
	headers.Set("Authorization", "Bearer token123")

	resp, err := client.Get(context.Background(), server.URL, headers)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if gotUA != userAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, userAgent)
	}
	if gotAuth != "Bearer token123" {
		t.Errorf("Authorization = %q, want bearer header", gotAuth)
	}
}

func TestGet_RetriesOn5xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200 after retries", resp.StatusCode())
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("server called %d times, want 3", n)
	}
}

func TestGet_ReturnsFinal5xxResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream broke"))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500 surfaced to caller", resp.StatusCode())
	}
	body, _ := io.ReadAll(resp.Body())
	if string(body) != "upstream broke" {
		t.Errorf("Body = %q, want upstream body preserved", body)
	}
}

func TestGet_DoesNotRetry4xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("server called %d times, want 1 for 4xx", n)
	}
}

func TestPost_SendsBodyAndContentType(t *testing.T) {
	var gotBody, gotCT string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotCT = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Post(context.Background(), server.URL, nil, strings.NewReader(`{"a":1}`))
	if err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	resp.Body().Close()

	if gotBody != `{"a":1}` {
		t.Errorf("Body = %q, want request body forwarded", gotBody)
	}
	if gotCT != "application/json" {
		t.Errorf("Content-Type = %q, want application/json default", gotCT)
	}
}

func TestPost_RespectsCallerContentType(t *testing.T) {
	var gotCT string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	headers := http.Header{}
	headers.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Post(context.Background(), server.URL, headers, strings.NewReader("a=1"))
	if err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	resp.Body().Close()

	if gotCT != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want caller value kept", gotCT)
	}
}

func TestGet_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(20 * time.Millisecond)
	_, err := client.Get(context.Background(), server.URL, nil)

	if err == nil {
		t.Error("Get should return error when the per-call timeout expires")
	}
}
