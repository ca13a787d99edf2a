package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("X-Test"); got != "1" {
			t.Fatalf("missing header, got %q", got)
		}
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("body"))
	}))
	defer srv.Close()

	c := NewRestyClient(2 * time.Second)
	resp, err := c.Get(context.Background(), srv.URL, []Header{{Name: "X-Test", Value: "1"}})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(resp.Body()) != "body" {
		t.Fatalf("body = %q", resp.Body())
	}
	if resp.StatusCode() != http.StatusTeapot {
		t.Fatalf("status = %d; non-2xx must not be an error at this layer", resp.StatusCode())
	}
}

func TestRestyClientPost(t *testing.T) {
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		received, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewRestyClient(2 * time.Second)
	_, err := c.Post(context.Background(), srv.URL, nil, []byte(`{"k":"v"}`))
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if string(received) != `{"k":"v"}` {
		t.Fatalf("payload = %q", received)
	}
}

func TestRestyClientConnectionFailure(t *testing.T) {
	c := NewRestyClient(time.Second)
	// Reserved TEST-NET-1 address, nothing listens there.
	if _, err := c.Get(context.Background(), "http://192.0.2.1:1/", nil); err == nil {
		t.Fatalf("expected connection error")
	}
}
