package apiclient

import (
	"bytes"
	"testing"
)

func TestNewRequestHasNoExtras(t *testing.T) {
	req := NewRequest(MethodGet, "/users")
	if req.Method != MethodGet {
		t.Fatalf("expected method GET, got %s", req.Method)
	}
	if req.Path != "/users" {
		t.Fatalf("expected path /users, got %s", req.Path)
	}
	if len(req.Query) != 0 || len(req.Headers) != 0 || len(req.Body) != 0 {
		t.Fatalf("expected empty query/headers/body, got %+v", req)
	}
}

func TestRequestChaining(t *testing.T) {
	req := NewRequest(MethodPut, "/items/1").
		WithQuery(QueryItem{Key: "force", Value: "true"}).
		WithHeaders(Header{Field: "X-Token", Value: "abc"}, Header{Field: "X-Token", Value: "def"}).
		WithBody([]byte(`{"ok":true}`))

	if len(req.Query) != 1 || req.Query[0].Key != "force" {
		t.Fatalf("query not preserved: %+v", req.Query)
	}
	if len(req.Headers) != 2 {
		t.Fatalf("expected both duplicate headers kept, got %+v", req.Headers)
	}
	if !bytes.Equal(req.Body, []byte(`{"ok":true}`)) {
		t.Fatalf("body not preserved: %s", req.Body)
	}
}

func TestNewJSONRequest(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	req, err := NewJSONRequest(MethodPost, "/things", payload{Name: "A"}, Header{Field: "X-Trace", Value: "1"})
	if err != nil {
		t.Fatalf("NewJSONRequest: %v", err)
	}

	if !bytes.Equal(req.Body, []byte(`{"name":"A"}`)) {
		t.Fatalf("unexpected body: %s", req.Body)
	}
	if len(req.Headers) != 2 {
		t.Fatalf("expected content-type plus caller header, got %+v", req.Headers)
	}
	if req.Headers[0].Field != "Content-Type" || req.Headers[0].Value != "application/json" {
		t.Fatalf("missing json content type, got %+v", req.Headers[0])
	}
	if req.Headers[1].Field != "X-Trace" {
		t.Fatalf("caller header not preserved: %+v", req.Headers[1])
	}
}

func TestNewJSONRequestEncodingFailure(t *testing.T) {
	if _, err := NewJSONRequest(MethodPost, "/things", func() {}); err == nil {
		t.Fatalf("expected encoding error for unserializable payload")
	}
}
