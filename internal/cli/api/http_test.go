package api

import (
	"Portfolio/internal/cli/store"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPostJSON_SendsIdentity_And_ParsesBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("uuid") != "42" || r.Header.Get("token") != "tok123" {
			t.Fatalf("identity headers missing: uuid=%q token=%q", r.Header.Get("uuid"), r.Header.Get("token"))
		}
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if m["x"] != float64(1) {
			t.Fatalf("unexpected payload: %#v", m)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	resp, body, err := PostJSON(context.Background(), ts.URL+"/auth", map[string]any{"x": 1}, &store.Identity{UUID: 42, Token: "tok123"})
	if err != nil {
		t.Fatalf("PostJSON err: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != `{"ok":true}` {
		t.Fatalf("body: %s", string(body))
	}
}

func TestDo_NoIdentity_NoHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("uuid") != "" || r.Header.Get("token") != "" {
			t.Fatalf("identity headers must be empty")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	resp, _, err := Do(context.Background(), http.MethodGet, ts.URL, nil, "", nil)
	if err != nil {
		t.Fatalf("Do err: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
}

func TestMessageOf(t *testing.T) {
	if got := MessageOf([]byte(`{"message":"Blog post not found"}`)); got != "Blog post not found" {
		t.Fatalf("got %q", got)
	}
	if got := MessageOf([]byte("plain text\n")); got != "plain text" {
		t.Fatalf("got %q", got)
	}
}

func TestEndpoint(t *testing.T) {
	if got := Endpoint("http://h:1/", "blog", "/abc"); got != "http://h:1/blog/abc" {
		t.Fatalf("got %q", got)
	}
}

func TestResourceForm_Encode(t *testing.T) {
	img := filepath.Join(t.TempDir(), "pic.png")
	if err := os.WriteFile(img, []byte{0x89, 'P', 'N', 'G'}, 0o600); err != nil {
		t.Fatal(err)
	}

	ct, body, err := ResourceForm{Title: "t", Link: "l", ImagePath: img}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/blog", body)
	req.Header.Set("Content-Type", ct)
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.FormValue("title") != "t" || req.FormValue("link") != "l" {
		t.Fatalf("unexpected fields: %v", req.MultipartForm.Value)
	}
	if _, ok := req.MultipartForm.Value["subtitle"]; ok {
		t.Fatalf("empty subtitle must not be sent")
	}
	files := req.MultipartForm.File["image"]
	if len(files) != 1 {
		t.Fatalf("image part missing")
	}
	if files[0].Header.Get("Content-Type") != "image/png" {
		t.Fatalf("content type: %q", files[0].Header.Get("Content-Type"))
	}
}

func TestResourceForm_Encode_MissingImage(t *testing.T) {
	if _, _, err := (ResourceForm{Title: "t", ImagePath: filepath.Join(t.TempDir(), "nope.png")}).Encode(); err == nil {
		t.Fatalf("expected error for missing image file")
	}
}
