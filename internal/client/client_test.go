package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/homedoc/homedoc/internal/survey"
	"github.com/homedoc/homedoc/internal/tenant"
)

func TestCategoryStep(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/wizard/category" {
			t.Errorf("path = %q, want /api/wizard/category", r.URL.Path)
		}
		var req struct {
			Category string `json:"category"`
			Count    int    `json:"count"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Category != "kitchen" {
			t.Errorf("category = %q, want kitchen", req.Category)
		}
		if req.Count != 1 {
			t.Errorf("count = %d, want 1", req.Count)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"fragment":{"kitchen":[{"name":"Kitchen","images":["images/k.png"]}]}}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	fragment, err := c.CategoryStep(nil, "kitchen", 1, []RoomEntryInput{
		{Name: "Kitchen", Images: []string{"images/k.png"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc survey.PropertySurvey
	if err := json.Unmarshal(fragment, &doc); err != nil {
		t.Fatalf("decoding fragment: %v", err)
	}
	if len(doc.Entries(survey.Kitchen)) != 1 {
		t.Error("expected kitchen entry in returned fragment")
	}
}

func TestCommit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/wizard/commit" {
			t.Errorf("path = %q, want /api/wizard/commit", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		if _, err := w.Write([]byte(`{"key":"IL|Springfield|Main St|123|4"}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	key, err := c.Commit(json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "IL|Springfield|Main St|123|4" {
		t.Errorf("key = %q", key)
	}
}

func TestGetSurveyEscapesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The "|" separator must arrive escaped.
		if got := r.URL.EscapedPath(); got != "/api/surveys/IL%7CSpringfield%7CMain%20St%7C123%7C4" {
			t.Errorf("escaped path = %q", got)
		}
		if err := json.NewEncoder(w).Encode(&survey.Stored{Key: "IL|Springfield|Main St|123|4"}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	st, err := c.GetSurvey("IL|Springfield|Main St|123|4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Key != "IL|Springfield|Main St|123|4" {
		t.Errorf("key = %q", st.Key)
	}
}

func TestUploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/images" {
			t.Errorf("path = %q, want /api/images", r.URL.Path)
		}
		var req struct {
			Data string `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Data == "" {
			t.Error("expected base64 data in request")
		}
		w.WriteHeader(http.StatusCreated)
		if _, err := w.Write([]byte(`{"url":"mem://images/abc.png"}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	url, err := c.UploadImage([]byte("image bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "mem://images/abc.png" {
		t.Errorf("url = %q", url)
	}
}

func TestAddCorner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tenants/Dana/corners" {
			t.Errorf("path = %q, want /api/tenants/Dana/corners", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(&tenant.Corner{Side: 2}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	corner, err := c.AddCorner("Dana", "kitchen", "images/c.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if corner.Side != 2 {
		t.Errorf("side = %d, want 2", corner.Side)
	}
}

func TestServerErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if _, err := w.Write([]byte(`{"error":"address is missing"}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Commit(json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "address is missing" {
		t.Errorf("error = %q, want server message", err.Error())
	}
}
