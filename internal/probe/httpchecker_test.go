package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPChecker_StatusOK(t *testing.T) {
	var gotUA string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if !out.OK {
		t.Fatalf("want success, got %+v", out)
	}
	if out.Status != 200 {
		t.Fatalf("want status 200, got %d", out.Status)
	}
	if out.ElapsedMS < 0 {
		t.Fatalf("elapsed should be >= 0, got %d", out.ElapsedMS)
	}
	if !strings.HasPrefix(gotUA, "keepwarm-probe/") {
		t.Fatalf("want engine user-agent, got %q", gotUA)
	}
}

func TestHTTPChecker_Status500(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 500)
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if out.OK {
		t.Fatalf("want failure, got %+v", out)
	}
	if out.Error != "HTTP 500" {
		t.Fatalf("want synthesized error %q, got %q", "HTTP 500", out.Error)
	}
}

func TestHTTPChecker_204IsSuccess(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	}))
	defer s.Close()

	out := NewHTTPChecker(2 * time.Second).Check(context.Background(), s.URL)
	if !out.OK || out.Status != 204 {
		t.Fatalf("2xx must be success, got %+v", out)
	}
}

func TestHTTPChecker_FollowsRedirects(t *testing.T) {
	final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer final.Close()
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, final.URL, http.StatusFound)
	}))
	defer s.Close()

	out := NewHTTPChecker(2 * time.Second).Check(context.Background(), s.URL)
	if !out.OK || out.Status != 200 {
		t.Fatalf("redirect should be followed to 200, got %+v", out)
	}
}

func TestHTTPChecker_TransportError(t *testing.T) {
	// server closed before the request is made
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := s.URL
	s.Close()

	out := NewHTTPChecker(time.Second).Check(context.Background(), url)
	if out.OK {
		t.Fatalf("want failure, got %+v", out)
	}
	if out.Status != 0 {
		t.Fatalf("want status 0 on transport error, got %d", out.Status)
	}
	if out.Error == "" {
		t.Fatal("want native error text")
	}
}
