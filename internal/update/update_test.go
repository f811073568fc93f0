package update

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func fakeRelease(t *testing.T, tag string, status int) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"tag_name": tag})
	}))
	t.Cleanup(srv.Close)

	old := releaseURL
	releaseURL = srv.URL
	t.Cleanup(func() { releaseURL = old })
}

func TestCheckNewerVersion(t *testing.T) {
	fakeRelease(t, "v1.2.0", http.StatusOK)

	res := Check(context.Background(), "1.1.0")
	if res == nil {
		t.Fatal("expected update result")
	}
	if res.LatestVersion != "1.2.0" {
		t.Errorf("latest = %q, want 1.2.0", res.LatestVersion)
	}
}

func TestCheckSameVersion(t *testing.T) {
	fakeRelease(t, "v1.1.0", http.StatusOK)

	if res := Check(context.Background(), "v1.1.0"); res != nil {
		t.Errorf("expected nil for current version, got %+v", res)
	}
}

func TestCheckAPIErrorIsNonFatal(t *testing.T) {
	fakeRelease(t, "", http.StatusForbidden)

	if res := Check(context.Background(), "1.0.0"); res != nil {
		t.Errorf("expected nil on API error, got %+v", res)
	}
}
