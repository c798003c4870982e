package aggregator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/infrastructure/aggregator"
	"github.com/homehandshake/publish-api/internal/utils/apierrors"
)

func newClient(t *testing.T, apiURL, webhookURL string, timeout time.Duration) *aggregator.Client {
	t.Helper()
	return aggregator.NewClient(aggregator.Config{
		APIURL:     apiURL,
		WebhookURL: webhookURL,
		Timeout:    timeout,
	}, zerolog.Nop())
}

func TestClient_ValidatePost(t *testing.T) {
	t.Run("accepted draft", func(t *testing.T) {
		var gotKey, gotPath string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("Profile-Key")
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"success","warnings":[{"platform":"twitter","message":"near limit"}]}`))
		}))
		defer server.Close()

		client := newClient(t, server.URL, "", 5*time.Second)
		resp, err := client.ValidatePost(context.Background(), "key-123", map[string]any{
			"post":      "hello",
			"platforms": []string{"twitter"},
		})
		if err != nil {
			t.Fatalf("ValidatePost() error = %v", err)
		}
		if gotKey != "key-123" {
			t.Errorf("Profile-Key = %q, want key-123", gotKey)
		}
		if gotPath != "/validate-post" {
			t.Errorf("path = %q, want /validate-post", gotPath)
		}
		if gotBody["post"] != "hello" {
			t.Errorf("body post = %v, want hello", gotBody["post"])
		}
		if resp.Status != "success" || len(resp.Warnings) != 1 {
			t.Errorf("response = %+v, want success with one warning", resp)
		}
	})

	t.Run("error status with rejection body is a result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status":"error","message":"image too large"}`))
		}))
		defer server.Close()

		client := newClient(t, server.URL, "", 5*time.Second)
		resp, err := client.ValidatePost(context.Background(), "key-123", map[string]any{"post": "hi"})
		if err != nil {
			t.Fatalf("ValidatePost() error = %v, want the rejection as a result", err)
		}
		result := resp.Result()
		if result.Accepted {
			t.Error("Accepted = true, want false")
		}
		if result.Message != "image too large" {
			t.Errorf("Message = %q, want the upstream message", result.Message)
		}
	})

	t.Run("error status without rejection body is typed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		}))
		defer server.Close()

		client := newClient(t, server.URL, "", 5*time.Second)
		_, err := client.ValidatePost(context.Background(), "key-123", map[string]any{"post": "hi"})
		if apierrors.KindOf(err) != apierrors.KindUpstreamRejected {
			t.Errorf("error kind = %v, want %v", apierrors.KindOf(err), apierrors.KindUpstreamRejected)
		}
	})
}

func TestClient_PublishPost(t *testing.T) {
	t.Run("error status with failure payload is a result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status":"error","posts":[{"errors":[{"platform":"twitter","message":"duplicate"}]}]}`))
		}))
		defer server.Close()

		client := newClient(t, server.URL, "", 5*time.Second)
		resp, err := client.PublishPost(context.Background(), "key-123", map[string]any{"post": "hi"})
		if err != nil {
			t.Fatalf("PublishPost() error = %v, want failure payload as result", err)
		}
		result := resp.Result()
		if result.Published {
			t.Error("Published = true, want false")
		}
		if len(result.Errors) != 1 || result.Errors[0].Message != "duplicate" {
			t.Errorf("Errors = %+v, want the per-platform detail preserved", result.Errors)
		}
	})

	t.Run("error status without failure payload is typed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid profile key"}`))
		}))
		defer server.Close()

		client := newClient(t, server.URL, "", 5*time.Second)
		_, err := client.PublishPost(context.Background(), "bad-key", map[string]any{"post": "hi"})
		if apierrors.KindOf(err) != apierrors.KindUpstreamRejected {
			t.Fatalf("error kind = %v, want %v", apierrors.KindOf(err), apierrors.KindUpstreamRejected)
		}
		if apierrors.MessageOf(err) != "invalid profile key" {
			t.Errorf("message = %q, want the upstream message", apierrors.MessageOf(err))
		}
	})

	t.Run("timeout is typed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := newClient(t, server.URL, "", 20*time.Millisecond)
		_, err := client.PublishPost(context.Background(), "key-123", map[string]any{"post": "hi"})
		if apierrors.KindOf(err) != apierrors.KindUpstreamTimeout {
			t.Errorf("error kind = %v, want %v", apierrors.KindOf(err), apierrors.KindUpstreamTimeout)
		}
	})

	t.Run("unreachable upstream is typed", func(t *testing.T) {
		client := newClient(t, "http://127.0.0.1:1", "", time.Second)
		_, err := client.PublishPost(context.Background(), "key-123", map[string]any{"post": "hi"})
		if apierrors.KindOf(err) != apierrors.KindUpstreamUnreachable {
			t.Errorf("error kind = %v, want %v", apierrors.KindOf(err), apierrors.KindUpstreamUnreachable)
		}
	})
}

func TestClient_UserProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("instagramDetails") != "true" {
			t.Errorf("instagramDetails = %q, want true", r.URL.Query().Get("instagramDetails"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"displayNames":[{"platform":"instagram","username":"acme"}]}`))
	}))
	defer server.Close()

	client := newClient(t, server.URL, "", 5*time.Second)
	resp, err := client.UserProfile(context.Background(), "key-123")
	if err != nil {
		t.Fatalf("UserProfile() error = %v", err)
	}
	accounts := resp.Normalize()
	if len(accounts) != 1 || accounts[0].Platform != "instagram" {
		t.Errorf("accounts = %+v, want one instagram entry", accounts)
	}
}

func TestClient_FetchClips(t *testing.T) {
	t.Run("array body", func(t *testing.T) {
		var gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("profile-key")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"c1","name":"clip.mp4","mediaLink":"https://cdn.example.com/c1.mp4"}]`))
		}))
		defer server.Close()

		client := newClient(t, "http://unused", server.URL, 5*time.Second)
		clips, err := client.FetchClips(context.Background(), "key-123")
		if err != nil {
			t.Fatalf("FetchClips() error = %v", err)
		}
		if gotKey != "key-123" {
			t.Errorf("profile-key = %q, want key-123", gotKey)
		}
		if len(clips) != 1 || clips[0].MediaURL != "https://cdn.example.com/c1.mp4" {
			t.Errorf("clips = %+v, want the media link mapped", clips)
		}
	})

	t.Run("non-array body normalizes to empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"no clips yet"}`))
		}))
		defer server.Close()

		client := newClient(t, "http://unused", server.URL, 5*time.Second)
		clips, err := client.FetchClips(context.Background(), "key-123")
		if err != nil {
			t.Fatalf("FetchClips() error = %v", err)
		}
		if len(clips) != 0 {
			t.Errorf("clips = %+v, want empty", clips)
		}
	})
}

func TestClient_ProbeAuthSchemes(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		if r.Header.Get("profile-key") != "" {
			seen["profile-key"] = true
		}
		if r.Header.Get("Authorization") != "" {
			seen["authorization"] = true
		}
		if r.Header.Get("X-API-Key") != "" {
			seen["x-api-key"] = true
		}
		if r.URL.Query().Get("key") != "" {
			seen["query"] = true
		}
		mu.Unlock()
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"denied"}`))
	}))
	defer server.Close()

	client := newClient(t, "http://unused", server.URL, 5*time.Second)
	results := client.ProbeAuthSchemes(context.Background(), "key-123")
	if len(results) != 4 {
		t.Fatalf("ProbeAuthSchemes() = %d results, want 4", len(results))
	}
	for _, res := range results {
		if res.Error != "" {
			t.Errorf("probe %q reported transport error %q", res.Method, res.Error)
		}
		if res.Status != http.StatusForbidden {
			t.Errorf("probe %q status = %d, want 403", res.Method, res.Status)
		}
	}
	mu.Lock()
	defer mu.Unlock()
	for _, scheme := range []string{"profile-key", "authorization", "x-api-key", "query"} {
		if !seen[scheme] {
			t.Errorf("scheme %q was never attempted", scheme)
		}
	}
}

func TestClient_CheckProfileKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"c1"}]`))
	}))
	defer server.Close()

	client := newClient(t, "http://unused", server.URL, 5*time.Second)
	check, err := client.CheckProfileKey(context.Background(), "key-123")
	if err != nil {
		t.Fatalf("CheckProfileKey() error = %v", err)
	}
	if !check.Success {
		t.Error("Success = false, want true")
	}
	if check.WebhookStatus != http.StatusOK {
		t.Errorf("WebhookStatus = %d, want 200", check.WebhookStatus)
	}
}
