package post_test

import (
	"encoding/json"
	"testing"

	"github.com/homehandshake/publish-api/internal/domain/post"
)

func TestValidateResponse_Result(t *testing.T) {
	t.Run("success with warnings", func(t *testing.T) {
		resp := post.ValidateResponse{
			Status:  "success",
			Message: "looks good",
			Warnings: []post.Warning{
				{Platform: "twitter", Message: "near character limit"},
			},
		}

		result := resp.Result()
		if !result.Accepted {
			t.Error("Accepted = false, want true")
		}
		if len(result.Warnings) != 1 {
			t.Errorf("Warnings = %d, want 1", len(result.Warnings))
		}
	})

	t.Run("rejection keeps upstream message", func(t *testing.T) {
		resp := post.ValidateResponse{Status: "error", Message: "image too large"}
		result := resp.Result()
		if result.Accepted {
			t.Error("Accepted = true, want false")
		}
		if result.Message != "image too large" {
			t.Errorf("Message = %q, want upstream message", result.Message)
		}
	})

	t.Run("rejection without message gets generic one", func(t *testing.T) {
		resp := post.ValidateResponse{Status: "error"}
		result := resp.Result()
		if result.Message == "" {
			t.Error("Message should never be empty on rejection")
		}
	})
}

func TestPublishResponse_Result(t *testing.T) {
	t.Run("success carries post ids", func(t *testing.T) {
		resp := post.PublishResponse{
			Status: "success",
			PostIDs: []post.PostID{
				{Platform: "twitter", ID: "123", PostURL: "https://x.com/i/123"},
				{Platform: "linkedin", ID: "456"},
			},
		}

		result := resp.Result()
		if !result.Published {
			t.Error("Published = false, want true")
		}
		if len(result.PostIDs) != 2 {
			t.Errorf("PostIDs = %d, want 2", len(result.PostIDs))
		}
		if len(result.Errors) != 0 {
			t.Errorf("Errors = %v, want none", result.Errors)
		}
	})

	t.Run("nested post errors win over flat errors", func(t *testing.T) {
		raw := `{
			"status": "error",
			"errors": [{"platform": "x", "message": "flat message"}],
			"posts": [{"errors": [{"platform": "x", "code": 156, "message": "m1", "err": {"message": "m2"}}]}]
		}`
		var resp post.PublishResponse
		if err := json.Unmarshal([]byte(raw), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		result := resp.Result()
		if result.Published {
			t.Error("Published = true, want false")
		}
		if len(result.Errors) != 1 {
			t.Fatalf("Errors = %d, want 1", len(result.Errors))
		}
		got := result.Errors[0]
		if got.Message != "m2" {
			t.Errorf("Message = %q, want nested detail %q", got.Message, "m2")
		}
		if got.Platform != "x" || got.Code != 156 {
			t.Errorf("Platform/Code = %q/%d, want x/156", got.Platform, got.Code)
		}
	})

	t.Run("flat errors used when posts absent", func(t *testing.T) {
		raw := `{"status": "error", "errors": [
			{"platform": "twitter", "message": "duplicate post"},
			{"platform": "linkedin", "message": "token expired"}
		]}`
		var parsed post.PublishResponse
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		result := parsed.Result()
		if len(result.Errors) != 2 {
			t.Fatalf("Errors = %d, want 2", len(result.Errors))
		}
		if result.Errors[1].Message != "token expired" {
			t.Errorf("Message = %q, want token expired", result.Errors[1].Message)
		}
	})

	t.Run("no failure shape yields single generic error", func(t *testing.T) {
		resp := post.PublishResponse{Status: "error"}
		result := resp.Result()
		if len(result.Errors) != 1 {
			t.Fatalf("Errors = %d, want exactly 1", len(result.Errors))
		}
		if result.Errors[0].Message == "" {
			t.Error("generic error must carry a message")
		}
	})
}
