// Package llm - Test client gọi OpenAI qua httptest server.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"report_hub/internal/common"
)

func TestComplete_ThanhCong(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"model": "gpt-4o-mini",
			"choices": [{"message": {"content": "Summary text"}}],
			"usage": {"total_tokens": 42}
		}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key", "gpt-4o-mini", server.URL, 5*time.Second)
	resp, err := client.Complete(context.Background(), &CompletionRequest{
		UserPrompt: "Generate daily report",
	})
	if err != nil {
		t.Fatalf("complete thất bại: %v", err)
	}

	if resp.Content != "Summary text" {
		t.Errorf("content sai: %q", resp.Content)
	}
	if resp.TokensUsed != 42 {
		t.Errorf("tokensUsed sai: %d", resp.TokensUsed)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization header sai: %q", gotAuth)
	}
	if gotPayload["model"] != "gpt-4o-mini" {
		t.Errorf("model trong payload sai: %v", gotPayload["model"])
	}
}

func TestComplete_CoSystemPrompt(t *testing.T) {
	var gotPayload struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("k", "m", server.URL, 5*time.Second)
	_, err := client.Complete(context.Background(), &CompletionRequest{
		SystemPrompt: "You are a summarizer",
		UserPrompt:   "Summarize",
	})
	if err != nil {
		t.Fatalf("complete thất bại: %v", err)
	}

	if len(gotPayload.Messages) != 2 {
		t.Fatalf("phải gửi 2 messages, nhận được: %d", len(gotPayload.Messages))
	}
	if gotPayload.Messages[0].Role != "system" || gotPayload.Messages[1].Role != "user" {
		t.Errorf("thứ tự messages sai: %+v", gotPayload.Messages)
	}
}

func TestComplete_LoiServer_DichVuKhongKhaDung(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "server error"}}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("k", "m", server.URL, 5*time.Second)
	_, err := client.Complete(context.Background(), &CompletionRequest{UserPrompt: "x"})
	if !errors.Is(err, common.ErrSummarizerUnavailable) {
		t.Fatalf("lỗi 500 phải map về ErrSummarizerUnavailable, nhận được: %v", err)
	}
}

func TestComplete_RateLimit_DichVuKhongKhaDung(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewOpenAIClient("k", "m", server.URL, 5*time.Second)
	_, err := client.Complete(context.Background(), &CompletionRequest{UserPrompt: "x"})
	if !errors.Is(err, common.ErrSummarizerUnavailable) {
		t.Fatalf("lỗi 429 phải map về ErrSummarizerUnavailable, nhận được: %v", err)
	}
}

func TestComplete_JSONKhongHopLe_PhanHoiKhongHopLe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewOpenAIClient("k", "m", server.URL, 5*time.Second)
	_, err := client.Complete(context.Background(), &CompletionRequest{UserPrompt: "x"})
	if !errors.Is(err, common.ErrSummarizerResponse) {
		t.Fatalf("JSON hỏng phải map về ErrSummarizerResponse, nhận được: %v", err)
	}
}

func TestComplete_KhongCoChoices_PhanHoiKhongHopLe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("k", "m", server.URL, 5*time.Second)
	_, err := client.Complete(context.Background(), &CompletionRequest{UserPrompt: "x"})
	if !errors.Is(err, common.ErrSummarizerResponse) {
		t.Fatalf("thiếu choices phải map về ErrSummarizerResponse, nhận được: %v", err)
	}
}

func TestComplete_ServerKhongTraLoi_DichVuKhongKhaDung(t *testing.T) {
	// Server đóng ngay để mô phỏng lỗi kết nối
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewOpenAIClient("k", "m", server.URL, 1*time.Second)
	_, err := client.Complete(context.Background(), &CompletionRequest{UserPrompt: "x"})
	if !errors.Is(err, common.ErrSummarizerUnavailable) {
		t.Fatalf("lỗi kết nối phải map về ErrSummarizerUnavailable, nhận được: %v", err)
	}
}
