package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"report_hub/internal/common"
	"report_hub/internal/logger"
)

// OpenAIClient gọi OpenAI Chat Completions API.
// Implement interface Completer.
type OpenAIClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIClient tạo một OpenAI client mới.
// baseURL có thể trỏ tới bất kỳ endpoint nào tương thích OpenAI API.
func NewOpenAIClient(apiKey, model, baseURL string, timeout time.Duration) *OpenAIClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// chatMessage là một message trong chat completions payload
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionRequest là request body gửi tới OpenAI
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

// chatCompletionResponse là response body từ OpenAI
type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete gửi prompt tới OpenAI và trả về nội dung phản hồi.
// Lỗi mạng, timeout và lỗi phía provider được map về common.ErrSummarizerUnavailable,
// phản hồi không hợp lệ được map về common.ErrSummarizerResponse.
func (c *OpenAIClient) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	messages := []chatMessage{}
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.UserPrompt})

	payload := chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.WithModule("llm").WithError(err).Error("Gọi OpenAI thất bại")
		return nil, common.ErrSummarizerUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithModule("llm").WithError(err).Error("Không đọc được phản hồi từ OpenAI")
		return nil, common.ErrSummarizerUnavailable
	}

	// Rate limit và lỗi server phía provider: dịch vụ không khả dụng
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		logger.WithModule("llm").WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("OpenAI trả về lỗi phía server")
		return nil, common.ErrSummarizerUnavailable
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		logger.WithModule("llm").WithError(err).Error("Phản hồi OpenAI không phải JSON hợp lệ")
		return nil, common.ErrSummarizerResponse
	}

	if resp.StatusCode != http.StatusOK {
		errMsg := ""
		if result.Error != nil {
			errMsg = result.Error.Message
		}
		logger.WithModule("llm").WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"error":  errMsg,
		}).Error("OpenAI trả về lỗi")
		return nil, common.ErrSummarizerUnavailable
	}

	if len(result.Choices) == 0 {
		logger.WithModule("llm").Error("Phản hồi OpenAI không có choices")
		return nil, common.ErrSummarizerResponse
	}

	return &CompletionResponse{
		Content:    result.Choices[0].Message.Content,
		Model:      result.Model,
		TokensUsed: result.Usage.TotalTokens,
	}, nil
}
