// Package llm cung cấp interface và client để gọi các nhà cung cấp mô hình ngôn ngữ.
// Các service nghiệp vụ chỉ phụ thuộc vào interface Completer, không phụ thuộc
// vào nhà cung cấp cụ thể.
package llm

import "context"

// Completer là interface cho các nhà cung cấp LLM.
type Completer interface {
	// Complete gửi một prompt tới LLM và trả về phản hồi.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest đại diện cho một yêu cầu gửi tới LLM.
type CompletionRequest struct {
	SystemPrompt string  // Prompt hệ thống (có thể rỗng)
	UserPrompt   string  // Prompt của người dùng
	MaxTokens    int     // Số tokens tối đa của phản hồi (0 = mặc định của provider)
	Temperature  float64 // Temperature của phản hồi
}

// CompletionResponse đại diện cho phản hồi từ LLM.
type CompletionResponse struct {
	Content    string // Nội dung phản hồi
	Model      string // Model đã xử lý yêu cầu
	TokensUsed int    // Tổng số tokens đã dùng
}
