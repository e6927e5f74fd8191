package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Messages shown to the caller when an upstream fails.
const (
	MsgOllamaUnreachable = "Ollama 서버에 연결할 수 없습니다. 서버 관리자에게 문의하거나 OpenAI API 키를 설정해서 사용해주세요."
	MsgOllamaFailed      = "텍스트 다듬기에 실패했습니다. 잠시 후 다시 시도해주세요."
	MsgOpenAIFailed      = "OpenAI로 텍스트 다듬기에 실패했습니다. 잠시 후 다시 시도해주세요."
	MsgInvalidAPIKey     = "OpenAI API 키가 유효하지 않습니다. 설정에서 API 키를 확인해주세요."
)

// UpstreamError means the chosen provider was unreachable or answered with an
// error. Message is safe to show to the caller.
type UpstreamError struct {
	Provider ProviderType
	Message  string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// InvalidCredentialError means the commercial provider rejected the
// caller-supplied key.
type InvalidCredentialError struct {
	Provider ProviderType
	Err      error
}

func (e *InvalidCredentialError) Error() string {
	return fmt.Sprintf("%s rejected the supplied credential: %v", e.Provider, e.Err)
}

func (e *InvalidCredentialError) Unwrap() error { return e.Err }

// UserMessage returns the caller-facing message carried by a provider error.
func UserMessage(err error) (string, bool) {
	var credErr *InvalidCredentialError
	if errors.As(err, &credErr) {
		return MsgInvalidAPIKey, true
	}
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Message, true
	}
	return "", false
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	// the caller gave up; the server may be fine
	if errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}
