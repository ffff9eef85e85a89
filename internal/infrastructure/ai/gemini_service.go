// Package ai adaptadores concretos da porta LLMService.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gestorcell/gestor-api/internal/application/ports"
	"github.com/gestorcell/gestor-api/internal/domain"
)

var _ ports.LLMService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// Tentativas por modelo quando a API devolve 503 (modelo sobrecarregado),
// com espera exponencial entre elas.
const (
	maxAttempts  = 3
	firstBackoff = time.Second
)

// GeminiService adaptador da porta LLMService sobre a API REST do Google
// Gemini, usando só net/http. Tenta primeiro o modelo principal; quando ele
// segue sobrecarregado após os retries, cai para o modelo de fallback.
type GeminiService struct {
	apiKey        string
	model         string
	fallbackModel string
	httpClient    *http.Client
}

// NewGeminiService monta o adaptador. model costuma ser "gemini-2.5-pro" e
// fallbackModel "gemini-2.5-flash"; fallback vazio desativa o segundo nível.
func NewGeminiService(apiKey, model, fallbackModel string) *GeminiService {
	return &GeminiService{
		apiKey:        apiKey,
		model:         model,
		fallbackModel: fallbackModel,
		httpClient: &http.Client{
			Timeout: 45 * time.Second, // timeout de rede; o caller também põe WithTimeout
		},
	}
}

// ── Estruturas internas da API do Gemini ──────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// overloadedError marca falhas 503 que merecem retry ou fallback de modelo.
type overloadedError struct{ model string }

func (e *overloadedError) Error() string {
	return fmt.Sprintf("modelo %s sobrecarregado (503)", e.model)
}

// ── Implementação da porta ────────────────────────────────────────────────

// GenerateInsights envia o prompt ao Gemini e devolve a análise textual e o
// modelo que respondeu.
func (s *GeminiService) GenerateInsights(ctx context.Context, prompt string) (string, string, error) {
	if s.apiKey == "" {
		return "", "", fmt.Errorf("AI: GEMINI_API_KEY não configurada")
	}

	text, err := s.generateWithRetry(ctx, s.model, prompt)
	if err == nil {
		return text, s.model, nil
	}

	var overloaded *overloadedError
	if s.fallbackModel != "" && isOverloaded(err, &overloaded) {
		log.Warn().Str("model", s.model).Str("fallback", s.fallbackModel).
			Msg("modelo principal sobrecarregado, tentando fallback")
		if text, fbErr := s.generateWithRetry(ctx, s.fallbackModel, prompt); fbErr == nil {
			return text, s.fallbackModel, nil
		}
		return "", "", domain.ErrAIUnavailable
	}
	return "", "", err
}

// generateWithRetry chama o modelo com até maxAttempts tentativas e espera
// exponencial (1s, 2s, 4s) quando a API devolve 503.
func (s *GeminiService) generateWithRetry(ctx context.Context, model, prompt string) (string, error) {
	backoff := firstBackoff
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := s.generate(ctx, model, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		var overloaded *overloadedError
		if !isOverloaded(err, &overloaded) || attempt == maxAttempts {
			break
		}

		log.Warn().Str("model", model).Int("attempt", attempt).Dur("backoff", backoff).
			Msg("Gemini sobrecarregado, aguardando para tentar de novo")
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return "", ctx.Err()
		}
		backoff *= 2
	}
	return "", lastErr
}

func (s *GeminiService) generate(ctx context.Context, model, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: genConfig{
			Temperature:     0.4,
			MaxOutputTokens: 2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout ou cancelamento: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", &overloadedError{model: model}
	}
	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini erro %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: desserializar resposta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolveu resposta vazia")
	}
	return gemResp.Candidates[0].Content.Parts[0].Text, nil
}

func isOverloaded(err error, target **overloadedError) bool {
	return errors.As(err, target)
}
