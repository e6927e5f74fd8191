package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	authdelivery "refine-backend/internal/auth/delivery"
	"refine-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const ollamaProbeTimeout = 5 * time.Second

// RuntimeConfig holds the self-hosted provider endpoint, which can be changed
// without a restart. The Ollama provider reads it on every call.
type RuntimeConfig struct {
	mu            sync.RWMutex
	ollamaBaseURL string
	ollamaModel   string
}

// NewRuntimeConfig seeds the runtime settings from static config
func NewRuntimeConfig(ollamaBaseURL, ollamaModel string) *RuntimeConfig {
	return &RuntimeConfig{
		ollamaBaseURL: strings.TrimRight(ollamaBaseURL, "/"),
		ollamaModel:   ollamaModel,
	}
}

func (r *RuntimeConfig) OllamaBaseURL() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ollamaBaseURL
}

func (r *RuntimeConfig) OllamaModel() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ollamaModel
}

// Update replaces the base URL; an empty model keeps the current one.
func (r *RuntimeConfig) Update(baseURL, model string) OllamaSettings {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ollamaBaseURL = strings.TrimRight(baseURL, "/")
	if model != "" {
		r.ollamaModel = model
	}
	return OllamaSettings{OllamaBaseURL: r.ollamaBaseURL, OllamaModel: r.ollamaModel}
}

// Snapshot returns both values under one lock
func (r *RuntimeConfig) Snapshot() OllamaSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return OllamaSettings{OllamaBaseURL: r.ollamaBaseURL, OllamaModel: r.ollamaModel}
}

// OllamaSettings is the settings API payload
type OllamaSettings struct {
	OllamaBaseURL string `json:"ollamaBaseUrl"`
	OllamaModel   string `json:"ollamaModel"`
}

// UpdateOllamaSettingsRequest represents the request body for updating Ollama settings
type UpdateOllamaSettingsRequest struct {
	OllamaBaseURL string `json:"ollamaBaseUrl" binding:"required,url"`
	OllamaModel   string `json:"ollamaModel"`
}

// OllamaProbeResult reports whether the self-hosted server answered
type OllamaProbeResult struct {
	Connected     bool     `json:"connected"`
	OllamaBaseURL string   `json:"ollamaBaseUrl"`
	Models        []string `json:"models,omitempty"`
}

// SettingsHandler serves the runtime Ollama settings
type SettingsHandler struct {
	runtime *RuntimeConfig
	client  *http.Client
	logger  *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(runtime *RuntimeConfig, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		runtime: runtime,
		client:  &http.Client{Timeout: ollamaProbeTimeout},
		logger:  logger,
	}
}

// GetOllamaSettings returns current Ollama configuration
// GET /api/settings/ollama
func (h *SettingsHandler) GetOllamaSettings(c *gin.Context) {
	response.Data(c, http.StatusOK, h.runtime.Snapshot())
}

// UpdateOllamaSettings updates Ollama configuration at runtime
// PUT /api/settings/ollama
func (h *SettingsHandler) UpdateOllamaSettings(c *gin.Context) {
	var req UpdateOllamaSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgInvalidSettings)
		return
	}

	settings := h.runtime.Update(req.OllamaBaseURL, strings.TrimSpace(req.OllamaModel))
	h.logger.Info("ollama settings updated",
		zap.String("base_url", settings.OllamaBaseURL),
		zap.String("model", settings.OllamaModel),
		zap.Stringp("user_id", authdelivery.UserID(c)),
	)

	c.JSON(http.StatusOK, response.Envelope{Success: true, Data: settings, Message: response.MsgSettingsUpdated})
}

// TestOllamaConnection tests if the Ollama server is reachable
// POST /api/settings/ollama/test
func (h *SettingsHandler) TestOllamaConnection(c *gin.Context) {
	var req struct {
		OllamaBaseURL string `json:"ollamaBaseUrl"`
	}
	// an empty body probes the current setting
	_ = c.ShouldBindJSON(&req)
	baseURL := strings.TrimRight(strings.TrimSpace(req.OllamaBaseURL), "/")
	if baseURL == "" {
		baseURL = h.runtime.OllamaBaseURL()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ollamaProbeTimeout)
	defer cancel()

	result, err := h.probe(ctx, baseURL)
	if err != nil {
		h.logger.Warn("ollama probe failed", zap.String("base_url", baseURL), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, response.Envelope{Success: false, Data: result, Message: response.MsgOllamaTestFailed})
		return
	}

	response.Data(c, http.StatusOK, result)
}

// probe lists the installed models via /api/tags
func (h *SettingsHandler) probe(ctx context.Context, baseURL string) (*OllamaProbeResult, error) {
	result := &OllamaProbeResult{OllamaBaseURL: baseURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/tags", nil)
	if err != nil {
		return result, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, err
	}
	for _, name := range gjson.GetBytes(body, "models.#.name").Array() {
		result.Models = append(result.Models, name.String())
	}
	result.Connected = true
	return result, nil
}
