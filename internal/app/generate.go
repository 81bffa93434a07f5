package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/modaworks/atelier/internal/domain"
	"github.com/modaworks/atelier/internal/metrics"
	"github.com/modaworks/atelier/internal/prompt"
)

const eventDesignGenerated = "design_generated"

const (
	outcomeSuccess       = "success"
	outcomeConfigMissing = "config_missing"
	outcomeInvalidInput  = "invalid_input"
	outcomeRateLimited   = "rate_limited"
	outcomeContentPolicy = "content_policy"
	outcomeProviderError = "provider_error"
	outcomePanic         = "panic"
)

type generateReq struct {
	Description    string  `json:"description"`
	ReferenceImage *string `json:"referenceImage"`
}

type designListing struct {
	Designs []domain.GeneratedDesign `json:"designs"`
}

type generateController struct {
	repo      DesignGenerator
	analytics EventRecorder
	config    Config
	log       *zap.Logger
}

// Handle runs a single generation request to completion: config check,
// parse, validate, build prompt, invoke provider, respond. No retries and
// no partial results.
func (c generateController) Handle(w http.ResponseWriter, r *http.Request) *apiError {
	if r.Method != http.MethodPost {
		return &apiError{Error: fmt.Errorf("method %s not allowed", r.Method), Message: msgMethodNotAllowed, Code: 405}
	}

	if c.config.OAIApiKey == "" {
		metrics.DesignRequestsTotal.WithLabelValues(outcomeConfigMissing).Inc()
		return &apiError{Error: errors.New("OAI_API_KEY not configured"), Message: msgKeyNotConfigured, Code: 500}
	}

	content, err := Read(r.Body)

	if err != nil {
		metrics.DesignRequestsTotal.WithLabelValues(outcomeInvalidInput).Inc()
		return &apiError{Error: err, Message: msgInvalidBody, Code: 400}
	}

	req, err := ReadJSON[generateReq](content)

	if err != nil {
		metrics.DesignRequestsTotal.WithLabelValues(outcomeInvalidInput).Inc()
		return &apiError{Error: err, Message: msgInvalidBody, Code: 400}
	}
	if req == nil {
		metrics.DesignRequestsTotal.WithLabelValues(outcomeInvalidInput).Inc()
		return &apiError{Error: errors.New("empty request body"), Message: msgInvalidBody, Code: 400}
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		metrics.DesignRequestsTotal.WithLabelValues(outcomeInvalidInput).Inc()
		return &apiError{Error: errors.New("description is required"), Message: msgDescriptionRequired, Code: 400}
	}

	// The reference image's pixel content never reaches the provider; only
	// its presence influences the prompt.
	submission := domain.DesignSubmission{
		Description:           description,
		ReferenceImagePresent: req.ReferenceImage != nil,
	}

	generationPrompt := prompt.Build(submission.Description, submission.ReferenceImagePresent)

	start := time.Now()
	designs, err := c.repo.Generate(r.Context(), generationPrompt)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		return c.classify(err)
	}

	if len(designs) == 0 {
		metrics.DesignRequestsTotal.WithLabelValues(outcomeProviderError).Inc()
		return &apiError{Error: errors.New("no images generated"), Message: msgGenerationFailed, Code: 500}
	}

	c.capture()
	metrics.DesignRequestsTotal.WithLabelValues(outcomeSuccess).Inc()

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(designListing{Designs: designs})

	if err != nil {
		c.log.Error("response encode failed", zap.Error(err))
	}

	return nil
}

func (c generateController) classify(err error) *apiError {
	var providerErr *domain.ProviderError
	if errors.As(err, &providerErr) {
		if providerErr.RateLimited() {
			metrics.DesignRequestsTotal.WithLabelValues(outcomeRateLimited).Inc()
			return &apiError{Error: err, Message: msgRateLimited, Code: 429}
		}
		if providerErr.ContentPolicyViolation() {
			metrics.DesignRequestsTotal.WithLabelValues(outcomeContentPolicy).Inc()
			return &apiError{Error: err, Message: msgContentPolicy, Code: 400}
		}
	}

	metrics.DesignRequestsTotal.WithLabelValues(outcomeProviderError).Inc()
	return &apiError{Error: err, Message: msgGenerationFailed, Code: 500}
}

// capture is fire-and-forget; analytics must never affect the response.
func (c generateController) capture() {
	if c.analytics == nil {
		return
	}

	id := uuid.New().String()
	go func() {
		err := c.analytics.Capture(context.Background(), eventDesignGenerated, id)
		if err != nil {
			c.log.Warn("analytics capture failed", zap.Error(err))
		}
	}()
}
