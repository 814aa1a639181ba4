package http

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dermalens/backend/internal/domain"
	"github.com/dermalens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommend *usecase.RecommendService
	generator domain.TextGenerator
}

// NewHandler creates a new HTTP handler
func NewHandler(recommend *usecase.RecommendService, generator domain.TextGenerator) *Handler {
	return &Handler{
		recommend: recommend,
		generator: generator,
	}
}

// DiseaseInfo is the optional hint from the image-based skin classifier.
type DiseaseInfo struct {
	Disease    string  `json:"disease"`
	Confidence float64 `json:"confidence"`
}

// ChatRequest is the inbound chat payload.
type ChatRequest struct {
	Message     string       `json:"message" binding:"required"`
	DiseaseInfo *DiseaseInfo `json:"disease_info,omitempty"`
}

// ChatResponse is the outbound chat payload.
type ChatResponse struct {
	Success  bool             `json:"success"`
	Response string           `json:"response"`
	Message  string           `json:"message,omitempty"`
	Products []domain.Product `json:"products"`
}

// HealthCheck returns the health status of the API, including whether the
// generative backend is currently reachable.
func (h *Handler) HealthCheck(c *gin.Context) {
	generator := "down"
	if h.generator != nil && h.generator.Healthy(c.Request.Context()) {
		generator = "up"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "dermalens-backend",
		"version":   "1.0.0",
		"generator": generator,
	})
}

// Chat handles skincare consultation requests. The optional disease hint
// from the image classifier is appended to the query as contextual text
// before the recommendation pipeline runs, and a detection note is appended
// to the response; the pipeline itself never sees the classifier.
func (h *Handler) Chat(c *gin.Context) {
	if h.recommend == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recommendation service not configured"})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message cannot be empty"})
		return
	}

	query := req.Message
	if req.DiseaseInfo != nil && req.DiseaseInfo.Disease != "" {
		query = fmt.Sprintf("%s (Kondisi kulit terdeteksi: %s)", req.Message, req.DiseaseInfo.Disease)
	}

	log.Printf("[CHAT] request: %q", query)

	result := h.recommend.GenerateResponse(c.Request.Context(), query)

	response := result.Response
	if req.DiseaseInfo != nil && req.DiseaseInfo.Disease != "" &&
		!strings.Contains(strings.ToLower(response), "detection") {
		response += fmt.Sprintf(
			"\n\n*Catatan: AI mendeteksi kondisi %s dengan akurasi %.1f%%. "+
				"Untuk diagnosis medis yang akurat, konsultasikan dengan dokter kulit.*",
			req.DiseaseInfo.Disease, req.DiseaseInfo.Confidence*100)
	}

	c.JSON(http.StatusOK, ChatResponse{
		Success:  true,
		Response: response,
		Message:  "AI response generated successfully",
		Products: result.Products,
	})
}
