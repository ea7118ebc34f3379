package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/TrioProject-10/Smart-Buy-Main/internal/service"
	"github.com/TrioProject-10/Smart-Buy-Main/pkg/httputil"
	"github.com/TrioProject-10/Smart-Buy-Main/pkg/middleware"
	"github.com/TrioProject-10/Smart-Buy-Main/pkg/validator"
)

// ReviewHandler handles HTTP requests for review endpoints.
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// SubmitReviewRequest is the JSON request body for submitting a review.
type SubmitReviewRequest struct {
	ProductName string `json:"product_name" validate:"required,min=1,max=255"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText  string `json:"review_text" validate:"required"`
}

// UpdateReviewRequest is the JSON request body for updating a review.
type UpdateReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"required"`
}

// --- Handlers ---

// ListAll handles GET /api/v1/reviews
// @Summary List recent reviews
// @Description Returns the most recent reviews across all products with author names
// @Tags reviews
// @Produce json
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/reviews [get]
func (h *ReviewHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	reviews := h.service.ListAll(r.Context(), limit)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: reviews})
}

// Submit handles POST /api/v1/reviews
// @Summary Submit a review
// @Description Creates a review for a product, keyed by product name
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitReviewRequest true "Review payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/reviews [post]
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req SubmitReviewRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.service.Submit(r.Context(), &service.SubmitReviewInput{
		UserID:      middleware.UserIDFromContext(r.Context()),
		ProductName: req.ProductName,
		Rating:      req.Rating,
		ReviewText:  req.ReviewText,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: review})
}

// ListByProduct handles GET /api/v1/reviews/product/{productName}
// @Summary List reviews for a product
// @Description Returns all reviews for the named product plus its rating summary
// @Tags reviews
// @Produce json
// @Param productName path string true "Product name"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/reviews/product/{productName} [get]
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productName := chi.URLParam(r, "productName")
	if productName == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "product name is required"},
		})
		return
	}

	result := h.service.ListByProduct(r.Context(), productName)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// MyReviews handles GET /api/v1/reviews/me
func (h *ReviewHandler) MyReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByUser(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: reviews})
}

// Rating handles GET /api/v1/reviews/product/{productName}/rating
func (h *ReviewHandler) Rating(w http.ResponseWriter, r *http.Request) {
	productName := chi.URLParam(r, "productName")
	if productName == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "product name is required"},
		})
		return
	}

	summary := h.service.Rating(r.Context(), productName)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: summary})
}

// Update handles PUT /api/v1/reviews/{id}
// @Summary Update a review
// @Description Updates the rating and text of a review owned by the caller
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body UpdateReviewRequest true "Review payload"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/reviews/{id} [put]
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req UpdateReviewRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.service.Update(r.Context(), &service.UpdateReviewInput{
		UserID:     middleware.UserIDFromContext(r.Context()),
		ReviewID:   id.String(),
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: review})
}

// Delete handles DELETE /api/v1/reviews/{id}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), middleware.UserIDFromContext(r.Context()), id.String()); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
