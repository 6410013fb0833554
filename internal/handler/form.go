// internal/handler/form.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"points-calculator/internal/auth"
	"points-calculator/internal/domain"
	"points-calculator/internal/evaluator"
	"points-calculator/internal/middleware"
	"points-calculator/internal/render"
	"points-calculator/internal/session"

	"github.com/gin-gonic/gin"
)

// Recorder is the metrics side of the handlers.
type Recorder interface {
	Evaluate()
	SessionCreated()
}

type nopRecorder struct{}

func (nopRecorder) Evaluate()       {}
func (nopRecorder) SessionCreated() {}

type FormHandler struct {
	store    *session.Store
	tokens   *auth.TokenService
	recorder Recorder
}

func NewFormHandler(store *session.Store, tokens *auth.TokenService, rec Recorder) *FormHandler {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &FormHandler{store: store, tokens: tokens, recorder: rec}
}

// CreateSession godoc
// @Summary Start a new form session
// @Success 200 {object} SessionResponse
// @Router /api/v1/session [post]
func (h *FormHandler) CreateSession(c *gin.Context) {
	sid, token, err := h.tokens.NewSession()
	if err != nil {
		slog.Error("Token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	h.recorder.SessionCreated()
	slog.Info("Session created", "session_id", sid)
	c.JSON(http.StatusOK, SessionResponse{SessionID: sid, Token: token})
}

// Catalog godoc
// @Summary List the fixed catalog
// @Success 200 {array} domain.CatalogEntry
// @Router /api/v1/catalog [get]
func (h *FormHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Catalog())
}

// Evaluate godoc
// @Summary Evaluate prices and quantities without a session
// @Param request body EvaluateRequest true "Inputs"
// @Success 200 {object} domain.DerivedResult
// @Failure 400 {object} map[string]string
// @Router /api/v1/evaluate [post]
func (h *FormHandler) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	catalog := h.store.Catalog()
	known := make(map[string]struct{}, len(catalog))
	for _, e := range catalog {
		known[e.ID] = struct{}{}
	}

	inputs := make(map[string]domain.PurchaseInput, len(req.Items))
	for _, it := range req.Items {
		if _, ok := known[it.ID]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown item: " + it.ID})
			return
		}
		inputs[it.ID] = domain.PurchaseInput{Price: string(it.Price), Quantity: int(it.Quantity)}
	}

	h.recorder.Evaluate()
	c.JSON(http.StatusOK, evaluator.Evaluate(catalog, inputs, req.BonusActive))
}

// GetForm godoc
// @Summary Current inputs and derived result of the caller's session
// @Success 200 {object} FormResponse
// @Router /api/v1/form [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	form, ok := h.form(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, formResponse(form))
}

// SetPrice godoc
// @Summary Set the price text of one item
// @Param id path string true "Item id"
// @Param request body SetPriceRequest true "Price"
// @Success 200 {object} FormResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/form/items/{id}/price [put]
func (h *FormHandler) SetPrice(c *gin.Context) {
	form, ok := h.form(c)
	if !ok {
		return
	}
	var req SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if _, err := form.SetPrice(id, string(req.Price)); err != nil {
		h.editFailed(c, id, err)
		return
	}
	c.JSON(http.StatusOK, formResponse(form))
}

// SetQuantity godoc
// @Summary Set the quantity of one item; negatives are stored as 0
// @Param id path string true "Item id"
// @Param request body SetQuantityRequest true "Quantity"
// @Success 200 {object} FormResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/form/items/{id}/quantity [put]
func (h *FormHandler) SetQuantity(c *gin.Context) {
	form, ok := h.form(c)
	if !ok {
		return
	}
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	id := c.Param("id")
	if _, err := form.SetQuantity(id, int(req.Quantity)); err != nil {
		h.editFailed(c, id, err)
		return
	}
	c.JSON(http.StatusOK, formResponse(form))
}

// ToggleBonus godoc
// @Summary Flip the bonus switch
// @Success 200 {object} FormResponse
// @Router /api/v1/form/bonus/toggle [post]
func (h *FormHandler) ToggleBonus(c *gin.Context) {
	form, ok := h.form(c)
	if !ok {
		return
	}
	form.ToggleBonus()
	c.JSON(http.StatusOK, formResponse(form))
}

// SetBonus godoc
// @Summary Set the bonus switch
// @Param request body SetBonusRequest true "Bonus"
// @Success 200 {object} FormResponse
// @Router /api/v1/form/bonus [put]
func (h *FormHandler) SetBonus(c *gin.Context) {
	form, ok := h.form(c)
	if !ok {
		return
	}
	var req SetBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	form.SetBonus(req.Active)
	c.JSON(http.StatusOK, formResponse(form))
}

// ResetForm godoc
// @Summary Clear every input and switch the bonus off
// @Success 200 {object} FormResponse
// @Router /api/v1/form [delete]
func (h *FormHandler) ResetForm(c *gin.Context) {
	form, ok := h.form(c)
	if !ok {
		return
	}
	form.Reset()
	c.JSON(http.StatusOK, formResponse(form))
}

func (h *FormHandler) form(c *gin.Context) (*session.Form, bool) {
	sid := c.GetString(middleware.SessionKey)
	if sid == "" {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session_id missing"})
		return nil, false
	}
	return h.store.Get(sid), true
}

func (h *FormHandler) editFailed(c *gin.Context, id string, err error) {
	if errors.Is(err, session.ErrUnknownItem) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown item: " + id})
		return
	}
	slog.Error("Form edit failed", "error", err, "item", id)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}

func formResponse(form *session.Form) FormResponse {
	inputs, bonus, result := form.Snapshot()
	return FormResponse{
		BonusActive: bonus,
		BonusLabel:  render.BonusLabel(bonus),
		Inputs:      inputs,
		Result:      result,
	}
}
