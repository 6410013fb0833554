// internal/handler/dto.go
package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"points-calculator/internal/domain"
	"points-calculator/internal/evaluator"
	val "points-calculator/internal/validator"

	"github.com/go-playground/validator/v10"
)

// PriceText accepts a JSON string or number and keeps it as raw text.
type PriceText string

func (p *PriceText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceText(s)
	default:
		*p = PriceText(data)
	}
	return nil
}

// Quantity accepts a JSON number or string; anything unusable becomes 0, negatives clamp to 0.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity(evaluator.ParseQuantity(s))
		return nil
	}
	*q = Quantity(evaluator.ParseQuantity(string(data)))
	return nil
}

type SetPriceRequest struct {
	Price PriceText `json:"price" validate:"max=32"`
}

type SetQuantityRequest struct {
	Quantity Quantity `json:"quantity"`
}

type SetBonusRequest struct {
	Active bool `json:"active"`
}

type EvaluateItem struct {
	ID       string    `json:"id" validate:"required,notblank"`
	Price    PriceText `json:"price" validate:"max=32"`
	Quantity Quantity  `json:"quantity"`
}

type EvaluateRequest struct {
	BonusActive bool           `json:"bonus_active"`
	Items       []EvaluateItem `json:"items" validate:"dive"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

type FormResponse struct {
	BonusActive bool                            `json:"bonus_active"`
	BonusLabel  string                          `json:"bonus_label"`
	Inputs      map[string]domain.PurchaseInput `json:"inputs"`
	Result      domain.DerivedResult            `json:"result"`
}

func validateStruct(v any) error {
	if err := val.Validate.Struct(v); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("invalid input: %w", err)
		}
		var errs []string
		for _, e := range verrs {
			errs = append(errs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(errs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "max":
		return fmt.Sprintf("%s is too long", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
