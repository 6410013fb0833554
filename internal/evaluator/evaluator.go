// internal/evaluator/evaluator.go
package evaluator

import (
	"math"
	"strconv"
	"strings"

	"points-calculator/internal/domain"

	"github.com/shopspring/decimal"
)

// MaxQuantity caps every stored quantity so point totals stay far from int overflow.
const MaxQuantity = 1_000_000

// maxNumberLen bounds the text a price or quantity may have before it is parsed.
const maxNumberLen = 32

// ParsePrice returns the price typed by the user and whether it is usable.
// Empty, non-numeric and non-positive text is "no valid price", and so is
// exponent notation ("1e400") and text longer than 32 characters.
// A lone comma is accepted as decimal separator ("2,50").
func ParsePrice(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(text)
	if !plainNumber(s) {
		return decimal.Zero, false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// ParseQuantity reads quantity text the way a number input does: integers as is,
// decimals truncated, garbage as 0. Result is within [0, MaxQuantity].
func ParseQuantity(text string) int {
	s := strings.TrimSpace(text)
	if !plainNumber(s) {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return ClampQuantity(n)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	if d.GreaterThan(decimal.NewFromInt(MaxQuantity)) {
		return MaxQuantity
	}
	return ClampQuantity(int(d.IntPart()))
}

// ClampQuantity forces n into [0, MaxQuantity].
func ClampQuantity(n int) int {
	return min(max(0, n), MaxQuantity)
}

// plainNumber rejects empty, overlong and exponent-notation text before decimal parsing.
func plainNumber(s string) bool {
	return s != "" && len(s) <= maxNumberLen && !strings.ContainsAny(s, "eE")
}

// EffectivePoints doubles bonus-eligible entries while the bonus is on.
func EffectivePoints(entry domain.CatalogEntry, bonusActive bool) int {
	if entry.BonusEligible && bonusActive {
		return entry.BasePoints * 2
	}
	return entry.BasePoints
}

// Evaluate recomputes everything from the catalog, the inputs and the bonus flag.
// An entry without input counts as empty price and quantity 0.
// Ties on ratio keep the earliest entry in catalog order.
func Evaluate(catalog []domain.CatalogEntry, inputs map[string]domain.PurchaseInput, bonusActive bool) domain.DerivedResult {
	result := domain.DerivedResult{Items: make([]domain.ItemResult, 0, len(catalog))}
	bestRatio := -1.0
	grandCost := decimal.Zero

	for _, entry := range catalog {
		in := inputs[entry.ID]
		quantity := ClampQuantity(in.Quantity)
		points := EffectivePoints(entry, bonusActive)

		item := domain.ItemResult{
			ID:              entry.ID,
			EffectivePoints: points,
			Doubled:         entry.BonusEligible && bonusActive,
			TotalPoints:     points * quantity,
		}

		if price, ok := ParsePrice(in.Price); ok {
			ratio := decimal.NewFromInt(int64(points)).Div(price).InexactFloat64()
			cost := price.Mul(decimal.NewFromInt(int64(quantity)))
			if finite(ratio) && finite(cost.InexactFloat64()) {
				item.Ratio = ratio
				item.Cost = cost.InexactFloat64()
				grandCost = grandCost.Add(cost)
			}
		}

		result.GrandTotalPoints += item.TotalPoints
		if item.Ratio > bestRatio {
			bestRatio = item.Ratio
			result.BestDealID = entry.ID
		}
		result.Items = append(result.Items, item)
	}

	result.GrandTotalCost = grandCost.InexactFloat64()
	return result
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
