// internal/domain/models.go
package domain

// CatalogEntry — fixed promotional item, never changes after startup
type CatalogEntry struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	Name          string `json:"name"`
	BasePoints    int    `json:"base_points"`
	BonusEligible bool   `json:"bonus_eligible"`
}

// PurchaseInput — what the user typed for one entry. Price stays raw text.
type PurchaseInput struct {
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type ItemResult struct {
	ID              string  `json:"id"`
	EffectivePoints int     `json:"effective_points"`
	Doubled         bool    `json:"doubled"`
	Ratio           float64 `json:"ratio"`
	TotalPoints     int     `json:"total_points"`
	Cost            float64 `json:"cost"`
}

// DerivedResult is recomputed from scratch on every input change.
type DerivedResult struct {
	Items            []ItemResult `json:"items"`
	BestDealID       string       `json:"best_deal_id"`
	GrandTotalPoints int          `json:"grand_total_points"`
	GrandTotalCost   float64      `json:"grand_total_cost"`
}

func (r DerivedResult) Item(id string) (ItemResult, bool) {
	for _, it := range r.Items {
		if it.ID == id {
			return it, true
		}
	}
	return ItemResult{}, false
}
