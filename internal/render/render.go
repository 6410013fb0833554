// internal/render/render.go
package render

import (
	"fmt"
	"strings"

	"points-calculator/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const BestDealMark = "✅ MELHOR NEGÓCIO!"

var brl = message.NewPrinter(language.BrazilianPortuguese)

// Ratio formats points per real with two decimals.
func Ratio(r float64) string {
	return fmt.Sprintf("%.2f", r)
}

// Money formats an amount the pt-BR way, e.g. "R$ 1.234,50".
func Money(v float64) string {
	return brl.Sprintf("R$ %.2f", v)
}

// Points labels an item's effective points, marking doubled ones with "(BÔNUS)".
func Points(item domain.ItemResult) string {
	if item.Doubled {
		return fmt.Sprintf("%d pts (BÔNUS)", item.EffectivePoints)
	}
	return fmt.Sprintf("%d pts", item.EffectivePoints)
}

// BonusLabel is the text of the bonus toggle for the given state.
func BonusLabel(active bool) string {
	if active {
		return "🟢 Bônus ATIVO (Itens de 10 pts: 20 pts | Panettone: 160 pts)"
	}
	return "🔴 Ativar Bônus (Bolacha Recheada, Wafer, Bala de Goma e Panettone/Chocotone)"
}

type Group struct {
	Category string
	Entries  []domain.CatalogEntry
}

// GroupByCategory keeps categories in the order they first appear in the catalog.
func GroupByCategory(catalog []domain.CatalogEntry) []Group {
	var groups []Group
	index := map[string]int{}
	for _, e := range catalog {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, Group{Category: e.Category})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// Summary renders the whole form as Telegram Markdown.
func Summary(catalog []domain.CatalogEntry, inputs map[string]domain.PurchaseInput, bonusActive bool, res domain.DerivedResult) string {
	var b strings.Builder
	b.WriteString("💰 *Calculadora de Pontos por Custo*\n")
	b.WriteString(BonusLabel(bonusActive))
	b.WriteString("\n")

	for _, g := range GroupByCategory(catalog) {
		fmt.Fprintf(&b, "\n*%s*\n", g.Category)
		for _, e := range g.Entries {
			item, _ := res.Item(e.ID)
			in := inputs[e.ID]
			price := strings.TrimSpace(in.Price)
			if price == "" {
				price = "-"
			}
			fmt.Fprintf(&b, "• %s (`%s`) — %s\n", e.Name, e.ID, Points(item))
			fmt.Fprintf(&b, "   Preço: %s | Qtd: %d | Total: %s\n", price, in.Quantity, Money(item.Cost))
			fmt.Fprintf(&b, "   %s Pts/R$ | Total: %d pts", Ratio(item.Ratio), item.TotalPoints)
			if e.ID == res.BestDealID {
				b.WriteString(" " + BestDealMark)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n*Total de Pontos Acumulados:* %d pts\n", res.GrandTotalPoints)
	fmt.Fprintf(&b, "*Total Gasto:* %s", Money(res.GrandTotalCost))
	return b.String()
}
