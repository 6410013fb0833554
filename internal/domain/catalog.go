// internal/domain/catalog.go
package domain

// DefaultCatalog returns the nine items of the Christmas campaign, in display order.
// A fresh slice is returned on every call.
func DefaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		{ID: "bolacha", Category: "Pequenas Alegrias", Name: "Pacote de Bolacha Recheada", BasePoints: 10, BonusEligible: true},
		{ID: "wafer", Category: "Pequenas Alegrias", Name: "Pacote de Wafer", BasePoints: 10, BonusEligible: true},
		{ID: "goma", Category: "Pequenas Alegrias", Name: "Pacote de Bala de Goma/Fini (min 80g)", BasePoints: 10, BonusEligible: true},
		{ID: "bis", Category: "Sabor de Festa", Name: "Caixa de Bis ou Hershey's Mais", BasePoints: 25},
		{ID: "barraChoco", Category: "Sabor de Festa", Name: "Barra de Chocolate (min 80g)", BasePoints: 25},
		{ID: "cookies", Category: "Sabor de Festa", Name: "Pacote de Cookies", BasePoints: 25},
		{ID: "cxBombom", Category: "O Grande Pedido", Name: "Caixa de Bombom", BasePoints: 50},
		{ID: "panettone", Category: "Símbolo do Natal", Name: "Panettone ou Chocotone (400g/500g)", BasePoints: 80, BonusEligible: true},
		{ID: "kit", Category: "Kit Sonho Mágico", Name: "Kit Completo (1 Panettone + 1 Cx Bombom + 2 Pct Bolacha)", BasePoints: 200},
	}
}
