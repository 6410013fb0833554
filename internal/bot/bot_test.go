package bot

import (
	"testing"

	"points-calculator/internal/domain"
	"points-calculator/internal/render"
	"points-calculator/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() (*Handler, *session.Store) {
	store := session.NewStore(domain.DefaultCatalog(), nil)
	return NewHandler(store), store
}

func TestHandle_PriceAndBonus(t *testing.T) {
	h, store := newHandler()

	out := h.Handle(42, "/price bolacha 2,50")
	assert.Contains(t, out, "4.00 Pts/R$")

	out = h.Handle(42, "/bonus")
	assert.Contains(t, out, "8.00 Pts/R$")
	assert.Contains(t, out, "20 pts (BÔNUS)")

	form := store.Get("tg:42")
	assert.True(t, form.BonusActive())
	assert.Equal(t, "2,50", form.Inputs()["bolacha"].Price)
}

func TestHandle_Quantity(t *testing.T) {
	h, store := newHandler()

	h.Handle(7, "/price KIT 50")
	out := h.Handle(7, "/qty kit 2")
	assert.Contains(t, out, "Total de Pontos Acumulados:* 400 pts")

	h.Handle(7, "/qty kit -5")
	assert.Equal(t, 0, store.Get("tg:7").Inputs()["kit"].Quantity)
}

func TestHandle_Errors(t *testing.T) {
	h, _ := newHandler()

	assert.Contains(t, h.Handle(1, "/price"), "Use:")
	assert.Contains(t, h.Handle(1, "/qty kit"), "Use:")
	assert.Contains(t, h.Handle(1, "/price nada 2"), "Item desconhecido")
	assert.Contains(t, h.Handle(1, "/qty nada 2"), "Item desconhecido")
	assert.Contains(t, h.Handle(1, "hello"), "/help")
	assert.Contains(t, h.Handle(1, ""), "/help")
}

func TestHandle_ResetAndCatalog(t *testing.T) {
	h, store := newHandler()
	h.Handle(3, "/qty kit 1")

	out := h.Handle(3, "/reset")
	assert.Contains(t, out, "Tudo limpo")
	assert.Empty(t, store.Get("tg:3").Inputs())

	out = h.Handle(3, "/catalog")
	assert.Contains(t, out, "`barraChoco`")
	assert.Contains(t, out, "*Símbolo do Natal*")

	assert.Contains(t, h.Handle(3, "/help@PontosBot"), "Comandos")
}

func TestHandle_ChatsAreIsolated(t *testing.T) {
	h, store := newHandler()
	h.Handle(1, "/bonus")
	assert.True(t, store.Get("tg:1").BonusActive())
	assert.False(t, store.Get("tg:2").BonusActive())
}

func TestHandleUpdate(t *testing.T) {
	h, _ := newHandler()

	assert.Nil(t, h.HandleUpdate(tgbotapi.Update{}))

	msg := h.HandleUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 99},
		Text: "/deals",
	}})
	require.NotNil(t, msg)
	assert.Equal(t, int64(99), msg.ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
	assert.Contains(t, msg.Text, render.BestDealMark)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "/price kit 50", sanitizeInput("  /price kit\t 50 "))
}

func TestFixEncoding(t *testing.T) {
	assert.Equal(t, "olá", fixEncoding("olá"))
	// "Привет" in windows-1251
	assert.Equal(t, "Привет", fixEncoding(string([]byte{0xcf, 0xf0, 0xe8, 0xe2, 0xe5, 0xf2})))
}
