// internal/bot/bot.go
package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"points-calculator/internal/domain"
	"points-calculator/internal/evaluator"
	"points-calculator/internal/render"
	"points-calculator/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/encoding/charmap"
)

const helpText = "💰 *Calculadora de Pontos por Custo*\n\n" +
	"Comandos:\n" +
	"`/catalog` — lista os itens e seus ids\n" +
	"`/price bolacha 2,50` — define o preço de um item\n" +
	"`/qty kit 2` — define a quantidade de um item\n" +
	"`/bonus` — liga/desliga o bônus\n" +
	"`/deals` — mostra razões, melhor negócio e totais\n" +
	"`/reset` — limpa tudo"

// Handler maps chat commands onto a per-chat form.
type Handler struct {
	store *session.Store
}

func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

// HandleUpdate builds the reply for one update; nil when there is nothing to answer.
func (h *Handler) HandleUpdate(update tgbotapi.Update) *tgbotapi.MessageConfig {
	if update.Message == nil || update.Message.Chat == nil {
		return nil
	}
	chatID := update.Message.Chat.ID
	text := sanitizeInput(fixEncoding(update.Message.Text))
	slog.Info("📥 Message received", "chat_id", chatID, "text", text)

	msg := tgbotapi.NewMessage(chatID, h.Handle(chatID, text))
	msg.ParseMode = tgbotapi.ModeMarkdown
	return &msg
}

// Handle runs one command for the chat and returns the reply text.
func (h *Handler) Handle(chatID int64, text string) string {
	form := h.store.Get("tg:" + strconv.FormatInt(chatID, 10))
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "Comando desconhecido. Escreva /help"
	}

	// "/price@MyBot" in group chats
	cmd, _, _ := strings.Cut(fields[0], "@")
	args := fields[1:]

	switch cmd {
	case "/start", "/help":
		return helpText

	case "/catalog":
		return catalogText(form.Catalog())

	case "/deals":
		return summary(form)

	case "/bonus":
		form.ToggleBonus()
		return summary(form)

	case "/reset":
		form.Reset()
		return "🧹 Tudo limpo!\n\n" + summary(form)

	case "/price":
		if len(args) < 1 {
			return "❌ Use: /price item valor"
		}
		id, ok := resolveID(form.Catalog(), args[0])
		if !ok {
			return fmt.Sprintf("❌ Item desconhecido: %s. Veja /catalog", args[0])
		}
		if _, err := form.SetPrice(id, strings.Join(args[1:], "")); err != nil {
			return errorText(err)
		}
		return summary(form)

	case "/qty":
		if len(args) < 2 {
			return "❌ Use: /qty item quantidade"
		}
		id, ok := resolveID(form.Catalog(), args[0])
		if !ok {
			return fmt.Sprintf("❌ Item desconhecido: %s. Veja /catalog", args[0])
		}
		if _, err := form.SetQuantity(id, evaluator.ParseQuantity(args[1])); err != nil {
			return errorText(err)
		}
		return summary(form)

	default:
		return "Comando desconhecido. Escreva /help"
	}
}

func summary(form *session.Form) string {
	inputs, bonus, res := form.Snapshot()
	return render.Summary(form.Catalog(), inputs, bonus, res)
}

func catalogText(catalog []domain.CatalogEntry) string {
	var lines []string
	for _, g := range render.GroupByCategory(catalog) {
		lines = append(lines, fmt.Sprintf("\n*%s*", g.Category))
		for _, e := range g.Entries {
			bonus := ""
			if e.BonusEligible {
				bonus = " ⭐"
			}
			lines = append(lines, fmt.Sprintf("- `%s` %s: %d pts%s", e.ID, e.Name, e.BasePoints, bonus))
		}
	}
	return "📋 *Itens*" + strings.Join(lines, "\n")
}

func resolveID(catalog []domain.CatalogEntry, s string) (string, bool) {
	for _, e := range catalog {
		if strings.EqualFold(e.ID, s) {
			return e.ID, true
		}
	}
	return "", false
}

func errorText(err error) string {
	if errors.Is(err, session.ErrUnknownItem) {
		return "❌ Item desconhecido. Veja /catalog"
	}
	slog.Error("Bot command failed", "error", err)
	return "❌ Erro: " + err.Error()
}

// sanitizeInput turns every kind of whitespace into a single plain space.
func sanitizeInput(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// fixEncoding repairs text some clients send as windows-1251.
func fixEncoding(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	decoder := charmap.Windows1251.NewDecoder()
	fixed, err := decoder.String(s)
	if err == nil && utf8.ValidString(fixed) {
		return fixed
	}

	return strings.ToValidUTF8(s, "")
}
