// internal/handler/page.go
package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"points-calculator/internal/evaluator"
	"points-calculator/internal/render"
	"points-calculator/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cookieName = "points_session"

//go:embed templates/form.html
var templates embed.FS

// PageTemplate parses the embedded HTML form; pass it to gin's SetHTMLTemplate.
func PageTemplate() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/form.html"))
}

type pageRow struct {
	ID, Name, Points, Price, Cost, Ratio string
	Quantity, TotalPoints                int
	Doubled, Best                        bool
}

type pageGroup struct {
	Category string
	Rows     []pageRow
}

type pageData struct {
	BonusActive      bool
	BonusLabel       string
	BestMark         string
	Groups           []pageGroup
	GrandTotalPoints int
	GrandTotalCost   string
}

// PageHandler serves the HTML form; the session id lives in a cookie.
type PageHandler struct {
	store *session.Store
}

func NewPageHandler(store *session.Store) *PageHandler {
	return &PageHandler{store: store}
}

// Show renders the visitor's form. Without a known session cookie a blank form is rendered and
// nothing is stored; the session starts with the first Submit.
func (h *PageHandler) Show(c *gin.Context) {
	form, ok := h.existing(c)
	if !ok {
		form = session.NewForm(h.store.Catalog(), nil)
	}
	c.HTML(http.StatusOK, "form.html", buildPage(form))
}

// Submit applies every field of the posted form, then redirects back to Show.
func (h *PageHandler) Submit(c *gin.Context) {
	sid := h.sessionID(c)
	form := h.store.Get(sid)

	if c.PostForm("reset") != "" {
		form.Reset()
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	for _, e := range form.Catalog() {
		if _, err := form.SetPrice(e.ID, c.PostForm("price-"+e.ID)); err != nil {
			slog.Error("Page price update failed", "error", err, "item", e.ID)
		}
		if _, err := form.SetQuantity(e.ID, evaluator.ParseQuantity(c.PostForm("quantity-"+e.ID))); err != nil {
			slog.Error("Page quantity update failed", "error", err, "item", e.ID)
		}
	}
	form.SetBonus(c.PostForm("bonus") != "")

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) existing(c *gin.Context) (*session.Form, bool) {
	sid, ok := cookieSession(c)
	if !ok {
		return nil, false
	}
	return h.store.Lookup(sid)
}

func cookieSession(c *gin.Context) (string, bool) {
	v, err := c.Cookie(cookieName)
	if err != nil {
		return "", false
	}
	if _, err := uuid.Parse(v); err != nil {
		return "", false
	}
	return v, true
}

func (h *PageHandler) sessionID(c *gin.Context) string {
	if sid, ok := cookieSession(c); ok {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(cookieName, sid, 0, "/", "", false, true)
	return sid
}

func buildPage(form *session.Form) pageData {
	inputs, bonus, res := form.Snapshot()
	data := pageData{
		BonusActive:      bonus,
		BonusLabel:       render.BonusLabel(bonus),
		BestMark:         render.BestDealMark,
		GrandTotalPoints: res.GrandTotalPoints,
		GrandTotalCost:   render.Money(res.GrandTotalCost),
	}
	for _, g := range render.GroupByCategory(form.Catalog()) {
		pg := pageGroup{Category: g.Category}
		for _, e := range g.Entries {
			item, _ := res.Item(e.ID)
			in := inputs[e.ID]
			pg.Rows = append(pg.Rows, pageRow{
				ID:          e.ID,
				Name:        e.Name,
				Points:      render.Points(item),
				Price:       in.Price,
				Cost:        render.Money(item.Cost),
				Ratio:       render.Ratio(item.Ratio),
				Quantity:    in.Quantity,
				TotalPoints: item.TotalPoints,
				Doubled:     item.Doubled,
				Best:        e.ID == res.BestDealID,
			})
		}
		data.Groups = append(data.Groups, pg)
	}
	return data
}
