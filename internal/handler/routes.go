// internal/handler/routes.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the JSON API and the HTML form. requireAuth guards /api/v1/form.
func RegisterRoutes(router *gin.Engine, forms *FormHandler, page *PageHandler, requireAuth gin.HandlerFunc) {
	router.SetHTMLTemplate(PageTemplate())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", page.Show)
	router.POST("/", page.Submit)

	v1 := router.Group("/api/v1")
	v1.POST("/session", forms.CreateSession)
	v1.GET("/catalog", forms.Catalog)
	v1.POST("/evaluate", forms.Evaluate)

	form := v1.Group("/form")
	form.Use(requireAuth)
	{
		form.GET("", forms.GetForm)
		form.DELETE("", forms.ResetForm)
		form.PUT("/items/:id/price", forms.SetPrice)
		form.PUT("/items/:id/quantity", forms.SetQuantity)
		form.POST("/bonus/toggle", forms.ToggleBonus)
		form.PUT("/bonus", forms.SetBonus)
	}
}
