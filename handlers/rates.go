package handlers

import (
	"net/http"

	"estudio-api/services"

	"github.com/gin-gonic/gin"
)

// RatesHandler sirve los widgets financieros del tablero: dólar blue y
// la unidad JUS del Colegio.
type RatesHandler struct {
	Rates *services.RatesService
}

func (h *RatesHandler) GetDolarBlue(c *gin.Context) {
	c.JSON(http.StatusOK, h.Rates.GetDolarBlue())
}

func (h *RatesHandler) GetJus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"valor":  services.JusValue(),
		"fuente": "Colegio de Abogados (Santa Fe)",
	})
}
