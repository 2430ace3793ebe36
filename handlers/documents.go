package handlers

import (
	"database/sql"
	"fmt"
	"net/http"

	"estudio-api/services"
	"estudio-api/utils"

	"github.com/gin-gonic/gin"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type DocumentHandler struct {
	DB   *sql.DB
	Docs *services.DocumentService
}

func (h *DocumentHandler) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, services.Templates)
}

type generateDocRequest struct {
	Template string `json:"template" binding:"required"`
}

// GenerateDocument arma un escrito para el expediente: completa la
// plantilla con los datos del cliente y del caso y devuelve el .docx
// como descarga.
func (h *DocumentHandler) GenerateDocument(c *gin.Context) {
	caseID := c.Param("id")

	var req generateDocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Docs.IsKnownTemplate(req.Template) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template"})
		return
	}

	row := h.DB.QueryRow(`SELECT `+caseColumns+` FROM cases WHERE id = $1`, caseID)
	legalCase, err := scanCase(row)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch case"})
		return
	}

	clientRow := h.DB.QueryRow(`SELECT `+clientColumns+` FROM clients WHERE id = $1`, legalCase.ClientID)
	client, err := scanClient(clientRow)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch client"})
		return
	}

	data, fileName, err := h.Docs.Generate(req.Template, client, legalCase)
	if err != nil {
		utils.SafeError("generate document for case %s failed: %v", caseID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate document"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, fileName))
	c.Data(http.StatusOK, docxMIME, data)
}
