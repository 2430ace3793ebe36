package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"estudio-api/models"

	docx "github.com/lukasjarosch/go-docx"
)

// DocTemplate es un modelo de escrito disponible. El id es el nombre
// del archivo .docx dentro del directorio de plantillas.
type DocTemplate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Acá se agregan plantillas a futuro.
var Templates = []DocTemplate{
	{ID: "escrito_generico.docx", Name: "Escrito de Mero Trámite"},
	{ID: "presenta_bono.docx", Name: "Presenta Bono y Sellado"},
	{ID: "solicita_apertura.docx", Name: "Solicita Apertura a Prueba"},
}

// DocumentService genera escritos reemplazando campos {placeholder} en
// una plantilla .docx.
type DocumentService struct {
	templatesDir string
}

func NewDocumentService() *DocumentService {
	dir := os.Getenv("TEMPLATES_DIR")
	if dir == "" {
		dir = "templates"
	}
	return &DocumentService{templatesDir: dir}
}

func (s *DocumentService) IsKnownTemplate(id string) bool {
	for _, t := range Templates {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Generate arma el escrito para un cliente y su expediente. Devuelve el
// binario y el nombre de archivo sugerido para la descarga.
func (s *DocumentService) Generate(templateID string, client models.Client, legalCase models.Case) ([]byte, string, error) {
	if !s.IsKnownTemplate(templateID) {
		return nil, "", fmt.Errorf("unknown template %q", templateID)
	}

	doc, err := docx.Open(filepath.Join(s.templatesDir, templateID))
	if err != nil {
		return nil, "", fmt.Errorf("failed to open template: %w", err)
	}

	area := legalCase.Area
	if area == "" {
		area = models.AreaCivil
	}

	fields := docx.PlaceholderMap{
		"nombre":    client.FirstName,
		"apellido":  client.LastName,
		"dni":       orBlank(client.DNI),
		"domicilio": orBlank(client.Address),
		"email":     orEmpty(client.Email),
		"telefono":  orEmpty(client.Phone),

		"caratula":   legalCase.Caratula,
		"expediente": legalCase.Code,
		"juzgado":    legalCase.Juzgado,
		"fuero":      area,

		"fecha_actual": time.Now().Format("02/01/2006"),
	}

	if err := doc.ReplaceAll(fields); err != nil {
		return nil, "", fmt.Errorf("failed to render template: %w", err)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write document: %w", err)
	}

	fileName := fmt.Sprintf("Escrito_%s_%s.docx", client.LastName, legalCase.Code)
	return buf.Bytes(), fileName, nil
}

// Los campos faltantes van con raya para completar a mano, como en los
// formularios de papel.
func orBlank(s *string) string {
	if s == nil || *s == "" {
		return "__________"
	}
	return *s
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
