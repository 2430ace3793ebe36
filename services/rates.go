package services

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"estudio-api/models"
)

const dolarAPIURL = "https://dolarapi.com/v1/dolares/blue"

// RatesService trae la cotización del dólar blue y la cachea una hora.
// Si el feed falla se devuelve la cotización con punteros nil y el
// widget muestra guiones; no hay reintentos.
type RatesService struct {
	client *http.Client
	url    string

	mu        sync.Mutex
	cached    *models.DolarQuote
	fetchedAt time.Time
	ttl       time.Duration
}

func NewRatesService() *RatesService {
	return &RatesService{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    dolarAPIURL,
		ttl:    time.Hour,
	}
}

type dolarAPIResponse struct {
	Compra float64 `json:"compra"`
	Venta  float64 `json:"venta"`
}

func (s *RatesService) GetDolarBlue() models.DolarQuote {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		return *s.cached
	}

	quote := s.fetch()
	if quote.Compra != nil {
		s.cached = &quote
		s.fetchedAt = time.Now()
	}
	return quote
}

func (s *RatesService) fetch() models.DolarQuote {
	empty := models.DolarQuote{Source: "DolarApi.com"}

	resp, err := s.client.Get(s.url)
	if err != nil {
		log.Printf("⚠️ Dolar feed unreachable: %v", err)
		return empty
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ Dolar feed returned %d", resp.StatusCode)
		return empty
	}

	var body dolarAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("⚠️ Dolar feed decode failed: %v", err)
		return empty
	}

	now := time.Now()
	return models.DolarQuote{
		Compra:    &body.Compra,
		Venta:     &body.Venta,
		FetchedAt: &now,
		Source:    "DolarApi.com",
	}
}

// JusValue devuelve el valor vigente de la unidad JUS del Colegio de
// Abogados. Se configura por entorno porque cambia por acordada, no por
// un feed.
func JusValue() float64 {
	if raw := os.Getenv("JUS_VALUE"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return 118048.44
}
