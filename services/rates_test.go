package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestJusValueDefault(t *testing.T) {
	t.Setenv("JUS_VALUE", "")

	if v := JusValue(); v != 118048.44 {
		t.Errorf("JusValue = %v, want default 118048.44", v)
	}
}

func TestJusValueFromEnv(t *testing.T) {
	t.Setenv("JUS_VALUE", "125000.50")

	if v := JusValue(); v != 125000.50 {
		t.Errorf("JusValue = %v, want 125000.50", v)
	}
}

func TestJusValueIgnoresGarbageEnv(t *testing.T) {
	t.Setenv("JUS_VALUE", "mucho")

	if v := JusValue(); v != 118048.44 {
		t.Errorf("JusValue = %v, want default on bad env", v)
	}
}

// El servicio cachea la cotización una hora y no insiste cuando el feed
// falla. Se apunta el cliente a un servidor de prueba para no salir a
// internet.
func TestRatesServiceCachesQuote(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]float64{"compra": 1400, "venta": 1420})
	}))
	defer srv.Close()

	s := NewRatesService()
	s.client = srv.Client()
	s.url = srv.URL

	first := s.GetDolarBlue()
	second := s.GetDolarBlue()

	if calls != 1 {
		t.Errorf("feed hit %d times, want 1 (second read cached)", calls)
	}
	if first.Compra == nil || *first.Compra != 1400 {
		t.Errorf("compra = %v, want 1400", first.Compra)
	}
	if second.Venta == nil || *second.Venta != 1420 {
		t.Errorf("venta = %v, want 1420", second.Venta)
	}
}

func TestRatesServiceExpiredCacheRefetches(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]float64{"compra": 1400, "venta": 1420})
	}))
	defer srv.Close()

	s := NewRatesService()
	s.client = srv.Client()
	s.url = srv.URL

	s.GetDolarBlue()
	s.fetchedAt = time.Now().Add(-2 * time.Hour)
	s.GetDolarBlue()

	if calls != 2 {
		t.Errorf("feed hit %d times, want 2 after TTL expiry", calls)
	}
}

func TestRatesServiceFeedFailureYieldsPlaceholders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewRatesService()
	s.client = srv.Client()
	s.url = srv.URL

	quote := s.GetDolarBlue()
	if quote.Compra != nil || quote.Venta != nil {
		t.Errorf("failed feed should yield nil values, got %+v", quote)
	}
	if quote.Source != "DolarApi.com" {
		t.Errorf("source = %q", quote.Source)
	}
}
