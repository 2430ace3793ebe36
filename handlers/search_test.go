package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"estudio-api/models"

	"github.com/gin-gonic/gin"
)

// Con menos de 2 caracteres el buscador no toca la base: un handler sin
// conexión tiene que responder igual con listas vacías.
func TestGlobalSearchShortQuerySkipsStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	h := &SearchHandler{DB: nil}
	router.GET("/search", h.GlobalSearch)

	for _, q := range []string{"", "a", "%20%20a%20%20"} {
		req := httptest.NewRequest(http.MethodGet, "/search?q="+q, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("q=%q: expected 200, got %d", q, rec.Code)
		}

		var resp models.SearchResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("q=%q: invalid JSON: %v", q, err)
		}
		if len(resp.Clients) != 0 || len(resp.Cases) != 0 {
			t.Errorf("q=%q: expected empty results, got %+v", q, resp)
		}
	}
}
