package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"vitrine_back_end/internal/database"
	"vitrine_back_end/internal/handlers"
	"vitrine_back_end/internal/routes"
	"vitrine_back_end/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	products := store.NewProductStore(db)
	cart := store.NewCartStore(db)
	orders := store.NewOrderStore(db)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Handlers{
		Products: handlers.NewProductHandler(products),
		Cart:     handlers.NewCartHandler(cart),
		Checkout: handlers.NewCheckoutHandler(orders),
		Orders:   handlers.NewOrderHandler(orders),
		Upload:   handlers.NewUploadHandler(t.TempDir()),
	}, t.TempDir())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func createProduct(t *testing.T, r *gin.Engine, name string, price float64) int64 {
	t.Helper()
	rr := doJSON(t, r, http.MethodPost, "/api/products", gin.H{"name": name, "price": price})
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	return int64(body["id"].(float64))
}
