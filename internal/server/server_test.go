package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DofusPlanner_Go/internal/catalog"
	"github.com/osse101/DofusPlanner_Go/internal/database/memory"
	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/plan"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	items := []domain.CatalogItem{
		{Category: "Consommables", Name: "Pain d'Incarnam", Type: "Pain", Level: 1},
		{Category: "Ressources", Name: "Blé", Type: "Céréale", Level: 1},
		{Category: "Ressources", Name: "Eau potable", Type: "Eau", Level: 1},
	}
	recipes := domain.RecipeBook{
		"Pain d'Incarnam": {
			ItemName:  "Pain d'Incarnam",
			HasRecipe: true,
			Job:       "Boulanger",
			JobLevel:  1,
			Ingredients: []domain.Ingredient{
				{ID: 289, Name: "Blé", QuantityPerUnit: 4},
				{ID: 311, Name: "Eau potable", QuantityPerUnit: 1},
			},
		},
	}
	cat := catalog.New(items, recipes, nil)
	store := memory.NewStore()
	svc := plan.NewService(store, store, cat, 100, time.Minute)

	return NewServer(0, testAPIKey, nil, nil, cat, svc).Handler()
}

func doRequest(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(HeaderAPIKey, testAPIKey)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_PublicEndpoints(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestServer_RequiresAPIKey(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/jobs", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_PlanToShoppingList(t *testing.T) {
	h := newTestServer(t)
	base := "/api/v1/accounts/acc-1"

	// Add one lot of ten breads
	w := doRequest(t, h, http.MethodPost, base+"/plan", map[string]interface{}{
		"item_name": "pain d'incarnam",
		"lot_size":  10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var added domain.PlannedItem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&added))
	assert.Equal(t, "Pain d'Incarnam", added.ItemName)
	assert.Equal(t, 10, added.DailyQuantity)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	// Requirements: Blé 40, Eau 10
	w = doRequest(t, h, http.MethodGet, base+"/requirements", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reqs struct {
		Requirements []domain.ResourceRequirement `json:"requirements"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&reqs))
	totals := map[int]int{}
	for _, r := range reqs.Requirements {
		totals[r.ID] = r.TotalQuantity
	}
	assert.Equal(t, map[int]int{289: 40, 311: 10}, totals)

	// Needs with 25 Blé in stock
	w = doRequest(t, h, http.MethodPost, base+"/needs", map[string]interface{}{
		"stock": map[string]int{"289": 25},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var needs struct {
		Needs []domain.NetRequirement `json:"needs"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&needs))
	for _, n := range needs.Needs {
		if n.ID == 289 {
			assert.Equal(t, 15, n.FinalQuantity)
		}
	}

	// Raise to 20 and check the job breakdown
	w = doRequest(t, h, http.MethodPut, base+"/plan/"+added.ID, map[string]interface{}{
		"daily_quantity": 20,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(t, h, http.MethodGet, base+"/plan/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"job":"Boulanger"`)

	// Shopping list nets stock at face value
	w = doRequest(t, h, http.MethodPost, base+"/shopping-list", map[string]interface{}{
		"stock": map[string]int{"311": 5},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Items []domain.IngredientTotal `json:"items"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	got := map[int]int{}
	for _, line := range list.Items {
		got[line.ID] = line.Quantity
	}
	assert.Equal(t, map[int]int{289: 80, 311: 15}, got)

	// Remove the entry
	w = doRequest(t, h, http.MethodDelete, base+"/plan/"+added.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, h, http.MethodDelete, base+"/plan/"+added.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_CatalogAndFavorites(t *testing.T) {
	h := newTestServer(t)

	w := doRequest(t, h, http.MethodGet, "/api/v1/catalog/search?q=ble", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Blé"`)

	w = doRequest(t, h, http.MethodGet, "/api/v1/catalog/recipes/Pain%20d'Incarnam", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"job":"Boulanger"`)

	w = doRequest(t, h, http.MethodPost, "/api/v1/accounts/acc-1/favorites/Bl%C3%A9", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, h, http.MethodGet, "/api/v1/accounts/acc-1/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"item_name":"Blé"`)

	w = doRequest(t, h, http.MethodPost, "/api/v1/accounts/acc-1/favorites/Licorne", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
