package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/inventory"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/jsonfile"
	apphttp "github.com/tu-usuario/inventario-lite/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una aplicación Fiber con el router completo sobre
// un catálogo vacío persistido en un directorio temporal.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := jsonfile.New(filepath.Join(t.TempDir(), "inventario.json"))
	uc := usecase.NewCatalogUseCase(inventory.New(), store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{CatalogUC: uc})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func electronicsBody(id string, price float64, stock int) map[string]any {
	return map[string]any{
		"type":              "Electronics",
		"product_id":        id,
		"name":              "Laptop Lenovo",
		"price":             price,
		"quantity_in_stock": stock,
		"warranty_years":    2,
		"brand":             "Lenovo",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_Retorna201ConDescripcion(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/", electronicsBody("E1", 100, 5))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "E1", body["product_id"])
	assert.Equal(t, "Electronics - ID: E1, Name: Laptop Lenovo, Brand: Lenovo, Price: $100.00, Warranty: 2 years, Stock: 5",
		body["description"])
}

func TestCreateProduct_Duplicado_Retorna409(t *testing.T) {
	app := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/products/", electronicsBody("E1", 100, 5)).Body.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/products/", electronicsBody("E1", 50, 1))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decodeBody(t, resp)["code"])
}

func TestCreateProduct_SinNombre_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	body := electronicsBody("E1", 100, 5)
	delete(body, "name")

	resp := doJSON(t, app, http.MethodPost, "/api/products/", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeBody(t, resp)["code"])
}

func TestCreateProduct_PrecioNoPositivo_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/products/", electronicsBody("E1", 0, 5))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProduct_Inexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/products/nada", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, resp)["code"])
}

func TestDeleteProduct_EliminaYLuego404(t *testing.T) {
	app := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/products/", electronicsBody("E1", 100, 5)).Body.Close()

	resp := doJSON(t, app, http.MethodDelete, "/api/products/E1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/products/E1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestListProducts_FiltroPorNombreYTipo(t *testing.T) {
	app := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/products/", electronicsBody("E1", 100, 5)).Body.Close()
	doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"type": "Clothing", "product_id": "C1", "name": "Camisa lino",
		"price": 25.99, "quantity_in_stock": 8, "size": "M", "material": "lino",
	}).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/products/?name=LAPTOP", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["total"], "búsqueda por nombre sin distinguir mayúsculas")

	resp = doJSON(t, app, http.MethodGet, "/api/products/?type=Clothing", nil)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(1), body["total"])

	resp = doJSON(t, app, http.MethodGet, "/api/products/?type=Furniture", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Sell / Restock / Price
// ──────────────────────────────────────────────────────────────────────────────

func TestSell_OutOfStock_Retorna409ConDetalle(t *testing.T) {
	app := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/products/", electronicsBody("E1", 100, 5)).Body.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/products/E1/sell", map[string]any{"quantity": 3})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["quantity_in_stock"])

	resp = doJSON(t, app, http.MethodPost, "/api/products/E1/sell", map[string]any{"quantity": 5})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "OUT_OF_STOCK", body["code"])
	assert.Contains(t, body["message"], "disponible 2", "el mensaje reporta el stock disponible")
	assert.Contains(t, body["message"], "solicitado 5", "el mensaje reporta lo solicitado")
}

func TestRestock_CantidadInvalida_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/products/", electronicsBody("E1", 100, 5)).Body.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/products/E1/restock", map[string]any{"quantity": -3})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdatePrice_Retorna200(t *testing.T) {
	app := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/products/", electronicsBody("E1", 100, 5)).Body.Close()

	resp := doJSON(t, app, http.MethodPut, "/api/products/E1/price", map[string]any{"price": 149.99})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/products/E1/price", map[string]any{"price": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventory — valor, barrido y persistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryValue_DosDecimales(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/value", nil)
	assert.Equal(t, "0.00", decodeBody(t, resp)["total_value"], "inventario vacío vale 0.00")

	doJSON(t, app, http.MethodPost, "/api/products/", electronicsBody("E1", 100, 5)).Body.Close()
	resp = doJSON(t, app, http.MethodGet, "/api/inventory/value", nil)
	assert.Equal(t, "500.00", decodeBody(t, resp)["total_value"])
}

func TestSweepExpired_EliminaVencidos(t *testing.T) {
	app := buildTestApp(t)
	yesterday := time.Now().AddDate(0, 0, -1).Format(entity.ExpiryLayout)
	doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"type": "Grocery", "product_id": "G1", "name": "Leche entera",
		"price": 3.5, "quantity_in_stock": 10, "expiry_date": yesterday,
	}).Body.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/expired/sweep", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, []any{"G1"}, body["removed"])
	assert.Equal(t, float64(1), body["count"])
}

func TestSaveLoad_PorHTTP(t *testing.T) {
	app := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/products/", electronicsBody("E1", 100, 5)).Body.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/save", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Alterar y recargar: vuelve el estado guardado
	doJSON(t, app, http.MethodDelete, "/api/products/E1", nil).Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/inventory/load", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/products/E1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestLoad_SinArchivo_Retorna404Distinguible(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/inventory/load", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "FILE_NOT_FOUND", decodeBody(t, resp)["code"])
}
