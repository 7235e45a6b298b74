package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boutique_back_end/internal/models"
	"boutique_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryStore struct {
	categories []models.Category
	failAll    bool
	deleted    []gocql.UUID
}

func (f *fakeCategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	if f.failAll {
		return nil, errors.New("scylla down")
	}
	return f.categories, nil
}

func (f *fakeCategoryStore) FindByID(ctx context.Context, id gocql.UUID) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			cp := f.categories[i]
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeCategoryStore) Create(ctx context.Context, category *models.Category) error {
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategoryStore) Update(ctx context.Context, category *models.Category) error {
	for i := range f.categories {
		if f.categories[i].ID == category.ID {
			f.categories[i] = *category
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeCategoryStore) Delete(ctx context.Context, id gocql.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProductStore struct {
	products []models.Product
}

func (f *fakeProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeProductStore) FindByID(ctx context.Context, id gocql.UUID) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			cp := f.products[i]
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeProductStore) FindByCategory(ctx context.Context, categoryID gocql.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) CountByCategory(ctx context.Context, categoryID gocql.UUID) (int, error) {
	n := 0
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductStore) Create(ctx context.Context, product *models.Product) error {
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductStore) Update(ctx context.Context, product *models.Product) error {
	return nil
}

func (f *fakeProductStore) SetImageURL(ctx context.Context, id gocql.UUID, url string) error {
	return nil
}

func newCategoryRouter(categories *fakeCategoryStore, products *fakeProductStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCategoryHandler(categories, products, nil)
	r := gin.New()
	r.GET("/api/categories", h.GetAllCategories)
	r.GET("/api/categories/:id", h.GetCategory)
	r.POST("/api/categories", h.CreateCategory)
	r.PUT("/api/categories", h.UpdateCategory)
	r.DELETE("/api/categories/:id", h.DeleteCategory)
	return r
}

func mustUUID(t *testing.T, s string) gocql.UUID {
	t.Helper()
	id, err := gocql.ParseUUID(s)
	require.NoError(t, err)
	return id
}

func TestGetAllCategoriesNestsChildren(t *testing.T) {
	root := mustUUID(t, "11111111-1111-1111-1111-111111111111")
	child := mustUUID(t, "22222222-2222-2222-2222-222222222222")

	r := newCategoryRouter(&fakeCategoryStore{categories: []models.Category{
		{ID: root, Name: "Chaussures"},
		{ID: child, Name: "Running", ParentID: &root},
	}}, &fakeProductStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var forest []struct {
		Name     string `json:"name"`
		Children []struct {
			Name string `json:"name"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &forest))
	require.Len(t, forest, 1)
	assert.Equal(t, "Chaussures", forest[0].Name)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Running", forest[0].Children[0].Name)
}

func TestGetAllCategoriesEmptyReturns404(t *testing.T) {
	r := newCategoryRouter(&fakeCategoryStore{}, &fakeProductStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Aucune catégorie trouvée")
}

func TestGetAllCategoriesStoreError(t *testing.T) {
	r := newCategoryRouter(&fakeCategoryStore{failAll: true}, &fakeProductStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetAllCategoriesLeafOmitsChildrenKey(t *testing.T) {
	leaf := mustUUID(t, "33333333-3333-3333-3333-333333333333")
	r := newCategoryRouter(&fakeCategoryStore{categories: []models.Category{
		{ID: leaf, Name: "Accessoires"},
	}}, &fakeProductStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "children")
}

func TestGetCategoryByID(t *testing.T) {
	id := mustUUID(t, "44444444-4444-4444-4444-444444444444")
	r := newCategoryRouter(&fakeCategoryStore{categories: []models.Category{
		{ID: id, Name: "Vestes"},
	}}, &fakeProductStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories/"+id.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Vestes")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories/55555555-5555-5555-5555-555555555555", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories/pas-un-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCategoryValidation(t *testing.T) {
	categories := &fakeCategoryStore{}
	r := newCategoryRouter(categories, &fakeProductStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":""}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Parent inexistant refusé
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":"Running","parent_id":"66666666-6666-6666-6666-666666666666"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, categories.categories)
}

func TestCreateCategoryRootThenChild(t *testing.T) {
	categories := &fakeCategoryStore{}
	r := newCategoryRouter(categories, &fakeProductStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":"Chaussures"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, categories.categories, 1)
	assert.Nil(t, categories.categories[0].ParentID)

	rootID := categories.categories[0].ID.String()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":"Running","parent_id":"`+rootID+`"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, categories.categories, 2)
	require.NotNil(t, categories.categories[1].ParentID)
	assert.Equal(t, rootID, categories.categories[1].ParentID.String())
}

func TestUpdateCategoryPartial(t *testing.T) {
	id := mustUUID(t, "77777777-7777-7777-7777-777777777777")
	categories := &fakeCategoryStore{categories: []models.Category{
		{ID: id, Name: "Vestes", Description: "Hiver"},
	}}
	r := newCategoryRouter(categories, &fakeProductStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/categories",
		strings.NewReader(`{"id":"`+id.String()+`","name":"Manteaux"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Manteaux", categories.categories[0].Name)
	// Les champs absents du corps restent inchangés
	assert.Equal(t, "Hiver", categories.categories[0].Description)
}

func TestDeleteCategoryBlockedByProducts(t *testing.T) {
	id := mustUUID(t, "88888888-8888-8888-8888-888888888888")
	categories := &fakeCategoryStore{categories: []models.Category{{ID: id, Name: "Vestes"}}}
	products := &fakeProductStore{products: []models.Product{
		{ID: gocql.TimeUUID(), Name: "Parka", CategoryID: id},
	}}
	r := newCategoryRouter(categories, products)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/categories/"+id.String(), nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, categories.deleted)

	// Sans produit rattaché, la suppression passe
	products.products = nil
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/categories/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, categories.deleted, 1)
	assert.Equal(t, id, categories.deleted[0])
}
