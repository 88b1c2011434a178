package handlers

import (
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/NovusX-Dev/RepairBeam/internal/services"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

type fakeListgenService struct {
  brandList  *types.AutoGeneratedList
  modelList  *types.AutoGeneratedList
  validation services.ValidateBrandResult
  refreshed  []string
  swept      []string
  err        error
}

func (f *fakeListgenService) GetBrandList(ctx context.Context, category string) (*types.AutoGeneratedList, error) {
  return f.brandList, nil
}

func (f *fakeListgenService) GetModelList(ctx context.Context, category, brand string) (*types.AutoGeneratedList, error) {
  return f.modelList, nil
}

func (f *fakeListgenService) GenerateBrands(ctx context.Context, category string) []string {
  return nil
}

func (f *fakeListgenService) RefreshBrandList(ctx context.Context, category string) (*types.AutoGeneratedList, error) {
  if f.err != nil {
    return nil, f.err
  }
  f.refreshed = append(f.refreshed, category)
  return f.brandList, nil
}

func (f *fakeListgenService) GenerateModelsForBrand(ctx context.Context, category, brand string) []string {
  return nil
}

func (f *fakeListgenService) GenerateModelsBatched(ctx context.Context, category string, brands []string) map[string][]string {
  return nil
}

func (f *fakeListgenService) RefreshAllModelLists(ctx context.Context, category string) error {
  if f.err != nil {
    return f.err
  }
  f.swept = append(f.swept, category)
  return nil
}

func (f *fakeListgenService) RefreshExpiredLists(ctx context.Context) error { return nil }

func (f *fakeListgenService) ValidateAndAddBrand(ctx context.Context, category, rawBrandName string) (services.ValidateBrandResult, error) {
  if f.err != nil {
    return services.ValidateBrandResult{}, f.err
  }
  return f.validation, nil
}

func (f *fakeListgenService) InitializeDefaultLists(ctx context.Context) error { return nil }

func testBrandList() *types.AutoGeneratedList {
  list := &types.AutoGeneratedList{
    ID:       uuid.New(),
    ListType: types.BrandListType("Phone"),
    Category: "Phone",
    IsActive: true,
  }
  list.SetItems([]string{"Apple", "Samsung"})
  list.SetExcludedItems([]string{})
  return list
}

func newListsRouter(fake *fakeListgenService) *gin.Engine {
  gin.SetMode(gin.TestMode)
  handler := NewListsHandler(fake)
  router := gin.New()
  router.GET("/api/lists/:category", handler.GetBrandList)
  router.POST("/api/lists/:category/update", handler.UpdateBrandList)
  router.POST("/api/lists/:category/generate-models", handler.GenerateModels)
  router.POST("/api/lists/:category/validate-brand", handler.ValidateBrand)
  return router
}

func TestGetBrandListFound(t *testing.T) {
  fake := &fakeListgenService{brandList: testBrandList()}
  router := newListsRouter(fake)

  rec := httptest.NewRecorder()
  req := httptest.NewRequest(http.MethodGet, "/api/lists/Phone", nil)
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusOK {
    t.Fatalf("status: want 200 got %d", rec.Code)
  }
  var got types.AutoGeneratedList
  if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
    t.Fatalf("decode body: %v", err)
  }
  if got.ListType != "brands:Phone" {
    t.Fatalf("list type: got %q", got.ListType)
  }
}

func TestGetBrandListMissingIs404(t *testing.T) {
  router := newListsRouter(&fakeListgenService{})

  rec := httptest.NewRecorder()
  req := httptest.NewRequest(http.MethodGet, "/api/lists/Phone", nil)
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusNotFound {
    t.Fatalf("status: want 404 got %d", rec.Code)
  }
}

func TestUpdateBrandListReportsCount(t *testing.T) {
  fake := &fakeListgenService{brandList: testBrandList()}
  router := newListsRouter(fake)

  rec := httptest.NewRecorder()
  req := httptest.NewRequest(http.MethodPost, "/api/lists/Phone/update", nil)
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusOK {
    t.Fatalf("status: want 200 got %d", rec.Code)
  }
  var got struct {
    Message string `json:"message"`
    Brands  int    `json:"brands"`
  }
  if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
    t.Fatalf("decode body: %v", err)
  }
  if got.Brands != 2 {
    t.Fatalf("brands count: want 2 got %d", got.Brands)
  }
  if len(fake.refreshed) != 1 || fake.refreshed[0] != "Phone" {
    t.Fatalf("refresh not invoked for Phone: %v", fake.refreshed)
  }
}

func TestGenerateModelsInvokesSweep(t *testing.T) {
  fake := &fakeListgenService{}
  router := newListsRouter(fake)

  rec := httptest.NewRecorder()
  req := httptest.NewRequest(http.MethodPost, "/api/lists/Laptop/generate-models", nil)
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusOK {
    t.Fatalf("status: want 200 got %d", rec.Code)
  }
  if len(fake.swept) != 1 || fake.swept[0] != "Laptop" {
    t.Fatalf("sweep not invoked for Laptop: %v", fake.swept)
  }
}

func TestValidateBrandBadBody(t *testing.T) {
  router := newListsRouter(&fakeListgenService{})

  rec := httptest.NewRecorder()
  req := httptest.NewRequest(http.MethodPost, "/api/lists/Phone/validate-brand", strings.NewReader("not json"))
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusBadRequest {
    t.Fatalf("status: want 400 got %d", rec.Code)
  }
}

func TestValidateBrandResponseShape(t *testing.T) {
  fake := &fakeListgenService{validation: services.ValidateBrandResult{IsValid: true, CorrectedName: "Google", Added: true}}
  router := newListsRouter(fake)

  rec := httptest.NewRecorder()
  req := httptest.NewRequest(http.MethodPost, "/api/lists/Phone/validate-brand", strings.NewReader(`{"brandName":"googel"}`))
  req.Header.Set("Content-Type", "application/json")
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusOK {
    t.Fatalf("status: want 200 got %d", rec.Code)
  }
  var got services.ValidateBrandResult
  if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
    t.Fatalf("decode body: %v", err)
  }
  if !got.IsValid || !got.Added || got.CorrectedName != "Google" {
    t.Fatalf("unexpected validation payload: %+v", got)
  }
}

func TestUnknownCategoryIs400(t *testing.T) {
  fake := &fakeListgenService{err: fmt.Errorf("%w %q", services.ErrUnknownCategory, "Toaster")}
  router := newListsRouter(fake)

  requests := []struct {
    method string
    target string
    body   string
  }{
    {http.MethodPost, "/api/lists/Toaster/update", ""},
    {http.MethodPost, "/api/lists/Toaster/generate-models", ""},
    {http.MethodPost, "/api/lists/Toaster/validate-brand", `{"brandName":"Acme"}`},
  }
  for _, tc := range requests {
    var body io.Reader
    if tc.body != "" {
      body = strings.NewReader(tc.body)
    }
    rec := httptest.NewRecorder()
    req := httptest.NewRequest(tc.method, tc.target, body)
    if tc.body != "" {
      req.Header.Set("Content-Type", "application/json")
    }
    router.ServeHTTP(rec, req)

    if rec.Code != http.StatusBadRequest {
      t.Fatalf("%s: status want 400 got %d", tc.target, rec.Code)
    }
    var envelope ErrorEnvelope
    if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
      t.Fatalf("%s: decode body: %v", tc.target, err)
    }
    if envelope.Error.Code != "unknown_category" {
      t.Fatalf("%s: error code want unknown_category got %q", tc.target, envelope.Error.Code)
    }
  }
}
