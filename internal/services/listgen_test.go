package services

import (
  "context"
  "errors"
  "fmt"
  "strings"
  "testing"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/NovusX-Dev/RepairBeam/internal/logger"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

func mustTestLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }
  t.Cleanup(func() { log.Sync() })
  return log
}

// fakeAIClient scripts provider responses per schema name and records the
// prompts it was called with.
type fakeAIClient struct {
  respond func(schemaName, user string) (map[string]any, error)
  calls   []string
}

func (f *fakeAIClient) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
  f.calls = append(f.calls, schemaName)
  if f.respond == nil {
    return nil, errors.New("no responder configured")
  }
  return f.respond(schemaName, user)
}

func (f *fakeAIClient) Model() string { return "fake-model" }

// fakeListRepo is an in-memory catalog store keyed by list type.
type fakeListRepo struct {
  lists      map[string]*types.AutoGeneratedList
  failGets   bool
  updateErrs map[string]error
}

func newFakeListRepo() *fakeListRepo {
  return &fakeListRepo{lists: make(map[string]*types.AutoGeneratedList)}
}

func (r *fakeListRepo) GetBrandListByCategory(ctx context.Context, tx *gorm.DB, category string) (*types.AutoGeneratedList, error) {
  if r.failGets {
    return nil, errors.New("store unavailable")
  }
  list, ok := r.lists[types.BrandListType(category)]
  if !ok {
    return nil, nil
  }
  return list, nil
}

func (r *fakeListRepo) GetByListType(ctx context.Context, tx *gorm.DB, listType string) (*types.AutoGeneratedList, error) {
  if r.failGets {
    return nil, errors.New("store unavailable")
  }
  list, ok := r.lists[listType]
  if !ok {
    return nil, nil
  }
  return list, nil
}

func (r *fakeListRepo) Create(ctx context.Context, tx *gorm.DB, lists []*types.AutoGeneratedList) ([]*types.AutoGeneratedList, error) {
  for _, list := range lists {
    r.lists[list.ListType] = list
  }
  return lists, nil
}

func (r *fakeListRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
  for listType, list := range r.lists {
    if list.ID != id {
      continue
    }
    if err := r.updateErrs[listType]; err != nil {
      return err
    }
    for key, value := range fields {
      switch key {
      case "items":
        list.Items = value.(datatypes.JSON)
      case "excluded_items":
        list.ExcludedItems = value.(datatypes.JSON)
      case "last_generated_at":
        list.LastGeneratedAt = value.(time.Time)
      case "next_refresh_at":
        list.NextRefreshAt = value.(time.Time)
      case "is_active":
        list.IsActive = value.(bool)
      }
    }
    list.UpdatedAt = time.Now()
    return nil
  }
  return errors.New("list not found")
}

func (r *fakeListRepo) GetDueForRefresh(ctx context.Context, tx *gorm.DB, now time.Time, listTypePrefix string) ([]*types.AutoGeneratedList, error) {
  var due []*types.AutoGeneratedList
  for listType, list := range r.lists {
    if !list.IsActive || list.NextRefreshAt.After(now) {
      continue
    }
    if listTypePrefix != "" && !strings.HasPrefix(listType, listTypePrefix) {
      continue
    }
    due = append(due, list)
  }
  return due, nil
}

func newTestListgen(t *testing.T, repo *fakeListRepo, ai *fakeAIClient) *listGenerationService {
  t.Helper()
  svc := NewListGenerationService(nil, mustTestLogger(t), repo, nil, ai, nil)
  ls, ok := svc.(*listGenerationService)
  if !ok {
    t.Fatalf("unexpected service type %T", svc)
  }
  return ls
}

func brandsResponse(brands ...string) map[string]any {
  items := make([]any, len(brands))
  for i, b := range brands {
    items[i] = b
  }
  return map[string]any{"brands": items}
}

func modelsResponse(models ...string) map[string]any {
  items := make([]any, len(models))
  for i, m := range models {
    items[i] = m
  }
  return map[string]any{"models": items}
}

func TestGenerateBrandsSortsAndDedupes(t *testing.T) {
  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return brandsResponse("samsung", "Apple", "Google", "Apple", "xiaomi"), nil
  }}
  ls := newTestListgen(t, newFakeListRepo(), ai)

  brands := ls.GenerateBrands(context.Background(), "Phone")
  want := []string{"Apple", "Google", "samsung", "xiaomi"}
  if len(brands) != len(want) {
    t.Fatalf("brands: want %v got %v", want, brands)
  }
  for i := range want {
    if brands[i] != want[i] {
      t.Fatalf("brands[%d]: want %q got %q", i, want[i], brands[i])
    }
  }
}

func TestGenerateBrandsFallsBackOnProviderError(t *testing.T) {
  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return nil, errors.New("provider down")
  }}
  ls := newTestListgen(t, newFakeListRepo(), ai)

  brands := ls.GenerateBrands(context.Background(), "Phone")
  if len(brands) == 0 {
    t.Fatalf("expected static fallback brands, got none")
  }
  seen := make(map[string]bool)
  for _, b := range brands {
    if seen[b] {
      t.Fatalf("fallback brands contain duplicate %q", b)
    }
    seen[b] = true
  }
}

func TestGenerateBrandsUnknownCategory(t *testing.T) {
  ai := &fakeAIClient{}
  ls := newTestListgen(t, newFakeListRepo(), ai)

  brands := ls.GenerateBrands(context.Background(), "Toaster")
  if len(brands) != 0 {
    t.Fatalf("unknown category should yield empty list, got %v", brands)
  }
  if len(ai.calls) != 0 {
    t.Fatalf("unknown category should not hit the provider, got %d calls", len(ai.calls))
  }
}

func TestRefreshBrandListCreatesQuarterly(t *testing.T) {
  repo := newFakeListRepo()
  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return brandsResponse("Apple", "Samsung"), nil
  }}
  ls := newTestListgen(t, repo, ai)
  base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
  ls.now = func() time.Time { return base }

  list, err := ls.RefreshBrandList(context.Background(), "Phone")
  if err != nil {
    t.Fatalf("RefreshBrandList: %v", err)
  }
  if list.RefreshInterval != types.RefreshIntervalQuarterly {
    t.Fatalf("new list interval: want quarterly got %s", list.RefreshInterval)
  }
  wantNext := base.AddDate(0, 3, 0)
  if !list.NextRefreshAt.Equal(wantNext) {
    t.Fatalf("next refresh: want %v got %v", wantNext, list.NextRefreshAt)
  }
  if stored := repo.lists[types.BrandListType("Phone")]; stored == nil {
    t.Fatalf("list was not persisted")
  }
}

func TestRefreshBrandListPreservesIntervalAndExclusions(t *testing.T) {
  repo := newFakeListRepo()
  existing := &types.AutoGeneratedList{
    ID:              uuid.New(),
    ListType:        types.BrandListType("Phone"),
    Category:        "Phone",
    RefreshInterval: types.RefreshIntervalWeekly,
    IsActive:        true,
  }
  existing.SetItems([]string{"Apple"})
  existing.SetExcludedItems([]string{"FairPhone"})
  repo.lists[existing.ListType] = existing

  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return brandsResponse("Apple", "fairphone", "Samsung"), nil
  }}
  ls := newTestListgen(t, repo, ai)
  base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
  ls.now = func() time.Time { return base }

  list, err := ls.RefreshBrandList(context.Background(), "Phone")
  if err != nil {
    t.Fatalf("RefreshBrandList: %v", err)
  }
  for _, b := range list.GetItems() {
    if strings.EqualFold(b, "FairPhone") {
      t.Fatalf("excluded brand resurfaced in %v", list.GetItems())
    }
  }
  if list.RefreshInterval != types.RefreshIntervalWeekly {
    t.Fatalf("interval not preserved: got %s", list.RefreshInterval)
  }
  wantNext := base.AddDate(0, 0, 7)
  if !list.NextRefreshAt.Equal(wantNext) {
    t.Fatalf("next refresh: want %v got %v", wantNext, list.NextRefreshAt)
  }
}

func TestGenerateModelsForBrandTruncatesAndKeepsOrder(t *testing.T) {
  many := make([]string, 0, maxModelsPerBrand+5)
  for i := 0; i < maxModelsPerBrand+5; i++ {
    many = append(many, fmt.Sprintf("Model %d", i))
  }
  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return modelsResponse(many...), nil
  }}
  ls := newTestListgen(t, newFakeListRepo(), ai)

  models := ls.GenerateModelsForBrand(context.Background(), "Phone", "Apple")
  if len(models) != maxModelsPerBrand {
    t.Fatalf("models: want %d got %d", maxModelsPerBrand, len(models))
  }
  if models[0] != "Model 0" || models[1] != "Model 1" {
    t.Fatalf("provider ordering not preserved: %v", models[:2])
  }
}

func TestGenerateModelsForBrandFallsBackOnProviderError(t *testing.T) {
  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return nil, errors.New("provider down")
  }}
  ls := newTestListgen(t, newFakeListRepo(), ai)

  models := ls.GenerateModelsForBrand(context.Background(), "Phone", "Apple")
  if len(models) == 0 {
    t.Fatalf("provider failure should yield fallback models, got none")
  }
}

func TestGenerateModelsForBrandEmptyIsNotFallback(t *testing.T) {
  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return modelsResponse(), nil
  }}
  ls := newTestListgen(t, newFakeListRepo(), ai)

  models := ls.GenerateModelsForBrand(context.Background(), "Phone", "NoSuchBrand")
  if len(models) != 0 {
    t.Fatalf("confirmed-empty result should stay empty, got %v", models)
  }
}

func TestGenerateModelsBatchedCoversEveryBrand(t *testing.T) {
  brands := []string{"BrandA", "BrandB", "BrandC", "BrandD", "BrandE", "BrandF", "BrandG"}
  var chunkSizes []int
  ai := &fakeAIClient{}
  ai.respond = func(schemaName, user string) (map[string]any, error) {
    // Infer chunk membership from the prompt.
    out := map[string]any{}
    n := 0
    for _, b := range brands {
      if strings.Contains(user, b) {
        out[b] = []any{b + " One", b + " Two"}
        n++
      }
    }
    chunkSizes = append(chunkSizes, n)
    return out, nil
  }
  ls := newTestListgen(t, newFakeListRepo(), ai)

  results := ls.GenerateModelsBatched(context.Background(), "Phone", brands)
  if len(results) != len(brands) {
    t.Fatalf("results cover %d brands, want %d", len(results), len(brands))
  }
  if len(ai.calls) != 2 {
    t.Fatalf("want 2 chunk calls for 7 brands, got %d", len(ai.calls))
  }
  for _, size := range chunkSizes {
    if size > modelBatchChunkSize {
      t.Fatalf("chunk larger than %d: %v", modelBatchChunkSize, chunkSizes)
    }
  }
}

func TestGenerateModelsBatchedChunkFailureFallsBack(t *testing.T) {
  brands := []string{"Apple", "Samsung", "Google", "Xiaomi", "OnePlus", "Motorola"}
  call := 0
  ai := &fakeAIClient{}
  ai.respond = func(schemaName, user string) (map[string]any, error) {
    call++
    if call == 1 {
      return nil, errors.New("provider blip")
    }
    out := map[string]any{}
    for _, b := range brands {
      if strings.Contains(user, b) {
        out[b] = []any{b + " Classic"}
      }
    }
    return out, nil
  }
  ls := newTestListgen(t, newFakeListRepo(), ai)

  results := ls.GenerateModelsBatched(context.Background(), "Phone", brands)
  if len(results) != len(brands) {
    t.Fatalf("results cover %d brands, want %d", len(results), len(brands))
  }
  // First chunk failed, so its brands carry fallback (non-empty) lists.
  for _, b := range brands[:modelBatchChunkSize] {
    if len(results[b]) == 0 {
      t.Fatalf("brand %q from failed chunk has no fallback models", b)
    }
  }
  if len(results["Motorola"]) != 1 || results["Motorola"][0] != "Motorola Classic" {
    t.Fatalf("second chunk result wrong: %v", results["Motorola"])
  }
}

func TestGenerateModelsBatchedCapsPerBrand(t *testing.T) {
  many := make([]any, maxModelsPerBrandBatch+10)
  for i := range many {
    many[i] = fmt.Sprintf("Model %d", i)
  }
  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return map[string]any{"Apple": many}, nil
  }}
  ls := newTestListgen(t, newFakeListRepo(), ai)

  results := ls.GenerateModelsBatched(context.Background(), "Phone", []string{"Apple"})
  if len(results["Apple"]) != maxModelsPerBrandBatch {
    t.Fatalf("batched models: want %d got %d", maxModelsPerBrandBatch, len(results["Apple"]))
  }
}

func TestRefreshAllModelListsExcludesEmptyBrands(t *testing.T) {
  repo := newFakeListRepo()
  brandList := &types.AutoGeneratedList{
    ID:              uuid.New(),
    ListType:        types.BrandListType("Phone"),
    Category:        "Phone",
    RefreshInterval: types.RefreshIntervalQuarterly,
    IsActive:        true,
  }
  brandList.SetItems([]string{"Apple", "GhostBrand"})
  brandList.SetExcludedItems([]string{})
  repo.lists[brandList.ListType] = brandList

  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return map[string]any{
      "Apple":      []any{"iPhone 17", "iPhone 16"},
      "GhostBrand": []any{},
    }, nil
  }}
  ls := newTestListgen(t, repo, ai)

  if err := ls.RefreshAllModelLists(context.Background(), "Phone"); err != nil {
    t.Fatalf("RefreshAllModelLists: %v", err)
  }

  got := repo.lists[brandList.ListType]
  items := got.GetItems()
  if len(items) != 1 || items[0] != "Apple" {
    t.Fatalf("brand list after sweep: want [Apple] got %v", items)
  }
  excluded := got.GetExcludedItems()
  if len(excluded) != 1 || excluded[0] != "GhostBrand" {
    t.Fatalf("excluded after sweep: want [GhostBrand] got %v", excluded)
  }

  modelList := repo.lists[types.ModelListType("Phone", "Apple")]
  if modelList == nil {
    t.Fatalf("model list for Apple was not created")
  }
  if len(modelList.GetItems()) != 2 {
    t.Fatalf("Apple models: want 2 got %v", modelList.GetItems())
  }
  if repo.lists[types.ModelListType("Phone", "GhostBrand")] != nil {
    t.Fatalf("no model list should be created for an empty-result brand")
  }
}

func TestRefreshAllModelListsNoBrandListIsNoop(t *testing.T) {
  ai := &fakeAIClient{}
  ls := newTestListgen(t, newFakeListRepo(), ai)

  if err := ls.RefreshAllModelLists(context.Background(), "Phone"); err != nil {
    t.Fatalf("missing brand list should not error: %v", err)
  }
  if len(ai.calls) != 0 {
    t.Fatalf("missing brand list should not hit the provider")
  }
}

func TestRefreshExpiredListsPreservesInterval(t *testing.T) {
  repo := newFakeListRepo()
  base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
  overdue := &types.AutoGeneratedList{
    ID:              uuid.New(),
    ListType:        types.BrandListType("Phone"),
    Category:        "Phone",
    RefreshInterval: types.RefreshIntervalMonthly,
    NextRefreshAt:   base.Add(-time.Hour),
    IsActive:        true,
  }
  overdue.SetItems([]string{"Apple"})
  overdue.SetExcludedItems([]string{})
  repo.lists[overdue.ListType] = overdue

  fresh := &types.AutoGeneratedList{
    ID:              uuid.New(),
    ListType:        types.BrandListType("Laptop"),
    Category:        "Laptop",
    RefreshInterval: types.RefreshIntervalQuarterly,
    NextRefreshAt:   base.Add(24 * time.Hour),
    IsActive:        true,
  }
  fresh.SetItems([]string{"Dell"})
  fresh.SetExcludedItems([]string{})
  repo.lists[fresh.ListType] = fresh

  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return brandsResponse("Apple", "Samsung"), nil
  }}
  ls := newTestListgen(t, repo, ai)
  ls.now = func() time.Time { return base }

  if err := ls.RefreshExpiredLists(context.Background()); err != nil {
    t.Fatalf("RefreshExpiredLists: %v", err)
  }

  got := repo.lists[overdue.ListType]
  if got.RefreshInterval != types.RefreshIntervalMonthly {
    t.Fatalf("interval after sweep: want monthly got %s", got.RefreshInterval)
  }
  wantNext := base.AddDate(0, 1, 0)
  if !got.NextRefreshAt.Equal(wantNext) {
    t.Fatalf("next refresh after sweep: want %v got %v", wantNext, got.NextRefreshAt)
  }
  if !repo.lists[fresh.ListType].NextRefreshAt.Equal(base.Add(24 * time.Hour)) {
    t.Fatalf("not-yet-due list should be untouched")
  }
}

func TestValidateAndAddBrandEmptyInput(t *testing.T) {
  ai := &fakeAIClient{}
  ls := newTestListgen(t, newFakeListRepo(), ai)

  result, err := ls.ValidateAndAddBrand(context.Background(), "Phone", "   ")
  if err != nil {
    t.Fatalf("ValidateAndAddBrand: %v", err)
  }
  if result.IsValid || result.Added {
    t.Fatalf("blank input should be invalid and not added: %+v", result)
  }
  if len(ai.calls) != 0 {
    t.Fatalf("blank input should not hit the provider")
  }
}

func TestValidateAndAddBrandProviderFailurePassesThrough(t *testing.T) {
  repo := newFakeListRepo()
  existing := &types.AutoGeneratedList{
    ID:       uuid.New(),
    ListType: types.BrandListType("Phone"),
    Category: "Phone",
    IsActive: true,
  }
  existing.SetItems([]string{"Apple"})
  existing.SetExcludedItems([]string{})
  repo.lists[existing.ListType] = existing

  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return nil, errors.New("provider down")
  }}
  ls := newTestListgen(t, repo, ai)

  result, err := ls.ValidateAndAddBrand(context.Background(), "Phone", "Nothing")
  if err != nil {
    t.Fatalf("ValidateAndAddBrand: %v", err)
  }
  if !result.IsValid || result.Added {
    t.Fatalf("provider failure should pass input through as valid without adding: %+v", result)
  }
  if result.CorrectedName != "Nothing" {
    t.Fatalf("raw input should be kept on provider failure: %q", result.CorrectedName)
  }
  items := repo.lists[existing.ListType].GetItems()
  if len(items) != 1 || items[0] != "Apple" {
    t.Fatalf("stored list must not change on provider failure: %v", items)
  }
}

func TestValidateAndAddBrandUnknownCategory(t *testing.T) {
  repo := newFakeListRepo()
  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    t.Fatal("provider should not be called for an unknown category")
    return nil, nil
  }}
  ls := newTestListgen(t, repo, ai)

  if _, err := ls.ValidateAndAddBrand(context.Background(), "Toaster", "Acme"); !errors.Is(err, ErrUnknownCategory) {
    t.Fatalf("want ErrUnknownCategory, got %v", err)
  }
  if _, err := ls.RefreshBrandList(context.Background(), "Toaster"); !errors.Is(err, ErrUnknownCategory) {
    t.Fatalf("RefreshBrandList: want ErrUnknownCategory, got %v", err)
  }
  if err := ls.RefreshAllModelLists(context.Background(), "Toaster"); !errors.Is(err, ErrUnknownCategory) {
    t.Fatalf("RefreshAllModelLists: want ErrUnknownCategory, got %v", err)
  }
}

func TestValidateAndAddBrandOverridesExclusion(t *testing.T) {
  repo := newFakeListRepo()
  existing := &types.AutoGeneratedList{
    ID:       uuid.New(),
    ListType: types.BrandListType("Phone"),
    Category: "Phone",
    IsActive: true,
  }
  existing.SetItems([]string{"Apple"})
  existing.SetExcludedItems([]string{"Fairphone"})
  repo.lists[existing.ListType] = existing

  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return map[string]any{"isValid": true, "correctedName": "Fairphone"}, nil
  }}
  ls := newTestListgen(t, repo, ai)

  result, err := ls.ValidateAndAddBrand(context.Background(), "Phone", "Fairphone")
  if err != nil {
    t.Fatalf("ValidateAndAddBrand: %v", err)
  }
  if !result.Added {
    t.Fatalf("explicit add should land even for an excluded brand: %+v", result)
  }
  items := repo.lists[existing.ListType].GetItems()
  if len(items) != 2 || items[1] != "Fairphone" {
    t.Fatalf("items after add: %v", items)
  }
}

func TestValidateAndAddBrandCorrectsAndSortsIn(t *testing.T) {
  repo := newFakeListRepo()
  existing := &types.AutoGeneratedList{
    ID:       uuid.New(),
    ListType: types.BrandListType("Phone"),
    Category: "Phone",
    IsActive: true,
  }
  existing.SetItems([]string{"Apple", "Samsung"})
  existing.SetExcludedItems([]string{})
  repo.lists[existing.ListType] = existing

  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return map[string]any{"isValid": true, "correctedName": "Google"}, nil
  }}
  ls := newTestListgen(t, repo, ai)

  result, err := ls.ValidateAndAddBrand(context.Background(), "Phone", "googel")
  if err != nil {
    t.Fatalf("ValidateAndAddBrand: %v", err)
  }
  if !result.Added || result.CorrectedName != "Google" {
    t.Fatalf("corrected brand should be added: %+v", result)
  }
  items := repo.lists[existing.ListType].GetItems()
  want := []string{"Apple", "Google", "Samsung"}
  for i := range want {
    if items[i] != want[i] {
      t.Fatalf("items after add: want %v got %v", want, items)
    }
  }
}

func TestValidateAndAddBrandDuplicateNotAdded(t *testing.T) {
  repo := newFakeListRepo()
  existing := &types.AutoGeneratedList{
    ID:       uuid.New(),
    ListType: types.BrandListType("Phone"),
    Category: "Phone",
    IsActive: true,
  }
  existing.SetItems([]string{"Apple"})
  existing.SetExcludedItems([]string{})
  repo.lists[existing.ListType] = existing

  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return map[string]any{"isValid": true, "correctedName": "apple"}, nil
  }}
  ls := newTestListgen(t, repo, ai)

  result, err := ls.ValidateAndAddBrand(context.Background(), "Phone", "apple")
  if err != nil {
    t.Fatalf("ValidateAndAddBrand: %v", err)
  }
  if result.Added {
    t.Fatalf("case-insensitive duplicate should not be added")
  }
  if len(repo.lists[existing.ListType].GetItems()) != 1 {
    t.Fatalf("brand list grew on duplicate add")
  }
}

func TestValidateAndAddBrandRejectedByProvider(t *testing.T) {
  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return map[string]any{"isValid": false, "correctedName": ""}, nil
  }}
  ls := newTestListgen(t, newFakeListRepo(), ai)

  result, err := ls.ValidateAndAddBrand(context.Background(), "Phone", "asdfgh")
  if err != nil {
    t.Fatalf("ValidateAndAddBrand: %v", err)
  }
  if result.IsValid || result.Added {
    t.Fatalf("provider rejection should not add: %+v", result)
  }
}

func TestInitializeDefaultListsCoversKnownCategories(t *testing.T) {
  repo := newFakeListRepo()
  ai := &fakeAIClient{respond: func(schemaName, user string) (map[string]any, error) {
    return brandsResponse("BrandOne", "BrandTwo"), nil
  }}
  ls := newTestListgen(t, repo, ai)

  if err := ls.InitializeDefaultLists(context.Background()); err != nil {
    t.Fatalf("InitializeDefaultLists: %v", err)
  }
  for _, category := range KnownCategories {
    if repo.lists[types.BrandListType(category)] == nil {
      t.Fatalf("no brand list created for %s", category)
    }
  }
}
