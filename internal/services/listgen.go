package services

import (
  "context"
  "encoding/json"
  "fmt"
  "sort"
  "strings"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  redisclients "github.com/NovusX-Dev/RepairBeam/internal/clients/redis"
  "github.com/NovusX-Dev/RepairBeam/internal/logger"
  "github.com/NovusX-Dev/RepairBeam/internal/normalization"
  "github.com/NovusX-Dev/RepairBeam/internal/repos"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

const (
  modelBatchChunkSize = 5
  // Throttle between batched generation calls; keeps us under provider
  // rate limits, not a correctness requirement.
  modelBatchChunkDelay = 300 * time.Millisecond
)

type ValidateBrandResult struct {
  IsValid       bool   `json:"isValid"`
  CorrectedName string `json:"correctedName,omitempty"`
  Added         bool   `json:"added"`
}

// ListGenerationService produces, caches and incrementally refreshes brand
// and model catalogs through the generation provider. Expected provider
// failures never escape it: every operation degrades to static fallbacks
// or logs and moves on. Only store errors propagate.
type ListGenerationService interface {
  GetBrandList(ctx context.Context, category string) (*types.AutoGeneratedList, error)
  GetModelList(ctx context.Context, category, brand string) (*types.AutoGeneratedList, error)
  GenerateBrands(ctx context.Context, category string) []string
  RefreshBrandList(ctx context.Context, category string) (*types.AutoGeneratedList, error)
  GenerateModelsForBrand(ctx context.Context, category, brand string) []string
  GenerateModelsBatched(ctx context.Context, category string, brands []string) map[string][]string
  RefreshAllModelLists(ctx context.Context, category string) error
  RefreshExpiredLists(ctx context.Context) error
  ValidateAndAddBrand(ctx context.Context, category, rawBrandName string) (ValidateBrandResult, error)
  InitializeDefaultLists(ctx context.Context) error
}

type listGenerationService struct {
  db  *gorm.DB
  log *logger.Logger

  listRepo      repos.AutoGeneratedListRepo
  aiCallLogRepo repos.AICallLogRepo

  ai  OpenAIClient
  bus redisclients.ProgressBus

  locks *keyLock
  now   func() time.Time
}

func NewListGenerationService(
  db *gorm.DB,
  baseLog *logger.Logger,
  listRepo repos.AutoGeneratedListRepo,
  aiCallLogRepo repos.AICallLogRepo,
  ai OpenAIClient,
  bus redisclients.ProgressBus,
) ListGenerationService {
  return &listGenerationService{
    db:            db,
    log:           baseLog.With("service", "ListGenerationService"),
    listRepo:      listRepo,
    aiCallLogRepo: aiCallLogRepo,
    ai:            ai,
    bus:           bus,
    locks:         newKeyLock(),
    now:           time.Now,
  }
}

// =====================================
// Reads
// =====================================

func (ls *listGenerationService) GetBrandList(ctx context.Context, category string) (*types.AutoGeneratedList, error) {
  canonical := CanonicalCategory(category)
  if canonical == "" {
    return nil, nil
  }
  return ls.listRepo.GetBrandListByCategory(ctx, nil, canonical)
}

func (ls *listGenerationService) GetModelList(ctx context.Context, category, brand string) (*types.AutoGeneratedList, error) {
  canonical := CanonicalCategory(category)
  if canonical == "" {
    return nil, nil
  }
  return ls.listRepo.GetByListType(ctx, nil, types.ModelListType(canonical, brand))
}

// =====================================
// Brand generation
// =====================================

func (ls *listGenerationService) GenerateBrands(ctx context.Context, category string) []string {
  canonical := CanonicalCategory(category)
  if canonical == "" {
    ls.log.Warn("GenerateBrands called with unknown category", "category", category)
    return []string{}
  }

  prompt := brandsPrompt(canonical)
  start := ls.now()
  obj, err := ls.ai.GenerateJSON(ctx, listgenSystemPrompt, prompt, "device_brands", brandsSchema())
  ls.logAICall(ctx, "generate_brands", prompt, obj, err, ls.now().Sub(start))
  if err != nil {
    ls.log.Warn("Brand generation failed, using static fallback", "category", canonical, "error", err)
    return fallbackBrands(canonical)
  }

  brands := coerceStringSlice(obj["brands"])
  if len(brands) == 0 {
    ls.log.Warn("Brand generation returned no usable brands, using static fallback", "category", canonical)
    return fallbackBrands(canonical)
  }
  if len(brands) > maxGeneratedBrands {
    brands = brands[:maxGeneratedBrands]
  }
  brands = dedupeStrings(brands)
  sortCaseInsensitive(brands)
  return brands
}

func (ls *listGenerationService) RefreshBrandList(ctx context.Context, category string) (*types.AutoGeneratedList, error) {
  canonical := CanonicalCategory(category)
  if canonical == "" {
    return nil, fmt.Errorf("%w %q", ErrUnknownCategory, category)
  }

  unlock := ls.locks.Lock(types.BrandListType(canonical))
  defer unlock()

  existing, err := ls.listRepo.GetBrandListByCategory(ctx, nil, canonical)
  if err != nil {
    return nil, fmt.Errorf("get brand list: %w", err)
  }

  brands := ls.GenerateBrands(ctx, canonical)
  if existing != nil {
    brands = removeExcluded(brands, existing.GetExcludedItems())
  }
  brands = dedupeStrings(brands)

  now := ls.now()
  if existing == nil {
    created := &types.AutoGeneratedList{
      ID:              uuid.New(),
      ListType:        types.BrandListType(canonical),
      Category:        canonical,
      RefreshInterval: types.RefreshIntervalQuarterly,
      LastGeneratedAt: now,
      NextRefreshAt:   types.NextRefreshAfter(now, types.RefreshIntervalQuarterly),
      IsActive:        true,
      CreatedAt:       now,
      UpdatedAt:       now,
    }
    created.SetItems(brands)
    created.SetExcludedItems([]string{})
    if _, err := ls.listRepo.Create(ctx, nil, []*types.AutoGeneratedList{created}); err != nil {
      return nil, fmt.Errorf("create brand list: %w", err)
    }
    ls.log.Info("Brand list created", "category", canonical, "brands", len(brands))
    return created, nil
  }

  if err := ls.listRepo.Update(ctx, nil, existing.ID, map[string]any{
    "items":             types.JSONStringList(brands),
    "last_generated_at": now,
    "next_refresh_at":   types.NextRefreshAfter(now, existing.RefreshInterval),
  }); err != nil {
    return nil, fmt.Errorf("update brand list: %w", err)
  }
  existing.SetItems(brands)
  existing.LastGeneratedAt = now
  existing.NextRefreshAt = types.NextRefreshAfter(now, existing.RefreshInterval)
  ls.log.Info("Brand list refreshed", "category", canonical, "brands", len(brands))
  return existing, nil
}

// =====================================
// Model generation
// =====================================

func (ls *listGenerationService) GenerateModelsForBrand(ctx context.Context, category, brand string) []string {
  canonical := CanonicalCategory(category)
  if canonical == "" {
    ls.log.Warn("GenerateModelsForBrand called with unknown category", "category", category)
    return fallbackModels(category, brand)
  }

  year := ls.now().Year()
  prompt := modelsPrompt(canonical, brand, year)
  start := ls.now()
  obj, err := ls.ai.GenerateJSON(ctx, listgenSystemPrompt, prompt, "device_models", modelsSchema())
  ls.logAICall(ctx, "generate_models", prompt, obj, err, ls.now().Sub(start))
  if err != nil {
    ls.log.Warn("Model generation failed, using static fallback", "category", canonical, "brand", brand, "error", err)
    return fallbackModels(canonical, brand)
  }

  // Empty here legitimately means the provider says the brand has no
  // models for this category. Provider ordering (newest first) is kept.
  models := coerceStringSlice(obj["models"])
  if len(models) > maxModelsPerBrand {
    models = models[:maxModelsPerBrand]
  }
  return models
}

func (ls *listGenerationService) GenerateModelsBatched(ctx context.Context, category string, brands []string) map[string][]string {
  results := make(map[string][]string, len(brands))
  canonical := CanonicalCategory(category)
  if canonical == "" {
    canonical = category
  }

  year := ls.now().Year()
  chunks := chunkStrings(brands, modelBatchChunkSize)
  for i, chunk := range chunks {
    prompt := batchModelsPrompt(canonical, chunk, year)
    start := ls.now()
    obj, err := ls.ai.GenerateJSON(ctx, listgenSystemPrompt, prompt, "device_models_batch", batchModelsSchema(chunk))
    ls.logAICall(ctx, "generate_models_batch", prompt, obj, err, ls.now().Sub(start))
    if err != nil {
      // One chunk's failure never aborts the sweep: every brand still
      // gets a usable (fallback) list.
      ls.log.Warn("Batch model generation failed for chunk, falling back per brand",
        "category", canonical,
        "chunk", i+1,
        "chunks", len(chunks),
        "error", err,
      )
      for _, brand := range chunk {
        if _, ok := results[brand]; !ok {
          results[brand] = truncateStrings(fallbackModels(canonical, brand), maxModelsPerBrandBatch)
        }
      }
    } else {
      for _, brand := range chunk {
        results[brand] = truncateStrings(coerceStringSlice(obj[brand]), maxModelsPerBrandBatch)
      }
    }

    if i < len(chunks)-1 {
      select {
      case <-ctx.Done():
        // Canceled mid-sweep: fill the remaining brands from fallbacks so
        // the result map still covers every input brand.
        for _, rest := range chunks[i+1:] {
          for _, brand := range rest {
            if _, ok := results[brand]; !ok {
              results[brand] = truncateStrings(fallbackModels(canonical, brand), maxModelsPerBrandBatch)
            }
          }
        }
        return results
      case <-time.After(modelBatchChunkDelay):
      }
    }
  }
  return results
}

func (ls *listGenerationService) RefreshAllModelLists(ctx context.Context, category string) error {
  canonical := CanonicalCategory(category)
  if canonical == "" {
    return fmt.Errorf("%w %q", ErrUnknownCategory, category)
  }

  unlock := ls.locks.Lock(types.BrandListType(canonical))
  defer unlock()

  brandList, err := ls.listRepo.GetBrandListByCategory(ctx, nil, canonical)
  if err != nil {
    return fmt.Errorf("get brand list: %w", err)
  }
  if brandList == nil || len(brandList.GetItems()) == 0 {
    ls.log.Info("No brand list to generate models for, skipping", "category", canonical)
    return nil
  }

  brands := brandList.GetItems()
  ls.publishProgress(ctx, canonical, "generating", 0, len(brands))

  results := ls.GenerateModelsBatched(ctx, canonical, brands)

  var activeBrands []string
  var brandsWithoutModels []string
  for i, brand := range brands {
    models := results[brand]
    if len(models) == 0 {
      // Confirmed zero generatable models: prune from the active set and
      // suppress from future brand regenerations.
      brandsWithoutModels = append(brandsWithoutModels, brand)
      ls.log.Info("Brand has no generatable models, excluding", "category", canonical, "brand", brand)
      continue
    }
    activeBrands = append(activeBrands, brand)
    if err := ls.upsertModelList(ctx, canonical, brand, models); err != nil {
      return fmt.Errorf("persist model list for %s: %w", brand, err)
    }
    ls.publishProgress(ctx, canonical, "persisting", i+1, len(brands))
  }

  if len(brandsWithoutModels) > 0 || len(activeBrands) != len(brands) {
    excluded := unionStrings(brandList.GetExcludedItems(), brandsWithoutModels)
    if activeBrands == nil {
      activeBrands = []string{}
    }
    if err := ls.listRepo.Update(ctx, nil, brandList.ID, map[string]any{
      "items":          types.JSONStringList(activeBrands),
      "excluded_items": types.JSONStringList(excluded),
    }); err != nil {
      return fmt.Errorf("prune brand list: %w", err)
    }
    ls.log.Info("Brand list pruned after model sweep",
      "category", canonical,
      "active_brands", len(activeBrands),
      "newly_excluded", len(brandsWithoutModels),
    )
  }

  ls.publishProgress(ctx, canonical, "done", len(brands), len(brands))
  return nil
}

func (ls *listGenerationService) upsertModelList(ctx context.Context, category, brand string, models []string) error {
  listType := types.ModelListType(category, brand)
  existing, err := ls.listRepo.GetByListType(ctx, nil, listType)
  if err != nil {
    return err
  }

  now := ls.now()
  if existing == nil {
    created := &types.AutoGeneratedList{
      ID:              uuid.New(),
      ListType:        listType,
      Category:        category,
      Brand:           &brand,
      RefreshInterval: types.RefreshIntervalQuarterly,
      LastGeneratedAt: now,
      NextRefreshAt:   types.NextRefreshAfter(now, types.RefreshIntervalQuarterly),
      IsActive:        true,
      CreatedAt:       now,
      UpdatedAt:       now,
    }
    created.SetItems(models)
    created.SetExcludedItems([]string{})
    _, err := ls.listRepo.Create(ctx, nil, []*types.AutoGeneratedList{created})
    return err
  }

  return ls.listRepo.Update(ctx, nil, existing.ID, map[string]any{
    "items":             types.JSONStringList(models),
    "last_generated_at": now,
    "next_refresh_at":   types.NextRefreshAfter(now, existing.RefreshInterval),
  })
}

// =====================================
// Scheduled refresh
// =====================================

func (ls *listGenerationService) RefreshExpiredLists(ctx context.Context) error {
  due, err := ls.listRepo.GetDueForRefresh(ctx, nil, ls.now(), "brands:")
  if err != nil {
    return fmt.Errorf("query due lists: %w", err)
  }
  if len(due) == 0 {
    ls.log.Debug("No lists due for refresh")
    return nil
  }

  ls.log.Info("Refreshing expired brand lists", "count", len(due))
  for _, list := range due {
    if _, err := ls.RefreshBrandList(ctx, list.Category); err != nil {
      // Best effort: one list's failure must not stall the rest.
      ls.log.Warn("Expired list refresh failed", "category", list.Category, "error", err)
    }
  }
  return nil
}

// =====================================
// Brand validation
// =====================================

func (ls *listGenerationService) ValidateAndAddBrand(ctx context.Context, category, rawBrandName string) (ValidateBrandResult, error) {
  canonical := CanonicalCategory(category)
  if canonical == "" {
    return ValidateBrandResult{}, fmt.Errorf("%w %q", ErrUnknownCategory, category)
  }

  raw := normalization.TrimInputString(rawBrandName)
  if raw == "" {
    return ValidateBrandResult{IsValid: false, Added: false}, nil
  }

  brandName := raw
  prompt := validateBrandPrompt(canonical, raw)
  start := ls.now()
  obj, err := ls.ai.GenerateJSON(ctx, listgenSystemPrompt, prompt, "validate_brand", validateBrandSchema())
  ls.logAICall(ctx, "validate_brand", prompt, obj, err, ls.now().Sub(start))
  if err != nil {
    // Availability over strictness: never block the user on a provider
    // outage. Report the input as valid but leave the stored list alone;
    // the brand only gets persisted on a confirmed validation.
    ls.log.Warn("Brand validation call failed, accepting raw input", "category", canonical, "brand", raw, "error", err)
    return ValidateBrandResult{IsValid: true, CorrectedName: raw, Added: false}, nil
  }

  isValid, _ := obj["isValid"].(bool)
  if !isValid {
    return ValidateBrandResult{IsValid: false, Added: false}, nil
  }
  if corrected, ok := obj["correctedName"].(string); ok {
    if corrected = normalization.TrimInputString(corrected); corrected != "" {
      brandName = corrected
    }
  }

  unlock := ls.locks.Lock(types.BrandListType(canonical))
  defer unlock()

  list, lerr := ls.listRepo.GetBrandListByCategory(ctx, nil, canonical)
  if lerr != nil {
    return ValidateBrandResult{}, fmt.Errorf("get brand list: %w", lerr)
  }

  if list == nil {
    now := ls.now()
    created := &types.AutoGeneratedList{
      ID:              uuid.New(),
      ListType:        types.BrandListType(canonical),
      Category:        canonical,
      RefreshInterval: types.RefreshIntervalQuarterly,
      LastGeneratedAt: now,
      NextRefreshAt:   types.NextRefreshAfter(now, types.RefreshIntervalQuarterly),
      IsActive:        true,
      CreatedAt:       now,
      UpdatedAt:       now,
    }
    created.SetItems([]string{brandName})
    created.SetExcludedItems([]string{})
    if _, err := ls.listRepo.Create(ctx, nil, []*types.AutoGeneratedList{created}); err != nil {
      return ValidateBrandResult{}, fmt.Errorf("create brand list: %w", err)
    }
    return ValidateBrandResult{IsValid: true, CorrectedName: brandName, Added: true}, nil
  }

  items := list.GetItems()
  for _, existing := range items {
    if strings.EqualFold(existing, brandName) {
      return ValidateBrandResult{IsValid: true, CorrectedName: brandName, Added: false}, nil
    }
  }

  // Exclusions only gate the regeneration sweep. A validated add is an
  // explicit user action and lands even for an excluded brand.
  items = append(items, brandName)
  sortCaseInsensitive(items)
  if err := ls.listRepo.Update(ctx, nil, list.ID, map[string]any{
    "items": types.JSONStringList(items),
  }); err != nil {
    return ValidateBrandResult{}, fmt.Errorf("update brand list: %w", err)
  }
  ls.log.Info("Brand added via validation", "category", canonical, "brand", brandName)
  return ValidateBrandResult{IsValid: true, CorrectedName: brandName, Added: true}, nil
}

// =====================================
// Initialization
// =====================================

func (ls *listGenerationService) InitializeDefaultLists(ctx context.Context) error {
  for _, category := range KnownCategories {
    if _, err := ls.RefreshBrandList(ctx, category); err != nil {
      ls.log.Warn("Brand list initialization failed", "category", category, "error", err)
    }
  }
  return nil
}

// =====================================
// Helpers
// =====================================

func (ls *listGenerationService) publishProgress(ctx context.Context, category, stage string, processed, total int) {
  if ls.bus == nil {
    return
  }
  event := redisclients.ProgressEvent{
    Category:  category,
    Stage:     stage,
    Processed: processed,
    Total:     total,
    Timestamp: ls.now(),
  }
  if err := ls.bus.Publish(ctx, event); err != nil {
    ls.log.Debug("Progress publish failed", "category", category, "stage", stage, "error", err)
  }
}

func (ls *listGenerationService) logAICall(ctx context.Context, callType, prompt string, response map[string]any, callErr error, duration time.Duration) {
  if ls.aiCallLogRepo == nil {
    return
  }

  entry := &types.AICallLog{
    ID:         uuid.New(),
    CallType:   callType,
    Model:      ls.ai.Model(),
    Prompt:     prompt,
    Success:    callErr == nil,
    DurationMS: duration.Milliseconds(),
  }
  if callErr != nil {
    entry.Error = callErr.Error()
  } else if response != nil {
    if raw, err := json.Marshal(response); err == nil {
      entry.Response = string(raw)
    }
  }

  if _, err := ls.aiCallLogRepo.Create(ctx, nil, []*types.AICallLog{entry}); err != nil {
    ls.log.Warn("AI call log write failed", "call_type", callType, "error", err)
  }
}

func coerceStringSlice(v any) []string {
  items, ok := v.([]any)
  if !ok {
    return []string{}
  }
  out := make([]string, 0, len(items))
  for _, item := range items {
    s, ok := item.(string)
    if !ok {
      continue
    }
    s = strings.TrimSpace(s)
    if s == "" {
      continue
    }
    out = append(out, s)
  }
  return out
}

func dedupeStrings(items []string) []string {
  seen := make(map[string]bool, len(items))
  out := make([]string, 0, len(items))
  for _, item := range items {
    if seen[item] {
      continue
    }
    seen[item] = true
    out = append(out, item)
  }
  return out
}

func sortCaseInsensitive(items []string) {
  sort.SliceStable(items, func(i, j int) bool {
    return strings.ToLower(items[i]) < strings.ToLower(items[j])
  })
}

func removeExcluded(items, excluded []string) []string {
  if len(excluded) == 0 {
    return items
  }
  blocked := make(map[string]bool, len(excluded))
  for _, e := range excluded {
    blocked[strings.ToLower(e)] = true
  }
  out := make([]string, 0, len(items))
  for _, item := range items {
    if blocked[strings.ToLower(item)] {
      continue
    }
    out = append(out, item)
  }
  return out
}

func unionStrings(a, b []string) []string {
  return dedupeStrings(append(append([]string{}, a...), b...))
}

func chunkStrings(items []string, size int) [][]string {
  if size <= 0 || len(items) == 0 {
    return nil
  }
  var chunks [][]string
  for start := 0; start < len(items); start += size {
    end := start + size
    if end > len(items) {
      end = len(items)
    }
    chunks = append(chunks, items[start:end])
  }
  return chunks
}

func truncateStrings(items []string, max int) []string {
  if len(items) > max {
    return items[:max]
  }
  return items
}
