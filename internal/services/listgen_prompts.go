package services

import (
  "fmt"
  "strings"
)

const (
  maxGeneratedBrands    = 40
  minGeneratedBrands    = 30
  maxModelsPerBrand     = 40
  maxModelsPerBrandBatch = 30
  modelYearWindow       = 4
)

const listgenSystemPrompt = "You maintain device catalogs for repair shop software. " +
  "Only include devices that a repair shop is realistically asked to service. " +
  "Use official product names. Return only the requested JSON."

func brandsSchema() map[string]any {
  return map[string]any{
    "type": "object",
    "properties": map[string]any{
      "brands": map[string]any{
        "type":  "array",
        "items": map[string]any{"type": "string"},
      },
    },
    "required":             []string{"brands"},
    "additionalProperties": false,
  }
}

func brandsPrompt(category string) string {
  return fmt.Sprintf(
    "List between %d and %d brand names of %s devices that repair shops commonly service. "+
      "Include major global brands and well-known regional ones. "+
      "Return a JSON object with a single \"brands\" array of brand name strings.",
    minGeneratedBrands, maxGeneratedBrands, category,
  )
}

func modelsSchema() map[string]any {
  return map[string]any{
    "type": "object",
    "properties": map[string]any{
      "models": map[string]any{
        "type":  "array",
        "items": map[string]any{"type": "string"},
      },
    },
    "required":             []string{"models"},
    "additionalProperties": false,
  }
}

func modelsPrompt(category, brand string, currentYear int) string {
  return fmt.Sprintf(
    "List up to %d %s models made by %s and released between %d and %d, newest first. "+
      "Only include models a repair shop is realistically asked to service. "+
      "If the brand makes no %s devices, return an empty array. "+
      "Return a JSON object with a single \"models\" array of model name strings.",
    maxModelsPerBrand, category, brand, currentYear-modelYearWindow, currentYear, category,
  )
}

// batchModelsSchema constrains the response to exactly the requested brands,
// one array of model names per brand.
func batchModelsSchema(brands []string) map[string]any {
  properties := map[string]any{}
  for _, brand := range brands {
    properties[brand] = map[string]any{
      "type":  "array",
      "items": map[string]any{"type": "string"},
    }
  }
  return map[string]any{
    "type":                 "object",
    "properties":           properties,
    "required":             brands,
    "additionalProperties": false,
  }
}

func batchModelsPrompt(category string, brands []string, currentYear int) string {
  return fmt.Sprintf(
    "For each of the following %s brands, list up to %d models released between %d and %d, newest first: %s. "+
      "Only include models a repair shop is realistically asked to service. "+
      "If a brand makes no %s devices, use an empty array for it. "+
      "Return a JSON object keyed by brand name exactly as given, each value an array of model name strings.",
    category, maxModelsPerBrandBatch, currentYear-modelYearWindow, currentYear,
    strings.Join(brands, ", "), category,
  )
}

func validateBrandSchema() map[string]any {
  return map[string]any{
    "type": "object",
    "properties": map[string]any{
      "isValid":       map[string]any{"type": "boolean"},
      "correctedName": map[string]any{"type": "string"},
    },
    "required":             []string{"isValid", "correctedName"},
    "additionalProperties": false,
  }
}

func validateBrandPrompt(category, rawBrandName string) string {
  return fmt.Sprintf(
    "Is %q a real brand or manufacturer of %s devices? "+
      "Correct typos and abbreviations to the official brand name. "+
      "Return a JSON object with \"isValid\" (boolean) and \"correctedName\" "+
      "(the canonical brand name when valid, empty string otherwise).",
    rawBrandName, category,
  )
}
