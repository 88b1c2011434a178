package services

import (
  "errors"
  "fmt"
  "strings"
)

// ErrUnknownCategory reports a category outside KnownCategories. Callers can
// match it with errors.Is to reject bad input instead of treating it as a
// store failure.
var ErrUnknownCategory = errors.New("unknown category")

// Device categories the catalog knows about. Category input from the HTTP
// layer is matched case-insensitively against this set.
var KnownCategories = []string{
  "Phone",
  "Tablet",
  "Laptop",
  "Desktop",
  "Smartwatch",
  "Console",
}

// CanonicalCategory resolves raw input to the category's canonical spelling.
// Returns "" when the category is unknown.
func CanonicalCategory(raw string) string {
  trimmed := strings.TrimSpace(raw)
  for _, c := range KnownCategories {
    if strings.EqualFold(c, trimmed) {
      return c
    }
  }
  return ""
}

// Static brand tables used when the generation provider is unavailable or
// returns unusable output. Small on purpose: these keep the UI working, not
// the catalog complete.
var fallbackBrandTable = map[string][]string{
  "Phone":      {"Apple", "Google", "Huawei", "Motorola", "OnePlus", "Samsung", "Xiaomi"},
  "Tablet":     {"Amazon", "Apple", "Lenovo", "Microsoft", "Samsung"},
  "Laptop":     {"Acer", "Apple", "Asus", "Dell", "HP", "Lenovo", "MSI"},
  "Desktop":    {"Acer", "Apple", "Asus", "Dell", "HP", "Lenovo"},
  "Smartwatch": {"Apple", "Fitbit", "Garmin", "Samsung"},
  "Console":    {"Microsoft", "Nintendo", "Sony", "Valve"},
}

// Per-brand model fallbacks, keyed by "<category>|<brand>" (case-insensitive
// on both parts).
var fallbackModelTable = map[string][]string{
  "phone|apple":      {"iPhone 17 Pro Max", "iPhone 17 Pro", "iPhone 17", "iPhone 16", "iPhone 15", "iPhone SE (3rd generation)"},
  "phone|samsung":    {"Galaxy S26 Ultra", "Galaxy S26", "Galaxy Z Fold 7", "Galaxy Z Flip 7", "Galaxy A56"},
  "phone|google":     {"Pixel 10 Pro", "Pixel 10", "Pixel 9a", "Pixel Fold 2"},
  "tablet|apple":     {"iPad Pro 13-inch (M4)", "iPad Air 11-inch (M2)", "iPad (10th generation)", "iPad mini (7th generation)"},
  "tablet|samsung":   {"Galaxy Tab S10 Ultra", "Galaxy Tab S10", "Galaxy Tab A9"},
  "laptop|apple":     {"MacBook Pro 16-inch (M4)", "MacBook Pro 14-inch (M4)", "MacBook Air 15-inch (M3)", "MacBook Air 13-inch (M3)"},
  "laptop|dell":      {"XPS 16", "XPS 13", "Inspiron 15", "Latitude 7450"},
  "laptop|lenovo":    {"ThinkPad X1 Carbon Gen 12", "Yoga 9i", "IdeaPad Slim 5", "Legion Pro 7"},
  "desktop|apple":    {"Mac Studio (M4 Max)", "Mac mini (M4)", "iMac 24-inch (M4)", "Mac Pro"},
  "console|sony":     {"PlayStation 5 Pro", "PlayStation 5", "PlayStation 5 Digital Edition"},
  "console|nintendo": {"Switch 2", "Switch OLED", "Switch Lite"},
  "console|microsoft": {"Xbox Series X", "Xbox Series S"},
}

func fallbackBrands(category string) []string {
  brands, ok := fallbackBrandTable[category]
  if !ok {
    return []string{}
  }
  out := make([]string, len(brands))
  copy(out, brands)
  return out
}

// fallbackModels never returns empty: a brand missing from the table gets
// placeholder names so a provider outage is distinguishable from a genuine
// "this brand has no models" answer.
func fallbackModels(category, brand string) []string {
  key := strings.ToLower(category) + "|" + strings.ToLower(brand)
  if models, ok := fallbackModelTable[key]; ok {
    out := make([]string, len(models))
    copy(out, models)
    return out
  }
  return []string{
    fmt.Sprintf("%s Model 1", brand),
    fmt.Sprintf("%s Model 2", brand),
    fmt.Sprintf("%s Model 3", brand),
  }
}
