package services

import (
  "strings"
  "testing"
)

func TestCanonicalCategory(t *testing.T) {
  cases := []struct {
    in   string
    want string
  }{
    {"Phone", "Phone"},
    {"phone", "Phone"},
    {"LAPTOP", "Laptop"},
    {"smartwatch", "Smartwatch"},
    {"Toaster", ""},
    {"", ""},
  }
  for _, tc := range cases {
    if got := CanonicalCategory(tc.in); got != tc.want {
      t.Fatalf("CanonicalCategory(%q): want %q got %q", tc.in, tc.want, got)
    }
  }
}

func TestFallbackBrandsReturnsCopy(t *testing.T) {
  first := fallbackBrands("Phone")
  if len(first) == 0 {
    t.Fatalf("expected fallback brands for Phone")
  }
  first[0] = "mutated"
  second := fallbackBrands("Phone")
  if second[0] == "mutated" {
    t.Fatalf("fallback table leaked through returned slice")
  }
}

func TestFallbackModelsPlaceholders(t *testing.T) {
  models := fallbackModels("Phone", "ObscureBrand")
  if len(models) == 0 {
    t.Fatalf("fallback models should never be empty")
  }
  for _, m := range models {
    if !strings.HasPrefix(m, "ObscureBrand") {
      t.Fatalf("placeholder model %q should carry the brand name", m)
    }
  }
}
