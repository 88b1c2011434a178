package normalization

import (
  "strings"
)

func ParseInputString(input string) string {
  normalized := strings.ToLower(strings.TrimSpace(input))
  return normalized
}

func ParseInputStringPtr(input *string) *string {
  normalized := strings.ToLower(strings.TrimSpace(*input))
  return &normalized
}

// TrimInputString trims surrounding whitespace but preserves case.
// Brand and model names are stored case-sensitively.
func TrimInputString(input string) string {
  return strings.TrimSpace(input)
}
