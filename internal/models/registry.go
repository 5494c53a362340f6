package models

import (
	"fmt"
	"sort"
)

// Short model names accepted on the command line, mapped to the fully
// qualified IDs the provider CLIs expect.
var claudeModels = map[string]string{
	"haiku":  "claude-haiku-4-5-20251001",
	"sonnet": "claude-sonnet-4-5-20250929",
	"opus":   "claude-opus-4-5-20251101",
}

var geminiModels = map[string]string{
	"flash-lite": "gemini-2.5-flash-lite",
	"flash":      "gemini-2.5-flash",
	"pro":        "gemini-2.5-pro",
}

// ResolveModelID maps (provider, modelName) to the full model ID. It is a
// pure lookup; unknown combinations are an error.
func ResolveModelID(provider Provider, modelName string) (string, error) {
	var table map[string]string
	switch provider {
	case ProviderClaude:
		table = claudeModels
	case ProviderGemini:
		table = geminiModels
	default:
		return "", fmt.Errorf("models: unknown provider %q", provider)
	}
	id, ok := table[modelName]
	if !ok {
		return "", fmt.Errorf("models: unknown %s model %q", provider, modelName)
	}
	return id, nil
}

// ModelNames returns the short model names known for a provider, sorted.
func ModelNames(provider Provider) []string {
	var table map[string]string
	switch provider {
	case ProviderClaude:
		table = claudeModels
	case ProviderGemini:
		table = geminiModels
	default:
		return nil
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
