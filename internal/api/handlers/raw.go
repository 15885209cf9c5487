package handlers

import (
	"encoding/json"
	"strings"
)

// RawString приводит произвольное JSON-значение к строке:
// строка возвращается без кавычек, число или bool - как есть, null и отсутствие - пустой строкой
func RawString(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal([]byte(trimmed), &s); err == nil {
		return s
	}
	return trimmed
}

// TruthyString как RawString, но ложные JSON-значения (false, 0, "") тоже считаются отсутствующими.
// Строка "0" ложной не является
func TruthyString(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "false" {
		return ""
	}

	var n float64
	if !strings.HasPrefix(trimmed, `"`) && json.Unmarshal([]byte(trimmed), &n) == nil && n == 0 {
		return ""
	}
	return RawString(raw)
}
