package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// ReadString reads a string parameter from tool arguments.
func ReadString(args map[string]any, key string, required bool) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("parameter %q is required", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		if required {
			return "", fmt.Errorf("parameter %q must be a string", key)
		}
		return "", nil
	}
	return strings.TrimSpace(s), nil
}

// ReadStringDefault reads a string parameter with a default value.
func ReadStringDefault(args map[string]any, key, defaultVal string) string {
	s, err := ReadString(args, key, false)
	if err != nil || s == "" {
		return defaultVal
	}
	return s
}

// ReadInt reads an integer parameter. JSON numbers arrive as float64; string
// digits are tolerated since some clients send everything quoted.
func ReadInt(args map[string]any, key string, required bool) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return 0, fmt.Errorf("parameter %q is required", key)
		}
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case float32:
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("parameter %q must be an integer", key)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("parameter %q must be an integer", key)
}

// ReadIntDefault reads an integer parameter, returning defaultVal only when
// the key is absent or null. Explicit zeros pass through so range validation
// can reject them.
func ReadIntDefault(args map[string]any, key string, defaultVal int) (int, error) {
	if v, ok := args[key]; !ok || v == nil {
		return defaultVal, nil
	}
	return ReadInt(args, key, false)
}
