package repository

import (
	"encoding/json"
	"fmt"
)

// marshalMap serializes a category map into its TEXT column representation.
func marshalMap(m map[string]float64) (string, error) {
	if m == nil {
		m = map[string]float64{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal category map: %w", err)
	}
	return string(data), nil
}

// unmarshalMap parses a TEXT column back into a category map.
func unmarshalMap(data string) (map[string]float64, error) {
	m := map[string]float64{}
	if data == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal category map: %w", err)
	}
	return m, nil
}

// marshalList serializes a string slice into its TEXT column representation.
func marshalList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to marshal list: %w", err)
	}
	return string(data), nil
}

// unmarshalList parses a TEXT column back into a string slice.
func unmarshalList(data string) ([]string, error) {
	list := []string{}
	if data == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal list: %w", err)
	}
	return list, nil
}
