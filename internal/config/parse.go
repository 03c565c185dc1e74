package config

import (
	"fmt"
	"strconv"
	"strings"
)

// parseLeagueIDs parses a comma-separated list of league IDs. An empty input
// yields no IDs and no error; a non-integer entry is a hard failure.
func parseLeagueIDs(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid league id %q", part)
		}
		if id <= 0 {
			return nil, fmt.Errorf("league id must be positive, got %d", id)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
