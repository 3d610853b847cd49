package model

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const ScenarioFileVersion = 1

// ScenarioFile is the export/import envelope around an override map. Older
// exports were the bare map with no envelope; ParseScenarioFile still accepts
// those.
type ScenarioFile struct {
	Version   int              `json:"version"`
	League    string           `json:"league"`
	Timestamp time.Time        `json:"timestamp"`
	GroupID   string           `json:"groupId"`
	Overrides Overrides        `json:"overrides"`
	Metadata  ScenarioMetadata `json:"metadata"`
}

type ScenarioMetadata struct {
	CompletedMatches int `json:"completedMatches"`
	TotalMatches     int `json:"totalMatches"`
}

var errEmptyScenario = errors.New("scenario file contains no overrides")

// ParseScenarioFile reads an exported scenario. It tries the envelope first
// and falls back to the legacy bare-map format.
func ParseScenarioFile(data []byte) (*ScenarioFile, error) {
	var f ScenarioFile
	if err := json.Unmarshal(data, &f); err == nil && f.Version > 0 {
		if len(f.Overrides) == 0 {
			return nil, errEmptyScenario
		}
		return &f, nil
	}

	var legacy Overrides
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("error parsing scenario file: %w", err)
	}
	if len(legacy) == 0 {
		return nil, errEmptyScenario
	}
	return &ScenarioFile{Overrides: legacy}, nil
}

// EncodeSharedOverrides packs an override map into a URL-safe token for
// share links.
func EncodeSharedOverrides(o Overrides) string {
	if len(o) == 0 {
		return ""
	}
	b, err := json.Marshal(o)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(b)
}

// DecodeSharedOverrides unpacks a share-link token. Malformed input returns
// ok=false; the page falls back to the baseline rather than erroring.
func DecodeSharedOverrides(token string) (Overrides, bool) {
	if token == "" {
		return nil, false
	}
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		// Older share links used standard encoding.
		b, err = base64.StdEncoding.DecodeString(token)
		if err != nil {
			return nil, false
		}
	}

	var o Overrides
	if err := json.Unmarshal(b, &o); err != nil || len(o) == 0 {
		return nil, false
	}
	return o, true
}

// ScenarioInfo is the listing metadata for a saved scenario.
type ScenarioInfo struct {
	LeagueID string
	GroupID  string
	Updated  time.Time
}

// VerifiedResult is an admin-entered final score that overrides the data
// source before the computation core ever sees the fixture.
type VerifiedResult struct {
	LeagueID string
	Group    string
	HomeTeam string
	AwayTeam string
	Score    string
	Verified bool
	Updated  time.Time
}
