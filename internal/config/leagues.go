package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/titanous/json5"

	"github.com/riskibarqy/garuda-scout/internal/domain/league"
)

// LeagueFile is the on-disk shape of the league targets configuration.
type LeagueFile struct {
	Leagues []league.Target `json:"leagues" validate:"required,min=1,dive"`
}

// LoadLeagueTargets reads <name>.<ext> and merges <name>.local.<ext> over it
// when present. Adding or removing a league never needs a code change.
func LoadLeagueTargets(path string) ([]league.Target, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("league targets file is required")
	}

	var out LeagueFile
	found := false

	base, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(base) > 0 {
		if err := json5.Unmarshal(base, &out); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		found = true
	}

	localPath := localOverridePath(path)
	local, err := os.ReadFile(localPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", localPath, err)
	}
	if len(local) > 0 {
		var override LeagueFile
		if err := json5.Unmarshal(local, &override); err != nil {
			return nil, fmt.Errorf("decode %s: %w", localPath, err)
		}
		if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge %s: %w", localPath, err)
		}
		found = true
	}

	if !found {
		return nil, fmt.Errorf("league targets file %s: %w", path, os.ErrNotExist)
	}

	for idx := range out.Leagues {
		out.Leagues[idx].Label = strings.TrimSpace(out.Leagues[idx].Label)
		out.Leagues[idx].URL = strings.TrimSpace(out.Leagues[idx].URL)
	}
	if err := validator.New().Struct(out); err != nil {
		return nil, fmt.Errorf("validate league targets: %w", err)
	}

	seen := make(map[string]struct{}, len(out.Leagues))
	for _, target := range out.Leagues {
		if _, ok := seen[target.Label]; ok {
			return nil, fmt.Errorf("duplicate league label %q", target.Label)
		}
		seen[target.Label] = struct{}{}
	}

	return out.Leagues, nil
}

func localOverridePath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".local" + ext
}
