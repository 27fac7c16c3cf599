package main

import (
	"fmt"

	"github.com/npillmayer/ordtrees"
	"github.com/npillmayer/ordtrees/bench"
	"gopkg.in/ini.v1"
)

const profileSection = "bench"

// loadProfile overwrites cfg with the settings of an INI profile. Keys
// missing from the profile leave cfg unchanged.
func loadProfile(path string, cfg *bench.Config) error {
	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	return applyProfile(file.Section(profileSection), cfg)
}

func applyProfile(section *ini.Section, cfg *bench.Config) error {
	if section.HasKey("engines") {
		kinds, err := ordtrees.ParseKinds(section.Key("engines").String())
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		cfg.Kinds = kinds
	}
	cfg.Count = section.Key("count").MustInt(cfg.Count)
	cfg.MaxKey = section.Key("max").MustInt(cfg.MaxKey)
	cfg.Seed = section.Key("seed").MustInt64(cfg.Seed)
	cfg.MinDegree = section.Key("degree").MustInt(cfg.MinDegree)
	cfg.Probes = section.Key("probes").MustInt(cfg.Probes)
	return nil
}
