package catalog

import (
	"context"
)

// SeedDefaultSkills loads a small starter catalog so dev mode has something to
// roll against. Production content is loaded through the catalog store by the
// content pipeline, not from this list.
func SeedDefaultSkills(ctx context.Context, store Store) error {
	defaults := []Skill{
		{ID: "athletics", Name: "Athletics", Difficulty: 40, Attribute: "Strength", Description: "Climbing, jumping, and feats of raw physical effort."},
		{ID: "stealth", Name: "Stealth", Difficulty: 55, Attribute: "Agility", Description: "Moving unseen and unheard."},
		{ID: "arcane-lore", Name: "Arcane Lore", Difficulty: 65, Attribute: "Intellect", Description: "Recalling facts about magic, rituals, and relics."},
		{ID: "persuasion", Name: "Persuasion", Difficulty: 50, Attribute: "Presence", Description: "Convincing someone to see things your way."},
		{ID: "survival", Name: "Survival", Difficulty: 45, Attribute: "Wits", Description: "Tracking, foraging, and reading the wilds."},
	}
	for _, skill := range defaults {
		if err := store.Put(ctx, skill); err != nil {
			return err
		}
	}
	return nil
}
