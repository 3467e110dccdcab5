// Package catalog owns the skill catalog: the content-authored definitions a
// skill test resolves against. The engine consumes it read-only through the
// SkillStore port.
package catalog

import (
	id "github.com/ratto/EDaemonCore/pkg/domain"
)

// Skill is a named game ability with a base difficulty threshold.
// Skills are immutable within the engine; only the catalog writes them.
type Skill struct {
	ID          id.SkillID
	Name        string
	Difficulty  int
	Attribute   string
	Description string
}
