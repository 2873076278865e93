package archetypes

import (
	"github.com/automoto/floebrawl/components"
	"github.com/automoto/floebrawl/tags"
	"github.com/yohamta/donburi"
)

var (
	Platform = newArchetype(
		tags.Platform,
		tags.Round,
		components.Body,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		tags.Round,
		components.Player,
		components.Body,
		components.Object,
		components.Physics,
		components.SpecialMove,
		components.Intent,
	)
	Space = newArchetype(
		tags.Round,
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Match = newArchetype(
		components.Match,
		components.Scoreboard,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
