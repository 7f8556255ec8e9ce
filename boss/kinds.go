package boss

import (
	"fmt"
	"strings"
)

// Kind names a boss.
type Kind int

const (
	KindHeraldOfFate Kind = iota + 1
	KindChromaticRoseConductor
	KindPrimavera
	KindLEstate
)

var kindNames = map[Kind]string{
	KindHeraldOfFate:           "herald_of_fate",
	KindChromaticRoseConductor: "chromatic_rose_conductor",
	KindPrimavera:              "primavera",
	KindLEstate:                "l_estate",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds lists every boss in declaration order.
func Kinds() []Kind {
	return []Kind{KindHeraldOfFate, KindChromaticRoseConductor, KindPrimavera, KindLEstate}
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBoss, s)
}

type ProjectileKind int

const (
	ProjectileBolt ProjectileKind = iota + 1
	ProjectileStar
	ProjectilePetal
	ProjectileNote
	ProjectileBlossom
	ProjectileThorn
	ProjectileRaindrop
	ProjectileFlare
	ProjectileCicada
)

var projectileNames = map[ProjectileKind]string{
	ProjectileBolt:     "bolt",
	ProjectileStar:     "star",
	ProjectilePetal:    "petal",
	ProjectileNote:     "note",
	ProjectileBlossom:  "blossom",
	ProjectileThorn:    "thorn",
	ProjectileRaindrop: "raindrop",
	ProjectileFlare:    "flare",
	ProjectileCicada:   "cicada",
}

func (k ProjectileKind) String() string {
	if name, ok := projectileNames[k]; ok {
		return name
	}
	return "projectile"
}

type EffectKind int

const (
	EffectSpawnIntro EffectKind = iota + 1
	EffectAura
	EffectTelegraph
	EffectCommit
	EffectTierShift
	EffectTeleport
	EffectEnrage
	EffectTransitionBurst
	EffectAwakening
	EffectDeathBuildup
	EffectDeathClimax
	EffectDeathFade
	EffectHeal
	EffectMark
)

var effectNames = map[EffectKind]string{
	EffectSpawnIntro:      "spawn_intro",
	EffectAura:            "aura",
	EffectTelegraph:       "telegraph",
	EffectCommit:          "commit",
	EffectTierShift:       "tier_shift",
	EffectTeleport:        "teleport",
	EffectEnrage:          "enrage",
	EffectTransitionBurst: "transition_burst",
	EffectAwakening:       "awakening",
	EffectDeathBuildup:    "death_buildup",
	EffectDeathClimax:     "death_climax",
	EffectDeathFade:       "death_fade",
	EffectHeal:            "heal",
	EffectMark:            "mark",
}

func (k EffectKind) String() string {
	if name, ok := effectNames[k]; ok {
		return name
	}
	return "effect"
}

func ParseEffectKind(s string) (EffectKind, bool) {
	for k, name := range effectNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

type SoundKind int

const (
	SoundRoar SoundKind = iota + 1
	SoundCast
	SoundImpact
	SoundTeleport
	SoundTransform
	SoundDeathCry
	SoundChime
)

var soundNames = map[SoundKind]string{
	SoundRoar:      "roar",
	SoundCast:      "cast",
	SoundImpact:    "impact",
	SoundTeleport:  "teleport",
	SoundTransform: "transform",
	SoundDeathCry:  "death_cry",
	SoundChime:     "chime",
}

func (k SoundKind) String() string {
	if name, ok := soundNames[k]; ok {
		return name
	}
	return "sound"
}

func ParseSoundKind(s string) (SoundKind, bool) {
	for k, name := range soundNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}
