package boss

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownBoss   = errors.New("boss: unknown boss")
	ErrUnknownAttack = errors.New("boss: unknown attack")
	ErrInvalidSlots  = errors.New("boss: invalid ai slots")
)

// State is the top-level encounter state.
type State int

const (
	StateSpawning State = iota
	StateIdle
	StateAttack
	StateReposition
	StateEnraged
	StatePhaseTransition
	StatePhaseAwakening
	StateDying
)

var stateNames = [...]string{
	StateSpawning:        "spawning",
	StateIdle:            "idle",
	StateAttack:          "attack",
	StateReposition:      "reposition",
	StateEnraged:         "enraged",
	StatePhaseTransition: "phase_transition",
	StatePhaseAwakening:  "phase_awakening",
	StateDying:           "dying",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) valid() bool {
	return s >= StateSpawning && s <= StateDying
}

// Lockout reports whether the state suspends tier, aggression and engagement
// bookkeeping.
func (s State) Lockout() bool {
	return s == StatePhaseTransition || s == StatePhaseAwakening || s == StateDying
}

// AttackID is the closed set of attacks across every boss.
type AttackID int

const (
	AttackNone AttackID = iota

	AttackCosmicBolts
	AttackDestinyDash
	AttackConstellationRing
	AttackFatedStrike
	AttackFinaleOfFate

	AttackPetalVolley
	AttackBatonStream
	AttackChromaticWave
	AttackRoseBloom
	AttackCrescendo

	AttackBlossomSpiral
	AttackZephyrGust
	AttackVerdantThorns
	AttackSpringRain
	AttackRiteOfSpring

	AttackSolarFlare
	AttackHeatwave
	AttackScorchingSun
	AttackCicadaSwarm
	AttackZenith

	attackCount
)

var attackNames = [...]string{
	AttackNone:              "none",
	AttackCosmicBolts:       "cosmic_bolts",
	AttackDestinyDash:       "destiny_dash",
	AttackConstellationRing: "constellation_ring",
	AttackFatedStrike:       "fated_strike",
	AttackFinaleOfFate:      "finale_of_fate",
	AttackPetalVolley:       "petal_volley",
	AttackBatonStream:       "baton_stream",
	AttackChromaticWave:     "chromatic_wave",
	AttackRoseBloom:         "rose_bloom",
	AttackCrescendo:         "crescendo",
	AttackBlossomSpiral:     "blossom_spiral",
	AttackZephyrGust:        "zephyr_gust",
	AttackVerdantThorns:     "verdant_thorns",
	AttackSpringRain:        "spring_rain",
	AttackRiteOfSpring:      "rite_of_spring",
	AttackSolarFlare:        "solar_flare",
	AttackHeatwave:          "heatwave",
	AttackScorchingSun:      "scorching_sun",
	AttackCicadaSwarm:       "cicada_swarm",
	AttackZenith:            "zenith",
}

func (a AttackID) String() string {
	if a >= 0 && a < attackCount {
		return attackNames[a]
	}
	return fmt.Sprintf("attack(%d)", int(a))
}

func ParseAttackID(s string) (AttackID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range attackNames {
		if i > 0 && name == s {
			return AttackID(i), nil
		}
	}
	return AttackNone, fmt.Errorf("%w: %q", ErrUnknownAttack, s)
}

// Multipliers are the phase stat multipliers.
type Multipliers struct {
	Damage   float64
	Defense  float64
	Movement float64
}

var baseMultipliers = Multipliers{Damage: 1, Defense: 1, Movement: 1}

// Encounter is the per-boss state register. Only the controller mutates it.
type Encounter struct {
	State         State
	FrameTimer    int
	CurrentAttack AttackID
	SubPhase      int

	Tier       int
	Elapsed    int
	Aggression float64

	LastAttack         AttackID
	ConsecutiveAttacks int
	TotalAttacks       int
	Cooldown           int
	RepositionSide     float64

	Enraged     bool
	EnrageTimer int

	HasTarget    bool
	Target       TargetRef
	DespawnTimer int

	Health        float64
	HealthMax     float64
	DamageEnabled bool

	TransitionTriggered bool
	Phase               int
	Stats               Multipliers

	Dying   bool
	Removed bool
	Reason  RemovalReason
}

// HealthFraction is health over max, 0 when max is not positive.
func (e *Encounter) HealthFraction() float64 {
	if e.HealthMax <= 0 {
		return 0
	}
	return e.Health / e.HealthMax
}

// Slots returns the four flat ai slots used on the wire.
func (e *Encounter) Slots() [4]float64 {
	return [4]float64{
		float64(e.State),
		float64(e.FrameTimer),
		float64(e.CurrentAttack),
		float64(e.SubPhase),
	}
}

// RestoreSlots applies replicated ai slots. Out of range values are rejected
// and leave the register untouched.
func (e *Encounter) RestoreSlots(slots [4]float64) error {
	state := State(slots[0])
	attack := AttackID(slots[2])
	if !state.valid() || attack < AttackNone || attack >= attackCount || slots[1] < 0 || slots[3] < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSlots, slots)
	}
	e.State = state
	e.FrameTimer = int(slots[1])
	e.CurrentAttack = attack
	e.SubPhase = int(slots[3])
	if e.State != StateAttack {
		e.CurrentAttack = AttackNone
	}
	// Lockout flags follow the replicated state so a restored sequence cannot
	// be damaged or restarted.
	e.Dying = state == StateDying
	e.DamageEnabled = !state.Lockout()
	switch state {
	case StateDying:
		e.Health = 1
		e.Enraged = false
	case StatePhaseTransition, StatePhaseAwakening:
		e.TransitionTriggered = true
		e.Enraged = false
		e.EnrageTimer = 0
	}
	return nil
}

// Snapshot is a JSON friendly view of an encounter.
type Snapshot struct {
	State         string     `json:"state"`
	FrameTimer    int        `json:"frame_timer"`
	CurrentAttack string     `json:"current_attack"`
	SubPhase      int        `json:"sub_phase"`
	Tier          int        `json:"tier"`
	Aggression    float64    `json:"aggression"`
	Enraged       bool       `json:"enraged"`
	EnrageTimer   int        `json:"enrage_timer"`
	Health        float64    `json:"health"`
	HealthMax     float64    `json:"health_max"`
	Phase         int        `json:"phase"`
	Attacks       int        `json:"attacks"`
	Slots         [4]float64 `json:"slots"`
}

func (e *Encounter) Snapshot() Snapshot {
	return Snapshot{
		State:         e.State.String(),
		FrameTimer:    e.FrameTimer,
		CurrentAttack: e.CurrentAttack.String(),
		SubPhase:      e.SubPhase,
		Tier:          e.Tier,
		Aggression:    e.Aggression,
		Enraged:       e.Enraged,
		EnrageTimer:   e.EnrageTimer,
		Health:        e.Health,
		HealthMax:     e.HealthMax,
		Phase:         e.Phase,
		Attacks:       e.TotalAttacks,
		Slots:         e.Slots(),
	}
}
