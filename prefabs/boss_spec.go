package prefabs

import "fmt"

// BossFiles lists the embedded boss profiles.
var BossFiles = []string{
	"herald_of_fate.yaml",
	"chromatic_rose_conductor.yaml",
	"primavera.yaml",
	"l_estate.yaml",
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BossSpec struct {
	Name            string    `yaml:"name"`
	DisplayName     string    `yaml:"display_name"`
	Health          float64   `yaml:"health"`
	Defense         float64   `yaml:"defense"`
	BaseDamage      float64   `yaml:"base_damage"`
	TierThresholds  []float64 `yaml:"tier_thresholds"`
	TierDamageScale []float64 `yaml:"tier_damage_scale"`

	Aggression AggressionSpec        `yaml:"aggression"`
	Attacks    AttackPoolSpec        `yaml:"attacks"`
	Timings    map[string]TimingSpec `yaml:"timings"`

	TelegraphFloor     int `yaml:"telegraph_floor"`
	PostAttackCooldown int `yaml:"post_attack_cooldown"`
	InitialDelay       int `yaml:"initial_delay"`
	SpawnTicks         int `yaml:"spawn_ticks"`

	Movement   MovementSpec   `yaml:"movement"`
	Engagement EngagementSpec `yaml:"engagement"`

	TargetRange  float64 `yaml:"target_range"`
	DespawnTicks int     `yaml:"despawn_ticks"`
	DespawnRise  float64 `yaml:"despawn_rise"`

	Transition *TransitionSpec `yaml:"transition"`
	Death      DeathSpec       `yaml:"death"`

	AmbientScript string `yaml:"ambient_script"`
}

type AggressionSpec struct {
	RampTicks     int     `yaml:"ramp_ticks"`
	SpeedPerLevel float64 `yaml:"speed_per_level"`
	SpeedPerTier  float64 `yaml:"speed_per_tier"`
	RatePerLevel  float64 `yaml:"rate_per_level"`
	RatePerTier   float64 `yaml:"rate_per_tier"`
	CooldownFloor float64 `yaml:"cooldown_floor"`
}

type AttackPoolSpec struct {
	Base               []string        `yaml:"base"`
	Bonus              []TierBonusSpec `yaml:"bonus"`
	Default            string          `yaml:"default"`
	Climax             string          `yaml:"climax"`
	ClimaxAfter        int             `yaml:"climax_after"`
	ClimaxWhileEnraged bool            `yaml:"climax_while_enraged"`
}

type TierBonusSpec struct {
	MinTier int      `yaml:"min_tier"`
	Attacks []string `yaml:"attacks"`
}

type TimingSpec struct {
	Telegraph      int     `yaml:"telegraph"`
	TelegraphFloor int     `yaml:"telegraph_floor"`
	Waves          int     `yaml:"waves"`
	WavesPerTier   int     `yaml:"waves_per_tier"`
	WaveTicks      int     `yaml:"wave_ticks"`
	Recovery       int     `yaml:"recovery"`
	DamageMul      float64 `yaml:"damage_mul"`
	Knockback      float64 `yaml:"knockback"`
	Speed          float64 `yaml:"speed"`
	Count          int     `yaml:"count"`
	Radius         float64 `yaml:"radius"`
	MinRange       float64 `yaml:"min_range"`
	MaxRange       float64 `yaml:"max_range"`
}

type MovementSpec struct {
	Speed            float64    `yaml:"speed"`
	Hover            VectorSpec `yaml:"hover"`
	RepositionEvery  int        `yaml:"reposition_every"`
	RepositionTicks  int        `yaml:"reposition_ticks"`
	RepositionOffset VectorSpec `yaml:"reposition_offset"`
}

type EngagementSpec struct {
	EnrageDistance       float64 `yaml:"enrage_distance"`
	SustainTicks         int     `yaml:"sustain_ticks"`
	DecayPerTick         int     `yaml:"decay_per_tick"`
	HardTeleportDistance float64 `yaml:"hard_teleport_distance"`
	TeleportDistance     float64 `yaml:"teleport_distance"`
	EnrageSpeed          float64 `yaml:"enrage_speed"`
	VolleyTicks          int     `yaml:"volley_ticks"`
	VolleyCount          int     `yaml:"volley_count"`
	VolleySpeed          float64 `yaml:"volley_speed"`
}

type TransitionSpec struct {
	Name            string  `yaml:"name"`
	Threshold       float64 `yaml:"threshold"`
	TransitionTicks int     `yaml:"transition_ticks"`
	AwakeningTicks  int     `yaml:"awakening_ticks"`
	Damage          float64 `yaml:"damage"`
	Defense         float64 `yaml:"defense"`
	Movement        float64 `yaml:"movement"`
}

type DeathSpec struct {
	BuildupTicks int `yaml:"buildup_ticks"`
	ClimaxTicks  int `yaml:"climax_ticks"`
	FadeTicks    int `yaml:"fade_ticks"`
}

// LoadBossSpec loads one boss profile, embedded or from disk.
func LoadBossSpec(filename string) (BossSpec, error) {
	spec, err := LoadSpec[BossSpec](filename)
	if err != nil {
		return BossSpec{}, err
	}
	if spec.Name == "" {
		return BossSpec{}, fmt.Errorf("prefabs: %s: missing name", filename)
	}
	return spec, nil
}

// ArenaSpec places the boss and its challengers.
type ArenaSpec struct {
	Name    string       `yaml:"name"`
	Width   float64      `yaml:"width"`
	Height  float64      `yaml:"height"`
	Damping float64      `yaml:"damping"`
	Boss    VectorSpec   `yaml:"boss"`
	Targets []TargetSpec `yaml:"targets"`
}

type TargetSpec struct {
	Name     string     `yaml:"name"`
	Position VectorSpec `yaml:"position"`
	Health   float64    `yaml:"health"`
	Radius   float64    `yaml:"radius"`
	Motion   string     `yaml:"motion"`
	Speed    float64    `yaml:"speed"`
	Orbit    float64    `yaml:"orbit"`
	// Challenger stats: damage dealt to the boss every Interval ticks while
	// within Range.
	Damage   float64 `yaml:"damage"`
	Interval int     `yaml:"interval"`
	Range    float64 `yaml:"range"`
	IFrames  int     `yaml:"iframes"`
}

func LoadArenaSpec(filename string) (ArenaSpec, error) {
	return LoadSpec[ArenaSpec](filename)
}
