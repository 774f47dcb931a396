package mission

import (
	"errors"
	"fmt"
)

// DriftConfig controls passive detection growth.
type DriftConfig struct {
	Rate          float64 // detection per second with every system online
	CamerasOffMul float64 // multiplier while cameras are offline
	LightsOffMul  float64 // multiplier while lights are offline
}

// ChokeConfig controls the guard proximity check.
type ChokeConfig struct {
	WindowMin    float64 // exclusive lower bound of the choke window
	WindowMax    float64 // exclusive upper bound
	BaseChance   float64 // per-tick spot chance with every system offline
	LightsOnMul  float64 // chance multiplier while lights are online
	CamerasOnMul float64 // chance multiplier while cameras are online
	AlertBump    float64 // flat detection added when a guard spots the agent
}

// ActionSpec holds the costs of a support action.
type ActionSpec struct {
	Relief   float64 // detection removed on use
	Cooldown float64 // seconds before the action can be used again
	Outage   float64 // seconds the targeted system stays offline (0 = none)
}

// HackSpec holds the tuning for hack attempts.
type HackSpec struct {
	MinChance       float64 // success chance never drops below this
	ChanceDivisor   float64 // successChance = 1 - detection/ChanceDivisor
	SuccessRelief   float64
	SuccessCooldown float64
	FailureCooldown float64
	PenaltyBase     float64 // penalty = min(PenaltyCap, floor(PenaltyBase + detection*PenaltySlope))
	PenaltySlope    float64
	PenaltyCap      float64
}

// ActionTable groups the per-action tuning.
type ActionTable struct {
	Cameras     ActionSpec
	Lights      ActionSpec
	Distraction ActionSpec
	Hack        HackSpec
}

// Config is the full tuning of a mission. It is passed to NewSession and
// never mutated by the simulation.
type Config struct {
	MissionDuration  float64
	MaxDetection     float64
	ObjectivesNeeded int
	EventInterval    float64
	FeedbackLifetime float64
	GuardPeriods     []float64

	Drift   DriftConfig
	Choke   ChokeConfig
	Actions ActionTable
	Events  [EventKindCount]EventSpec
}

// DefaultConfig returns the standard mission tuning.
func DefaultConfig() Config {
	return Config{
		MissionDuration:  60,
		MaxDetection:     100,
		ObjectivesNeeded: 5,
		EventInterval:    5,
		FeedbackLifetime: 2.5,
		GuardPeriods:     []float64{8, 12, 10},
		Drift: DriftConfig{
			Rate:          2,
			CamerasOffMul: 0.3,
			LightsOffMul:  0.5,
		},
		Choke: ChokeConfig{
			WindowMin:    0.4,
			WindowMax:    0.6,
			BaseChance:   0.02,
			LightsOnMul:  2,
			CamerasOnMul: 1.5,
			AlertBump:    5,
		},
		Actions: ActionTable{
			Cameras:     ActionSpec{Relief: 15, Cooldown: 7, Outage: 8},
			Lights:      ActionSpec{Relief: 10, Cooldown: 5, Outage: 6},
			Distraction: ActionSpec{Relief: 20, Cooldown: 10},
			Hack: HackSpec{
				MinChance:       0.15,
				ChanceDivisor:   80,
				SuccessRelief:   5,
				SuccessCooldown: 2.0,
				FailureCooldown: 3.5,
				PenaltyBase:     8,
				PenaltySlope:    0.05,
				PenaltyCap:      20,
			},
		},
		Events: defaultEventCatalog(),
	}
}

// Validate reports every field that would make the simulation misbehave.
func (c Config) Validate() error {
	var errs []error
	if c.MissionDuration <= 0 {
		errs = append(errs, fmt.Errorf("mission duration must be > 0, got %v", c.MissionDuration))
	}
	if c.MaxDetection <= 0 {
		errs = append(errs, fmt.Errorf("max detection must be > 0, got %v", c.MaxDetection))
	}
	if c.ObjectivesNeeded <= 0 {
		errs = append(errs, fmt.Errorf("objectives needed must be > 0, got %d", c.ObjectivesNeeded))
	}
	if c.EventInterval <= 0 {
		errs = append(errs, fmt.Errorf("event interval must be > 0, got %v", c.EventInterval))
	}
	if c.FeedbackLifetime <= 0 {
		errs = append(errs, fmt.Errorf("feedback lifetime must be > 0, got %v", c.FeedbackLifetime))
	}
	if len(c.GuardPeriods) == 0 {
		errs = append(errs, errors.New("at least one guard is required"))
	}
	for i, p := range c.GuardPeriods {
		if p <= 0 {
			errs = append(errs, fmt.Errorf("guard %d patrol period must be > 0, got %v", i+1, p))
		}
	}
	if c.Choke.WindowMin >= c.Choke.WindowMax {
		errs = append(errs, fmt.Errorf("choke window [%v,%v] is empty", c.Choke.WindowMin, c.Choke.WindowMax))
	}
	if c.Actions.Hack.ChanceDivisor <= 0 {
		errs = append(errs, fmt.Errorf("hack chance divisor must be > 0, got %v", c.Actions.Hack.ChanceDivisor))
	}
	for k, ev := range c.Events {
		if ev.Duration <= 0 {
			errs = append(errs, fmt.Errorf("event %s duration must be > 0, got %v", EventKind(k), ev.Duration))
		}
		if ev.InstantMax < ev.InstantMin {
			errs = append(errs, fmt.Errorf("event %s instant range [%d,%d] is inverted", EventKind(k), ev.InstantMin, ev.InstantMax))
		}
	}
	return errors.Join(errs...)
}
