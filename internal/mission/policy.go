package mission

import (
	"fmt"
	"sort"
)

// Policy is a scripted player. Decide is called once per frame while the
// mission is being played and returns the action to attempt, if any.
type Policy interface {
	Decide(snap Snapshot) (Action, bool)
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(snap Snapshot) (Action, bool)

// Decide calls f.
func (f PolicyFunc) Decide(snap Snapshot) (Action, bool) { return f(snap) }

// IdlePolicy never acts.
var IdlePolicy = PolicyFunc(func(Snapshot) (Action, bool) { return 0, false })

// GreedyPolicy hacks whenever it can and only spends support actions to keep
// detection from running away.
var GreedyPolicy = PolicyFunc(func(snap Snapshot) (Action, bool) {
	ratio := snap.Detection / snap.MaxDetection
	switch {
	case snap.Ready(ActionDistraction) && (snap.AlertedGuards() > 0 || ratio > 0.4):
		return ActionDistraction, true
	case snap.Ready(ActionHack):
		return ActionHack, true
	case snap.Ready(ActionDisableCameras) && ratio > 0.2:
		return ActionDisableCameras, true
	case snap.Ready(ActionCutLights) && ratio > 0.15:
		return ActionCutLights, true
	}
	return 0, false
})

// CautiousPolicy keeps detection low first and only hacks while the success
// chance is high.
var CautiousPolicy = PolicyFunc(func(snap Snapshot) (Action, bool) {
	ratio := snap.Detection / snap.MaxDetection
	if ratio > 0.1 {
		for _, a := range []Action{ActionDistraction, ActionDisableCameras, ActionCutLights} {
			if snap.Ready(a) {
				return a, true
			}
		}
	}
	if snap.Ready(ActionHack) && snap.HackChance >= 0.5 {
		return ActionHack, true
	}
	return 0, false
})

var policies = map[string]Policy{
	"idle":     IdlePolicy,
	"greedy":   GreedyPolicy,
	"cautious": CautiousPolicy,
}

// PolicyByName looks up a built-in policy.
func PolicyByName(name string) (Policy, error) {
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("unknown policy %q (supported: %v)", name, PolicyNames())
	}
	return p, nil
}

// PolicyNames lists the built-in policies in sorted order.
func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for n := range policies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
