package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Terminal-Infiltration/internal/config"
	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
)

type runStats struct {
	runIndex int
	seed     int64
	policy   string

	finished bool
	debrief  mission.Debrief

	firstAlertTick int
	firstEventTick int
	firstHackTick  int
	firstFailTick  int

	alerts         int
	events         int
	replacedEvents int
	camerasCut     int
	lightsCut      int

	windowSummary *mission.WindowReport
}

type aggregate struct {
	runs       int
	successes  int
	detected   int
	timeouts   int
	unfinished int

	avgPeakDetection float64
	avgObjectives    float64
	avgSuccessTime   float64 // mean elapsed over successful runs only
	hackFailRate     float64
	avgAlerts        float64
	avgEvents        float64
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var policyName string

	flag.IntVar(&runs, "runs", 5, "number of headless missions per policy")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1 (TI_SEED overrides the default)")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&policyName, "policy", "all", "scripted player: "+strings.Join(mission.PolicyNames(), ", ")+" or all")
	settings, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if settings.Seed != 0 && !flagWasSet(flag.CommandLine, "seed-base") {
		seedBase = settings.Seed
	}

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	cfg, err := settings.MissionConfig()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	names, err := policiesFor(policyName)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Mission Report ===\n")
	fmt.Printf("policies=%s runs=%d duration=%.0fs objectives=%d seed_base=%d seed_step=%d\n\n",
		strings.Join(names, ","), runs, cfg.MissionDuration, cfg.ObjectivesNeeded, seedBase, seedStep)

	byPolicy := map[string][]runStats{}
	for _, name := range names {
		p, _ := mission.PolicyByName(name)
		for i := 0; i < runs; i++ {
			seed := seedBase + int64(i)*seedStep
			rs := runMission(i+1, seed, name, p, cfg, settings.Verbose)
			byPolicy[name] = append(byPolicy[name], rs)
			printRun(rs)
		}
	}

	fmt.Println("=== Aggregate ===")
	for _, name := range names {
		printAggregate(name, summarize(byPolicy[name]))
	}
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// policiesFor expands "all" into every built-in policy.
func policiesFor(name string) ([]string, error) {
	if name == "all" {
		return mission.PolicyNames(), nil
	}
	if _, err := mission.PolicyByName(name); err != nil {
		return nil, err
	}
	return []string{name}, nil
}

func runMission(runIndex int, seed int64, name string, p mission.Policy, cfg mission.Config, verbose bool) runStats {
	ts := mission.NewTestSim(
		mission.WithConfig(cfg),
		mission.WithSeed(seed),
		mission.WithVerbose(verbose),
		mission.WithPolicy(p),
	)
	d := ts.RunToEnd(cfg.MissionDuration + 1)

	entries := ts.SimLog.Entries()
	rs := runStats{
		runIndex:       runIndex,
		seed:           seed,
		policy:         name,
		firstAlertTick: firstTick(entries, "guard", "alert", ""),
		firstEventTick: firstTick(entries, "event", "start", ""),
		firstHackTick:  firstTick(entries, "hack", "success", ""),
		firstFailTick:  firstTick(entries, "hack", "failed", ""),
		alerts:         ts.SimLog.CountCategory("guard", "alert"),
		events:         ts.SimLog.CountCategory("event", "start"),
		replacedEvents: ts.SimLog.CountCategory("event", "replaced"),
		camerasCut:     ts.SimLog.CountCategory("system", "cameras_offline"),
		lightsCut:      ts.SimLog.CountCategory("system", "lights_offline"),
		windowSummary:  ts.Reporter.WindowSummary(),
	}
	if d != nil {
		rs.finished = true
		rs.debrief = *d
	}
	return rs
}

func firstTick(entries []mission.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- %s run %d (seed=%d) ---\n", rs.policy, rs.runIndex, rs.seed)
	if !rs.finished {
		fmt.Println("mission did not finish")
		fmt.Println()
		return
	}
	fmt.Print(rs.debrief.String())
	fmt.Printf("phase_markers: first_alert=%d first_event=%d first_hack=%d first_failed_hack=%d\n",
		rs.firstAlertTick, rs.firstEventTick, rs.firstHackTick, rs.firstFailTick)
	fmt.Printf("event_totals: alerts=%d events=%d replaced=%d cameras_cut=%d lights_cut=%d\n",
		rs.alerts, rs.events, rs.replacedEvents, rs.camerasCut, rs.lightsCut)
	if w := rs.windowSummary; w != nil {
		fmt.Printf("window_samples=%d window_time_range=%.0f..%.0f\n", w.SampleCount, w.FromTime, w.ToTime)
		fmt.Printf("window_avg: detection=%.1f peak=%.1f alerted_guards=%.2f cameras_out=%.0f%% lights_out=%.0f%% event_pressure=%.0f%%\n",
			w.AvgDetection, w.PeakDetection, w.AvgAlertedGuards,
			w.CameraOutage*100, w.LightsOutage*100, w.EventPressure*100)
	}
	fmt.Println()
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all)}
	peakSum, objSum, successTime := 0.0, 0, 0.0
	hacks, failed, alerts, events := 0, 0, 0, 0
	finished := 0
	for _, rs := range all {
		if !rs.finished {
			agg.unfinished++
			continue
		}
		finished++
		d := rs.debrief
		switch d.Outcome {
		case mission.OutcomeSuccess:
			agg.successes++
			successTime += d.Elapsed
		case mission.OutcomeDetected:
			agg.detected++
		case mission.OutcomeTimeout:
			agg.timeouts++
		}
		peakSum += d.PeakDetection
		objSum += d.Objectives
		hacks += d.HacksAttempted
		failed += d.HacksFailed
		alerts += rs.alerts
		events += rs.events
	}
	agg.avgPeakDetection = avgF(peakSum, finished)
	agg.avgObjectives = avg(objSum, finished)
	agg.avgSuccessTime = avgF(successTime, agg.successes)
	agg.hackFailRate = avg(failed, hacks)
	agg.avgAlerts = avg(alerts, finished)
	agg.avgEvents = avg(events, finished)
	return agg
}

func printAggregate(name string, agg aggregate) {
	fmt.Printf("policy=%s runs=%d\n", name, agg.runs)
	fmt.Printf("  outcomes: success=%d detected=%d timeout=%d unfinished=%d success_rate=%.0f%%\n",
		agg.successes, agg.detected, agg.timeouts, agg.unfinished, avg(agg.successes, agg.runs)*100)
	fmt.Printf("  avg_per_run: peak_detection=%.1f objectives=%.1f guard_alerts=%.1f events=%.1f\n",
		agg.avgPeakDetection, agg.avgObjectives, agg.avgAlerts, agg.avgEvents)
	fmt.Printf("  hack_fail_rate=%.0f%% avg_success_time=%s\n", agg.hackFailRate*100, secondsString(agg.avgSuccessTime, agg.successes))
	fmt.Printf("  failure_causes: %s\n", failureCauses(agg))
}

// failureCauses lists non-zero failure counts, most common first.
func failureCauses(agg aggregate) string {
	type cause struct {
		name string
		n    int
	}
	causes := []cause{
		{mission.OutcomeDetected.String(), agg.detected},
		{mission.OutcomeTimeout.String(), agg.timeouts},
		{"unfinished", agg.unfinished},
	}
	sort.SliceStable(causes, func(i, j int) bool { return causes[i].n > causes[j].n })
	parts := make([]string, 0, len(causes))
	for _, c := range causes {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", c.name, c.n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgF(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return sum / float64(n)
}

func secondsString(v float64, n int) string {
	if n == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1fs", v)
}
