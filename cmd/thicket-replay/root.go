package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/phanxgames/thicket"
	"github.com/phanxgames/thicket/ebitenhost"
	"github.com/phanxgames/thicket/internal/demo"
)

type replayOptions struct {
	script     string
	config     string
	theme      string
	settle     int
	jsonOutput bool
	metrics    bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &replayOptions{}
	cmd := &cobra.Command{
		Use:   "thicket-replay",
		Short: "Replay an event script against the demo UI",
		Long: `Replays a YAML or JSON event script against the counter demo, one host
event per render pass, and prints every element event dispatched.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.script, "script", "s", "", "event script to replay (required)")
	f.StringVarP(&opts.config, "config", "c", "", "YAML manager config")
	f.StringVar(&opts.theme, "theme", "", "theme to activate (dark or light)")
	f.IntVar(&opts.settle, "settle", 0, "extra repaint passes after the script")
	f.BoolVar(&opts.jsonOutput, "json", false, "print the result as JSON")
	f.BoolVar(&opts.metrics, "metrics", false, "print render metrics")
	f.BoolVar(&opts.debug, "debug", false, "log per-pass debug stats to stderr")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

// recorder is an EventSink collecting every dispatched event.
type recorder struct {
	events []thicket.InteractionEvent
}

func (r *recorder) EmitEvent(e thicket.InteractionEvent) { r.events = append(r.events, e) }

type eventRecord struct {
	Pass uint64  `json:"pass"`
	Type string  `json:"type"`
	Key  string  `json:"key"`
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type replayResult struct {
	Passes  uint64             `json:"passes"`
	Events  []eventRecord      `json:"events"`
	Count   int                `json:"count"`
	Locked  bool               `json:"locked"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func runReplay(stdout, stderr io.Writer, opts *replayOptions) error {
	runner, err := thicket.LoadEventScriptFile(opts.script)
	if err != nil {
		return err
	}

	cfg := thicket.Config{}
	if opts.config != "" {
		if cfg, err = thicket.LoadConfigFile(opts.config); err != nil {
			return err
		}
	}
	if opts.theme != "" {
		cfg.ThemeName = opts.theme
	}
	cfg.Debug = cfg.Debug || opts.debug
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	cfg.Themes = demo.Themes()
	if _, ok := cfg.Themes.Get(cfg.ThemeName); cfg.ThemeName != "" && !ok {
		return fmt.Errorf("theme %q: %w", cfg.ThemeName, thicket.ErrUnknownTheme)
	}

	rec := &recorder{}
	cfg.Sink = rec
	reg := prometheus.NewRegistry()
	if opts.metrics {
		cfg.Metrics = thicket.NewMetrics(reg)
	}

	game := ebitenhost.NewGame(cfg, nil)
	d := game.Dispatcher()
	for !runner.Done() {
		if err := runner.Step(d, demo.UI(false)); err != nil {
			return err
		}
	}
	for i := 0; i < opts.settle; i++ {
		if _, err := d.Step(demo.UI(false)); err != nil {
			return err
		}
	}

	res := collect(game.Manager(), rec)
	if opts.metrics {
		if res.Metrics, err = gatherMetrics(reg); err != nil {
			return err
		}
	}
	return printResult(stdout, res, opts.jsonOutput)
}

func collect(m *thicket.Manager, rec *recorder) replayResult {
	res := replayResult{Passes: m.Frame()}
	for _, e := range rec.events {
		res.Events = append(res.Events, eventRecord{
			Pass: e.Frame, Type: e.Type.String(), Key: e.Key, Kind: e.Kind, X: e.X, Y: e.Y,
		})
	}
	if root, ok := m.RootStorage().Child("root"); ok {
		if st, ok := root.StateManager().Lookup("counter"); ok {
			if cs, ok := st.State.(*demo.CounterState); ok {
				res.Count, res.Locked = cs.Count, cs.Locked
			}
		}
	}
	return res
}

func gatherMetrics(reg *prometheus.Registry) (map[string]float64, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, mt := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range mt.GetLabel() {
				name += fmt.Sprintf("{%s=%s}", lp.GetName(), lp.GetValue())
			}
			switch {
			case mt.GetCounter() != nil:
				out[name] = mt.GetCounter().GetValue()
			case mt.GetGauge() != nil:
				out[name] = mt.GetGauge().GetValue()
			case mt.GetHistogram() != nil:
				out[name+"_count"] = float64(mt.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}

func printResult(w io.Writer, res replayResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	for _, e := range res.Events {
		fmt.Fprintf(w, "pass %3d  %-12s %-10s (%s) at %.0f,%.0f\n", e.Pass, e.Type, e.Key, e.Kind, e.X, e.Y)
	}
	fmt.Fprintf(w, "passes: %d  count: %d  locked: %t\n", res.Passes, res.Count, res.Locked)
	for _, name := range slices.Sorted(maps.Keys(res.Metrics)) {
		fmt.Fprintf(w, "%s %g\n", name, res.Metrics[name])
	}
	return nil
}
