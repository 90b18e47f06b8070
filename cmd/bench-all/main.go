package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/kocubinski/bstree/bench/util"
)

const defaultRunner = "bst-bench"

// Plan lists benchmark runs. Options set on the plan apply to every run
// unless the run overrides them.
type Plan struct {
	Options map[string]any `json:"options"`
	Runs    []RunPlan      `json:"runs"`
}

type RunPlan struct {
	RunName string         `json:"name"`
	Runner  string         `json:"runner"`
	Options map[string]any `json:"options"`
}

func main() {
	if err := newCommand().Execute(); err != nil {
		slog.Error("error running plan", "error", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:          "bench-all [plan-file]",
		Short:        "Runs every benchmark listed in a JSON plan and collects the results.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "If true, the plan will be printed but not executed.")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger, err := util.NewLogger("console", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(util.NewZerologHandler(logger.Level(zerolog.InfoLevel))))

		planFile := args[0]
		plan, err := readPlan(planFile)
		if err != nil {
			return err
		}

		resultDir := filepath.Join(filepath.Dir(planFile), time.Now().Format("20060102_150405"))
		resultDir, err = filepath.Abs(resultDir)
		if err != nil {
			return fmt.Errorf("error getting absolute path of result dir: %w", err)
		}
		slog.Info(fmt.Sprintf("writing results to %s", resultDir))

		if !dryRun {
			if err := os.MkdirAll(resultDir, 0o755); err != nil {
				return fmt.Errorf("error creating result dir: %w", err)
			}
		}

		failed := 0
		for _, run := range plan.Runs {
			if err := runOne(slog.Default(), run.withDefaults(plan), resultDir, dryRun); err != nil {
				slog.Error("run failed", "name", run.RunName, "error", err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d runs failed", failed, len(plan.Runs))
		}
		return nil
	}
	return cmd
}

func readPlan(planFile string) (Plan, error) {
	var plan Plan
	bz, err := os.ReadFile(planFile)
	if err != nil {
		return plan, fmt.Errorf("error reading plan file: %w", err)
	}
	if err := json.Unmarshal(bz, &plan); err != nil {
		return plan, fmt.Errorf("error unmarshaling plan file: %w", err)
	}
	for i, run := range plan.Runs {
		if run.RunName == "" {
			return plan, fmt.Errorf("run %d has no name", i)
		}
	}
	return plan, nil
}

func (r RunPlan) withDefaults(plan Plan) RunPlan {
	if r.Runner == "" {
		r.Runner = defaultRunner
	}
	opts := make(map[string]any, len(plan.Options)+len(r.Options))
	for k, v := range plan.Options {
		opts[k] = v
	}
	for k, v := range r.Options {
		opts[k] = v
	}
	r.Options = opts
	return r
}

// runnerArgs builds the runner's command line. Options go through a YAML
// config file so that any key the runner's config accepts can be planned.
func runnerArgs(plan RunPlan, resultDir, configFile string) []string {
	return []string{
		"--config", configFile,
		"--log-format", "json",
		"--log-file", filepath.Join(resultDir, fmt.Sprintf("%s.jsonl", plan.RunName)),
		"--out-dir", filepath.Join(resultDir, plan.RunName),
	}
}

func writeOptions(dir string, opts map[string]any) (string, error) {
	bz, err := yaml.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("error marshaling options: %w", err)
	}
	path := filepath.Join(dir, "options.yaml")
	return path, os.WriteFile(path, bz, 0o644)
}

func runOne(logger *slog.Logger, plan RunPlan, resultDir string, dryRun bool) error {
	bz, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("error marshaling plan: %w", err)
	}
	logger.Info("starting run", "run_plan", string(bz))
	dir, err := os.MkdirTemp("", plan.RunName)
	if err != nil {
		return fmt.Errorf("error creating options dir: %w", err)
	}
	defer os.RemoveAll(dir)

	configFile, err := writeOptions(dir, plan.Options)
	if err != nil {
		return err
	}

	cmd := exec.Command(plan.Runner, runnerArgs(plan, resultDir, configFile)...)
	logger.Info("executing runner command", "cmd", cmd.String())
	if dryRun {
		logger.Info("dry run, not executing command")
		return nil
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error("error running benchmark", "error", err, "output", string(out))
		return err
	}
	if err := os.WriteFile(filepath.Join(resultDir, plan.RunName+".txt"), out, 0o644); err != nil {
		return err
	}
	logger.Info("done", "name", plan.RunName)
	return nil
}
