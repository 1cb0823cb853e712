package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"housemax/internal/core/config"
)

type State string

const (
	CheckingConfig   State = "CheckingConfig"
	GeneratingClient State = "GeneratingClient"
	ApplyingSchema   State = "ApplyingSchema"
	Seeding          State = "Seeding"
	Done             State = "Done"
	Failed           State = "Failed"
)

// forward is the success edge out of each non-terminal state.
var forward = map[State]State{
	CheckingConfig:   GeneratingClient,
	GeneratingClient: ApplyingSchema,
	ApplyingSchema:   Seeding,
	Seeding:          Done,
}

// Policy says where a failed step leads.
type Policy int

const (
	// Fatal failures move to Failed.
	Fatal Policy = iota
	// Tolerated failures are reported and follow the forward edge.
	Tolerated
)

func (p Policy) String() string {
	if p == Tolerated {
		return "tolerated"
	}
	return "fatal"
}

type Step struct {
	State   State
	Label   string // "Generating client"
	Success string // "Client generated"
	Command []string
	Policy  Policy
}

// DefaultSteps builds the codegen, schema and seed steps from config.
func DefaultSteps(c config.Setup) []Step {
	return []Step{
		{State: GeneratingClient, Label: "Generating client code", Success: "Client code generated", Command: strings.Fields(c.Codegen), Policy: Fatal},
		{State: ApplyingSchema, Label: "Applying database schema", Success: "Database schema applied", Command: strings.Fields(c.Schema), Policy: Fatal},
		{State: Seeding, Label: "Seeding database", Success: "Database seeded", Command: strings.Fields(c.Seed), Policy: Tolerated},
	}
}

// Runner runs one external command to completion in dir.
type Runner interface {
	Run(ctx context.Context, dir string, command []string) error
}

type Orchestrator struct {
	Dir     string
	EnvFile string
	Steps   []Step
	Runner  Runner
	Out     io.Writer
	Log     *zap.Logger
}

type Result struct {
	State    State
	ExitCode int
	// Trace is every state entered, in order.
	Trace    []State
	Executed []State
	Warnings []string
	Err      error
}

var ErrConfigMissing = errors.New("config file missing")

func New(c config.Setup, r Runner, out io.Writer, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		Dir:     c.ProjectDir,
		EnvFile: c.EnvFile,
		Steps:   DefaultSteps(c),
		Runner:  r,
		Out:     out,
		Log:     log,
	}
}

func (o *Orchestrator) Run(ctx context.Context) Result {
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	if o.Out == nil {
		o.Out = io.Discard
	}
	steps := make(map[State]Step, len(o.Steps))
	for _, s := range o.Steps {
		steps[s.State] = s
	}

	o.printf("HouseMax Database Setup\n=======================\n\n")

	var res Result
	state := CheckingConfig
	var failedAt State
	for state != Done && state != Failed {
		res.Trace = append(res.Trace, state)

		if state == CheckingConfig {
			if err := o.checkConfig(); err != nil {
				res.Err, failedAt, state = err, state, Failed
				continue
			}
			state = forward[state]
			continue
		}

		step, ok := steps[state]
		if !ok {
			state = forward[state]
			continue
		}
		res.Executed = append(res.Executed, state)
		if err := o.runStep(ctx, step); err != nil {
			o.Log.Warn("setup step failed", zap.String("state", string(state)), zap.Stringer("policy", step.Policy), zap.Error(err))
			if step.Policy == Fatal {
				res.Err, failedAt, state = fmt.Errorf("%s: %w", strings.ToLower(step.Label), err), state, Failed
				continue
			}
			w := fmt.Sprintf("%s failed (optional): %v", step.Label, err)
			res.Warnings = append(res.Warnings, w)
			o.printf("[warn] %s failed or not available (this is optional)\n", step.Label)
		} else {
			o.printf("[ok] %s\n", step.Success)
		}
		state = forward[state]
	}
	res.Trace = append(res.Trace, state)
	res.State = state

	if state == Done {
		o.printDone()
		return res
	}
	res.ExitCode = 1
	o.printFailure(failedAt, res.Err)
	return res
}

func (o *Orchestrator) checkConfig() error {
	path := filepath.Join(o.Dir, o.EnvFile)
	if _, err := os.Stat(path); err != nil {
		o.printf("[fail] %s file not found!\n", o.EnvFile)
		o.printf("Please create a %s file in the project directory with the following content:\n\n", o.EnvFile)
		o.printf("%s\n", EnvTemplate)
		o.printf("\n%s\n", dsnHint)
		return fmt.Errorf("%w: %s", ErrConfigMissing, path)
	}
	o.printf("[ok] %s file found\n", o.EnvFile)
	return nil
}

func (o *Orchestrator) runStep(ctx context.Context, s Step) error {
	o.printf("\n%s...\n", s.Label)
	o.Log.Info("setup step", zap.String("state", string(s.State)), zap.Strings("command", s.Command))
	if len(s.Command) == 0 {
		return errors.New("no command configured")
	}
	return o.Runner.Run(ctx, o.Dir, s.Command)
}

func (o *Orchestrator) printDone() {
	o.printf("\nDatabase setup completed successfully!\n\nNext steps:\n")
	for i, s := range nextSteps {
		o.printf("   %d. %s\n", i+1, s)
	}
}

func (o *Orchestrator) printFailure(at State, err error) {
	if at != CheckingConfig {
		o.printf("\n[fail] Database setup failed: %v\n", err)
	}
	o.printf("\nTroubleshooting:\n")
	for i, s := range troubleshooting[at] {
		o.printf("   %d. %s\n", i+1, s)
	}
}

func (o *Orchestrator) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.Out, format, args...)
}
