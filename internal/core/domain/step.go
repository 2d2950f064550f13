package domain

import (
	"strings"
	"time"
)

// Step is a single container-engine invocation in a deploy plan.
type Step struct {
	// Name identifies the step in logs and telemetry.
	Name string
	// Message is printed before the step runs.
	Message string
	// Command is the full argument vector, binary first. It is never passed
	// through a shell.
	Command []string
	// Unless, when set, is probed first. A zero exit marks the step as
	// already satisfied and Command is not run.
	Unless []string
}

// String renders the command for display.
func (s Step) String() string {
	return strings.Join(s.Command, " ")
}

// Result is the outcome of a finished process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the process exited with status zero.
func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

// StepState is the recorded outcome of a step.
type StepState string

// Step states reported by telemetry.
const (
	StepRunning StepState = "running"
	StepDone    StepState = "done"
	StepCached  StepState = "cached"
	StepFailed  StepState = "failed"
)

// StepReport summarizes one recorded step, in start order.
type StepReport struct {
	Name     string
	State    StepState
	Duration time.Duration
	// Error is the failure message when State is StepFailed.
	Error string
}

// Step names used by NewDeployPlan.
const (
	StepBuild   = "build"
	StepNetwork = "network"
	StepRun     = "run"
)

// NewDeployPlan returns the ordered steps that build the application image
// and start its container. The network step is included when
// EnsureNetwork is set so the run step never depends on a network created
// elsewhere.
func NewDeployPlan(s Settings) ([]Step, error) {
	if _, err := ParsePortMapping(s.Deploy.Ports); err != nil {
		return nil, err
	}

	steps := []Step{{
		Name:    StepBuild,
		Message: "Building Docker image...",
		Command: []string{s.Engine, "build", "-t", s.Deploy.Image, s.Deploy.Context},
	}}

	if s.Deploy.EnsureNetwork {
		steps = append(steps, Step{
			Name:    StepNetwork,
			Message: "Ensuring network " + s.Network.Name + "...",
			Command: []string{s.Engine, "network", "create", "--driver", s.Network.Driver, s.Network.Name},
			Unless:  []string{s.Engine, "network", "inspect", s.Network.Name},
		})
	}

	steps = append(steps, Step{
		Name:    StepRun,
		Message: "Running Docker container...",
		Command: []string{
			s.Engine, "run", "-d",
			"--name", s.Deploy.Container,
			"-p", s.Deploy.Ports,
			"--network=" + s.Network.Name,
			"-e", "MYSQL_HOST=" + s.Deploy.DBHost,
			s.Deploy.Image,
		},
	})

	return steps, nil
}
