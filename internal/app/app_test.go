package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/todostack/internal/app"
	"go.trai.ch/todostack/internal/core/domain"
	"go.trai.ch/todostack/internal/core/ports"
	"go.trai.ch/todostack/internal/core/ports/mocks"
	"go.trai.ch/todostack/internal/engine/runner"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader    *mocks.MockConfigLoader
	emitter   *mocks.MockComposeEmitter
	validator *mocks.MockComposeValidator
	executor  *mocks.MockExecutor
	telemetry *mocks.MockTelemetry
	logger    *mocks.MockLogger
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		emitter:   mocks.NewMockComposeEmitter(ctrl),
		validator: mocks.NewMockComposeValidator(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	vertex := mocks.NewMockVertex(ctrl)
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	r := runner.NewRunner(f.executor, f.telemetry, f.logger)
	f.app = app.New(f.loader, f.emitter, f.validator, r, f.logger)
	return f
}

func TestApp_Compose(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings()

	f.loader.EXPECT().Load("todostack.yaml").Return(settings, nil)
	f.emitter.EXPECT().Emit(gomock.Any(), settings).
		Return(domain.EmitResult{Path: "docker-compose.yml", Content: []byte("version: \"3\"\n")}, nil)

	var stdout bytes.Buffer
	err := f.app.Compose(context.Background(), app.ComposeOptions{ConfigPath: "todostack.yaml"}, &stdout)
	require.NoError(t, err)
	assert.Equal(t, "docker-compose.yml generated successfully!\n", stdout.String())
}

func TestApp_Compose_Validate(t *testing.T) {
	f := newFixture(t)
	content := []byte("version: \"3\"\n")

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).
		Return(domain.EmitResult{Path: "docker-compose.yml", Content: content}, nil)
	f.validator.EXPECT().Validate(gomock.Any(), "todoapp", content).Return(nil)

	var stdout bytes.Buffer
	err := f.app.Compose(context.Background(), app.ComposeOptions{Validate: true}, &stdout)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "generated successfully!")
}

func TestApp_Compose_ValidationFailure(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).
		Return(domain.EmitResult{Path: "docker-compose.yml"}, nil)
	f.validator.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.Join(domain.ErrComposeInvalid, errors.New("undefined network")))

	var stdout bytes.Buffer
	err := f.app.Compose(context.Background(), app.ComposeOptions{Validate: true}, &stdout)
	require.ErrorIs(t, err, domain.ErrComposeInvalid)
	assert.Empty(t, stdout.String())
}

func TestApp_Compose_SkipsValidationByDefault(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).
		Return(domain.EmitResult{Path: "docker-compose.yml"}, nil)
	f.validator.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	var stdout bytes.Buffer
	require.NoError(t, f.app.Compose(context.Background(), app.ComposeOptions{}, &stdout))
}

func TestApp_Compose_EmitError(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).
		Return(domain.EmitResult{}, errors.New("permission denied"))

	var stdout bytes.Buffer
	err := f.app.Compose(context.Background(), app.ComposeOptions{}, &stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate compose file")
	assert.Empty(t, stdout.String())
}

func TestApp_Compose_ConfigLoaderError(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("").Return(domain.Settings{}, errors.New("config load error"))

	var stdout bytes.Buffer
	err := f.app.Compose(context.Background(), app.ComposeOptions{}, &stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Deploy(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings()
	settings.Deploy.EnsureNetwork = false

	f.loader.EXPECT().Load("").Return(settings, nil)
	gomock.InOrder(
		f.executor.EXPECT().Execute(gomock.Any(), []string{"docker", "build", "-t", "todoapp_image", "."}).
			Return(domain.Result{Stdout: "Successfully built"}, nil),
		f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
			Return(domain.Result{Stdout: "0123abcd"}, nil),
	)

	var stdout, stderr bytes.Buffer
	err := f.app.Deploy(context.Background(), app.DeployOptions{}, &stdout, &stderr)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	assert.Equal(t, "TodoApp is running on http://localhost:8081", lines[len(lines)-1])
	assert.Empty(t, stderr.String())
}

func TestApp_Deploy_BuildFailure(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings()

	f.loader.EXPECT().Load("").Return(settings, nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(domain.Result{ExitCode: 1, Stderr: "failed to solve"}, errors.New("command failed")).
		Times(1)

	var stdout, stderr bytes.Buffer
	err := f.app.Deploy(context.Background(), app.DeployOptions{}, &stdout, &stderr)
	require.ErrorIs(t, err, domain.ErrStepFailed)
	assert.NotContains(t, stdout.String(), "http://localhost")
	assert.Contains(t, stderr.String(), "failed to solve")
}

func TestApp_Deploy_SkipNetwork(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, argv []string) (domain.Result, error) {
			assert.NotEqual(t, "network", argv[1])
			return domain.Result{}, nil
		}).Times(2)

	var stdout, stderr bytes.Buffer
	err := f.app.Deploy(context.Background(), app.DeployOptions{SkipNetwork: true}, &stdout, &stderr)
	require.NoError(t, err)
}

func TestApp_Deploy_DryRun(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)

	var stdout, stderr bytes.Buffer
	err := f.app.Deploy(context.Background(), app.DeployOptions{DryRun: true}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "+ docker build -t todoapp_image .\n")
	assert.NotContains(t, stdout.String(), "TodoApp is running")
}

func TestApp_Deploy_CustomHostPort(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings()
	settings.Deploy.Ports = "9090:8081"
	settings.Deploy.EnsureNetwork = false

	f.loader.EXPECT().Load("").Return(settings, nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(domain.Result{}, nil).Times(2)

	var stdout, stderr bytes.Buffer
	require.NoError(t, f.app.Deploy(context.Background(), app.DeployOptions{}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "TodoApp is running on http://localhost:9090\n")
}

func TestApp_Deploy_InvalidPorts(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings()
	settings.Deploy.Ports = "not-a-port"

	f.loader.EXPECT().Load("").Return(settings, nil)

	var stdout, stderr bytes.Buffer
	err := f.app.Deploy(context.Background(), app.DeployOptions{}, &stdout, &stderr)
	require.ErrorIs(t, err, domain.ErrInvalidPortMapping)
}

func TestApp_Deploy_Progress(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings()
	settings.Deploy.EnsureNetwork = false

	f.loader.EXPECT().Load("").Return(settings, nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(domain.Result{}, nil).Times(2)
	f.telemetry.EXPECT().Reports().Return([]domain.StepReport{
		{Name: "build", State: domain.StepDone, Duration: 2 * time.Second},
		{Name: "run", State: domain.StepDone, Duration: 250 * time.Millisecond},
	})

	var stdout, stderr bytes.Buffer
	err := f.app.Deploy(context.Background(), app.DeployOptions{Progress: true}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "✓ build 2s\n✓ run 250ms\n", stderr.String())
	assert.Contains(t, stdout.String(), "TodoApp is running on http://localhost:8081\n")
}

func TestApp_Deploy_ProgressAfterFailure(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings()
	settings.Deploy.EnsureNetwork = false

	f.loader.EXPECT().Load("").Return(settings, nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(domain.Result{ExitCode: 1, Stderr: "failed to solve"}, errors.New("command failed"))
	f.telemetry.EXPECT().Reports().Return([]domain.StepReport{
		{Name: "build", State: domain.StepFailed, Duration: time.Second},
	})

	var stdout, stderr bytes.Buffer
	err := f.app.Deploy(context.Background(), app.DeployOptions{Progress: true}, &stdout, &stderr)
	require.ErrorIs(t, err, domain.ErrStepFailed)
	assert.True(t, strings.HasSuffix(stderr.String(), "failed to solve\n✗ build failed after 1s\n"))
}

func TestApp_Deploy_NoProgressByDefault(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings()
	settings.Deploy.EnsureNetwork = false

	f.loader.EXPECT().Load("").Return(settings, nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(domain.Result{}, nil).Times(2)
	f.telemetry.EXPECT().Reports().Times(0)

	var stdout, stderr bytes.Buffer
	require.NoError(t, f.app.Deploy(context.Background(), app.DeployOptions{}, &stdout, &stderr))
	assert.Empty(t, stderr.String())
}
