package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vdep/internal/adapters/config"
	"go.trai.ch/vdep/internal/adapters/folder"
	"go.trai.ch/vdep/internal/adapters/scribe"
	"go.trai.ch/vdep/internal/app"
	"go.trai.ch/vdep/internal/core/domain"
	"go.trai.ch/vdep/internal/core/ports/mocks"
	"go.trai.ch/vdep/internal/engine/virtualdeps"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T, ctrl *gomock.Controller) (ComponentProvider, *mocks.MockLogger) {
	t.Helper()

	logger := mocks.NewMockLogger(ctrl)
	reports := folder.NewInstaller()
	store := folder.NewReportStore()
	application := app.New(
		config.NewLoader(logger),
		logger,
		scribe.NewFactory(),
		reports,
		store,
		virtualdeps.NewInstaller(reports, scribe.Combiner{}).WithReportStore(store),
		mocks.NewMockWatcher(ctrl),
	)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() {}, nil
	}, logger
}

func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, _ := newProvider(t, ctrl)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "vdep version")
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_GenerateAndDeps(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, domain.ProjectFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(`
version: "1"
installed_apps: [shop]
modules:
  shop.models:
    models:
      Order: {}
`), 0o600))

	ctrl := gomock.NewController(t)
	provider, logger := newProvider(t, ctrl)
	logger.EXPECT().Info(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"generate", "-c", configPath},
		new(bytes.Buffer), new(bytes.Buffer), provider)
	require.Equal(t, 0, exitCode)

	virtual := virtualdeps.NewNamer(domain.DefaultNamespace, nil).Name("shop.models")
	assert.FileExists(t, domain.VirtualFilePath(filepath.Join(dir, domain.DefaultDestination), virtual))

	stdout := new(bytes.Buffer)
	exitCode = run(context.Background(), []string{"deps", "-c", configPath, "shop.models"},
		stdout, new(bytes.Buffer), provider)
	require.Equal(t, 0, exitCode)
	assert.Equal(t, virtual.String()+"\n", stdout.String())
}

func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, logger := newProvider(t, ctrl)
	logger.EXPECT().Error(gomock.Any()).Times(1)

	missing := filepath.Join(t.TempDir(), domain.ProjectFileName)
	exitCode := run(context.Background(), []string{"generate", "-c", missing},
		new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}

func TestRun_ShutsDownTelemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	base, logger := newProvider(t, ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	tel.EXPECT().Shutdown(gomock.Any()).Return(errors.New("exporter closed")).Times(1)
	logger.EXPECT().Warn("failed to shut down telemetry: exporter closed").Times(1)

	provider := func(ctx context.Context) (*app.Components, func(), error) {
		c, cleanup, err := base(ctx)
		if err != nil {
			return nil, nil, err
		}
		c.Telemetry = tel
		return c, cleanup, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}
