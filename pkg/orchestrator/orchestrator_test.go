package orchestrator

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/glorpus-work/genhub/pkg/errors"
	"github.com/glorpus-work/genhub/pkg/hooks"
	"github.com/glorpus-work/genhub/pkg/metrics"
	"github.com/glorpus-work/genhub/pkg/model"
	"github.com/glorpus-work/genhub/pkg/npm"
	ocmocks "github.com/glorpus-work/genhub/pkg/orchestrator/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	pm       *ocmocks.MockPackageManager
	reg      *ocmocks.MockRegistryClient
	settings *ocmocks.MockSettings
	hooks    *ocmocks.MockHookRunner
	notifier *recordingNotifier
	metrics  *metrics.Metrics
	explorer *Explorer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		pm:       ocmocks.NewMockPackageManager(ctrl),
		reg:      ocmocks.NewMockRegistryClient(ctrl),
		settings: ocmocks.NewMockSettings(ctrl),
		hooks:    ocmocks.NewMockHookRunner(ctrl),
		notifier: &recordingNotifier{},
		metrics:  metrics.New(),
	}
	f.explorer = New(f.pm, f.reg, f.settings, f.notifier, f.hooks, f.metrics, Events{})
	return f
}

func (f *fixture) globalLocation() {
	f.settings.EXPECT().InstallationLocation().Return("").AnyTimes()
}

func TestSession_InstallThenIsInstalled(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()

	f.pm.EXPECT().ListInstalled(gomock.Any(), npm.Global).Return([]model.GeneratorName{"generator-bar"})
	f.pm.EXPECT().Install(gomock.Any(), npm.Global, "generator-foo").Return(nil)
	f.hooks.EXPECT().Execute(hooks.PostInstall, hooks.HookContext{
		GeneratorName: "generator-foo",
		Operation:     OpInstall,
		Location:      "-g",
	}).Return(nil)

	ui := &recordingUI{}
	s := f.explorer.NewSession(ctx, ui)
	defer s.Close()

	ok, err := s.IsInstalled(ctx, model.NewDescriptor("generator-foo"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Install(ctx, model.NewDescriptor("generator-foo")))

	ok, err = s.IsInstalled(ctx, model.NewDescriptor("generator-foo"))
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, [][]any{{"generator-foo", true}, {"generator-foo", false}}, ui.busyUpdates())
	assert.Contains(t, ui.messages(), "Installing the latest version of generator-foo ...")
	assert.Contains(t, ui.messages(), "generator-foo successfully installed.")
	assert.Equal(t, []string{"Installing the latest version of generator-foo ..."}, f.notifier.Statuses())
	assert.Equal(t, []string{"generator-foo successfully installed."}, f.notifier.Infos())
	assert.Zero(t, f.explorer.Busy().Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Operations.WithLabelValues(OpInstall, metrics.OutcomeSuccess)))
}

func TestSession_UninstallThenIsInstalled(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()

	f.pm.EXPECT().ListInstalled(gomock.Any(), gomock.Any()).Return([]model.GeneratorName{"generator-foo", "generator-bar"})
	f.pm.EXPECT().Uninstall(gomock.Any(), npm.Global, "generator-foo").Return(nil)
	f.hooks.EXPECT().Execute(hooks.PostUninstall, gomock.Any()).Return(nil)

	ui := &recordingUI{}
	s := f.explorer.NewSession(ctx, ui)
	defer s.Close()

	require.NoError(t, s.Uninstall(ctx, model.NewDescriptor("generator-foo")))

	ok, err := s.IsInstalled(ctx, model.NewDescriptor("generator-foo"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, _ = s.IsInstalled(ctx, model.NewDescriptor("generator-bar"))
	assert.True(t, ok)

	// Uninstall announces the start only.
	assert.Equal(t, [][]any{{"generator-foo", true}}, ui.busyUpdates())
	assert.Equal(t, []string{"Uninstalling generator-foo ..."}, f.notifier.Statuses())
	assert.Equal(t, []string{"generator-foo successfully uninstalled."}, f.notifier.Infos())
	assert.Zero(t, f.explorer.Busy().Len())
}

func TestSession_InstallTwiceKeepsOneEntry(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()

	f.pm.EXPECT().ListInstalled(gomock.Any(), gomock.Any()).Return(nil)
	f.pm.EXPECT().Install(gomock.Any(), npm.Global, "generator-foo").Return(nil).Times(2)
	f.hooks.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	s := f.explorer.NewSession(ctx, nil)
	defer s.Close()

	require.NoError(t, s.Install(ctx, model.NewDescriptor("generator-foo")))
	require.NoError(t, s.Install(ctx, model.NewDescriptor("generator-foo")))

	list, err := s.Installed(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.GeneratorName{"generator-foo"}, list)
}

func TestSession_FailedInstall(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()

	cause := stderrors.New("exit status 1")
	f.pm.EXPECT().ListInstalled(gomock.Any(), gomock.Any()).Return(nil)
	f.pm.EXPECT().Install(gomock.Any(), npm.Global, "generator-bad").
		Return(fmt.Errorf("%w: %w", errors.ErrInstallFailed, cause))

	ui := &recordingUI{}
	s := f.explorer.NewSession(ctx, ui)
	defer s.Close()

	err := s.Install(ctx, model.NewDescriptor("generator-bad"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInstallFailed)

	ok, err := s.IsInstalled(ctx, model.NewDescriptor("generator-bad"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, f.explorer.Busy().Has("generator-bad"))
	assert.Equal(t, [][]any{{"generator-bad", true}, {"generator-bad", false}}, ui.busyUpdates())

	require.Len(t, f.notifier.Errors(), 1)
	assert.Equal(t, "Failed to install generator-bad: install failed: exit status 1", f.notifier.Errors()[0])
	assert.Empty(t, f.notifier.Infos())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Operations.WithLabelValues(OpInstall, metrics.OutcomeFailure)))
}

func TestSession_FailedUninstallKeepsEntry(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()

	f.pm.EXPECT().ListInstalled(gomock.Any(), gomock.Any()).Return([]model.GeneratorName{"generator-foo"})
	f.pm.EXPECT().Uninstall(gomock.Any(), gomock.Any(), "generator-foo").Return(errors.ErrUninstallFailed)

	s := f.explorer.NewSession(ctx, nil)
	defer s.Close()

	assert.ErrorIs(t, s.Uninstall(ctx, model.NewDescriptor("generator-foo")), errors.ErrUninstallFailed)
	ok, _ := s.IsInstalled(ctx, model.NewDescriptor("generator-foo"))
	assert.True(t, ok)
	assert.Equal(t, []string{"Failed to uninstall generator-foo: uninstall failed"}, f.notifier.Errors())
	assert.Zero(t, f.explorer.Busy().Len())
}

func TestSession_InvalidDescriptor(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()
	f.pm.EXPECT().ListInstalled(gomock.Any(), gomock.Any()).Return(nil)

	s := f.explorer.NewSession(ctx, nil)
	defer s.Close()
	_, err := s.Installed(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Install(ctx, model.NewDescriptor("  ")), errors.ErrInvalidGeneratorName)
	assert.ErrorIs(t, s.Uninstall(ctx, model.GeneratorDescriptor{}), errors.ErrInvalidGeneratorName)
	assert.ErrorIs(t, f.explorer.InstallGenerator(ctx, ""), errors.ErrInvalidGeneratorName)
}

func TestExplorer_LocationIsReadPerCall(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.settings.EXPECT().InstallationLocation().Return(""),
		f.settings.EXPECT().InstallationLocation().Return("  /opt/gens "),
	)
	f.pm.EXPECT().Install(gomock.Any(), npm.Global, "generator-foo").Return(nil)
	f.pm.EXPECT().Install(gomock.Any(), npm.LocationFor("/opt/gens"), "generator-foo").Return(nil)
	f.hooks.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	require.NoError(t, f.explorer.InstallGenerator(ctx, "generator-foo"))
	require.NoError(t, f.explorer.InstallGenerator(ctx, "generator-foo"))
}

func TestExplorer_UpdateGeneratorIsQuiet(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()

	f.pm.EXPECT().Install(gomock.Any(), npm.Global, "generator-foo").Return(nil)
	f.hooks.EXPECT().Execute(hooks.PostUpdate, gomock.Any()).Return(nil)

	require.NoError(t, f.explorer.UpdateGenerator(ctx, "generator-foo"))
	assert.Empty(t, f.notifier.Statuses())
	assert.Empty(t, f.notifier.Infos())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Operations.WithLabelValues(OpUpdate, metrics.OutcomeSuccess)))
}

func TestExplorer_HookFailureDoesNotFailInstall(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()

	f.pm.EXPECT().Install(gomock.Any(), gomock.Any(), "generator-foo").Return(nil)
	f.hooks.EXPECT().Execute(hooks.PostInstall, gomock.Any()).Return(errors.ErrHookScript)

	require.NoError(t, f.explorer.InstallGenerator(ctx, "generator-foo"))
	require.Len(t, f.notifier.Errors(), 1)
	assert.Contains(t, f.notifier.Errors()[0], "post-install hook failed for generator-foo")
}

func TestExplorer_SearchAnnotatesBusy(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	f.pm.EXPECT().Install(gomock.Any(), gomock.Any(), "generator-foo").DoAndReturn(
		func(context.Context, npm.Location, string) error {
			close(started)
			<-release
			return nil
		})
	f.hooks.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil)

	f.reg.EXPECT().QueryURL("react", "sap").Return("https://registry/search").Times(2)
	f.reg.EXPECT().Search(gomock.Any(), "https://registry/search").Return(&model.SearchResponse{
		Objects: []model.GeneratorInfo{
			{Package: model.PackageInfo{Name: "generator-foo"}},
			{Package: model.PackageInfo{Name: "generator-bar"}},
		},
		Total: 2,
	}, nil).Times(2)

	done := make(chan error)
	go func() { done <- f.explorer.InstallGenerator(ctx, "generator-foo") }()
	<-started

	res, err := f.explorer.Search(ctx, "react", "sap")
	require.NoError(t, err)
	require.Len(t, res.Objects, 2)
	assert.Equal(t, 2, res.Total)
	assert.True(t, res.Objects[0].DisabledToHandle)
	assert.False(t, res.Objects[1].DisabledToHandle)

	close(release)
	require.NoError(t, <-done)

	res, err = f.explorer.Search(ctx, "react", "sap")
	require.NoError(t, err)
	assert.False(t, res.Objects[0].DisabledToHandle)
}

func TestExplorer_SearchFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.reg.EXPECT().QueryURL("x", "").Return("https://registry/q")
	f.reg.EXPECT().Search(gomock.Any(), "https://registry/q").Return(nil, errors.ErrRegistrySearch)

	res, err := f.explorer.Search(ctx, "x", "")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, errors.ErrRegistrySearch)
	assert.Equal(t, []string{"Failed to get generators with the queryUrl https://registry/q: registry search failed"}, f.notifier.Errors())
}

func TestSession_SearchFailureShownOnCallingUIOnly(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()

	f.pm.EXPECT().ListInstalled(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.reg.EXPECT().QueryURL("x", "").Return("https://registry/q")
	f.reg.EXPECT().Search(gomock.Any(), "https://registry/q").Return(nil, errors.ErrRegistrySearch)

	callerUI := &recordingUI{}
	otherUI := &recordingUI{}
	caller := f.explorer.NewSession(ctx, callerUI)
	defer caller.Close()
	other := f.explorer.NewSession(ctx, otherUI)
	defer other.Close()

	res, err := caller.Search(ctx, "x", "")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, errors.ErrRegistrySearch)

	assert.Equal(t, []string{"Failed to get generators with the queryUrl https://registry/q: registry search failed"}, callerUI.messages())
	assert.Empty(t, otherUI.messages())
	assert.Empty(t, f.notifier.Errors())
}

func TestExplorer_RecommendedQuery(t *testing.T) {
	f := newFixture(t)
	f.settings.EXPECT().SearchQuery().Return([]string{"sap", "fiori", "sap", "", "fiori"})

	assert.Equal(t, []string{"sap", "fiori", ""}, f.explorer.RecommendedQuery())
}

func TestExplorer_RecommendedQueryEmpty(t *testing.T) {
	f := newFixture(t)
	f.settings.EXPECT().SearchQuery().Return(nil)

	got := f.explorer.RecommendedQuery()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSession_CloseDetaches(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()

	f.pm.EXPECT().ListInstalled(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.pm.EXPECT().Install(gomock.Any(), gomock.Any(), "generator-foo").Return(nil)
	f.hooks.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil)

	closed := &recordingUI{}
	open := &recordingUI{}
	a := f.explorer.NewSession(ctx, closed)
	b := f.explorer.NewSession(ctx, open)
	defer b.Close()
	_, _ = a.Installed(ctx)
	_, _ = b.Installed(ctx)
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.SessionsActive))

	a.Close()
	a.Close()
	assert.Len(t, f.explorer.Sessions(), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SessionsActive))

	require.NoError(t, f.explorer.InstallGenerator(ctx, "generator-foo"))
	assert.Empty(t, closed.busyUpdates())
	assert.Empty(t, closed.messages())
	assert.Equal(t, [][]any{{"generator-foo", true}, {"generator-foo", false}}, open.busyUpdates())
}

func TestSession_GeneratorEventsArePerSession(t *testing.T) {
	f := newFixture(t)
	f.globalLocation()
	ctx := context.Background()
	f.pm.EXPECT().ListInstalled(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	a := f.explorer.NewSession(ctx, &recordingUI{})
	b := f.explorer.NewSession(ctx, &recordingUI{})
	defer a.Close()
	defer b.Close()
	_, _ = a.Installed(ctx)
	_, _ = b.Installed(ctx)

	a.Events().DoGeneratorInstall()
	assert.True(t, a.Events().Installing())
	assert.False(t, b.Events().Installing())
}
