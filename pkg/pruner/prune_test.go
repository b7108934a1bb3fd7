//go:build unit

package pruner

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/lerenn/dep-pruner/pkg/config"
	configmocks "github.com/lerenn/dep-pruner/pkg/config/mocks"
	"github.com/lerenn/dep-pruner/pkg/dependencies"
	fsmocks "github.com/lerenn/dep-pruner/pkg/fs/mocks"
	"github.com/lerenn/dep-pruner/pkg/graph"
	graphmocks "github.com/lerenn/dep-pruner/pkg/graph/mocks"
	loggermocks "github.com/lerenn/dep-pruner/pkg/logger/mocks"
	"github.com/lerenn/dep-pruner/pkg/symbols"
	symbolsmocks "github.com/lerenn/dep-pruner/pkg/symbols/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testProjectDir      = "/project"
	testDeclarationFile = "/project/build.gradle"
	testSourceDir       = "/project/src/main/java"
)

var widgetsGraph = graph.DependencyModuleMap{
	"com.acme:widgets-lib": {"widgets-core", "widgets-extra"},
}

// fileInfo is a minimal os.FileInfo carrying a permission mode.
type fileInfo struct {
	mode os.FileMode
}

func (f fileInfo) Name() string       { return "build.gradle" }
func (f fileInfo) Size() int64        { return 0 }
func (f fileInfo) Mode() os.FileMode  { return f.mode }
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return false }
func (f fileInfo) Sys() interface{}   { return nil }

type pruneMocks struct {
	fs       *fsmocks.MockFS
	config   *configmocks.MockManager
	scanner  *symbolsmocks.MockScanner
	resolver *graphmocks.MockResolver
}

func newTestPruner(t *testing.T, ctrl *gomock.Controller) (Pruner, pruneMocks) {
	t.Helper()

	m := pruneMocks{
		fs:       fsmocks.NewMockFS(ctrl),
		config:   configmocks.NewMockManager(ctrl),
		scanner:  symbolsmocks.NewMockScanner(ctrl),
		resolver: graphmocks.NewMockResolver(ctrl),
	}

	p, err := NewPruner(NewPrunerParams{
		Dependencies: dependencies.New().
			WithFS(m.fs).
			WithConfig(m.config).
			WithScannerProvider(func(params symbols.NewScannerParams) symbols.Scanner {
				assert.Equal(t, ".java", params.Extension)
				return m.scanner
			}).
			WithResolverProvider(func(params graph.NewResolverParams) (graph.Resolver, error) {
				assert.Equal(t, config.ResolverGradle, params.Config.Resolver)
				return m.resolver, nil
			}),
	})
	require.NoError(t, err)

	m.config.EXPECT().GetConfigWithFallback().Return(config.Default(), nil).AnyTimes()
	return p, m
}

func TestNewPruner_ValidatesDependencies(t *testing.T) {
	_, err := NewPruner(NewPrunerParams{})
	assert.ErrorIs(t, err, dependencies.ErrConfigMissing)
}

func TestRealPruner_Prune_ScenarioB(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPruner(t, ctrl)

	m.fs.EXPECT().Exists(testDeclarationFile).Return(true, nil)
	m.scanner.EXPECT().Scan(testSourceDir).Return(symbols.NewSet("com.acme.widgets.Core"), symbols.Stats{FilesScanned: 1, Imports: 1}, nil)
	m.resolver.EXPECT().Resolve(testProjectDir).Return(widgetsGraph, nil)
	m.fs.EXPECT().Stat(testDeclarationFile).Return(fileInfo{mode: 0640}, nil)
	m.fs.EXPECT().ReadFile(testDeclarationFile).Return([]byte("dependencies {\n    implementation \"com.acme:widgets-lib:1.2.0\"\n}\n"), nil)
	m.fs.EXPECT().WriteFileAtomic(testDeclarationFile,
		[]byte("dependencies {\n    implementation (\"com.acme:widgets-lib:1.2.0\") {\n        exclude module: \"widgets-extra\"\n    }\n}\n"),
		os.FileMode(0640)).Return(nil)

	result, err := p.Prune(PruneOpts{ProjectDir: testProjectDir})
	require.NoError(t, err)

	assert.Equal(t, OutcomeChanged, result.Outcome)
	assert.Equal(t, testDeclarationFile, result.DeclarationFile)
	assert.Equal(t, graph.UnusedModuleMap{"com.acme:widgets-lib": {"widgets-extra"}}, result.Unused)
	assert.Equal(t, 1, result.Symbols)
	assert.Equal(t, 1, result.Scan.FilesScanned)
	require.Len(t, result.Edits, 1)
	assert.Equal(t, 2, result.Edits[0].Line)
}

func TestRealPruner_Prune_DeclarationFileMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPruner(t, ctrl)

	m.fs.EXPECT().Exists(testDeclarationFile).Return(false, nil)

	_, err := p.Prune(PruneOpts{ProjectDir: testProjectDir})
	assert.ErrorIs(t, err, ErrDeclarationFileNotFound)
}

func TestRealPruner_Prune_NothingUnused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPruner(t, ctrl)

	m.fs.EXPECT().Exists(testDeclarationFile).Return(true, nil)
	m.scanner.EXPECT().Scan(testSourceDir).Return(symbols.NewSet("com.acme.widgets.core.A", "com.acme.widgets.extra.B"), symbols.Stats{}, nil)
	m.resolver.EXPECT().Resolve(testProjectDir).Return(widgetsGraph, nil)

	result, err := p.Prune(PruneOpts{ProjectDir: testProjectDir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, result.Outcome)
	assert.Empty(t, result.Unused)
	assert.Empty(t, result.Edits)
}

func TestRealPruner_Prune_NoDependencyData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPruner(t, ctrl)

	m.fs.EXPECT().Exists(testDeclarationFile).Return(true, nil)
	m.scanner.EXPECT().Scan(testSourceDir).Return(symbols.NewSet("a.B"), symbols.Stats{}, nil)
	m.resolver.EXPECT().Resolve(testProjectDir).Return(graph.DependencyModuleMap{}, nil)

	result, err := p.Prune(PruneOpts{ProjectDir: testProjectDir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, result.Outcome)
}

func TestRealPruner_Prune_AlreadyPatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPruner(t, ctrl)

	m.fs.EXPECT().Exists(testDeclarationFile).Return(true, nil)
	m.scanner.EXPECT().Scan(testSourceDir).Return(symbols.NewSet("com.acme.widgets.Core"), symbols.Stats{}, nil)
	m.resolver.EXPECT().Resolve(testProjectDir).Return(widgetsGraph, nil)
	m.fs.EXPECT().Stat(testDeclarationFile).Return(fileInfo{mode: 0644}, nil)
	m.fs.EXPECT().ReadFile(testDeclarationFile).Return([]byte("implementation (\"com.acme:widgets-lib:1.2.0\") {\n    exclude module: \"widgets-extra\"\n}\n"), nil)

	result, err := p.Prune(PruneOpts{ProjectDir: testProjectDir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, result.Outcome)
	assert.Len(t, result.Edits, 1)
}

func TestRealPruner_Prune_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPruner(t, ctrl)

	m.fs.EXPECT().Exists(testDeclarationFile).Return(true, nil)
	m.scanner.EXPECT().Scan(testSourceDir).Return(symbols.NewSet("com.acme.widgets.Core"), symbols.Stats{}, nil)
	m.resolver.EXPECT().Resolve(testProjectDir).Return(widgetsGraph, nil)
	m.fs.EXPECT().Stat(testDeclarationFile).Return(fileInfo{mode: 0644}, nil)
	m.fs.EXPECT().ReadFile(testDeclarationFile).Return([]byte("implementation \"com.acme:widgets-lib:1.2.0\"\n"), nil)

	result, err := p.Prune(PruneOpts{ProjectDir: testProjectDir, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, OutcomeWouldChange, result.Outcome)
	assert.Len(t, result.Edits, 1)
}

func TestRealPruner_Prune_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPruner(t, ctrl)

	m.fs.EXPECT().Exists(testDeclarationFile).Return(true, nil)
	m.scanner.EXPECT().Scan(testSourceDir).Return(symbols.NewSet(), symbols.Stats{}, nil)
	m.resolver.EXPECT().Resolve(testProjectDir).Return(widgetsGraph, nil)
	m.fs.EXPECT().Stat(testDeclarationFile).Return(fileInfo{mode: 0644}, nil)
	m.fs.EXPECT().ReadFile(testDeclarationFile).Return([]byte("implementation \"com.acme:widgets-lib:1.2.0\"\n"), nil)
	m.fs.EXPECT().WriteFileAtomic(testDeclarationFile, gomock.Any(), os.FileMode(0644)).Return(errors.New("disk full"))

	_, err := p.Prune(PruneOpts{ProjectDir: testProjectDir})
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRealPruner_Prune_ResolverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPruner(t, ctrl)
	resolveErr := errors.New("gradle exploded")

	m.fs.EXPECT().Exists(testDeclarationFile).Return(true, nil)
	m.scanner.EXPECT().Scan(testSourceDir).Return(symbols.NewSet(), symbols.Stats{}, nil)
	m.resolver.EXPECT().Resolve(testProjectDir).Return(nil, resolveErr)

	_, err := p.Prune(PruneOpts{ProjectDir: testProjectDir})
	assert.ErrorIs(t, err, resolveErr)
}

func TestRealPruner_Prune_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConfig := configmocks.NewMockManager(ctrl)
	mockConfig.EXPECT().GetConfigWithFallback().Return(config.Config{}, config.ErrConfigFileParse)

	p, err := NewPruner(NewPrunerParams{
		Dependencies: dependencies.New().WithFS(fsmocks.NewMockFS(ctrl)).WithConfig(mockConfig),
	})
	require.NoError(t, err)

	_, err = p.Prune(PruneOpts{ProjectDir: testProjectDir})
	assert.ErrorIs(t, err, config.ErrConfigFileParse)
}

func TestRealPruner_Analyze_WarnsOnEmptySymbolSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPruner(t, ctrl)
	mockLogger := loggermocks.NewMockLogger(ctrl)
	p.SetLogger(mockLogger)

	mockLogger.EXPECT().Logf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf("No imports found under %s, every module will be reported unused", testSourceDir)

	m.scanner.EXPECT().Scan(testSourceDir).Return(symbols.NewSet(), symbols.Stats{}, nil)
	m.resolver.EXPECT().Resolve(testProjectDir).Return(widgetsGraph, nil)

	analysis, err := p.Analyze(AnalyzeOpts{ProjectDir: testProjectDir})
	require.NoError(t, err)
	assert.Equal(t, graph.UnusedModuleMap(widgetsGraph), analysis.Unused)
	assert.Equal(t, widgetsGraph, analysis.Dependencies)
	assert.Equal(t, testSourceDir, analysis.SourceDir)
}

func TestRealPruner_Analyze_ScanError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPruner(t, ctrl)
	scanErr := errors.New("permission denied")

	m.scanner.EXPECT().Scan(testSourceDir).Return(nil, symbols.Stats{}, scanErr)

	_, err := p.Analyze(AnalyzeOpts{ProjectDir: testProjectDir})
	assert.ErrorIs(t, err, scanErr)
}
