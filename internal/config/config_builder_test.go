package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
	assert.Nil(t, b.defaults)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterLayersWin(t *testing.T) {
	b := newConfigBuilder()
	b.layers = []*StructuredConfig{
		{Storage: Storage{DB: DB{DSN: "file.db"}}, App: App{LogFile: "file.log"}},
		{Storage: Storage{DB: DB{DSN: "env.db"}}},
		{Storage: Storage{DB: DB{DSN: "flags.db"}}},
	}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	// fields not set by higher layers survive
	assert.Equal(t, "file.log", cfg.App.LogFile)
}

func TestBuild_DefaultsOnlyFillEmptyFields(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.layers = []*StructuredConfig{
		{App: App{CommitPolicy: CommitPolicyBestEffort}},
	}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, CommitPolicyBestEffort, cfg.App.CommitPolicy)
	assert.Equal(t, DeleteBestEffort, cfg.App.DeleteStrictness)
	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, int64(10<<20), cfg.Storage.Attachments.MaxSize)
	assert.Equal(t, 10*time.Minute, cfg.Workers.CleanupInterval)
}

func TestBuild_RejectsUnknownPolicy(t *testing.T) {
	b := newConfigBuilder()
	b.layers = []*StructuredConfig{{App: App{CommitPolicy: "sometimes"}}}

	cfg, err := b.build()
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.NotNil(t, cfg)
}

// ── withFlags / withFile ──────────────────────────────────────────────────────

func TestWithFlags_BadFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.layers)
}

func TestWithFile_LoadsBelowOtherLayers(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{"storage":{"db":{"dsn":"file.db"}},"app":{"log_file":"file.log"}}`)

	b := newConfigBuilder().withFlags([]string{"-config", p, "-d", "flags.db"}).withFile()
	require.NoError(t, b.err)
	require.Len(t, b.layers, 2)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "file.log", cfg.App.LogFile)
}

func TestWithFile_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-c", "/definitely/missing.json"}).withFile()
	assert.Error(t, b.err)
}

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withFlags(nil).withFile()
	require.NoError(t, b.err)
	assert.Len(t, b.layers, 1)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", "env.db")
	t.Setenv("APP_COMMIT_POLICY", "best_effort")

	cfg, err := GetClientConfig([]string{"-d", "flags.db"})
	require.NoError(t, err)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, CommitPolicyBestEffort, cfg.App.CommitPolicy)
	assert.Equal(t, DeleteBestEffort, cfg.App.DeleteStrictness)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, CommitPolicyReport, cfg.App.CommitPolicy)
	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
}

func TestGetClientConfig_RejectsInMemoryDSN(t *testing.T) {
	_, err := GetClientConfig([]string{"-d", ":memory:"})
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
