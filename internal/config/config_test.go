package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	return tmp
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, FileModeDir))
	p := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), FileModeFile))
	return p
}

func TestLoadDefaults(t *testing.T) {
	tmp := setupEnv(t)
	Load()

	assert.Equal(t, "default", Get("missing", "default"))
	assert.Equal(t, filepath.Join(tmp, "config", "showcase"), Get("config_dir", ""))
	assert.Equal(t, filepath.Join(tmp, "state", "showcase"), Get("state_dir", ""))
	assert.Equal(t, "", Get("content_dir", "x"))
	assert.True(t, GetBool("autoplay_enabled", false))
	assert.False(t, GetBool("watch_content", true))
	assert.Equal(t, 2, GetInt("max_visible_distance", 0))
	assert.Equal(t, 10*time.Second, GetDuration("resume_delay", 0))
	assert.Equal(t, 5*time.Second, GetDuration("projects_autoplay_interval", 0))
	assert.Equal(t, 4*time.Second, GetDuration("gallery_autoplay_interval", 0))
	assert.Equal(t, "active-only", Get("projects_click_policy", ""))
	assert.Equal(t, "recenter", Get("gallery_click_policy", ""))
}

func TestLoadWritesCommentedSample(t *testing.T) {
	tmp := setupEnv(t)
	Load()

	data, err := os.ReadFile(filepath.Join(tmp, "config", "showcase", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# showcase configuration")
	assert.Contains(t, string(data), "# resume_delay = ")
	assert.NotContains(t, string(data), "state_dir")

	// The sample is fully commented out so loading it again changes nothing.
	Load()
	assert.Equal(t, 10*time.Second, GetDuration("resume_delay", 0))
}

func TestFileOverridesDefaultsAndEnvWins(t *testing.T) {
	tmp := setupEnv(t)
	writeConfig(t, filepath.Join(tmp, "config", "showcase"), `
resume_delay = "3s"
max_visible_distance = 3
gallery_click_policy = "ACTIVE-ONLY"
watch_content = true
content_dir = "/srv/content"
`)
	t.Setenv("SHOWCASE_MAX_VISIBLE_DISTANCE", "4")
	Load()

	assert.Equal(t, 3*time.Second, GetDuration("resume_delay", 0))
	assert.Equal(t, 4, GetInt("max_visible_distance", 0))
	assert.Equal(t, "active-only", Get("gallery_click_policy", ""))
	assert.True(t, GetBool("watch_content", false))
	assert.Equal(t, "/srv/content", Get("content_dir", ""))
}

func TestExplicitConfigPath(t *testing.T) {
	tmp := setupEnv(t)
	p := writeConfig(t, filepath.Join(tmp, "elsewhere"), `projects_autoplay_interval = "7s"`)
	t.Setenv(EnvConfigPath, p)
	Load()

	assert.Equal(t, 7*time.Second, GetDuration("projects_autoplay_interval", 0))
	assert.NotContains(t, Keys(), "config_path")
	_, err := os.Stat(filepath.Join(tmp, "config", "showcase", "config.toml"))
	assert.True(t, os.IsNotExist(err), "no sample when an explicit path is given")
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	setupEnv(t)
	t.Setenv("SHOWCASE_RESUME_DELAY", "soon")
	t.Setenv("SHOWCASE_GALLERY_AUTOPLAY_INTERVAL", "-1s")
	t.Setenv("SHOWCASE_MAX_VISIBLE_DISTANCE", "0")
	t.Setenv("SHOWCASE_PROJECTS_CLICK_POLICY", "sideways")
	t.Setenv("SHOWCASE_AUTOPLAY_ENABLED", "maybe")
	t.Setenv("SHOWCASE_DEBUG", "yes")
	Load()

	assert.Equal(t, "10s", Get("resume_delay", ""))
	assert.Equal(t, "4s", Get("gallery_autoplay_interval", ""))
	assert.Equal(t, "2", Get("max_visible_distance", ""))
	assert.Equal(t, "active-only", Get("projects_click_policy", ""))
	assert.Equal(t, "true", Get("autoplay_enabled", ""))
	assert.Equal(t, "true", Get("debug", ""))
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		rule    Validator
		in      string
		want    string
		wantErr bool
	}{
		{name: "duration normalised", rule: DurationAtLeast(time.Second), in: "90s", want: "1m30s"},
		{name: "duration below minimum", rule: DurationAtLeast(minAutoPlayInterval), in: "100ms", wantErr: true},
		{name: "duration garbage", rule: DurationAtLeast(time.Second), in: "soon", wantErr: true},
		{name: "int in range", rule: IntRange(1, 8), in: " 3 ", want: "3"},
		{name: "int above range", rule: IntRange(1, 8), in: "12", wantErr: true},
		{name: "int garbage", rule: IntRange(1, 8), in: "two", wantErr: true},
		{name: "bool spelling", rule: Bool(), in: "OFF", want: "false"},
		{name: "bool garbage", rule: Bool(), in: "maybe", wantErr: true},
		{name: "enum case folded", rule: OneOf(clickPolicies...), in: "Recenter", want: "recenter"},
		{name: "enum unknown", rule: OneOf(clickPolicies...), in: "sideways", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rule(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEveryRuleAcceptsItsDefault(t *testing.T) {
	setupEnv(t)
	Load()
	for key, rule := range rules {
		def, ok := configMap[key]
		require.True(t, ok, "rule for unknown key %s", key)
		_, err := rule(def)
		assert.NoError(t, err, key)
	}
}

func TestGettersFallBackOnBadValues(t *testing.T) {
	setupEnv(t)
	t.Setenv("SHOWCASE_CUSTOM", "abc")
	Load()

	assert.Equal(t, 9, GetInt("custom", 9))
	assert.True(t, GetBool("custom", true))
	assert.Equal(t, time.Minute, GetDuration("custom", time.Minute))
	assert.Equal(t, time.Minute, GetDuration("absent", time.Minute))
}
