package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	assets "github.com/cristianoliveira/showcase"
	"github.com/cristianoliveira/showcase/cmd"
	"github.com/cristianoliveira/showcase/internal/carousel"
	"github.com/cristianoliveira/showcase/internal/colors"
	"github.com/cristianoliveira/showcase/internal/config"
	"github.com/cristianoliveira/showcase/internal/content"
	"github.com/cristianoliveira/showcase/internal/logging"
)

// catalogSource loads the catalog the commands work on.
type catalogSource interface {
	// ContentDir is the directory content is read from, or "" for the
	// content embedded in the binary.
	ContentDir() string
	Load() (*content.Catalog, error)
}

// configSource reads content_dir from the configuration.
type configSource struct{}

func (configSource) ContentDir() string {
	return config.Get("content_dir", "")
}

func (s configSource) Load() (*content.Catalog, error) {
	if dir := s.ContentDir(); dir != "" {
		return content.LoadDir(dir)
	}
	return content.Load(assets.Content())
}

var defaultSource catalogSource = configSource{}

// setup loads configuration and starts the file logger before any command runs.
func setup(c *cobra.Command, args []string) error {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	logging.Info("command started", "command", c.Name(), "args", args)
	return nil
}

// carouselConfig builds the settings of the named carousel ("projects" or
// "gallery") from the configuration.
func carouselConfig(name, defaultPolicy string, defaultInterval time.Duration) (carousel.Config, error) {
	cfg := carousel.DefaultConfig()
	cfg.AutoPlayEnabled = config.GetBool("autoplay_enabled", true)
	cfg.ResumeDelay = config.GetDuration("resume_delay", carousel.DefaultResumeDelay)
	cfg.AutoPlayInterval = config.GetDuration(name+"_autoplay_interval", defaultInterval)
	cfg.Visual.MaxVisibleDistance = config.GetInt("max_visible_distance", cfg.Visual.MaxVisibleDistance)

	policy, err := carousel.ParseClickPolicy(config.Get(name+"_click_policy", defaultPolicy))
	if err != nil {
		return carousel.Config{}, fmt.Errorf("%s carousel: %w", name, err)
	}
	cfg.Visual.ClickPolicy = policy
	return cfg, nil
}

func init() {
	cmd.RootCmd.PersistentPreRunE = setup
}
