package cli

import (
	"github.com/brandonbloom/later/internal/config"
	"github.com/brandonbloom/later/internal/store"
	"github.com/brandonbloom/later/internal/version"
	"github.com/spf13/afero"
)

// environment holds everything later reads from the outside world. It is
// resolved once at startup so the commands stay agnostic of build mode and
// platform.
type environment struct {
	fs         afero.Fs
	configPath string
	dataHome   string
	release    bool
}

func defaultEnvironment() environment {
	return environment{
		fs:         afero.NewOsFs(),
		configPath: config.DefaultPath(),
		dataHome:   config.DefaultDataHome(),
		release:    version.Release(),
	}
}

func (e environment) loadConfig() (config.Config, error) {
	return config.Load(e.fs, e.configPath)
}

func (e environment) openStore(cfg config.Config) (*store.Store, error) {
	path, err := store.ResolvePath(cfg.DataDirOr(e.dataHome), e.release)
	if err != nil {
		return nil, err
	}
	return store.New(e.fs, path), nil
}
