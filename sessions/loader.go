package sessions

import (
	_ "embed"
	"os"
	"path/filepath"
	"slices"

	"github.com/reusee/taicalc/cmds"
	"github.com/reusee/taicalc/configs"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/modes"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config")

var configFilenames = []string{
	"taicalc.cue",
	".taicalc.cue",
}

// ConfigsLoader reads files given by -config, then the ones found in the
// working directory, the user config directory and /etc. Earlier files win.
func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	paths := slices.Clone(*configFiles)
	if !mode.Isolated() {
		paths = append(paths, findFiles(configFilenames, searchDirs())...)
	}
	if len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}
	return configs.NewLoader(paths, schema)
}

// searchDirs returns the directories holding config and prelude files, most specific first.
func searchDirs() (dirs []string) {
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	return
}

func findFiles(names []string, dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
