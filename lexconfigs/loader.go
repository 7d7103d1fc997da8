package lexconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/gufeijun/myrpcc/configs"
	"github.com/gufeijun/myrpcc/logs"
)

//go:embed schema.cue
var schema string

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Debug("config file",
				"paths", paths,
			)
		}
	}()

	// explicit
	if *configFlag != "" {
		paths = append(paths, *configFlag)
		return configs.NewLoader(paths, schema)
	}

	filenames := []string{
		"myrpcc.cue",
		".myrpcc.cue",
	}
	var dirs []string

	// working directory
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
