package di

import (
	"os"
	"path/filepath"

	"github.com/alpacahq/logroller/filespec"
	"github.com/alpacahq/logroller/rotation"
	"github.com/alpacahq/logroller/utils"
	"github.com/alpacahq/logroller/utils/log"
)

type Container struct {
	rollerConfig *utils.RollerConfig
	absDir       string
	finder       *rotation.Finder
	allocator    *rotation.Allocator
	pruner       *rotation.Pruner
}

func NewContainer(cfg *utils.RollerConfig) *Container {
	return &Container{rollerConfig: cfg}
}

func (c *Container) GetConfig() *utils.RollerConfig {
	return c.rollerConfig
}

// GetAbsDir returns the absolute path of the log directory.
// e.g. absDir = "/var/log/app"
func (c *Container) GetAbsDir() string {
	if c.absDir != "" {
		return c.absDir
	}
	dir, err := filepath.Abs(filepath.Clean(c.rollerConfig.Directory))
	if err != nil {
		log.Error("Cannot take absolute path of log directory %s", err.Error())
		dir = filepath.Clean(c.rollerConfig.Directory)
	} else {
		log.Debug("Log Directory: %s", dir)
	}
	c.absDir = dir
	return c.absDir
}

func (c *Container) GetFileSpec() filespec.FileSpec {
	spec := c.rollerConfig.FileSpec()
	spec.Directory = c.GetAbsDir()
	return spec
}

func (c *Container) GetFinder() *rotation.Finder {
	if c.finder != nil {
		return c.finder
	}
	c.finder = rotation.NewFinder(os.ReadDir)
	return c.finder
}

func (c *Container) GetAllocator() *rotation.Allocator {
	if c.allocator != nil {
		return c.allocator
	}
	c.allocator = rotation.NewAllocator(c.GetFileSpec(), c.GetFinder())
	return c.allocator
}

func (c *Container) GetPruner() *rotation.Pruner {
	if c.pruner != nil {
		return c.pruner
	}
	c.pruner = rotation.NewPruner(c.GetFileSpec(), c.GetFinder())
	return c.pruner
}
