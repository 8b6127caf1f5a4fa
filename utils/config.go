package utils

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/alpacahq/logroller/filespec"
	"github.com/alpacahq/logroller/utils/log"
)

type RollerConfig struct {
	// Directory holds the active log file and its archives.
	Directory    string
	Basename     string
	Discriminant string
	Timestamp    string
	Suffix       string
	// KeepArchives is the number of archives left after pruning. 0 keeps all.
	KeepArchives int
	// MetricsTextfile, when set, receives the prometheus metrics after each command.
	MetricsTextfile string
	LogLevel        log.Level
}

// FileSpec returns the naming specification described by the config.
func (c *RollerConfig) FileSpec() filespec.FileSpec {
	return filespec.FileSpec{
		Directory:    c.Directory,
		Basename:     c.Basename,
		Discriminant: c.Discriminant,
		Timestamp:    c.Timestamp,
		Suffix:       c.Suffix,
	}
}

// LoadConfig reads and parses the YAML configuration file at path.
func LoadConfig(path string) (*RollerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read configuration file %s", path)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*RollerConfig, error) {
	var aux struct {
		Directory       string `yaml:"directory"`
		Basename        string `yaml:"basename"`
		Discriminant    string `yaml:"discriminant"`
		Timestamp       string `yaml:"timestamp"`
		Suffix          string `yaml:"suffix"`
		KeepArchives    int    `yaml:"keep_archives"`
		MetricsTextfile string `yaml:"metrics_textfile"`
		LogLevel        string `yaml:"log_level"`
	}

	if err := yaml.Unmarshal(data, &aux); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	if aux.Directory == "" {
		return nil, errors.New("invalid directory")
	}

	if aux.KeepArchives < 0 {
		return nil, errors.Errorf("invalid keep_archives: %d", aux.KeepArchives)
	}

	// the name components are joined with "_" and the infix follows "_r"
	for name, v := range map[string]string{
		"basename": aux.Basename, "discriminant": aux.Discriminant, "timestamp": aux.Timestamp,
	} {
		if strings.ContainsAny(v, `/\`) {
			return nil, errors.Errorf("invalid %s: %q must not contain a path separator", name, v)
		}
	}

	suffix := strings.TrimPrefix(aux.Suffix, ".")
	if suffix == "" {
		suffix = filespec.DefaultSuffix
	}

	level := log.ParseLevel(aux.LogLevel)
	log.SetLevel(level)

	return &RollerConfig{
		Directory:       aux.Directory,
		Basename:        aux.Basename,
		Discriminant:    aux.Discriminant,
		Timestamp:       aux.Timestamp,
		Suffix:          suffix,
		KeepArchives:    aux.KeepArchives,
		MetricsTextfile: aux.MetricsTextfile,
		LogLevel:        level,
	}, nil
}
