package profile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

const offLevel = "off"

// Profile is one entry of the profile file:
//
//	production:
//	  default-level: warn
//	  sink: zap
//	scripting:
//	  default-level: off
type Profile struct {
	DefaultLevel string `yaml:"default-level"`
	Sink         string `yaml:"sink"`
}

func Load(profileFile, profileName string) (*Profile, error) {
	if profileFile != "" && profileName == "" {
		return nil, fmt.Errorf("specified --config-file, but unspecified --profile")
	}

	if profileFile == "" && profileName != "" {
		return nil, fmt.Errorf("specified --profile, but unspecified --config-file")
	}

	if profileFile == "" && profileName == "" {
		return &Profile{}, nil
	}

	fileContent, err := os.ReadFile(profileFile)
	if err != nil {
		return nil, err
	}

	data := make(map[string]Profile)
	err = yaml.UnmarshalStrict(fileContent, &data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", profileFile, err)
	}

	p, ok := data[profileName]
	if !ok {
		return nil, fmt.Errorf("profile %s not found in your profile file", profileName)
	}

	if _, err := p.Config(verbosity.ErrorDefault()); err != nil {
		return nil, fmt.Errorf("profile %s: %w", profileName, err)
	}

	return &p, nil
}

// Config returns the baseline named by the profile, or fallback when the
// profile does not set one.
func (p *Profile) Config(fallback verbosity.Config) (verbosity.Config, error) {
	switch strings.ToLower(strings.TrimSpace(p.DefaultLevel)) {
	case "":
		return fallback, nil
	case offLevel:
		return verbosity.SilentConfig(), nil
	}

	l, err := verbosity.ParseLevel(p.DefaultLevel)
	if err != nil {
		return fallback, err
	}
	return verbosity.NewConfig(l), nil
}

// SinkOr returns the sink named by the profile, or fallback when it is unset.
func (p *Profile) SinkOr(fallback string) string {
	if p.Sink == "" {
		return fallback
	}
	return p.Sink
}
