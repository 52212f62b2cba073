package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Duration accepts "1s"-style strings or bare numbers (interpreted as
// seconds) in YAML, so config files stay readable.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return nil
	}
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("unsupported duration node: kind=%d value=%q", value.Kind, value.Value)
	}

	s := strings.TrimSpace(value.Value)
	switch value.Tag {
	case "!!str":
		if s == "" {
			d.Duration = 0
			return nil
		}
		dd, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "invalid duration %q", s)
		}
		d.Duration = dd
		return nil
	case "!!int":
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid duration seconds %q", s)
		}
		d.Duration = time.Duration(secs) * time.Second
		return nil
	case "!!float":
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid duration seconds %q", s)
		}
		d.Duration = time.Duration(f * float64(time.Second))
		return nil
	}
	return errors.Errorf("unsupported duration value %q", value.Value)
}

func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}
