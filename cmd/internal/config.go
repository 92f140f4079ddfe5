package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron"
	"github.com/BurntSushi/toml"
)

// Config defines the command's configuration.
type Config struct {
	MaxLearningLoops int  `json:"maxLearningLoops" toml:"maxLearningLoops"`
	Workers          int  `json:"workers" toml:"workers"`
	Search           bool `json:"search" toml:"search"` // Use the mask search
	Log              bool `json:"log" toml:"log"`
}

// Engine returns a new perceptron engine for the configuration.
func (c *Config) Engine() *perceptron.Engine {
	return &perceptron.Engine{
		MaxLearningLoops: c.MaxLearningLoops,
		Workers:          c.Workers,
	}
}

// UpdateInConfig updates the value in dest with val if the according
// value is not the zero-type for the underlying type.  Dest must be a
// pointer type to either string, int, float64 or bool.  Otherwise the
// function panics.
func UpdateInConfig(dest, val interface{}) {
	switch dest.(type) {
	case *string:
		v := val.(string)
		if v != "" {
			(*dest.(*string)) = v
		}
	case *int:
		v := val.(int)
		if v != 0 {
			(*dest.(*int)) = v
		}
	case *float64:
		v := val.(float64)
		if v != 0 {
			(*dest.(*float64)) = v
		}
	case *bool:
		v := val.(bool)
		if v {
			(*dest.(*bool)) = v
		}
	default:
		panic("bad type")
	}
}

// ReadConfig reads the config from a json or toml file.  If the name
// is empty, the default configuration is returned.  If name has the
// prefix '{' and the suffix '}' the name is interpreted as a json
// string and parsed accordingly.
func ReadConfig(name string) (*Config, error) {
	config := Config{MaxLearningLoops: perceptron.DefaultMaxLearningLoops}
	if name == "" {
		return &config, nil
	}
	if strings.HasPrefix(name, "{") && strings.HasSuffix(name, "}") {
		r := strings.NewReader(name)
		if err := json.NewDecoder(r).Decode(&config); err != nil {
			return nil, fmt.Errorf("readConfig %s: %v", name, err)
		}
		return &config, nil
	}
	is, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", name, err)
	}
	defer is.Close()
	if strings.HasSuffix(name, ".toml") {
		if _, err := toml.DecodeReader(is, &config); err != nil {
			return nil, fmt.Errorf("readConfig %s: %v", name, err)
		}
		return &config, nil
	}
	if err := json.NewDecoder(is).Decode(&config); err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", name, err)
	}
	return &config, nil
}
