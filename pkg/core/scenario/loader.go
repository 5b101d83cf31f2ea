package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"
)

// Load reads a scenario file, dispatching on extension. YAML and HJSON are
// first-class; plain JSON gets a repair pass when it does not parse cleanly,
// since scenario files are typically hand-edited (trailing commas, single
// quotes, unquoted keys).
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var sc Scenario

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("scenario: parse yaml %s: %w", path, err)
		}
	case ".hjson":
		if err := hjson.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("scenario: parse hjson %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &sc); err != nil {
			repaired, rerr := jsonrepair.RepairJSON(string(data))
			if rerr != nil {
				return nil, fmt.Errorf("scenario: parse json %s: %w", path, err)
			}
			if err := json.Unmarshal([]byte(repaired), &sc); err != nil {
				return nil, fmt.Errorf("scenario: parse repaired json %s: %w", path, err)
			}
		}
	default:
		return nil, fmt.Errorf("scenario: unsupported file type %q", filepath.Ext(path))
	}

	return &sc, nil
}
