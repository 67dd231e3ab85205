// internal/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultPath is where the feature-tool configuration snapshot is looked up
// when --config is not given.
const DefaultPath = "default_config.json"

// Config is the feature-tool configuration snapshot. The orchestrator loads
// it exactly once and hands it to every task by value; workers never touch
// the file themselves.
type Config struct {
	PDB2PQRBinary    string `json:"pdb2pqr_binary"`
	APBSBinary       string `json:"apbs_binary"`
	MultivalueBinary string `json:"multivalue_binary"`
	MSMSBinary       string `json:"msms_binary"`
	NumProcs         int    `json:"num_procs"`
}

// Load reads the JSON snapshot at path and applies ABFEAT_* environment
// overrides. When optional, a missing file yields the zero snapshot (the
// feature tools carry their own defaults); any other read or decode failure
// is an error either way.
func Load(path string, optional bool) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
		// zero snapshot
	default:
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	c.PDB2PQRBinary = envOr("ABFEAT_PDB2PQR", c.PDB2PQRBinary)
	c.APBSBinary = envOr("ABFEAT_APBS", c.APBSBinary)
	c.MultivalueBinary = envOr("ABFEAT_MULTIVALUE", c.MultivalueBinary)
	c.MSMSBinary = envOr("ABFEAT_MSMS", c.MSMSBinary)
	return c, nil
}

// Env renders the snapshot as environment entries for the feature tools.
func (c Config) Env() []string {
	var env []string
	add := func(key, val string) {
		if val != "" {
			env = append(env, key+"="+val)
		}
	}
	add("PDB2PQR_BIN", c.PDB2PQRBinary)
	add("APBS_BIN", c.APBSBinary)
	add("MULTIVALUE_BIN", c.MultivalueBinary)
	add("MSMS_BIN", c.MSMSBinary)
	if c.NumProcs > 0 {
		env = append(env, fmt.Sprintf("FEATURE_NUM_PROCS=%d", c.NumProcs))
	}
	return env
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
