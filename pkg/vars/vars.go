// Package vars builds the flat template variable mapping from a theme's
// colors.toml.
package vars

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrParse marks a colors document that is not valid TOML.
var ErrParse = errors.New("malformed colors document")

// FromFile reads and builds the variable mapping for a colors.toml file.
// Read failures are returned as-is; decode failures wrap ErrParse.
func FromFile(path string) (map[string]string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc map[string]interface{}
	if err := toml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	return Build(doc), nil
}

// Build flattens a decoded document into underscore-joined string keys and
// adds derived color keys. Pure: identical input always yields an identical
// mapping.
func Build(doc map[string]interface{}) map[string]string {
	vars := make(map[string]string)
	flatten("", doc, vars)

	derived := make(map[string]string)
	for k, v := range vars {
		if strings.HasPrefix(v, "#") {
			deriveColorKeys(k, v, derived)
		}
	}
	for k, v := range derived {
		vars[k] = v
	}
	return vars
}

// flatten walks nested tables producing `prefix_key = string` pairs.
// Arrays and datetimes are not used in color files and are skipped.
func flatten(prefix string, value interface{}, out map[string]string) {
	switch v := value.(type) {
	case map[string]interface{}:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "_" + k
			}
			flatten(key, child, out)
		}
	case string:
		out[prefix] = v
	case int64:
		out[prefix] = strconv.FormatInt(v, 10)
	case float64:
		out[prefix] = strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		out[prefix] = strconv.FormatBool(v)
	}
}

// deriveColorKeys adds `<key>_strip` and, when the payload decodes as three
// byte pairs, `<key>_rgb` for a `#`-prefixed value.
func deriveColorKeys(key, hex string, out map[string]string) {
	bare := strings.TrimPrefix(hex, "#")
	out[key+"_strip"] = bare
	if rgb, ok := hexToRGB(bare); ok {
		out[key+"_rgb"] = rgb
	}
}

// hexToRGB converts a bare 6-digit hex string to decimal "r,g,b".
func hexToRGB(hex string) (string, bool) {
	if len(hex) != 6 {
		return "", false
	}
	var rgb [3]uint64
	for i := range rgb {
		n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return "", false
		}
		rgb[i] = n
	}
	return fmt.Sprintf("%d,%d,%d", rgb[0], rgb[1], rgb[2]), true
}
