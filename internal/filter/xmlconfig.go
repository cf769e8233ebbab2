package filter

import (
	"encoding/xml"
	"os"

	gerrors "github.com/cppwinrt-go/cppwinrt/internal/errors"
)

// xmlConfiguration mirrors the <configuration><include>/<exclude><prefix>
// shape from specification §6. Unmarshaled directly by encoding/xml — no
// ecosystem XML library appears anywhere in the retrieved example corpus,
// so there is no convention to follow here beyond the standard library
// (see DESIGN.md).
type xmlConfiguration struct {
	XMLName xml.Name
	Include xmlPrefixSet `xml:"include"`
	Exclude xmlPrefixSet `xml:"exclude"`
}

type xmlPrefixSet struct {
	Prefixes []string `xml:"prefix"`
}

// LoadXMLConfig parses the -config file at path and returns its include and
// exclude prefix lists. A missing <configuration> root or a non-ASCII
// prefix value is a Config error (specification §7).
func LoadXMLConfig(path string) (includes, excludes []string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, gerrors.Wrap(gerrors.Config, "failed to read config file "+path, err)
	}

	var cfg xmlConfiguration
	if err := xml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, gerrors.Wrap(gerrors.Config, "failed to parse config file "+path, err)
	}
	if cfg.XMLName.Local != "configuration" {
		return nil, nil, gerrors.ConfigErrorf("config file %s is missing its <configuration> root element", path)
	}

	for _, p := range cfg.Include.Prefixes {
		if !isASCII(p) {
			return nil, nil, gerrors.ConfigErrorf("include prefix %q in %s is not ASCII", p, path)
		}
	}
	for _, p := range cfg.Exclude.Prefixes {
		if !isASCII(p) {
			return nil, nil, gerrors.ConfigErrorf("exclude prefix %q in %s is not ASCII", p, path)
		}
	}

	return cfg.Include.Prefixes, cfg.Exclude.Prefixes, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
