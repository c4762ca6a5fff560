package deviceid

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// CatalogEntry overrides the default dot-split resolution for one raw
// device id.
type CatalogEntry struct {
	DeviceID   string `yaml:"deviceId"`
	EndpointID string `yaml:"endpointId"`
}

// CatalogMapper layers a YAML-loaded override catalog in front of
// DefaultMapper: entries keyed by the raw id win; everything else falls
// through to the dot-split rule. This is the persistence-of-a-device-
// catalog collaborator spec.md names as an external, out-of-scope system —
// here given a concrete, swappable home behind the Mapper interface.
type CatalogMapper struct {
	overrides map[string]CatalogEntry
	fallback  Mapper
}

// LoadCatalogMapper reads a YAML file mapping raw device ids to
// CatalogEntry overrides and wraps DefaultMapper as the fallback.
func LoadCatalogMapper(path string) (*CatalogMapper, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.Invalid, err, "deviceid: failed to read catalog %q", path)
	}
	var raw map[string]CatalogEntry
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, xerrors.Wrap(xerrors.Invalid, err, "deviceid: failed to parse catalog %q", path)
	}
	return &CatalogMapper{overrides: raw, fallback: DefaultMapper{}}, nil
}

func (m *CatalogMapper) Map(deviceID string) (string, string, bool) {
	if entry, ok := m.overrides[deviceID]; ok {
		return entry.DeviceID, entry.EndpointID, true
	}
	return m.fallback.Map(deviceID)
}
