package trigger

import (
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// compileUnsupported implements the Cloud/CloudService/Network/Switch/
// Resource/Panic families, all of which spec.md §4.3 specifies must fail
// with Unsupported.
func compileUnsupported(family string) (*Compiled, error) {
	return nil, xerrors.New(xerrors.Unsupported, "trigger family %q is not supported", family)
}
