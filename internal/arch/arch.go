// Package arch knows which architectures the Debian mirror publishes a
// Contents index for, including the udeb pseudo-architectures and "source".
package arch

import (
	"errors"
	"sort"
)

// ErrUnsupported marks an architecture the mirror has no Contents index for.
var ErrUnsupported = errors.New("unsupported architecture")

var names = []string{
	"all",
	"amd64",
	"arm64",
	"armel",
	"armhf",
	"i386",
	"mips64el",
	"mipsel",
	"ppc64el",
	"s390x",
	"source",
	"udeb-all",
	"udeb-amd64",
	"udeb-arm64",
	"udeb-armel",
	"udeb-armhf",
	"udeb-i386",
	"udeb-mips64el",
	"udeb-mipsel",
	"udeb-ppc64el",
	"udeb-s390x",
}

var supported = func() map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}()

// IsSupported reports whether name is a known architecture.
func IsSupported(name string) bool {
	_, ok := supported[name]
	return ok
}

// List returns every supported architecture in sorted order.
func List() []string {
	list := make([]string, len(names))
	copy(list, names)
	sort.Strings(list)
	return list
}
