package oas

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/declspec/oaserrors"
)

// Version is a parsed OpenAPI specification version.
//
// Documents are produced for exactly one version; the converter consults
// Major and Minor to pick version-conditional keywords. The original string
// is preserved so that "3.0.2" round-trips into the document verbatim.
type Version struct {
	Major int
	Minor int
	Patch int

	text string
}

// ParseVersion parses strings of the form "2.x" or "3.x.x" into a Version.
// Versions outside [2.0, 4.0) are rejected with oaserrors.ErrInvalidVersion.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, &oaserrors.VersionError{Value: s, Message: "expected 2.x or 3.x.x"}
	}

	segs := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > math.MaxInt32 {
			return Version{}, &oaserrors.VersionError{Value: s, Message: fmt.Sprintf("invalid segment %q", part)}
		}
		segs[i] = n
	}

	v := Version{Major: segs[0], Minor: segs[1], Patch: segs[2], text: s}
	if v.Major < 2 || v.Major > 3 {
		return Version{}, &oaserrors.VersionError{Value: s, Message: "only 2.x and 3.x.x are supported"}
	}
	return v, nil
}

// MustParseVersion is like ParseVersion but panics on invalid input.
// Intended for package-level defaults and tests.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version exactly as it was parsed.
func (v Version) String() string {
	if v.text != "" {
		return v.text
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsZero reports whether v is the zero Version.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Before reports whether v is older than major.minor.
func (v Version) Before(major, minor int) bool {
	if v.Major != major {
		return v.Major < major
	}
	return v.Minor < minor
}

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor int) bool {
	return !v.Before(major, minor)
}

// ComponentKind identifies a kind of reusable component.
type ComponentKind string

// Component kinds understood by the subsection tables.
const (
	KindSchema         ComponentKind = "schema"
	KindResponse       ComponentKind = "response"
	KindParameter      ComponentKind = "parameter"
	KindHeader         ComponentKind = "header"
	KindExample        ComponentKind = "example"
	KindSecurityScheme ComponentKind = "security_scheme"
)

// componentSubsections maps component kinds to the document section that
// stores them, per major version. OAS 2.0 stores components in top-level
// fields; OAS 3.x nests them under "components".
var componentSubsections = map[int]map[ComponentKind]string{
	2: {
		KindSchema:         "definitions",
		KindResponse:       "responses",
		KindParameter:      "parameters",
		KindSecurityScheme: "securityDefinitions",
	},
	3: {
		KindSchema:         "schemas",
		KindResponse:       "responses",
		KindParameter:      "parameters",
		KindHeader:         "headers",
		KindExample:        "examples",
		KindSecurityScheme: "securitySchemes",
	},
}

// SubsectionName returns the document section name that stores components of
// the given kind for this version. ok is false when the version has no such
// section (e.g. examples in OAS 2.0).
func (v Version) SubsectionName(kind ComponentKind) (string, bool) {
	name, ok := componentSubsections[v.Major][kind]
	return name, ok
}

// RefPrefix returns the schema reference prefix for this version:
// "#/definitions/" for OAS 2.0 and "#/components/schemas/" for OAS 3.x.
func (v Version) RefPrefix() string {
	return v.Ref(KindSchema, "")
}

// Ref builds a reference string to a named component of the given kind.
// OAS 2.0 refs look like "#/definitions/Pet"; OAS 3.x refs look like
// "#/components/schemas/Pet".
func (v Version) Ref(kind ComponentKind, name string) string {
	section, ok := v.SubsectionName(kind)
	if !ok {
		section = string(kind) + "s"
	}
	if v.Major >= 3 {
		return "#/components/" + section + "/" + name
	}
	return "#/" + section + "/" + name
}

var (
	validMethodsV2 = []string{"get", "post", "put", "patch", "delete", "head", "options"}
	validMethodsV3 = append(append([]string{}, validMethodsV2...), "trace")
)

// ValidMethods returns the HTTP methods allowed in path items for this
// version. OAS 3.x adds trace.
func (v Version) ValidMethods() []string {
	if v.Major >= 3 {
		return validMethodsV3
	}
	return validMethodsV2
}
