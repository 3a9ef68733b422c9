package gprn

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Prefix is the first segment of every GPRN.
const Prefix = "gprn"

// EnvProduction is the environment name an empty environment segment
// stands for.
const EnvProduction = "prd"

// numSegments is the number of colon-delimited fields after the prefix.
const numSegments = 5

// Sentinel errors returned by this package. Callers match them with
// errors.Is.
var (
	// ErrInvalidPrefix reports a string that does not start with the
	// "gprn" segment.
	ErrInvalidPrefix = errors.New("invalid gprn prefix")

	// ErrMalformedID reports a structural violation: too few segments or
	// an empty required segment.
	ErrMalformedID = errors.New("malformed gprn")

	// ErrIncompleteResource reports a GPRN carrying a type-id without a
	// resource-id, or the reverse. The two are present or absent
	// together.
	ErrIncompleteResource = errors.New("incomplete resource reference")

	// ErrInvalidID reports a GPRN whose field values cannot be
	// serialized without producing a string that re-parses differently.
	ErrInvalidID = errors.New("invalid gprn")

	// ErrUnsupportedTypeID reports a type-id outside the platform
	// catalog. Only Validate rejects these; Parse accepts any type-id.
	ErrUnsupportedTypeID = errors.New("unsupported type-id")
)

// GPRN is a Genomics Platform Resource Name.
//
// The five segments are opaque tokens:
//   - Environment: platform environment; empty means production
//   - Service: owning service (required)
//   - Placeholder: reserved segment, kept for positional compatibility
//   - TypeID: resource type selecting the resource-id grammar
//   - ResourceID: resource identifier; the only segment that may itself
//     contain ":" (it can embed an ArtifactDB ID or another GPRN)
//
// GPRNs are immutable once created.
type GPRN struct {
	environment string
	service     string
	placeholder string
	typeID      TypeID
	resourceID  string
}

// Option configures a GPRN under construction.
type Option func(*GPRN)

// WithPlaceholder sets the reserved placeholder segment.
func WithPlaceholder(p string) Option {
	return func(g *GPRN) { g.placeholder = p }
}

// WithResource sets the type-id and resource-id segments together. The
// pairing invariant means they cannot be set independently.
func WithResource(typeID TypeID, resourceID string) Option {
	return func(g *GPRN) {
		g.typeID = typeID
		g.resourceID = resourceID
	}
}

// New creates a GPRN for a service. Returns ErrInvalidID when the
// resulting GPRN could not be formatted back into an unambiguous string.
// An empty environment means production.
func New(environment, service string, opts ...Option) (GPRN, error) {
	g := GPRN{environment: environment, service: service}
	for _, opt := range opts {
		opt(&g)
	}
	if err := g.validate(); err != nil {
		return GPRN{}, err
	}
	return g, nil
}

// MustNew is New for test fixtures and constants known to be valid.
// It panics on error.
func MustNew(environment, service string, opts ...Option) GPRN {
	g, err := New(environment, service, opts...)
	if err != nil {
		panic(fmt.Sprintf("invalid GPRN (%s, %s): %v", environment, service, err))
	}
	return g
}

// Parse parses a GPRN string.
//
// The prefix and the environment and service positions are required;
// trailing segments may be omitted and parse as empty strings, so
// "gprn::myapi" and "gprn::myapi:::" are the same GPRN. The resource-id
// is everything after the type-id segment's colon and may contain ":".
func Parse(s string) (GPRN, error) {
	parts := strings.Split(s, ":")
	if parts[0] != Prefix {
		return GPRN{}, fmt.Errorf("%w: expecting %q, got %q",
			ErrInvalidPrefix, Prefix, parts[0])
	}
	segments := parts[1:]
	if len(segments) < 2 {
		return GPRN{}, fmt.Errorf(
			"%w: need environment and service segments in %q",
			ErrMalformedID, s)
	}

	g := GPRN{
		environment: segments[0],
		service:     segments[1],
	}
	if g.service == "" {
		return GPRN{}, fmt.Errorf("%w: 'service' is mandatory in %q",
			ErrMalformedID, s)
	}
	if len(segments) > 2 {
		g.placeholder = segments[2]
	}
	if len(segments) > 3 {
		g.typeID = TypeID(segments[3])
	}
	if len(segments) > 4 {
		g.resourceID = strings.Join(segments[4:], ":")
	}

	if err := g.checkResourcePairing(); err != nil {
		return GPRN{}, fmt.Errorf("%w in %q", err, s)
	}
	return g, nil
}

// MustParse parses a GPRN string, panicking on error.
func MustParse(s string) GPRN {
	g, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("invalid GPRN %q: %v", s, err))
	}
	return g
}

// Environment returns the environment segment as stored. Empty means
// production; use EffectiveEnvironment for the resolved name.
func (g GPRN) Environment() string {
	return g.environment
}

// EffectiveEnvironment returns the environment this GPRN refers to,
// resolving the empty segment to "prd". The stored value is never
// rewritten; the default is a read-time interpretation only.
func (g GPRN) EffectiveEnvironment() string {
	if g.environment == "" {
		return EnvProduction
	}
	return g.environment
}

// Service returns the owning service name.
func (g GPRN) Service() string {
	return g.service
}

// Placeholder returns the reserved placeholder segment.
func (g GPRN) Placeholder() string {
	return g.placeholder
}

// TypeID returns the resource type segment, or "" when the GPRN refers
// to a whole service.
func (g GPRN) TypeID() TypeID {
	return g.typeID
}

// ResourceID returns the raw resource-id segment. Use Resource to
// resolve it against the type-id's grammar.
func (g GPRN) ResourceID() string {
	return g.resourceID
}

// HasResource returns true when the GPRN carries a resource reference.
func (g GPRN) HasResource() bool {
	return g.resourceID != ""
}

// IsZero returns true for the zero GPRN.
func (g GPRN) IsZero() bool {
	return g == GPRN{}
}

// Equal returns true if two GPRNs have the same segments.
func (g GPRN) Equal(other GPRN) bool {
	return g == other
}

// checkResourcePairing enforces that type-id and resource-id are present
// or absent together.
func (g GPRN) checkResourcePairing() error {
	if g.typeID != "" && g.resourceID == "" {
		return fmt.Errorf("%w: type-id %q without resource-id",
			ErrIncompleteResource, g.typeID)
	}
	if g.typeID == "" && g.resourceID != "" {
		return fmt.Errorf("%w: resource-id %q without type-id",
			ErrIncompleteResource, g.resourceID)
	}
	return nil
}

// validate checks that the segments survive a format/parse round trip.
func (g GPRN) validate() error {
	if g.service == "" {
		return fmt.Errorf("%w: 'service' is mandatory", ErrInvalidID)
	}
	for _, seg := range []struct {
		name  string
		value string
	}{
		{"environment", g.environment},
		{"service", g.service},
		{"placeholder", g.placeholder},
		{"type-id", string(g.typeID)},
	} {
		if strings.Contains(seg.value, ":") {
			return fmt.Errorf("%w: %s %q contains ':'",
				ErrInvalidID, seg.name, seg.value)
		}
	}
	if err := g.checkResourcePairing(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return nil
}

// Format returns the canonical GPRN string: the prefix followed by all
// five segments, colon-joined. Empty segments are preserved positionally
// and never collapsed, so the canonical form of a service-level GPRN is
// "gprn:env:service:::". Returns ErrInvalidID when the segments cannot
// be serialized unambiguously.
func (g GPRN) Format() (string, error) {
	if err := g.validate(); err != nil {
		return "", err
	}
	return strings.Join([]string{
		Prefix,
		g.environment,
		g.service,
		g.placeholder,
		string(g.typeID),
		g.resourceID,
	}, ":"), nil
}

// String returns the canonical GPRN string, or "" when the GPRN is zero
// or invalid.
func (g GPRN) String() string {
	s, err := g.Format()
	if err != nil {
		return ""
	}
	return s
}

// MarshalJSON implements json.Marshaler.
// GPRNs serialize as strings: "gprn:dev:myapi:::".
func (g GPRN) MarshalJSON() ([]byte, error) {
	if g.IsZero() {
		return []byte("null"), nil
	}
	s, err := g.Format()
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *GPRN) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("GPRN must be a string: %w", err)
	}
	if s == "" {
		*g = GPRN{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Scan implements sql.Scanner for database reading.
// Supports string and []byte input from the database.
func (g *GPRN) Scan(value interface{}) error {
	if value == nil {
		*g = GPRN{}
		return nil
	}
	switch v := value.(type) {
	case string:
		if v == "" {
			*g = GPRN{}
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*g = parsed
		return nil
	case []byte:
		return g.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into GPRN", value)
	}
}

// Value implements driver.Valuer for database writing.
func (g GPRN) Value() (driver.Value, error) {
	if g.IsZero() {
		return nil, nil
	}
	return g.Format()
}
