// Package domain contains the core value types for SDK resolution.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	versionPattern   = regexp.MustCompile(`^(\d+(?:\.\d+)*)(.*)$`)
	osVersionPattern = regexp.MustCompile(`(\d+)(?:\.(\d+))?`)
)

// Version is an immutable dotted version value with a strict total order.
//
// Ordering compares numeric components left to right. A missing trailing
// component is less than any present one, so 10.15 sorts below 10.15.0.
// When the component sequences are equal, the textual suffix decides:
// a numeric suffix sorts below a non-numeric token, which sorts below an
// empty suffix (so 10.11 is newer than 10.11beta).
type Version struct {
	components []int
	suffix     string
	raw        string
	null       bool
}

// NullVersion returns the version that is less than every real version.
// All methods are safe to call on it.
func NullVersion() Version {
	return Version{null: true}
}

// ParseVersion parses an arbitrary dotted version string.
// Empty or all-whitespace input yields the null version; ParseVersion
// never fails.
func ParseVersion(raw string) Version {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NullVersion()
	}

	m := versionPattern.FindStringSubmatch(raw)
	if m == nil {
		// No numeric lead at all. Keep the text as a suffix so the value
		// still participates in the total order.
		return Version{suffix: raw, raw: raw}
	}

	parts := strings.Split(m[1], ".")
	components := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			// Unreachable given the pattern, but never raise.
			return Version{suffix: raw, raw: raw}
		}
		components[i] = n
	}

	return Version{
		components: components,
		suffix:     strings.TrimLeft(m[2], ".-_ "),
		raw:        raw,
	}
}

// ParseOSVersion extracts the leading <major>.<minor> numeric pattern from
// an OS product-version string, accepting a bare major as well.
// Input without any numeric content yields the null version.
func ParseOSVersion(raw string) Version {
	m := osVersionPattern.FindStringSubmatch(raw)
	if m == nil {
		return NullVersion()
	}
	if m[2] == "" {
		return ParseVersion(m[1])
	}
	return ParseVersion(m[1] + "." + m[2])
}

// CoerceVersion converts heterogeneous inputs (Version, string, integers,
// floats, Stringers) into a Version so comparisons stay strictly typed.
// Nil and unsupported inputs coerce to the null version.
func CoerceVersion(v any) Version {
	switch x := v.(type) {
	case Version:
		return x
	case *Version:
		if x == nil {
			return NullVersion()
		}
		return *x
	case string:
		return ParseVersion(x)
	case int:
		return ParseVersion(strconv.Itoa(x))
	case int64:
		return ParseVersion(strconv.FormatInt(x, 10))
	case uint64:
		return ParseVersion(strconv.FormatUint(x, 10))
	case float64:
		return ParseVersion(strconv.FormatFloat(x, 'f', -1, 64))
	case fmt.Stringer:
		return ParseVersion(x.String())
	case nil:
		return NullVersion()
	default:
		return NullVersion()
	}
}

// suffix classes, ordered: numeric < token < empty.
const (
	suffixNumeric = iota
	suffixToken
	suffixEmpty
)

func suffixClass(s string) int {
	if s == "" {
		return suffixEmpty
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return suffixToken
		}
	}
	return suffixNumeric
}

// Compare returns -1, 0 or 1 when v is less than, equal to or greater than
// other. Null versions compare below everything and equal to each other.
func (v Version) Compare(other Version) int {
	if v.null || other.null {
		switch {
		case v.null && other.null:
			return 0
		case v.null:
			return -1
		default:
			return 1
		}
	}

	for i := 0; i < len(v.components) || i < len(other.components); i++ {
		switch {
		case i >= len(v.components):
			return -1
		case i >= len(other.components):
			return 1
		case v.components[i] < other.components[i]:
			return -1
		case v.components[i] > other.components[i]:
			return 1
		}
	}

	vc, oc := suffixClass(v.suffix), suffixClass(other.suffix)
	if vc != oc {
		if vc < oc {
			return -1
		}
		return 1
	}

	switch vc {
	case suffixNumeric:
		vn, _ := strconv.Atoi(v.suffix)
		on, _ := strconv.Atoi(other.suffix)
		switch {
		case vn < on:
			return -1
		case vn > on:
			return 1
		}
		return 0
	case suffixToken:
		return strings.Compare(v.suffix, other.suffix)
	default:
		return 0
	}
}

// AtLeast reports whether v >= other, coercing other first.
func (v Version) AtLeast(other any) bool {
	return v.Compare(CoerceVersion(other)) >= 0
}

// Before reports whether v < other, coercing other first.
func (v Version) Before(other any) bool {
	return v.Compare(CoerceVersion(other)) < 0
}

// IsNull reports whether v is the null version.
func (v Version) IsNull() bool {
	return v.null
}

// Major returns the first numeric component, or 0 when there is none.
func (v Version) Major() int {
	if len(v.components) == 0 {
		return 0
	}
	return v.components[0]
}

// Minor returns the second numeric component, or 0 when there is none.
func (v Version) Minor() int {
	if len(v.components) < 2 {
		return 0
	}
	return v.components[1]
}

// MajorMinor returns the version truncated to its first two components with
// any suffix dropped. Null in, null out.
func (v Version) MajorMinor() Version {
	if v.null {
		return v
	}
	n := len(v.components)
	if n > 2 {
		n = 2
	}
	trunc := make([]int, n)
	copy(trunc, v.components[:n])

	parts := make([]string, n)
	for i, c := range trunc {
		parts[i] = strconv.Itoa(c)
	}
	return Version{components: trunc, raw: strings.Join(parts, ".")}
}

// String returns the original textual form, or "" for the null version.
func (v Version) String() string {
	if v.null {
		return ""
	}
	return v.raw
}
