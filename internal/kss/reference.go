package kss

import (
	"regexp"
	"strconv"
	"strings"
)

var trailingZeros = regexp.MustCompile(`(\.0+)+$`)

// NormalizeReference canonicalizes a style-guide reference: surrounding space
// and a trailing dot are dropped, and trailing ".0" segments of numeric
// references are trimmed ("1.2.0" -> "1.2").
func NormalizeReference(ref string) string {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimSuffix(ref, ".")
	if isNumericReference(ref) {
		ref = trailingZeros.ReplaceAllString(ref, "")
	}
	return ref
}

func referenceSegments(ref string) []string {
	if strings.Contains(ref, " - ") {
		return strings.Split(ref, " - ")
	}
	return strings.Split(ref, ".")
}

func referenceDepth(ref string) int {
	if ref == "" {
		return 0
	}
	return len(referenceSegments(ref))
}

func isNumericReference(ref string) bool {
	if ref == "" {
		return false
	}
	for _, seg := range strings.Split(ref, ".") {
		if _, err := strconv.Atoi(seg); err != nil {
			return false
		}
	}
	return true
}

// CompareReferences orders references segment by segment. Numeric segments
// compare as numbers, others case-insensitively; a parent sorts before its
// children.
func CompareReferences(a, b string) int {
	as, bs := referenceSegments(a), referenceSegments(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

func compareSegment(a, b string) int {
	an, aErr := strconv.Atoi(strings.TrimSpace(a))
	bn, bErr := strconv.Atoi(strings.TrimSpace(b))
	if aErr == nil && bErr == nil {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b)))
}
