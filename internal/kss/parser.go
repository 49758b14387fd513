package kss

import (
	"bytes"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/inful/mdfp"
	"github.com/yuin/goldmark"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
)

var (
	referencePattern = regexp.MustCompile(`(?i)^\s*style\s?guide:?\s+(.+?)\s*$`)
	weightPattern    = regexp.MustCompile(`(?i)^\s*weight:\s*(.*?)\s*$`)
	markupPattern    = regexp.MustCompile(`(?i)^\s*markup:\s*(.*)$`)
	flagPattern      = regexp.MustCompile(`(?i)^\s*(deprecated|experimental):`)
	listItemPattern  = regexp.MustCompile(`^\s*(\S+)\s+-\s+(.*?)\s*$`)

	markdown = goldmark.New()
)

// Parse extracts every KSS section from text. Comments without a style-guide
// reference are ignored. The result is never nil and its sections are ordered
// by reference.
func Parse(text string) (*Styleguide, error) {
	guide := &Styleguide{Sections: []Section{}}
	for _, b := range extractBlocks(text) {
		sec, ok, err := parseBlock(b)
		if err != nil {
			return nil, err
		}
		if ok {
			guide.Sections = append(guide.Sections, sec)
		}
	}
	sort.SliceStable(guide.Sections, func(i, j int) bool {
		return CompareReferences(guide.Sections[i].Reference, guide.Sections[j].Reference) < 0
	})
	return guide, nil
}

// Parser adapts Parse to the aggregator's parser contract.
type Parser struct{}

func (Parser) Parse(text string) (*Styleguide, error) { return Parse(text) }

func parseBlock(b block) (Section, bool, error) {
	paras := paragraphs(b.lines)
	if len(paras) < 2 {
		return Section{}, false, nil
	}
	last := paras[len(paras)-1]
	if len(last) != 1 {
		return Section{}, false, nil
	}
	m := referencePattern.FindStringSubmatch(last[0])
	if m == nil {
		return Section{}, false, nil
	}

	sec := Section{
		Header:    strings.Join(trimAll(paras[0]), " "),
		Reference: NormalizeReference(m[1]),
	}
	sec.Depth = referenceDepth(sec.Reference)
	applyFlags(&sec, sec.Header)

	var description []string
	for _, p := range paras[1 : len(paras)-1] {
		switch {
		case markupPattern.MatchString(p[0]):
			first := markupPattern.FindStringSubmatch(p[0])[1]
			lines := append([]string{first}, p[1:]...)
			sec.Markup = strings.TrimSpace(strings.Join(lines, "\n"))
			sec.MarkupClasses = markupClasses(sec.Markup)
		case len(p) == 1 && weightPattern.MatchString(p[0]):
			raw := weightPattern.FindStringSubmatch(p[0])[1]
			w, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return Section{}, false, ferrors.ParseFailure("invalid section weight").
					WithCause(err).
					WithContext("reference", sec.Reference).
					WithContext("weight", raw).
					Build()
			}
			sec.Weight = w
		default:
			if mods, params, ok := parseList(p); ok {
				sec.Modifiers = append(sec.Modifiers, mods...)
				sec.Parameters = append(sec.Parameters, params...)
				continue
			}
			text := strings.Join(trimAll(p), "\n")
			applyFlags(&sec, text)
			description = append(description, text)
		}
	}

	if len(description) > 0 {
		sec.Description = strings.Join(description, "\n\n")
		html, err := renderMarkdown(sec.Description)
		if err != nil {
			return Section{}, false, ferrors.WrapError(err, ferrors.CategoryParse, "render section description").
				Fatal().
				WithContext("reference", sec.Reference).
				Build()
		}
		sec.DescriptionHTML = html
	}

	sec.Fingerprint = mdfp.CalculateFingerprintFromParts("header: "+sec.Header, b.raw())
	return sec, true, nil
}

// parseList recognizes a paragraph made only of "name - description" lines.
// Names starting with '.', ':' or '&' are modifiers; '$', '@' or '%' are
// parameters. Mixed or plain paragraphs are not lists.
func parseList(p []string) ([]Modifier, []Parameter, bool) {
	var mods []Modifier
	var params []Parameter
	for _, line := range p {
		m := listItemPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, nil, false
		}
		name, desc := m[1], m[2]
		switch name[0] {
		case '.', ':', '&':
			mods = append(mods, Modifier{Name: name, Description: desc, ClassName: modifierClassName(name)})
		case '$', '@', '%':
			params = append(params, Parameter{Name: name, Description: desc})
		default:
			return nil, nil, false
		}
	}
	if len(mods) > 0 && len(params) > 0 {
		return nil, nil, false
	}
	return mods, params, true
}

// modifierClassName turns a modifier name into the classes that apply it:
// ".btn.primary" -> "btn primary", ":hover" -> "pseudo-class-hover".
func modifierClassName(name string) string {
	s := strings.TrimPrefix(name, "&")
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.ReplaceAll(s, ":", " pseudo-class-")
	return strings.Join(strings.Fields(s), " ")
}

func applyFlags(sec *Section, text string) {
	m := flagPattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	switch strings.ToLower(m[1]) {
	case "deprecated":
		sec.Deprecated = true
	case "experimental":
		sec.Experimental = true
	}
}

func renderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func trimAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSpace(l)
	}
	return out
}
