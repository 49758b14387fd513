package kss

// Styleguide is everything parsed from one stylesheet's text.
type Styleguide struct {
	Sections []Section `yaml:"sections" json:"sections"`
}

// Section is one documented KSS block.
type Section struct {
	Header          string      `yaml:"header" json:"header"`
	Description     string      `yaml:"description,omitempty" json:"description,omitempty"`
	DescriptionHTML string      `yaml:"description_html,omitempty" json:"description_html,omitempty"`
	Reference       string      `yaml:"reference" json:"reference"`
	Depth           int         `yaml:"depth" json:"depth"`
	Weight          float64     `yaml:"weight" json:"weight"`
	Markup          string      `yaml:"markup,omitempty" json:"markup,omitempty"`
	MarkupClasses   []string    `yaml:"markup_classes,omitempty" json:"markup_classes,omitempty"`
	Modifiers       []Modifier  `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Parameters      []Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Deprecated      bool        `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Experimental    bool        `yaml:"experimental,omitempty" json:"experimental,omitempty"`
	Fingerprint     string      `yaml:"fingerprint" json:"fingerprint"`
}

// Modifier is a state or variant class of a section (".primary", ":hover").
type Modifier struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	ClassName   string `yaml:"class_name" json:"class_name"`
}

// Parameter documents a mixin or function argument ("$color").
type Parameter struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Section returns the section with the given (normalized) reference.
func (s *Styleguide) Section(ref string) (Section, bool) {
	ref = NormalizeReference(ref)
	for _, sec := range s.Sections {
		if sec.Reference == ref {
			return sec, true
		}
	}
	return Section{}, false
}
