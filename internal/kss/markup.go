package kss

import (
	"strings"

	"golang.org/x/net/html"
)

// markupClasses lists the class names used by markup, in first-seen order.
// Template placeholders such as {{modifier_class}} are skipped.
func markupClasses(markup string) []string {
	var classes []string
	seen := map[string]bool{}
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		for _, attr := range z.Token().Attr {
			if attr.Key != "class" {
				continue
			}
			for _, c := range strings.Fields(attr.Val) {
				if strings.Contains(c, "{{") || strings.Contains(c, "}}") || seen[c] {
					continue
				}
				seen[c] = true
				classes = append(classes, c)
			}
		}
	}
	return classes
}
