// Package kss parses KSS style-guide comments out of stylesheet source.
//
// A KSS block is a comment whose last paragraph is a style-guide reference:
//
//	// Buttons
//	//
//	// Your standard button suitable for clicking.
//	//
//	// :hover   - Highlights when hovering.
//	// .primary - The call to action.
//	//
//	// Markup: <button class="btn {{modifier_class}}">Click</button>
//	//
//	// Weight: 2
//	//
//	// Styleguide 1.2
//
// Parse is pure: the same text always yields an equal Styleguide.
package kss
