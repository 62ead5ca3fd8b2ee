package parser

import "golang.org/x/net/html/atom"

// voidTags are HTML elements that never take a body; a verbose OPEN-TAG
// treats them as EndingOpenOnly unless the source already wrote a
// self-closing slash. Concise open tags do not consult this table.
// Grounded on the teacher's use of atom.Lookup/atom.Atom for tag-name fast
// paths in token.go (spec.md SUPPLEMENTED FEATURES: well-known tag table).
var voidTags = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Param: true, atom.Source: true,
	atom.Track: true, atom.Wbr: true,
}

// parsedTextTags default their body to BodyModeParsedText absent an
// explicit setParseOptions call (spec.md §4.5, §6 setParseOptions).
var parsedTextTags = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true,
}

func isVoidTag(name []byte) bool {
	return voidTags[lookupTagAtom(name)]
}

func defaultBodyMode(name []byte) BodyMode {
	if parsedTextTags[lookupTagAtom(name)] {
		return BodyModeParsedText
	}
	return BodyModeHTML
}
