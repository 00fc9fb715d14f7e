package search

import "strings"

// Segment is a run of text that is either a keyword occurrence or plain text.
type Segment struct {
	Text    string
	Keyword bool
}

// SplitHighlight cuts text into plain and keyword segments. Occurrences are
// found literally, left to right, without overlap. Concatenating the segment
// texts always gives back text.
func SplitHighlight(text, keyword string) []Segment {
	if keyword == "" || !strings.Contains(text, keyword) {
		return []Segment{{Text: text}}
	}

	var segs []Segment
	rest := text
	for {
		i := strings.Index(rest, keyword)
		if i < 0 {
			break
		}
		if i > 0 {
			segs = append(segs, Segment{Text: rest[:i]})
		}
		segs = append(segs, Segment{Text: keyword, Keyword: true})
		rest = rest[i+len(keyword):]
	}
	if rest != "" {
		segs = append(segs, Segment{Text: rest})
	}
	return segs
}

// Join concatenates the segment texts.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
