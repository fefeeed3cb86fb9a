package emit

import (
	"strconv"
	"strings"

	"sheetasset/pkg/sheetasset/models"
)

// EncodeStyledCell converts a rich text cell into a quoted literal containing
// nested markup tags. Characters are scanned left to right and grouped into
// runs of identical StyleSet; each run is wrapped in open tags for its active
// attributes and matching close tags in exact reverse order. A line break
// character always terminates the current run and is emitted as its \n or \r
// escape between runs, outside any tags, so runs never merge across a break.
func EncodeStyledCell(chars []models.StyledChar) string {
	if len(chars) == 0 {
		return `""`
	}

	var out, run strings.Builder
	var cur models.StyleSet
	open := false

	flush := func() {
		if run.Len() > 0 {
			out.WriteString(wrapRun(run.String(), cur))
			run.Reset()
		}
		open = false
	}

	for _, sc := range chars {
		if sc.Ch == '\n' {
			flush()
			out.WriteString(`\n`)
			continue
		}
		if sc.Ch == '\r' {
			flush()
			out.WriteString(`\r`)
			continue
		}
		if !open {
			cur = sc.Style
			open = true
		} else if sc.Style != cur {
			flush()
			cur = sc.Style
			open = true
		}
		run.WriteRune(sc.Ch)
	}
	flush()

	return quote(out.String())
}

// wrapRun wraps one run's text with its style tags. Tags open in a fixed
// attribute order and close in exact reverse: last opened is first closed.
func wrapRun(text string, s models.StyleSet) string {
	var opens []string
	if s.Bold {
		opens = append(opens, "<b>")
	}
	if s.Italic {
		opens = append(opens, "<i>")
	}
	if s.Strike {
		opens = append(opens, "<s>")
	}
	if s.Color != "" {
		opens = append(opens, "<color=#"+s.Color+">")
	}
	if s.Size != 0 {
		opens = append(opens, "<size="+formatSize(s.Size)+">")
	}
	if s.Font != "" {
		opens = append(opens, `<font="`+s.Font+`">`)
	}
	if len(opens) == 0 {
		return text
	}

	var b strings.Builder
	for _, t := range opens {
		b.WriteString(t)
	}
	b.WriteString(text)
	for i := len(opens) - 1; i >= 0; i-- {
		b.WriteString(closeTag(opens[i]))
	}
	return b.String()
}

// closeTag derives the closing tag from an opening tag, keeping only the tag
// name before any '=' attribute.
func closeTag(open string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(open, "<"), ">")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return "</" + name + ">"
}

func formatSize(size float64) string {
	return strconv.FormatFloat(size, 'g', -1, 64)
}
