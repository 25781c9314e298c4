package tabular

import "strings"

// SplitFields splits one line of text into fields on delim. A field may
// be enclosed in double quotes; inside quotes the delimiter is literal
// content and a doubled quote unescapes to a single quote character. An
// unterminated quote is treated as implicitly closed at end of line,
// since fields never span physical lines.
func SplitFields(line string, delim rune) []string {
	fields := make([]string, 0, 8)
	var cur strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case inQuotes:
			if ch == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					cur.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				cur.WriteRune(ch)
			}
		case ch == '"':
			inQuotes = true
		case ch == delim:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	fields = append(fields, cur.String())

	return fields
}

// Join joins fields with delim, verbatim and without quoting.
func Join(fields []string, delim rune) string {
	return strings.Join(fields, string(delim))
}
