package template

import "strings"

// Expand substitutes `{{ key }}` tokens in src using vars.
//
// Unknown keys are left as `{{ key }}` so partial renders stay inspectable.
// The output is pre-sized from the segment lengths in a single pass.
func Expand(src string, vars map[string]string) string {
	segments := Parse(src)

	size := 0
	for _, s := range segments {
		switch s.Kind {
		case Literal:
			size += len(s.Text)
		case Variable:
			if v, ok := vars[s.Text]; ok {
				size += len(v)
			} else {
				size += len(s.Text) + 6
			}
		}
	}

	var out strings.Builder
	out.Grow(size)

	for _, s := range segments {
		switch s.Kind {
		case Literal:
			out.WriteString(s.Text)
		case Variable:
			if v, ok := vars[s.Text]; ok {
				out.WriteString(v)
			} else {
				out.WriteString("{{ ")
				out.WriteString(s.Text)
				out.WriteString(" }}")
			}
		}
	}

	return out.String()
}
