package directive

import "html/template"

// FuncMap exposes every directive in set to html/template. A directive named
// "vue" contributes "vue" and "endvue":
//
//	{{ vue "user-card" .Attrs }}<p>{{ .Body }}</p>{{ endvue }}
//
// Argument errors abort template execution. The attributes argument should
// be a map or component.Attrs, since templates cannot build ordered lists.
//
// The tags are returned as template.HTML, so html/template does not escape
// them again. Plain string attribute values and the component name are
// written verbatim; escape untrusted input (component.EscapeAttribute) before
// passing it in. Structured values are always entity-escaped.
func FuncMap(set *Set) template.FuncMap {
	funcs := template.FuncMap{}
	for _, d := range set.All() {
		d := d
		funcs[d.Name()] = func(name string, args ...any) (template.HTML, error) {
			out, err := d.Start(name, args...)
			if err != nil {
				return "", err
			}
			return template.HTML(out), nil
		}
		funcs[d.EndName()] = func() template.HTML {
			return template.HTML(d.End())
		}
	}
	return funcs
}
