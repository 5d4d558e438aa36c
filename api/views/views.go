package views

import (
	"embed"
	"html/template"
	"strconv"

	"github.com/Dinhh-Chan/aic-judges/scoring"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"score": func(v *int) string {
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	},
	"fscore": func(v *float64) string {
		if v == nil {
			return "-"
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	},
	"num": func(v *int) string {
		if v == nil {
			return "-"
		}
		return strconv.Itoa(*v)
	},
	"value": func(form *scoring.ScoreForm, key scoring.CriterionKey) string {
		if form == nil {
			return ""
		}
		if v := form.Value(key); v != nil {
			return strconv.Itoa(*v)
		}
		return ""
	},
	"inc": func(i int) int {
		return i + 1
	},
}

// Load parses the embedded page templates. Page names are the file names, e.g. "judges.html".
func Load() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "templates/*.html"))
}
