package web

import (
	"embed"
	"html/template"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates 解析内嵌模板，供 gin SetHTMLTemplate 使用
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// FuncMap 模板辅助函数
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"year": func(y *int) string {
			if y == nil {
				return "—"
			}
			return strconv.Itoa(*y)
		},
		"percent": func(p float64) string {
			return strconv.FormatFloat(p, 'f', 1, 64) + "%"
		},
	}
}
