// Package view holds the HTML pages rendered by the fiber template engine.
package view

import (
	"embed"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html
var FS embed.FS

const Layout = "layouts/main"

func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFunc("date", func(t time.Time) string {
		return t.Format("Jan 2, 2006 15:04")
	})
	return engine
}
