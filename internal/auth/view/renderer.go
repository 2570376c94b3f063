// Package view renders the HTML pages and fragments served by the login flow.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	loginPage    = "login"
	loginPartial = "login_partial"
	homePage     = "home"
)

type Renderer struct {
	engine *html.Engine
}

func NewRenderer() (*Renderer, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	return &Renderer{engine: engine}, nil
}

// LoginPartial renders the login form fragment carrying message. It is what
// a failed login swaps into the page.
func (r *Renderer) LoginPartial(message string) (string, error) {
	return r.render(loginPartial, fiber.Map{"Message": message})
}

func (r *Renderer) LoginPage() (string, error) {
	return r.render(loginPage, fiber.Map{"Message": ""})
}

func (r *Renderer) HomePage(username string) (string, error) {
	return r.render(homePage, fiber.Map{"Username": username})
}

func (r *Renderer) render(name string, data fiber.Map) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Render(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
