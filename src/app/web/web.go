// Package web holds the server-rendered pages and the pt-BR formatting
// helpers their templates use.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"economia/src/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Metadata is the <head> content of a page.
type Metadata struct {
	Title       string
	Description string
	Keywords    string
}

// HomeMetadata describes the landing page.
var HomeMetadata = Metadata{
	Title:       "Economia em Foco - Notícias e Análises",
	Description: "As principais notícias e análises do mercado financeiro brasileiro",
	Keywords:    "economia, mercado financeiro, investimentos, brasil",
}

var (
	printer = message.NewPrinter(language.BrazilianPortuguese)

	saoPaulo = mustLoadLocation("America/Sao_Paulo")

	meses = [...]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	}
)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Templates parses the embedded page templates with the helper functions.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// FuncMap returns the template helpers.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"dataBR":        DataBR,
		"visualizacoes": Visualizacoes,
		"texto":         Texto,
		"isoDate":       isoDate,
	}
}

// DataBR formats t as a long pt-BR date in São Paulo time,
// e.g. "05 de março de 2025". A nil time renders empty.
func DataBR(t *time.Time) string {
	if t == nil {
		return ""
	}
	local := t.In(saoPaulo)
	return fmt.Sprintf("%02d de %s de %d", local.Day(), meses[local.Month()-1], local.Year())
}

// Visualizacoes formats a view count with pt-BR digit grouping,
// e.g. "1.234 visualizações".
func Visualizacoes(n int) string {
	if n == 1 {
		return "1 visualização"
	}
	return printer.Sprintf("%d visualizações", n)
}

// Texto dereferences an optional column.
func Texto(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func isoDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// Page is the data every template receives.
type Page struct {
	Meta    Metadata
	Artigos []domain.ArticleSummary
	Artigo  *domain.ArticleDetail
}

// ArticleMetadata describes a single article page.
func ArticleMetadata(a *domain.ArticleDetail) Metadata {
	m := Metadata{
		Title:       a.Titulo + " - Economia em Foco",
		Description: Texto(a.Resumo),
		Keywords:    HomeMetadata.Keywords,
	}
	if m.Description == "" {
		m.Description = HomeMetadata.Description
	}
	return m
}
