package server

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecritures-dev/ecritures/internal/buildinfo"
	"github.com/ecritures-dev/ecritures/internal/journal"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// outputFileName is the attachment name of the generated journal.
const outputFileName = "journal_comptable.csv"

type pageData struct {
	Error string
}

func (s *Server) index(c echo.Context) error {
	return s.renderPage(c, http.StatusOK, pageData{})
}

// convert transforms the uploaded export and streams the journal back as
// an attachment. Generation happens fully in memory, so a failed upload
// never produces a partial file.
func (s *Server) convert(c echo.Context) error {
	fh, err := c.FormFile("export")
	if err != nil {
		return s.renderPage(c, http.StatusBadRequest, pageData{
			Error: "Aucun fichier reçu. Téléversez l'export CSV Shopify.",
		})
	}

	f, err := fh.Open()
	if err != nil {
		return s.renderPage(c, http.StatusUnprocessableEntity, pageData{
			Error: "Lecture du fichier impossible : " + err.Error(),
		})
	}
	defer f.Close()

	res, err := journal.Transform(f, s.chart, s.opts)
	if err != nil {
		return s.renderPage(c, http.StatusUnprocessableEntity, pageData{
			Error: "Erreur : " + err.Error(),
		})
	}

	var buf bytes.Buffer
	if err := res.WriteCSV(&buf); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+outputFileName+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) renderPage(c echo.Context, code int, data pageData) error {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}
