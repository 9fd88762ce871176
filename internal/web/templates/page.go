// Package templates holds the templ components for the user pages.
package templates

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/sbilibin2017/gw-user-directory/internal/i18n"
	"github.com/sbilibin2017/gw-user-directory/internal/screens"
)

// Delete origins; the confirmed delete re-renders the page it started from.
const (
	FromList   = "list"
	FromDetail = "detail"
)

const (
	dateFormat     = "2006-01-02 15:04"
	dateTimeFormat = "2006-01-02 15:04:05"
	isoFormat      = "2006-01-02T15:04:05Z07:00"
)

// Page is the request-scoped data shared by every page.
type Page struct {
	Loc      *i18n.Printer
	Lang     string
	Path     string
	Title    i18n.Key
	State    screens.State
	Redirect *screens.Redirect

	langParam string
}

// NewPage resolves the request language and returns a page titled title.
func NewPage(r *http.Request, title i18n.Key) Page {
	loc := i18n.NewPrinter(i18n.ResolveTag(r))
	p := Page{
		Loc:   loc,
		Lang:  loc.Tag().String(),
		Path:  r.URL.Path,
		Title: title,
	}
	if r.URL.Query().Get(i18n.LangParam) != "" {
		p.langParam = p.Lang
	}
	return p
}

// T translates key for the page language.
func (p Page) T(key i18n.Key, args ...any) string {
	return p.Loc.T(key, args...)
}

// Link returns path carrying the explicitly requested language.
func (p Page) Link(path string) string {
	if p.langParam == "" {
		return path
	}
	return withLang(path, p.langParam)
}

// LangLink returns the current page in another language.
func (p Page) LangLink(tag language.Tag) string {
	return withLang(p.Path, tag.String())
}

// RefreshContent is the meta refresh value for a pending redirect.
func (p Page) RefreshContent() string {
	if p.Redirect == nil {
		return ""
	}
	return strconv.Itoa(p.Redirect.Seconds()) + ";url=" + p.Link(p.Redirect.To)
}

// DeletePath returns the delete confirmation path for id.
func DeletePath(id, from string) string {
	return screens.UserPath(id) + "/delete?from=" + url.QueryEscape(from)
}

func withLang(path, lang string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + i18n.LangParam + "=" + url.QueryEscape(lang)
}

// Confirm is the delete confirmation payload.
type Confirm struct {
	ID   string
	From string
	Back string
}
