// Package pagination implementa paginación por número de página (?page=N) con el
// sobre {"count","next","previous","results"}.
package pagination

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const PageParam = "page"

var ErrInvalidPage = errors.New("invalid page")

type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ParsePage lee ?page= (1 si no viene). Valores no numéricos o < 1 => ErrInvalidPage.
func ParsePage(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(PageParam))
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, ErrInvalidPage
	}
	return n, nil
}

func Offset(page, size int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}

// NumPages nunca es 0: una colección vacía igual tiene página 1.
func NumPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// Check valida que page exista dado el total.
func Check(page, size, count int) error {
	if page < 1 || page > NumPages(count, size) {
		return ErrInvalidPage
	}
	return nil
}

// New arma la página con links absolutos a la siguiente/anterior, conservando el resto
// de los query params (p.ej. ?trait=).
func New[T any](r *http.Request, page, size, count int, results []T) Page[T] {
	if results == nil {
		results = []T{}
	}
	p := Page[T]{Count: count, Results: results}

	if page < NumPages(count, size) {
		next := pageURL(r, page+1)
		p.Next = &next
	}
	if page > 1 {
		prev := pageURL(r, page-1)
		p.Previous = &prev
	}
	return p
}

func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); fwd != "" {
		scheme = fwd
	}

	q := r.URL.Query()
	if page <= 1 {
		q.Del(PageParam)
	} else {
		q.Set(PageParam, strconv.Itoa(page))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: q.Encode(),
	}
	return u.String()
}
