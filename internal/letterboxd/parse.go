package letterboxd

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	posterSelector     = `div[data-component-class="LazyPoster"]`
	paginationSelector = `a[href*="/watchlist/page/"]`
)

var (
	// "Heat (1995)" -> "Heat", "1995"
	nameYearPattern = regexp.MustCompile(`^(.+?)\s*\((\d{4})\)$`)
	pageHrefPattern = regexp.MustCompile(`/watchlist/page/(\d+)/`)
)

// Listing is everything we read from one listing page.
type Listing struct {
	Films    []Film
	LastPage int // highest page linked from this page, at least 1

	// Incomplete counts poster elements missing one or more data attributes.
	// They are still present in Films with empty fields.
	Incomplete int
}

// rawEntry holds the data attributes of one poster element as found.
type rawEntry struct {
	name string
	slug string
	link string
}

// extractEntry reads the poster attributes from s. The bool is false when any
// of the three attributes is absent.
func extractEntry(s *goquery.Selection) (rawEntry, bool) {
	name, okName := s.Attr("data-item-name")
	slug, okSlug := s.Attr("data-item-slug")
	link, okLink := s.Attr("data-item-link")
	return rawEntry{name: name, slug: slug, link: link}, okName && okSlug && okLink
}

func (r rawEntry) film() Film {
	f := Film{Title: r.name, Slug: r.slug, Link: r.link}
	// A label that is only a year keeps the raw text as its title.
	if m := nameYearPattern.FindStringSubmatch(r.name); m != nil && strings.TrimSpace(m[1]) != "" {
		f.Title = strings.TrimSpace(m[1])
		f.Year = m[2]
	}
	return f
}

// ParseListing parses a listing page. It never fails: markup it cannot make
// sense of yields an empty listing with LastPage 1.
func ParseListing(html []byte) Listing {
	listing := Listing{LastPage: 1}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return listing
	}

	doc.Find(posterSelector).Each(func(_ int, s *goquery.Selection) {
		raw, complete := extractEntry(s)
		if !complete {
			listing.Incomplete++
		}
		listing.Films = append(listing.Films, raw.film())
	})

	doc.Find(paginationSelector).Each(func(_ int, s *goquery.Selection) {
		if n := pageNumber(s.AttrOr("href", "")); n > listing.LastPage {
			listing.LastPage = n
		}
	})

	return listing
}

// ParseEntries returns the films on a listing page in document order.
func ParseEntries(html []byte) []Film {
	return ParseListing(html).Films
}

// ParseLastPage returns the highest page number referenced by pagination
// links, or 1 for a single-page listing.
func ParseLastPage(html []byte) int {
	return ParseListing(html).LastPage
}

func pageNumber(href string) int {
	m := pageHrefPattern.FindStringSubmatch(href)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
