package letterboxd

import (
	"fmt"
	"strings"
)

// listingHTML renders a minimal listing page carrying the given item names
// and pagination links.
func listingHTML(user string, names []string, pages ...int) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><body><ul class="poster-list">`)
	for i, name := range names {
		slug := fmt.Sprintf("film-%d", i)
		fmt.Fprintf(&b,
			`<li><div class="react-component" data-component-class="LazyPoster" data-item-name=%q data-item-slug=%q data-item-link="/film/%s/"></div></li>`,
			name, slug, slug)
	}
	b.WriteString(`</ul><div class="pagination">`)
	for _, p := range pages {
		fmt.Fprintf(&b, `<a href="/%s/watchlist/page/%d/">%d</a>`, user, p, p)
	}
	b.WriteString(`</div></body></html>`)
	return b.String()
}
