// Package lookup serves the search endpoint behind lookup fields. Named
// option sources are registered on a Component; its handler answers
// GET {base}/lookups/{name}?q=..&limit=.. with {"data": [{value, label}]}.
// URL builds the matching lookup_url for a field config.
package lookup
