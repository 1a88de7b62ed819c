package state

import (
	fsutil "github.com/kk-code-lab/rfz/internal/fs"
	"github.com/kk-code-lab/rfz/internal/fuzzy"
)

// Mode is either Browsing or *Filtering. Navigation always returns to
// Browsing, so a filter can never outlive the listing it was built from.
type Mode interface {
	isMode()
}

// Browsing shows the full listing.
type Browsing struct{}

// Filtering shows what is left of a filter session over the listing.
type Filtering struct {
	Session *fuzzy.Filter[rune, fsutil.Entry]
	Query   string
}

func (Browsing) isMode()   {}
func (*Filtering) isMode() {}

// newFiltering starts a session over entries and replays query.
func newFiltering(entries []fsutil.Entry, query string) *Filtering {
	candidates := make([]fuzzy.Candidate[rune, fsutil.Entry], len(entries))
	for i, e := range entries {
		candidates[i] = fuzzy.Candidate[rune, fsutil.Entry]{
			Key:   fuzzy.RuneKey(e.Name),
			Value: e,
		}
	}
	f := &Filtering{Session: fuzzy.New(candidates)}
	for _, r := range query {
		f.advance(r)
	}
	return f
}

func (f *Filtering) advance(r rune) {
	f.Session.Advance(r)
	f.Query += string(r)
}

// withoutLastRune returns query minus its final rune.
func withoutLastRune(query string) string {
	runes := []rune(query)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[:len(runes)-1])
}
