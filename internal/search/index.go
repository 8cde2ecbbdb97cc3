// Package search ranks catalog entries against a free-text query. The index
// is built once from a snapshot of documents and is read-only afterwards, so
// it is safe for concurrent use.
//
// Scoring is Jaccard similarity between the query token set and each
// document's token set: score = |Q ∩ D| / |Q ∪ D|. Title matches add a
// fixed bonus so a query naming a service ranks it above passing mentions.
package search

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Document is one searchable entry.
type Document struct {
	ID    string
	Title string
	Text  string
}

// Result is a ranked document id with its score.
type Result struct {
	ID    string
	Title string
	Score float64
}

// Index is the minimal interface implemented by all search indices.
type Index interface {
	TopK(query string, k int) []Result
	Len() int
}

// Option configures an index.
type Option func(*config)

type config struct {
	stopwords  map[string]struct{}
	titleBonus float64
}

func defaultConfig() config {
	return config{
		stopwords:  toSet(DefaultStopwords),
		titleBonus: 0.25,
	}
}

// DefaultStopwords are dropped from queries and documents unless
// WithStopwords overrides them.
var DefaultStopwords = []string{
	"a", "an", "and", "are", "for", "in", "is", "of", "on", "or", "the", "to", "with", "your",
}

// WithStopwords replaces the stopword list. An empty list disables removal.
func WithStopwords(words []string) Option {
	return func(c *config) { c.stopwords = toSet(words) }
}

// WithTitleBonus sets the score added per matched title token share.
func WithTitleBonus(b float64) Option {
	return func(c *config) {
		if b >= 0 {
			c.titleBonus = b
		}
	}
}

type doc struct {
	Document
	tokens map[string]struct{}
	title  map[string]struct{}
}

type index struct {
	cfg  config
	docs []doc
}

// NewIndex builds an Index over docs. Documents with no tokens are skipped.
func NewIndex(docs []Document, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	out := make([]doc, 0, len(docs))
	for _, d := range docs {
		title := tokenize(d.Title, cfg.stopwords)
		toks := tokenize(d.Title+" "+d.Text, cfg.stopwords)
		if len(toks) == 0 {
			continue
		}
		out = append(out, doc{Document: d, tokens: toks, title: title})
	}
	return &index{cfg: cfg, docs: out}
}

func (i *index) Len() int { return len(i.docs) }

// TopK returns up to k best-matching documents. k <= 0 means 5. Ties are
// broken by title, then id, so results are stable.
func (i *index) TopK(q string, k int) []Result {
	if len(i.docs) == 0 || strings.TrimSpace(q) == "" {
		return nil
	}
	if k <= 0 {
		k = 5
	}
	qTokens := tokenize(q, i.cfg.stopwords)
	if len(qTokens) == 0 {
		return nil
	}

	buf := make([]Result, 0, min(k*4, len(i.docs)))
	for _, d := range i.docs {
		over := overlap(qTokens, d.tokens)
		if over == 0 {
			continue
		}
		score := float64(over) / float64(len(qTokens)+len(d.tokens)-over)
		if t := overlap(qTokens, d.title); t > 0 {
			score += i.cfg.titleBonus * float64(t) / float64(len(qTokens))
		}
		buf = append(buf, Result{ID: d.ID, Title: d.Title, Score: score})
	}
	if len(buf) == 0 {
		return nil
	}

	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].Score != buf[b].Score {
			return buf[a].Score > buf[b].Score
		}
		if buf[a].Title != buf[b].Title {
			return buf[a].Title < buf[b].Title
		}
		return buf[a].ID < buf[b].ID
	})
	if k > len(buf) {
		k = len(buf)
	}
	return buf[:k]
}

var wordRE = regexp.MustCompile(`\p{L}+\p{N}*|\p{N}+`)

func tokenize(s string, stop map[string]struct{}) map[string]struct{} {
	words := wordRE.FindAllString(strings.ToLower(norm.NFC.String(s)), -1)
	if len(words) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, skip := stop[w]; skip {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

func overlap(a, b map[string]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			m[w] = struct{}{}
		}
	}
	return m
}
