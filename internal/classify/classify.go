// Package classify partitions substring-matching removal patterns into
// named buckets so the generated manifest stays readable.
package classify

import "strings"

// Buckets groups partial selectors by what they appear to target.
// Field order is the canonical bucket order; empty buckets are dropped
// from encoded output.
type Buckets struct {
	Ads          []string `json:"ads,omitempty" yaml:"ads,omitempty"`
	Navigation   []string `json:"navigation,omitempty" yaml:"navigation,omitempty"`
	HeaderFooter []string `json:"header_footer,omitempty" yaml:"header_footer,omitempty"`
	Sidebar      []string `json:"sidebar,omitempty" yaml:"sidebar,omitempty"`
	Social       []string `json:"social,omitempty" yaml:"social,omitempty"`
	Comments     []string `json:"comments,omitempty" yaml:"comments,omitempty"`
	Auth         []string `json:"auth,omitempty" yaml:"auth,omitempty"`
	Newsletter   []string `json:"newsletter,omitempty" yaml:"newsletter,omitempty"`
	ArticleMeta  []string `json:"article_meta,omitempty" yaml:"article_meta,omitempty"`
	PostMeta     []string `json:"post_meta,omitempty" yaml:"post_meta,omitempty"`
	Author       []string `json:"author,omitempty" yaml:"author,omitempty"`
	Related      []string `json:"related,omitempty" yaml:"related,omitempty"`
	Misc         []string `json:"misc,omitempty" yaml:"misc,omitempty"`
}

// rule maps one bucket to its keyword substrings. Rules are evaluated in
// declaration order and the first match wins, so keep this list aligned
// with the Buckets field order.
type rule struct {
	name     string
	keywords []string
	dest     func(*Buckets) *[]string
}

var rules = []rule{
	{"ads", []string{"ad", "advert", "promo", "sponsor", "banner"},
		func(b *Buckets) *[]string { return &b.Ads }},
	{"navigation", []string{"nav", "menu", "breadcrumb", "pagination", "skip", "jump"},
		func(b *Buckets) *[]string { return &b.Navigation }},
	{"header_footer", []string{"header", "footer", "copyright", "masthead", "topbar"},
		func(b *Buckets) *[]string { return &b.HeaderFooter }},
	{"sidebar", []string{"sidebar", "widget", "aside", "rail"},
		func(b *Buckets) *[]string { return &b.Sidebar }},
	{"social", []string{"social", "share", "facebook", "twitter", "instagram", "rss"},
		func(b *Buckets) *[]string { return &b.Social }},
	{"comments", []string{"comment", "disqus", "discuss", "feedback", "response"},
		func(b *Buckets) *[]string { return &b.Comments }},
	{"auth", []string{"login", "sign", "register", "access-wall", "paywall", "gated"},
		func(b *Buckets) *[]string { return &b.Auth }},
	{"newsletter", []string{"newsletter", "subscribe", "signup", "email", "donate"},
		func(b *Buckets) *[]string { return &b.Newsletter }},
	{"article_meta", []string{"article-", "article_", "article__"},
		func(b *Buckets) *[]string { return &b.ArticleMeta }},
	{"post_meta", []string{"post-", "post_", "entry-", "byline", "dateline", "timestamp", "pub"},
		func(b *Buckets) *[]string { return &b.PostMeta }},
	{"author", []string{"author", "bio", "avatar", "profile", "contributor"},
		func(b *Buckets) *[]string { return &b.Author }},
	{"related", []string{"related", "recommend", "more-", "read-next", "keep-reading", "popular", "trending", "recent"},
		func(b *Buckets) *[]string { return &b.Related }},
}

// Categorize assigns every selector to exactly one bucket: the first rule
// whose keyword occurs as a substring of the lower-cased selector, or
// misc when none does. Input order is preserved within each bucket.
func Categorize(selectors []string) Buckets {
	var b Buckets
	for _, sel := range selectors {
		dest := &b.Misc
		lower := strings.ToLower(sel)
		for _, r := range rules {
			if r.matches(lower) {
				dest = r.dest(&b)
				break
			}
		}
		*dest = append(*dest, sel)
	}
	return b
}

func (r rule) matches(s string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// BucketNames returns the canonical bucket order, misc last.
func BucketNames() []string {
	names := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		names = append(names, r.name)
	}
	return append(names, "misc")
}
