// package category maps YouTube category ids and topic URLs to display names.
package category

import (
	"strings"
	"unicode"
)

// names is the US-region video category list.
var names = map[string]string{
	"1":  "Film & Animation",
	"2":  "Autos & Vehicles",
	"10": "Music",
	"15": "Pets & Animals",
	"17": "Sports",
	"18": "Short Movies",
	"19": "Travel & Events",
	"20": "Gaming",
	"21": "Videoblogging",
	"22": "People & Blogs",
	"23": "Comedy",
	"24": "Entertainment",
	"25": "News & Politics",
	"26": "Howto & Style",
	"27": "Education",
	"28": "Science & Technology",
	"29": "Nonprofits & Activism",
	"30": "Movies",
	"31": "Anime/Animation",
	"32": "Action/Adventure",
	"33": "Classics",
	"34": "Comedy",
	"35": "Documentary",
	"36": "Drama",
	"37": "Family",
	"38": "Foreign",
	"39": "Horror",
	"40": "Sci-Fi/Fantasy",
	"41": "Thriller",
	"42": "Shorts",
	"43": "Shows",
	"44": "Trailers",
}

var rewrites = map[string]string{
	"Lifestyle (sociology)": "Lifestyle",
	"Sports":                "Sport",
	"Humor":                 "Comedy",
	"Humour":                "Comedy",
	"Pet":                   "Animals",
	"Diy":                   "DIY",
	"Association Football":  "Soccer",
}

// Name returns the display name of a video category id.
func Name(id string) (string, bool) {
	n, ok := names[id]
	return n, ok
}

// Refine normalizes a topic name: words are title-cased, then known aliases are rewritten.
func Refine(s string) string {
	s = strings.TrimSpace(titleCase(strings.ToLower(s)))
	if r, ok := rewrites[s]; ok {
		return r
	}
	return s
}

// FromTopicURL turns a topic category URL such as https://en.wikipedia.org/wiki/Association_football
// into a refined name. URLs without a wiki path yield "".
func FromTopicURL(u string) string {
	_, slug, ok := strings.Cut(u, "wiki/")
	if !ok || slug == "" {
		return ""
	}
	return Refine(strings.ReplaceAll(slug, "_", " "))
}

// titleCase upper-cases the first letter of every word, where words are split on whitespace.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	start := true
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v':
			start = true
		case start:
			r = unicode.ToUpper(r)
			start = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
