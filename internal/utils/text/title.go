package text

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// acronyms are words whose casing title-casing would get wrong. Only the
// first occurrence of each is fixed.
var acronyms = [][2]string{
	{"Api ", "API "},
	{"Rabbitmq", "RabbitMQ"},
}

// SlugToTitle turns a slug such as "api-gateway" into a heading ("API Gateway").
// Each word gets an upper-case first letter; the rest is kept as written.
func SlugToTitle(slug string) string {
	words := strings.ReplaceAll(strings.Trim(slug, "-"), "-", " ")
	title := cases.Title(language.Und, cases.NoLower).String(words)
	for _, a := range acronyms {
		title = strings.Replace(title, a[0], a[1], 1)
	}
	return title
}
