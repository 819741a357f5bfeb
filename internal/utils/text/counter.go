// Package text provides small string helpers shared by the content pipeline
// and the presentation layer: rune counting, excerpt truncation and
// slug-to-title conversion.
package text

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters such as accented letters and emoji count as one.
//
// Examples:
//
//	CountRunes("hello")  // returns 5
//	CountRunes("pão")    // returns 3
//	CountRunes("olá👋")  // returns 4
//	CountRunes("")       // returns 0
func CountRunes(text string) int {
	return len([]rune(text))
}
