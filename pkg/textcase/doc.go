// Package textcase converts identifiers and phrases between naming
// conventions: camelCase, PascalCase, snake_case, SCREAMING_SNAKE_CASE,
// kebab-case, Train-Case and Title Case.
//
// All converters share one tokenizer. Words split on delimiter characters
// (space, hyphen, underscore, dot, slash), on lower-to-upper case
// boundaries, on letter/digit boundaries, and at the end of an acronym run
// ("HTTPServer" splits into "HTTP", "Server"). Title casing is delegated to
// golang.org/x/text for Unicode-correct behavior.
//
// # Usage
//
//	textcase.ToSnake("ParseHTTPResponse") // "parse_http_response"
//	textcase.ToCamel("user_id")           // "userId"
//	textcase.ToTitle("war and peace")     // "War And Peace"
package textcase
