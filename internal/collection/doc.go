// Package collection parses vocabulary collection files. A collection is a
// flat text file with a language directive, named variables and one
// `word | meaning / meaning` definition per line. Parsing is lenient:
// malformed lines produce warnings and never abort the file.
package collection
