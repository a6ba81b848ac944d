// Package scanner implements the double-word detection pass.
//
// The scanner reads a file line by line, carrying the previous trimmed line
// across iterations, and applies two heuristics:
//   - adjacent: two identical whitespace-delimited tokens next to each other
//     on one line
//   - cross-line: the last token of the previous line equals the first token
//     of the current line
//
// A fixed skip set exempts tokens that repeat benignly in documentation
// (punctuation markers and a few known false-positive strings). Leading
// comment-block markers ("*" and "//") are ignored for comparisons but kept
// in the reported line text.
package scanner
