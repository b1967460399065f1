// Package matcher provides compilation of syntax-qualified path patterns
// into matchers for slash-separated relative paths. It exists to decouple
// pattern consumers from any single pattern library's concrete types: each
// supported syntax is compiled by a different underlying engine, but all of
// them are exposed through the same single-method interface.
package matcher
