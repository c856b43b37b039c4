// Package rai implements the responsible-AI validation engine. Every agent
// response passes through Engine.Validate, which runs three independent
// check categories (fairness, transparency, ethical data handling) and
// aggregates them: overall passed is the AND of the categories, overall risk
// the MAX under low < medium < high < critical.
//
// The heuristics are deliberately data-driven: bias, privacy and phrasing
// matchers live in pattern tables so each category stays independently
// testable and extensible.
package rai
