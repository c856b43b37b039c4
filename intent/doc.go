// Package intent selects exactly one routing label for a free-text message.
// Classification is two-phase: an LLM-backed primary classifier constrained
// to a closed label set, and a deterministic keyword fallback that always
// produces a label when the primary yields no decision. A guard rule demotes
// implausible dependency classifications so a single substance keyword can
// never over-trigger the most sensitive route.
package intent
