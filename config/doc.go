// Package config bundles every tunable the search driver, evaluator, move
// orderer, and transposition table read from. A Config is built once per
// process via Default (or a caller-constructed literal) and never mutated
// afterward — every search branch reads the same immutable values.
package config
