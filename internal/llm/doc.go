// Package llm implements the remote AI fallback for questions the canned
// query resolver cannot answer, with local canned answers as the last line of
// defense.
package llm
