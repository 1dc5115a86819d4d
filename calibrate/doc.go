// Package calibrate implements the name-matching engine that reconciles the
// parameter names a harness expects with the names third-party code actually
// declares. It is pure and stateless: Align maps two name lists to a
// best-guess one-to-one correspondence and knows nothing about callables,
// reflection or invocation.
//
// Matching happens in two phases. First, an actual name that is spelled
// exactly like an expected name, or like any right-truncated abbreviation of
// one, claims that name outright. Whatever remains is handed out by string
// similarity, highest score first, with ties falling to the earlier-declared
// expected name. Matching never fails; an expected name with no plausible
// counterpart simply maps to the empty string.
package calibrate
