// Package testutil contains fixture "student" code used across tests:
// submissions whose parameter and field names are deliberately abbreviated,
// misspelled or reordered relative to the handout. The fixtures are
// intentionally minimal and avoid adding third-party dependencies. They are
// not intended for production usage.
package testutil
