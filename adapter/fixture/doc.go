// Package fixture loads example/test graphs from commented-JSON
// (".graphc") fixture files into [github.com/arborist-labs/subiso/triple.Graph]
// values. Comments and trailing commas are stripped with
// github.com/tidwall/jsonc before the strict encoding/json decode, so
// fixtures can carry the same inline annotation a hand-authored config
// file would.
//
// Vertices are written as short tokens rather than structured objects,
// since fixtures are meant to be hand-authored: a "?"-prefixed token is
// an abstract (renameable) vertex, anything else is a concrete label.
// Blank vertices are never written to a fixture — they are only ever
// minted at runtime via triple.NewBlank.
package fixture
