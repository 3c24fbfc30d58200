// Package designtokens reads, builds, resolves and writes design token
// documents in the Design Tokens Community Group (DTCG) format.
//
// A document is a tree of [Group] nodes whose leaves are [Token] nodes. A
// mapping is a token exactly when it has a "$value" key; every other
// mapping is a group. Tokens may refer to other tokens with alias strings
// of the form "{group.token}", and may inherit their type from the
// nearest enclosing group which declares one.
//
// Aliases and types are resolved on demand by [Token.ResolvedValue] and
// [Token.ResolvedType]. Nothing is cached, so mutations of the tree are
// seen by the next call.
//
// # Thread Safety
//
// Trees are not safe for concurrent mutation. Concurrent readers are fine
// so long as nothing modifies the tree.
package designtokens
