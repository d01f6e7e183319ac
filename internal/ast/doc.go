// Package ast models the zx syntax tree.
//
// Tagged unions are kind-discriminated structs with one pointer payload
// per variant; exactly the payload matching Kind is non-nil. That keeps
// the whole tree serializable through msgpack without custom codecs and
// lets downstream traversal switch on Kind without presence checks.
//
// Any construct that fails to parse is still materialized in its
// structural slot, carrying the syntax error in Err ("poisoned but
// present"). A tree is therefore structurally total for one parse pass:
// the declaration count equals the parse attempt count.
//
// The tree is strictly owner-shaped: no aliasing, no cycles.
package ast
