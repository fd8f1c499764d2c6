// Package transform turns one resolved scene file into one component artifact.
//
// The Transformer runs the compiler to obtain a draft, then applies the
// rewrite pipeline returned by Pipeline. Rewrites are pure string functions
// applied in a fixed order; the injection rewrite anchors on the draft's
// first `return (`, so it runs before anything that could touch that token.
package transform
