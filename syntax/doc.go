// Package syntax implements immutable, hash-consed abstract syntax trees
// for several logical formalisms: propositional logic, linear temporal
// logic, past linear temporal logic, linear dynamic logic (with its
// regular-expression sublanguage), and first-order logic.
//
// Every formula is built through a smart constructor that runs a
// validate -> normalize -> intern pipeline:
//   - validation enforces per-formalism invariants (arity, operand
//     formalism homogeneity, forbidden formalisms, symbol grammar);
//   - normalization applies the algebraic simplifications of the monotone
//     operators (identity, absorption, idempotence, associative
//     flattening) plus double-negation and ex-falso collapses;
//   - interning guarantees that structurally equal formulas of the same
//     formalism are represented by the identical instance.
//
// Structural identity is content-addressed: each node has a canonical
// key (sorted, NFC-normalized canonical JSON of its structure) and a
// memoized domain-separated SHA-256 fingerprint of that key. Commutative
// operators (And, Or, Equivalence, regular-expression Union) compute
// their key over the operand set, so operand order never affects
// identity.
//
// Formulas are immutable after construction and are never mutated by the
// cache; resetting the cache only breaks identity guarantees between
// formulas built before and after the reset. All tree walks are plain
// recursion over immutable trees, bounded by formula depth.
package syntax
