// Package congruence provides Congruence, e ≡ 0 (mod m). A zero modulus
// denotes an ordinary equality; a positive modulus denotes a proper
// congruence. Congruence never carries a strict/closure flavor, so its
// underlying row.Row is always NecessarilyClosed.
package congruence
