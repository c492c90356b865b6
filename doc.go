// Package cardwise picks, among the credit cards a user owns, the one that
// maximizes rewards for a given purchase, and tracks redeemable perks before
// they expire.
//
// The package is a set of pure computations over two inputs: the static card
// catalog (reference data, loaded once) and a Wallet (the user's mutable
// state, injected explicitly). Free text resolves to a spending category
// with MatchCategory, Rank orders wallet cards for it, the Wallet tracks
// perk claims per period, and Events derives the expiration reminders that
// EncodeICS serializes to a calendar document. Persistence is a thin
// boundary in Store; a failed load or save degrades to defaults and never
// takes the session down.
package cardwise
