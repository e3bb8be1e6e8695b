// Package sii decodes and encodes the SII text format used by the game
// engine for scene and economy data:
//
//	SiiNunit
//	{
//	economy : _nameless.4156.4550 {
//		companies: 2
//		companies[0]: company.volatile.posped.berlin
//		companies[1]: company.volatile.tradeaux.paris
//		game_time: 12345
//	}
//	}
//
// Decode never fails. Lines it cannot classify are dropped, and a closing
// brace with no open section returns to the document root.
//
// Values keep their literal text whenever a native number could lose
// precision: decimals and integers beyond 2^53-1 decode as NumericString,
// and `&` hex-float bit patterns as HexFloat. Only small integers become
// Number.
//
// FindAll and FindFirst search a tree for sections by type tag. Each Match
// carries a Path which Lookup, Replace and Remove resolve again from the
// root.
package sii
