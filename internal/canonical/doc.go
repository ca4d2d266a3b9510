// Package canonical produces deterministic JSON for score reports and golden
// snapshots.
//
// The encoding follows RFC 8785: object keys sorted by UTF-16 code units,
// strings NFC normalized, no HTML escaping, no whitespace. Only strings,
// integers, booleans, arrays and objects are accepted; floats and null are
// rejected so two equal reports always serialize to identical bytes.
package canonical
