// Package svcconfig parses and compiles RPC service-config documents.
//
// A service config arrives from a name resolver or control plane as an
// untrusted document naming remote methods and the settings a client should
// apply to calls on them. The package validates the document's shape,
// expands every method-config entry's names into call paths of the form
// "/service/method" or "/service/*", and compiles an immutable Table keyed
// by those paths. What a per-method value actually contains is the caller's
// business: entries are built by a caller-supplied Factory and cloned and
// released through a Behavior descriptor, so the compiler never inspects
// them.
//
// Compilation is all or nothing. Any structural violation anywhere in the
// document rejects the whole document with an error wrapping one of the
// sentinel reasons in this package, and values staged for earlier entries
// are released through the Behavior before the rejection is returned. A
// successfully built Table is never mutated again and is safe for unlimited
// concurrent lookups.
//
// Typical use:
//
//	cfg, err := svcconfig.Parse(raw)
//	if err != nil { ... }
//	policy, _, err := cfg.LoadBalancingPolicy()
//	table, err := svcconfig.Compile(cfg, factory, behavior)
//	if err != nil { ... }
//	opts, ok := table.Lookup("/acme.Search/Query")
//
// The Table is independent of the Config it was compiled from: every key
// and value it holds is an independently owned copy, so a table may outlive
// its document.
package svcconfig
