// Package cli wires configuration, catalogs, stores and hosts together for
// the oncoscreen command.
package cli
