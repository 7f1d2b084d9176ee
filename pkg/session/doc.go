/*
Package session implements session management for hosts serving several users.

It serializes actions on the same session with a reference-counted local
mutex and, when configured, a distributed lock, so concurrent requests can load,
transition and save a State without losing updates across replicas.
*/
package session
