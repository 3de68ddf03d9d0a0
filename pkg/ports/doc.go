/*
Package ports defines the driven ports (interfaces) for the tollgate hook layer.

These interfaces decouple the hook registries from the external workflow
engine that owns the actual state machine. Tollgate never executes
transitions itself; it only needs to query the engine's declared topology.
*/
package ports
