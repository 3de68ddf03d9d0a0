/*
Package domain contains the core domain models for the tollgate hook layer.

It defines the vocabulary shared between the library and its host: Events and
States declared by the host's workflow engine, the transition Context handed
to every validator and callback, and the typed errors that cross the library
boundary. This package is kept pure and free of I/O, following Hexagonal
Architecture principles.

# Key Entities

  - Event / State: opaque identifiers owned by the host's workflow definition.
  - StateDef: a declared state together with its outgoing events.
  - Context: the per-transition record passed to validators and callbacks.
  - HaltError / UnknownEventError: the two error kinds surfaced to hosts.
*/
package domain
