/*
Package policy loads declarative hook wiring from YAML files.

A policy file binds workflow events to named predicates and actions. The
names are resolved against a Registry populated by the host at startup, then
replayed through the bulk attachers of a tollgate.Hooks. This keeps the
"which hooks fire on which events" decision in configuration while the hook
implementations stay in code.

The package also ships a minimal YAML workflow outline (states and their
outgoing events) so policies can be checked for undeclared events without
the real engine, e.g. by the `tollgate validate` command.
*/
package policy
