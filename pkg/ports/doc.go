/*
Package ports defines the driven ports for the sxm collaborators.

The engine core (pkg/testgen) has no ports: it is a pure function of the
machine contract. Ports exist for the surrounding tooling, currently the
execution runner's durable sessions.

  - SessionStore: persists and loads runner session snapshots, enabling
    "stop & resume" interactive runs.
*/
package ports
