// Package job contains the Job aggregate and its owned entities: the
// append-only status timeline and attached documents.
//
// The Job aggregate enforces the lifecycle rules: the canonical status
// vocabulary, role- and ownership-gated status changes, assignment of
// drivers and delivery agents with their forced statuses, batch linkage
// eligibility, and the deletion lock for parcels already in the network.
package job
