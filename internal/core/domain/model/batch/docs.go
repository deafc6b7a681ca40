// Package batch contains the Batch aggregate: a named grouping of
// warehouse-ready jobs shipped together under one carrier and route, with
// denormalized totals and a status whose changes cascade to member jobs.
package batch
