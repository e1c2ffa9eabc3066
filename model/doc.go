// Package model defines the data types shared across the statement
// processing pipeline: raw detected tables, the normalized transaction
// ledger, and balance records with provenance.
package model
