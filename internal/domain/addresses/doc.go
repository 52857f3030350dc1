// Package addresses contains the domain entities and service contracts for
// address book records. Entities carry their own validation rules; the
// interfaces defined here are implemented by the application and
// persistence layers.
package addresses
