// Package order contains the Order aggregate and its supporting value objects.
//
// An Order is the durable record of a purchase: the owning user, the line
// items with their price snapshots, the computed total, delivery details and
// two status fields (fulfilment and payment). Orders are created exclusively
// through NewOrder, which computes the total from the snapshots, or restored
// from persistence through RestoreOrder.
package order
