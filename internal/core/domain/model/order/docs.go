// Package order provides domain entities and business logic for marketplace
// order management. It implements the Order aggregate root with lifecycle
// management, guarded state transitions and checkout pricing.
//
// The package includes:
//   - Order: The aggregate root carrying buyer/seller/article snapshots,
//     fixed monetary breakdown and per-stage timestamps
//   - Status: A state machine that enforces valid lifecycle transitions
//   - DeliveryMethod and CalculateCommission: checkout pricing rules
//   - NewOrderNumber: the LM-<epoch-millis>-<base36> reconciliation token
//
// Key business rules:
//   - totalAmount = articlePrice + deliveryFee + commission, fixed at creation
//   - commission = max(round(articlePrice * sellerRate), MinCommission),
//     where the rate comes from the seller's account type
//   - every transition validates its predecessor status and fails with an
//     invalid-transition error otherwise
//   - Completed and Cancelled are terminal; Disputed is settled through the
//     linked dispute's resolution
package order
