// Package dispute provides the case-management side of the marketplace: when a
// party contests an order, a Dispute aggregate tracks the claim, the evidence,
// the conversation between the parties and the operator, and the operator's
// final decision.
//
// The package includes:
//   - Dispute: the aggregate root, carrying an order snapshot frozen at
//     opening time
//   - Status: the case state machine (open -> investigating -> resolved -> closed)
//   - Reason: why the case was raised
//   - Message: one entry in the append-only conversation thread
//   - Resolution: the operator's decision, including any refund amount
//
// A dispute never mutates its order directly. The resolution is translated
// into an order settlement by the services package, so the two aggregates stay
// independently persistable.
package dispute
