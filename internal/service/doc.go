// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// (defined in internal/store) to fulfill application features.
//
// Three services back the inventory API:
//
//   - StockLedger: reads a product's on-hand quantity and applies signed
//     deltas, refusing any change that would drive the quantity negative.
//   - ProductService: CRUD over product records, delegating all quantity
//     mutation to the stock ledger.
//   - UserService: create/list/delete over user records.
//
// Services receive dependencies through constructor injection and depend on
// store interfaces only, never on specific infrastructure implementations.
// They translate store-level errors into service sentinels that the API layer
// maps to HTTP status codes.
package service
