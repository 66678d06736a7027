/*
Package purchase implements the virtual top-up purchase workflow, the core
of the wallet backend.

A purchase runs through a fixed sequence, each step a potential failure
point:

 1. Validate the request (required fields, amount floors). No side effects
    on rejection.
 2. Load the user's ledger entry and check the balance. Insufficient funds
    fail here without creating a transaction record.
 3. Persist a pending debit transaction with a unique reference, durably,
    before any external call.
 4. Call the provider gateway, bounded by a timeout.
 5. On success, debit the ledger and finalize the transaction atomically;
    on failure, mark the transaction failed and leave the ledger untouched.

The balance check in step 2 is advisory: the settlement debit in step 5 is
an atomic conditional decrement, so concurrent purchases against the same
wallet can never overdraw it. The ledger balance changes if and only if the
transaction ends successful, and every created transaction reaches a
terminal status before Buy returns.

The gateway is the single external I/O boundary. Its failures are treated
as transient, surfaced to the caller after the transaction is marked
failed, and never retried within the request.
*/
package purchase
