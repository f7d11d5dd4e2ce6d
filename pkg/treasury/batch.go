package treasury

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedResourceType  = errors.New("unsupported resource type")
	ErrUnsupportedOperationType = errors.New("unsupported operation type")
	ErrInvalidBatchData         = errors.New("invalid data type for batch operation")
	ErrTransactionFailed        = errors.New("transaction failed")
)

// BatchOperationType is the action a BatchOperation performs.
type BatchOperationType string

// Batch operation types.
const (
	BatchCreate   BatchOperationType = "create"
	BatchRetrieve BatchOperationType = "retrieve"
	BatchUpdate   BatchOperationType = "update"
	BatchDelete   BatchOperationType = "delete"
)

// BatchResource names the resource a BatchOperation targets.
type BatchResource string

// Batch resources.
const (
	BatchCounterparty      BatchResource = "counterparty"
	BatchExternalAccount   BatchResource = "external_account"
	BatchPaymentOrder      BatchResource = "payment_order"
	BatchExpectedPayment   BatchResource = "expected_payment"
	BatchInvoice           BatchResource = "invoice"
	BatchLedger            BatchResource = "ledger"
	BatchLedgerAccount     BatchResource = "ledger_account"
	BatchLedgerTransaction BatchResource = "ledger_transaction"
)

// BatchOperation is one request in a batch.
//
// Data is the create params pointer for BatchCreate, an *UpdateData for
// BatchUpdate and the object ID string for BatchRetrieve and BatchDelete.
type BatchOperation struct {
	ID       string
	Type     BatchOperationType
	Resource BatchResource
	Data     interface{}
	Callback func(result BatchResult)
}

// UpdateData pairs an object ID with its update params.
type UpdateData[T any] struct {
	ID     string
	Params *T
}

// BatchResult is the outcome of one BatchOperation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// BatchExecutor runs batch operations against a Client with bounded concurrency.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a batch executor. A concurrency below one uses the default of 5.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultBatchConcurrency
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs the operations and returns one result per operation, in order.
// Failures are reported per result; the returned error is always nil unless
// ctx was cancelled before every operation started.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))
	semaphore := make(chan struct{}, b.concurrency)

	var waitGroup sync.WaitGroup

	for index, operation := range operations {
		err := acquire(ctx, semaphore)
		if err != nil {
			waitGroup.Wait()

			for i := index; i < len(operations); i++ {
				results[i] = BatchResult{ID: operations[i].ID, Error: err}
			}

			return results, fmt.Errorf("executing batch: %w", err)
		}

		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()
			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)

			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(*result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results, nil
}

func acquire(ctx context.Context, semaphore chan struct{}) error {
	err := ctx.Err()
	if err != nil {
		return err
	}

	select {
	case semaphore <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	switch operation.Resource {
	case BatchCounterparty:
		return crudOps[CounterpartyCreateParams, CounterpartyUpdateParams, Counterparty]{
			create:   b.client.Counterparties().Create,
			retrieve: b.client.Counterparties().Retrieve,
			update:   b.client.Counterparties().Update,
			delete:   b.client.Counterparties().Delete,
		}.execute(ctx, operation)
	case BatchExternalAccount:
		return crudOps[ExternalAccountCreateParams, ExternalAccountUpdateParams, ExternalAccount]{
			create:   b.client.ExternalAccounts().Create,
			retrieve: b.client.ExternalAccounts().Retrieve,
			update:   b.client.ExternalAccounts().Update,
			delete:   b.client.ExternalAccounts().Delete,
		}.execute(ctx, operation)
	case BatchPaymentOrder:
		return crudOps[PaymentOrderCreateParams, PaymentOrderUpdateParams, PaymentOrder]{
			create:   b.client.PaymentOrders().Create,
			retrieve: b.client.PaymentOrders().Retrieve,
			update:   b.client.PaymentOrders().Update,
		}.execute(ctx, operation)
	case BatchExpectedPayment:
		return crudOps[ExpectedPaymentCreateParams, ExpectedPaymentUpdateParams, ExpectedPayment]{
			create:   b.client.ExpectedPayments().Create,
			retrieve: b.client.ExpectedPayments().Retrieve,
			update:   b.client.ExpectedPayments().Update,
			delete:   b.client.ExpectedPayments().Delete,
		}.execute(ctx, operation)
	case BatchInvoice:
		return crudOps[InvoiceCreateParams, InvoiceUpdateParams, Invoice]{
			create:   b.client.Invoices().Create,
			retrieve: b.client.Invoices().Retrieve,
			update:   b.client.Invoices().Update,
		}.execute(ctx, operation)
	case BatchLedger:
		return crudOps[LedgerCreateParams, LedgerUpdateParams, Ledger]{
			create:   b.client.Ledgers().Create,
			retrieve: b.client.Ledgers().Retrieve,
			update:   b.client.Ledgers().Update,
			delete:   b.client.Ledgers().Delete,
		}.execute(ctx, operation)
	case BatchLedgerAccount:
		return crudOps[LedgerAccountCreateParams, LedgerAccountUpdateParams, LedgerAccount]{
			create:   b.client.LedgerAccounts().Create,
			retrieve: b.client.LedgerAccounts().Retrieve,
			update:   b.client.LedgerAccounts().Update,
			delete:   b.client.LedgerAccounts().Delete,
		}.execute(ctx, operation)
	case BatchLedgerTransaction:
		return crudOps[LedgerTransactionCreateParams, LedgerTransactionUpdateParams, LedgerTransaction]{
			create:   b.client.LedgerTransactions().Create,
			retrieve: b.client.LedgerTransactions().Retrieve,
			update:   b.client.LedgerTransactions().Update,
		}.execute(ctx, operation)
	default:
		return &BatchResult{
			ID:    operation.ID,
			Error: fmt.Errorf("%w: %s", ErrUnsupportedResourceType, operation.Resource),
		}
	}
}

// crudOps adapts one resource service to batch operations. A nil func marks
// an operation the resource does not support.
type crudOps[C, U, R any] struct {
	create   func(ctx context.Context, params *C) (*R, error)
	retrieve func(ctx context.Context, id string) (*R, error)
	update   func(ctx context.Context, id string, params *U) (*R, error)
	delete   func(ctx context.Context, id string) error
}

func (o crudOps[C, U, R]) execute(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	data, err := o.dispatch(ctx, operation)
	result.Success = err == nil
	result.Data = data
	result.Error = err

	return result
}

func (o crudOps[C, U, R]) dispatch(ctx context.Context, operation BatchOperation) (interface{}, error) {
	unsupported := fmt.Errorf("%w: %s %s", ErrUnsupportedOperationType, operation.Type, operation.Resource)

	switch operation.Type {
	case BatchCreate:
		params, ok := operation.Data.(*C)
		if !ok {
			return nil, fmt.Errorf("%w: %s %s", ErrInvalidBatchData, operation.Type, operation.Resource)
		}

		return o.create(ctx, params)
	case BatchRetrieve:
		id, ok := operation.Data.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s %s", ErrInvalidBatchData, operation.Type, operation.Resource)
		}

		return o.retrieve(ctx, id)
	case BatchUpdate:
		data, ok := operation.Data.(*UpdateData[U])
		if !ok {
			return nil, fmt.Errorf("%w: %s %s", ErrInvalidBatchData, operation.Type, operation.Resource)
		}

		return o.update(ctx, data.ID, data.Params)
	case BatchDelete:
		if o.delete == nil {
			return nil, unsupported
		}

		id, ok := operation.Data.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s %s", ErrInvalidBatchData, operation.Type, operation.Resource)
		}

		return nil, o.delete(ctx, id)
	default:
		return nil, unsupported
	}
}

// BatchBuilder collects batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// AddCreateCounterparty adds a counterparty creation.
func (b *BatchBuilder) AddCreateCounterparty(id string, params *CounterpartyCreateParams) *BatchBuilder {
	return b.add(id, BatchCreate, BatchCounterparty, params)
}

// AddCreatePaymentOrder adds a payment order creation.
func (b *BatchBuilder) AddCreatePaymentOrder(id string, params *PaymentOrderCreateParams) *BatchBuilder {
	return b.add(id, BatchCreate, BatchPaymentOrder, params)
}

// AddUpdatePaymentOrder adds a payment order update.
func (b *BatchBuilder) AddUpdatePaymentOrder(id, paymentOrderID string, params *PaymentOrderUpdateParams) *BatchBuilder {
	return b.add(id, BatchUpdate, BatchPaymentOrder, &UpdateData[PaymentOrderUpdateParams]{ID: paymentOrderID, Params: params})
}

// AddCreateExpectedPayment adds an expected payment creation.
func (b *BatchBuilder) AddCreateExpectedPayment(id string, params *ExpectedPaymentCreateParams) *BatchBuilder {
	return b.add(id, BatchCreate, BatchExpectedPayment, params)
}

// AddCreateLedgerAccount adds a ledger account creation.
func (b *BatchBuilder) AddCreateLedgerAccount(id string, params *LedgerAccountCreateParams) *BatchBuilder {
	return b.add(id, BatchCreate, BatchLedgerAccount, params)
}

// AddCreateLedgerTransaction adds a ledger transaction creation.
func (b *BatchBuilder) AddCreateLedgerTransaction(id string, params *LedgerTransactionCreateParams) *BatchBuilder {
	return b.add(id, BatchCreate, BatchLedgerTransaction, params)
}

// AddRetrieve adds a retrieval of any resource.
func (b *BatchBuilder) AddRetrieve(id string, resource BatchResource, objectID string) *BatchBuilder {
	return b.add(id, BatchRetrieve, resource, objectID)
}

// AddDelete adds a deletion of any resource that supports it.
func (b *BatchBuilder) AddDelete(id string, resource BatchResource, objectID string) *BatchBuilder {
	return b.add(id, BatchDelete, resource, objectID)
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the collected operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}

func (b *BatchBuilder) add(id string, opType BatchOperationType, resource BatchResource, data interface{}) *BatchBuilder {
	return b.AddOperation(BatchOperation{
		ID:       id,
		Type:     opType,
		Resource: resource,
		Data:     data,
	})
}

// BatchTransaction runs a batch and, when any operation fails, deletes the
// objects its successful creations produced. Updates are not reverted, and
// payment orders, invoices and ledger transactions cannot be deleted.
type BatchTransaction struct {
	operations []BatchOperation
	executor   *BatchExecutor
	rollback   bool
}

// NewBatchTransaction creates a new batch transaction with rollback enabled.
func NewBatchTransaction(executor *BatchExecutor) *BatchTransaction {
	return &BatchTransaction{
		executor:   executor,
		operations: make([]BatchOperation, 0),
		rollback:   true,
	}
}

// Add adds an operation to the transaction.
func (t *BatchTransaction) Add(operation BatchOperation) *BatchTransaction {
	t.operations = append(t.operations, operation)

	return t
}

// SetRollback sets whether to roll back on failure.
func (t *BatchTransaction) SetRollback(rollback bool) *BatchTransaction {
	t.rollback = rollback

	return t
}

// Execute executes the transaction. It returns ErrTransactionFailed when any
// operation failed and rollback is enabled.
func (t *BatchTransaction) Execute(ctx context.Context) ([]BatchResult, error) {
	results, err := t.executor.Execute(ctx, t.operations)
	if err != nil {
		return results, err
	}

	var failedOps []string

	for _, result := range results {
		if !result.Success {
			failedOps = append(failedOps, result.ID)
		}
	}

	if len(failedOps) == 0 || !t.rollback {
		return results, nil
	}

	rollbackErr := t.performRollback(ctx, results)

	return results, errors.Join(
		fmt.Errorf("%w, %d operations failed: %v", ErrTransactionFailed, len(failedOps), failedOps),
		rollbackErr,
	)
}

type identified interface {
	GetID() string
}

func (t *BatchTransaction) performRollback(ctx context.Context, results []BatchResult) error {
	var rollbackOps []BatchOperation

	for i, result := range results {
		original := t.operations[i]
		if !result.Success || original.Type != BatchCreate || !deletable(original.Resource) {
			continue
		}

		created, ok := result.Data.(identified)
		if !ok {
			continue
		}

		rollbackOps = append(rollbackOps, BatchOperation{
			ID:       "rollback_" + original.ID,
			Type:     BatchDelete,
			Resource: original.Resource,
			Data:     created.GetID(),
		})
	}

	if len(rollbackOps) == 0 {
		return nil
	}

	rollbackResults, err := t.executor.Execute(ctx, rollbackOps)
	if err != nil {
		return err
	}

	return BatchErrors(rollbackResults)
}

func deletable(resource BatchResource) bool {
	switch resource {
	case BatchCounterparty, BatchExternalAccount, BatchExpectedPayment, BatchLedger, BatchLedgerAccount:
		return true
	default:
		return false
	}
}

// BatchErrors joins the errors of the failed results, prefixed with their
// operation IDs. It returns nil when every operation succeeded.
func BatchErrors(results []BatchResult) error {
	var errs []error

	for _, result := range results {
		if result.Error != nil {
			errs = append(errs, fmt.Errorf("%s: %w", result.ID, result.Error))
		}
	}

	return errors.Join(errs...)
}
