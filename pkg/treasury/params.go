package treasury

import (
	"fmt"
	"net/url"
	"time"

	"github.com/fivetwenty-io/treasury-client/internal/apiquery"
)

// ListParams is implemented by every list parameter type.
type ListParams[P any] interface {
	CursorParams[P]
	RequestOptionsProvider
	ToValues() (url.Values, error)
}

func encodeListParams(params any, opts RequestOptions, metadata Metadata) (url.Values, error) {
	values, err := apiquery.Encode(params, opts.AdditionalQueryParams)
	if err != nil {
		return nil, fmt.Errorf("%T: %w", params, err)
	}

	apiquery.AddMap(values, "metadata", metadata)

	return values, nil
}

// AccountDetailParams describes an account number supplied on account creation.
type AccountDetailParams struct {
	AccountNumber     string            `json:"account_number"                validate:"required"`
	AccountNumberType AccountNumberType `json:"account_number_type,omitempty"`
}

// RoutingDetailParams describes a routing number supplied on account creation.
type RoutingDetailParams struct {
	RoutingNumber     string            `json:"routing_number"         validate:"required"`
	RoutingNumberType RoutingNumberType `json:"routing_number_type"    validate:"required"`
	PaymentType       PaymentType       `json:"payment_type,omitempty"`
}

// Counterparties

// CounterpartyAccountParams describes an external account created together with a counterparty.
type CounterpartyAccountParams struct {
	Name           string                `json:"name,omitempty"`
	AccountType    AccountType           `json:"account_type,omitempty"`
	PartyName      string                `json:"party_name,omitempty"`
	PartyType      PartyType             `json:"party_type,omitempty"`
	AccountDetails []AccountDetailParams `json:"account_details,omitempty" validate:"dive"`
	RoutingDetails []RoutingDetailParams `json:"routing_details,omitempty" validate:"dive"`
	Metadata       Metadata              `json:"metadata,omitempty"`
}

// CounterpartyCreateParams is the body of a counterparty create request.
type CounterpartyCreateParams struct {
	RequestOptions

	Name                 string                      `json:"name"                             validate:"required"`
	Email                string                      `json:"email,omitempty"                  validate:"omitempty,email"`
	SendRemittanceAdvice bool                        `json:"send_remittance_advice,omitempty"`
	Accounts             []CounterpartyAccountParams `json:"accounts,omitempty"               validate:"dive"`
	Metadata             Metadata                    `json:"metadata,omitempty"`
}

// CounterpartyUpdateParams is the body of a counterparty update request.
// Missing fields are left unchanged; a Null field clears the value.
type CounterpartyUpdateParams struct {
	RequestOptions

	Name                 Field[string] `json:"name,omitzero"`
	Email                Field[string] `json:"email,omitzero"`
	SendRemittanceAdvice Field[bool]   `json:"send_remittance_advice,omitzero"`
	Metadata             Metadata      `json:"metadata,omitempty"`
}

// CounterpartyListParams filters a counterparty listing.
type CounterpartyListParams struct {
	RequestOptions

	AfterCursor         string   `schema:"after_cursor,omitempty"`
	PerPage             int      `schema:"per_page,omitempty"`
	Name                string   `schema:"name,omitempty"`
	Email               string   `schema:"email,omitempty"`
	CreatedAtLowerBound string   `schema:"created_at_lower_bound,omitempty"`
	CreatedAtUpperBound string   `schema:"created_at_upper_bound,omitempty"`
	Metadata            Metadata `schema:"-"`
}

// WithAfterCursor implements CursorParams.
func (p CounterpartyListParams) WithAfterCursor(cursor string) CounterpartyListParams {
	p.AfterCursor = cursor

	return p
}

// ToValues encodes the parameters as a query string.
func (p CounterpartyListParams) ToValues() (url.Values, error) {
	return encodeListParams(p, p.RequestOptions, p.Metadata)
}

// CounterpartyCollectAccountParams requests account details from a counterparty.
type CounterpartyCollectAccountParams struct {
	RequestOptions

	Direction      PaymentDirection `json:"direction"                 validate:"required,oneof=credit debit"`
	SendEmail      bool             `json:"send_email,omitempty"`
	CustomRedirect string           `json:"custom_redirect,omitempty" validate:"omitempty,url"`
	Fields         []string         `json:"fields,omitempty"`
}

// CounterpartyPage is one page of counterparties.
type CounterpartyPage = Page[Counterparty, CounterpartyListParams]

// External accounts

// ExternalAccountCreateParams is the body of an external account create request.
type ExternalAccountCreateParams struct {
	RequestOptions

	CounterpartyID string                `json:"counterparty_id"           validate:"required"`
	Name           string                `json:"name,omitempty"`
	AccountType    AccountType           `json:"account_type,omitempty"`
	PartyName      string                `json:"party_name,omitempty"`
	PartyType      PartyType             `json:"party_type,omitempty"`
	AccountDetails []AccountDetailParams `json:"account_details,omitempty" validate:"dive"`
	RoutingDetails []RoutingDetailParams `json:"routing_details,omitempty" validate:"dive"`
	Metadata       Metadata              `json:"metadata,omitempty"`
}

// ExternalAccountUpdateParams is the body of an external account update request.
type ExternalAccountUpdateParams struct {
	RequestOptions

	Name           Field[string]      `json:"name,omitzero"`
	AccountType    Field[AccountType] `json:"account_type,omitzero"`
	PartyName      Field[string]      `json:"party_name,omitzero"`
	PartyType      Field[PartyType]   `json:"party_type,omitzero"`
	CounterpartyID Field[string]      `json:"counterparty_id,omitzero"`
	Metadata       Metadata           `json:"metadata,omitempty"`
}

// ExternalAccountListParams filters an external account listing.
type ExternalAccountListParams struct {
	RequestOptions

	AfterCursor    string   `schema:"after_cursor,omitempty"`
	PerPage        int      `schema:"per_page,omitempty"`
	CounterpartyID string   `schema:"counterparty_id,omitempty"`
	PartyName      string   `schema:"party_name,omitempty"`
	Metadata       Metadata `schema:"-"`
}

// WithAfterCursor implements CursorParams.
func (p ExternalAccountListParams) WithAfterCursor(cursor string) ExternalAccountListParams {
	p.AfterCursor = cursor

	return p
}

// ToValues encodes the parameters as a query string.
func (p ExternalAccountListParams) ToValues() (url.Values, error) {
	return encodeListParams(p, p.RequestOptions, p.Metadata)
}

// ExternalAccountVerifyParams starts micro-deposit verification.
type ExternalAccountVerifyParams struct {
	RequestOptions

	OriginatingAccountID string      `json:"originating_account_id" validate:"required"`
	PaymentType          PaymentType `json:"payment_type"           validate:"required"`
	Currency             Currency    `json:"currency,omitempty"`
	Priority             string      `json:"priority,omitempty"     validate:"omitempty,oneof=high normal"`
}

// ExternalAccountCompleteVerificationParams confirms the micro-deposit amounts.
type ExternalAccountCompleteVerificationParams struct {
	RequestOptions

	Amounts []int64 `json:"amounts" validate:"len=2,dive,gt=0"`
}

// ExternalAccountPage is one page of external accounts.
type ExternalAccountPage = Page[ExternalAccount, ExternalAccountListParams]

// Payment orders

// PaymentOrderCreateParams is the body of a payment order create request.
type PaymentOrderCreateParams struct {
	RequestOptions

	Type                 PaymentType      `json:"type"                           validate:"required"`
	Amount               int64            `json:"amount"                         validate:"gt=0"`
	Direction            PaymentDirection `json:"direction"                      validate:"required,oneof=credit debit"`
	OriginatingAccountID string           `json:"originating_account_id"         validate:"required"`
	ReceivingAccountID   string           `json:"receiving_account_id,omitempty"`
	Currency             Currency         `json:"currency,omitempty"             validate:"omitempty,len=3"`
	Description          string           `json:"description,omitempty"`
	EffectiveDate        string           `json:"effective_date,omitempty"       validate:"omitempty,datetime=2006-01-02"`
	StatementDescriptor  string           `json:"statement_descriptor,omitempty"`
	Metadata             Metadata         `json:"metadata,omitempty"`
}

// PaymentOrderUpdateParams is the body of a payment order update request.
type PaymentOrderUpdateParams struct {
	RequestOptions

	Status        Field[PaymentOrderStatus] `json:"status,omitzero"`
	Amount        Field[int64]              `json:"amount,omitzero"`
	Description   Field[string]             `json:"description,omitzero"`
	EffectiveDate Field[string]             `json:"effective_date,omitzero"`
	Metadata      Metadata                  `json:"metadata,omitempty"`
}

// PaymentOrderListParams filters a payment order listing.
type PaymentOrderListParams struct {
	RequestOptions

	AfterCursor          string             `schema:"after_cursor,omitempty"`
	PerPage              int                `schema:"per_page,omitempty"`
	Type                 PaymentType        `schema:"type,omitempty"`
	Status               PaymentOrderStatus `schema:"status,omitempty"`
	Direction            PaymentDirection   `schema:"direction,omitempty"`
	CounterpartyID       string             `schema:"counterparty_id,omitempty"`
	OriginatingAccountID string             `schema:"originating_account_id,omitempty"`
	EffectiveDateStart   string             `schema:"effective_date_start,omitempty"`
	EffectiveDateEnd     string             `schema:"effective_date_end,omitempty"`
	Metadata             Metadata           `schema:"-"`
}

// WithAfterCursor implements CursorParams.
func (p PaymentOrderListParams) WithAfterCursor(cursor string) PaymentOrderListParams {
	p.AfterCursor = cursor

	return p
}

// ToValues encodes the parameters as a query string.
func (p PaymentOrderListParams) ToValues() (url.Values, error) {
	return encodeListParams(p, p.RequestOptions, p.Metadata)
}

// PaymentOrderPage is one page of payment orders.
type PaymentOrderPage = Page[PaymentOrder, PaymentOrderListParams]

// Expected payments

// ExpectedPaymentCreateParams is the body of an expected payment create request.
type ExpectedPaymentCreateParams struct {
	RequestOptions

	AmountUpperBound  int64            `json:"amount_upper_bound"         validate:"gte=0,gtefield=AmountLowerBound"`
	AmountLowerBound  int64            `json:"amount_lower_bound"         validate:"gte=0"`
	Direction         PaymentDirection `json:"direction"                  validate:"required,oneof=credit debit"`
	InternalAccountID string           `json:"internal_account_id"        validate:"required"`
	Currency          Currency         `json:"currency,omitempty"`
	Type              PaymentType      `json:"type,omitempty"`
	CounterpartyID    string           `json:"counterparty_id,omitempty"`
	DateUpperBound    string           `json:"date_upper_bound,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateLowerBound    string           `json:"date_lower_bound,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description       string           `json:"description,omitempty"`
	Metadata          Metadata         `json:"metadata,omitempty"`
}

// ExpectedPaymentUpdateParams is the body of an expected payment update request.
type ExpectedPaymentUpdateParams struct {
	RequestOptions

	AmountUpperBound Field[int64]  `json:"amount_upper_bound,omitzero"`
	AmountLowerBound Field[int64]  `json:"amount_lower_bound,omitzero"`
	CounterpartyID   Field[string] `json:"counterparty_id,omitzero"`
	DateUpperBound   Field[string] `json:"date_upper_bound,omitzero"`
	DateLowerBound   Field[string] `json:"date_lower_bound,omitzero"`
	Description      Field[string] `json:"description,omitzero"`
	Metadata         Metadata      `json:"metadata,omitempty"`
}

// ExpectedPaymentListParams filters an expected payment listing.
type ExpectedPaymentListParams struct {
	RequestOptions

	AfterCursor       string                `schema:"after_cursor,omitempty"`
	PerPage           int                   `schema:"per_page,omitempty"`
	Status            ExpectedPaymentStatus `schema:"status,omitempty"`
	Type              PaymentType           `schema:"type,omitempty"`
	Direction         PaymentDirection      `schema:"direction,omitempty"`
	CounterpartyID    string                `schema:"counterparty_id,omitempty"`
	InternalAccountID string                `schema:"internal_account_id,omitempty"`
	Metadata          Metadata              `schema:"-"`
}

// WithAfterCursor implements CursorParams.
func (p ExpectedPaymentListParams) WithAfterCursor(cursor string) ExpectedPaymentListParams {
	p.AfterCursor = cursor

	return p
}

// ToValues encodes the parameters as a query string.
func (p ExpectedPaymentListParams) ToValues() (url.Values, error) {
	return encodeListParams(p, p.RequestOptions, p.Metadata)
}

// ExpectedPaymentPage is one page of expected payments.
type ExpectedPaymentPage = Page[ExpectedPayment, ExpectedPaymentListParams]

// Invoices

// InvoiceCreateParams is the body of an invoice create request.
type InvoiceCreateParams struct {
	RequestOptions

	CounterpartyID       string    `json:"counterparty_id"        validate:"required"`
	OriginatingAccountID string    `json:"originating_account_id" validate:"required"`
	DueDate              time.Time `json:"due_date"               validate:"required"`
	Currency             Currency  `json:"currency,omitempty"`
	Description          string    `json:"description,omitempty"`
	Metadata             Metadata  `json:"metadata,omitempty"`
}

// InvoiceUpdateParams is the body of an invoice update request.
type InvoiceUpdateParams struct {
	RequestOptions

	Status      Field[InvoiceStatus] `json:"status,omitzero"`
	DueDate     Field[time.Time]     `json:"due_date,omitzero"`
	Description Field[string]        `json:"description,omitzero"`
	Metadata    Metadata             `json:"metadata,omitempty"`
}

// InvoiceListParams filters an invoice listing.
type InvoiceListParams struct {
	RequestOptions

	AfterCursor    string        `schema:"after_cursor,omitempty"`
	PerPage        int           `schema:"per_page,omitempty"`
	CounterpartyID string        `schema:"counterparty_id,omitempty"`
	Status         InvoiceStatus `schema:"status,omitempty"`
	Number         string        `schema:"number,omitempty"`
	Metadata       Metadata      `schema:"-"`
}

// WithAfterCursor implements CursorParams.
func (p InvoiceListParams) WithAfterCursor(cursor string) InvoiceListParams {
	p.AfterCursor = cursor

	return p
}

// ToValues encodes the parameters as a query string.
func (p InvoiceListParams) ToValues() (url.Values, error) {
	return encodeListParams(p, p.RequestOptions, p.Metadata)
}

// InvoicePage is one page of invoices.
type InvoicePage = Page[Invoice, InvoiceListParams]

// Ledgers

// LedgerCreateParams is the body of a ledger create request.
type LedgerCreateParams struct {
	RequestOptions

	Name        string   `json:"name"                  validate:"required"`
	Description string   `json:"description,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

// LedgerUpdateParams is the body of a ledger update request.
type LedgerUpdateParams struct {
	RequestOptions

	Name        Field[string] `json:"name,omitzero"`
	Description Field[string] `json:"description,omitzero"`
	Metadata    Metadata      `json:"metadata,omitempty"`
}

// LedgerListParams filters a ledger listing.
type LedgerListParams struct {
	RequestOptions

	AfterCursor string   `schema:"after_cursor,omitempty"`
	PerPage     int      `schema:"per_page,omitempty"`
	IDs         []string `schema:"id[],omitempty"`
	Metadata    Metadata `schema:"-"`
}

// WithAfterCursor implements CursorParams.
func (p LedgerListParams) WithAfterCursor(cursor string) LedgerListParams {
	p.AfterCursor = cursor

	return p
}

// ToValues encodes the parameters as a query string.
func (p LedgerListParams) ToValues() (url.Values, error) {
	return encodeListParams(p, p.RequestOptions, p.Metadata)
}

// LedgerPage is one page of ledgers.
type LedgerPage = Page[Ledger, LedgerListParams]

// Ledger accounts

// LedgerAccountCreateParams is the body of a ledger account create request.
type LedgerAccountCreateParams struct {
	RequestOptions

	Name          string        `json:"name"                  validate:"required"`
	LedgerID      string        `json:"ledger_id"             validate:"required"`
	Currency      Currency      `json:"currency"              validate:"required"`
	NormalBalance NormalBalance `json:"normal_balance"        validate:"required,oneof=credit debit"`
	Description   string        `json:"description,omitempty"`
	Metadata      Metadata      `json:"metadata,omitempty"`
}

// LedgerAccountUpdateParams is the body of a ledger account update request.
type LedgerAccountUpdateParams struct {
	RequestOptions

	Name        Field[string] `json:"name,omitzero"`
	Description Field[string] `json:"description,omitzero"`
	Metadata    Metadata      `json:"metadata,omitempty"`
}

// LedgerAccountListParams filters a ledger account listing.
type LedgerAccountListParams struct {
	RequestOptions

	AfterCursor string   `schema:"after_cursor,omitempty"`
	PerPage     int      `schema:"per_page,omitempty"`
	LedgerID    string   `schema:"ledger_id,omitempty"`
	Name        string   `schema:"name,omitempty"`
	Currency    Currency `schema:"currency,omitempty"`
	Metadata    Metadata `schema:"-"`
}

// WithAfterCursor implements CursorParams.
func (p LedgerAccountListParams) WithAfterCursor(cursor string) LedgerAccountListParams {
	p.AfterCursor = cursor

	return p
}

// ToValues encodes the parameters as a query string.
func (p LedgerAccountListParams) ToValues() (url.Values, error) {
	return encodeListParams(p, p.RequestOptions, p.Metadata)
}

// LedgerAccountPage is one page of ledger accounts.
type LedgerAccountPage = Page[LedgerAccount, LedgerAccountListParams]

// Ledger transactions

// LedgerEntryParams is one entry of a ledger transaction create request.
type LedgerEntryParams struct {
	Amount          int64            `json:"amount"            validate:"gt=0"`
	Direction       PaymentDirection `json:"direction"         validate:"required,oneof=credit debit"`
	LedgerAccountID string           `json:"ledger_account_id" validate:"required"`
}

// LedgerTransactionCreateParams is the body of a ledger transaction create request.
type LedgerTransactionCreateParams struct {
	RequestOptions

	LedgerEntries []LedgerEntryParams     `json:"ledger_entries"           validate:"required,min=2,dive"`
	Description   string                  `json:"description,omitempty"`
	Status        LedgerTransactionStatus `json:"status,omitempty"         validate:"omitempty,oneof=archived pending posted"`
	EffectiveDate string                  `json:"effective_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExternalID    string                  `json:"external_id,omitempty"`
	Metadata      Metadata                `json:"metadata,omitempty"`
}

// LedgerTransactionUpdateParams is the body of a ledger transaction update request.
type LedgerTransactionUpdateParams struct {
	RequestOptions

	Description Field[string]                  `json:"description,omitzero"`
	Status      Field[LedgerTransactionStatus] `json:"status,omitzero"`
	Metadata    Metadata                       `json:"metadata,omitempty"`
}

// LedgerTransactionListParams filters a ledger transaction listing.
type LedgerTransactionListParams struct {
	RequestOptions

	AfterCursor     string                  `schema:"after_cursor,omitempty"`
	PerPage         int                     `schema:"per_page,omitempty"`
	LedgerID        string                  `schema:"ledger_id,omitempty"`
	LedgerAccountID string                  `schema:"ledger_account_id,omitempty"`
	Status          LedgerTransactionStatus `schema:"status,omitempty"`
	ExternalID      string                  `schema:"external_id,omitempty"`
	Metadata        Metadata                `schema:"-"`
}

// WithAfterCursor implements CursorParams.
func (p LedgerTransactionListParams) WithAfterCursor(cursor string) LedgerTransactionListParams {
	p.AfterCursor = cursor

	return p
}

// ToValues encodes the parameters as a query string.
func (p LedgerTransactionListParams) ToValues() (url.Values, error) {
	return encodeListParams(p, p.RequestOptions, p.Metadata)
}

// LedgerTransactionPage is one page of ledger transactions.
type LedgerTransactionPage = Page[LedgerTransaction, LedgerTransactionListParams]
