package treasury

import (
	"time"
)

// Counterparty represents a person or business that money is sent to or received from.
type Counterparty struct {
	Resource `yaml:",inline"`

	Name                 Field[string]                         `json:"name,omitzero"                   yaml:"name,omitempty"`
	Email                Field[string]                         `json:"email,omitzero"                  yaml:"email,omitempty"`
	SendRemittanceAdvice Field[bool]                           `json:"send_remittance_advice,omitzero" yaml:"send_remittance_advice,omitempty"`
	VerificationStatus   Field[CounterpartyVerificationStatus] `json:"verification_status,omitzero"    yaml:"verification_status,omitempty"`
	Accounts             []ExternalAccount                     `json:"accounts,omitempty"              yaml:"accounts,omitempty"`
	Metadata             Metadata                              `json:"metadata,omitempty"              yaml:"metadata,omitempty"`
	DiscardedAt          Field[time.Time]                      `json:"discarded_at,omitzero"           yaml:"discarded_at,omitempty"`

	ExtraFields ExtraFields `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Counterparty) UnmarshalJSON(data []byte) error {
	type alias Counterparty

	return unmarshalWithExtras(data, (*alias)(c), &c.ExtraFields)
}

// MarshalJSON implements json.Marshaler.
func (c Counterparty) MarshalJSON() ([]byte, error) {
	type alias Counterparty

	return marshalWithExtras(alias(c), c.ExtraFields)
}

// AccountDetail is one account number of an external or internal account.
type AccountDetail struct {
	ID                string                   `json:"id"                                yaml:"id"`
	AccountNumber     Field[string]            `json:"account_number,omitzero"           yaml:"account_number,omitempty"`
	AccountNumberSafe Field[string]            `json:"account_number_safe,omitzero"      yaml:"account_number_safe,omitempty"`
	AccountNumberType Field[AccountNumberType] `json:"account_number_type,omitzero"      yaml:"account_number_type,omitempty"`
	DiscardedAt       Field[time.Time]         `json:"discarded_at,omitzero"             yaml:"discarded_at,omitempty"`
}

// RoutingDetail is one routing number of an external or internal account.
type RoutingDetail struct {
	ID                string                   `json:"id"                            yaml:"id"`
	RoutingNumber     Field[string]            `json:"routing_number,omitzero"       yaml:"routing_number,omitempty"`
	RoutingNumberType Field[RoutingNumberType] `json:"routing_number_type,omitzero"  yaml:"routing_number_type,omitempty"`
	PaymentType       Field[PaymentType]       `json:"payment_type,omitzero"         yaml:"payment_type,omitempty"`
	BankName          Field[string]            `json:"bank_name,omitzero"            yaml:"bank_name,omitempty"`
}

// ExternalAccount is a bank account owned by a counterparty.
type ExternalAccount struct {
	Resource `yaml:",inline"`

	Name               Field[string]             `json:"name,omitzero"                yaml:"name,omitempty"`
	AccountType        Field[AccountType]        `json:"account_type,omitzero"        yaml:"account_type,omitempty"`
	PartyName          Field[string]             `json:"party_name,omitzero"          yaml:"party_name,omitempty"`
	PartyType          Field[PartyType]          `json:"party_type,omitzero"          yaml:"party_type,omitempty"`
	CounterpartyID     Field[string]             `json:"counterparty_id,omitzero"     yaml:"counterparty_id,omitempty"`
	AccountDetails     []AccountDetail           `json:"account_details,omitempty"    yaml:"account_details,omitempty"`
	RoutingDetails     []RoutingDetail           `json:"routing_details,omitempty"    yaml:"routing_details,omitempty"`
	VerificationStatus Field[VerificationStatus] `json:"verification_status,omitzero" yaml:"verification_status,omitempty"`
	Metadata           Metadata                  `json:"metadata,omitempty"           yaml:"metadata,omitempty"`
	DiscardedAt        Field[time.Time]          `json:"discarded_at,omitzero"        yaml:"discarded_at,omitempty"`

	ExtraFields ExtraFields `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *ExternalAccount) UnmarshalJSON(data []byte) error {
	type alias ExternalAccount

	return unmarshalWithExtras(data, (*alias)(a), &a.ExtraFields)
}

// MarshalJSON implements json.Marshaler.
func (a ExternalAccount) MarshalJSON() ([]byte, error) {
	type alias ExternalAccount

	return marshalWithExtras(alias(a), a.ExtraFields)
}

// PaymentOrder is an instruction to move money between accounts.
type PaymentOrder struct {
	Resource `yaml:",inline"`

	Type                 Field[PaymentType]        `json:"type,omitzero"                   yaml:"type,omitempty"`
	Amount               int64                     `json:"amount"                          yaml:"amount"`
	Direction            Field[PaymentDirection]   `json:"direction,omitzero"              yaml:"direction,omitempty"`
	Currency             Field[Currency]           `json:"currency,omitzero"               yaml:"currency,omitempty"`
	Status               Field[PaymentOrderStatus] `json:"status,omitzero"                 yaml:"status,omitempty"`
	OriginatingAccountID Field[string]             `json:"originating_account_id,omitzero" yaml:"originating_account_id,omitempty"`
	ReceivingAccountID   Field[string]             `json:"receiving_account_id,omitzero"   yaml:"receiving_account_id,omitempty"`
	CounterpartyID       Field[string]             `json:"counterparty_id,omitzero"        yaml:"counterparty_id,omitempty"`
	Description          Field[string]             `json:"description,omitzero"            yaml:"description,omitempty"`
	EffectiveDate        Field[string]             `json:"effective_date,omitzero"         yaml:"effective_date,omitempty"`
	StatementDescriptor  Field[string]             `json:"statement_descriptor,omitzero"   yaml:"statement_descriptor,omitempty"`
	Metadata             Metadata                  `json:"metadata,omitempty"              yaml:"metadata,omitempty"`

	ExtraFields ExtraFields `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PaymentOrder) UnmarshalJSON(data []byte) error {
	type alias PaymentOrder

	return unmarshalWithExtras(data, (*alias)(p), &p.ExtraFields)
}

// MarshalJSON implements json.Marshaler.
func (p PaymentOrder) MarshalJSON() ([]byte, error) {
	type alias PaymentOrder

	return marshalWithExtras(alias(p), p.ExtraFields)
}

// ExpectedPayment describes a payment that is expected to arrive and should be reconciled.
type ExpectedPayment struct {
	Resource `yaml:",inline"`

	AmountUpperBound  int64                        `json:"amount_upper_bound"            yaml:"amount_upper_bound"`
	AmountLowerBound  int64                        `json:"amount_lower_bound"            yaml:"amount_lower_bound"`
	Direction         Field[PaymentDirection]      `json:"direction,omitzero"            yaml:"direction,omitempty"`
	Currency          Field[Currency]              `json:"currency,omitzero"             yaml:"currency,omitempty"`
	Type              Field[PaymentType]           `json:"type,omitzero"                 yaml:"type,omitempty"`
	Status            Field[ExpectedPaymentStatus] `json:"status,omitzero"               yaml:"status,omitempty"`
	InternalAccountID Field[string]                `json:"internal_account_id,omitzero"  yaml:"internal_account_id,omitempty"`
	CounterpartyID    Field[string]                `json:"counterparty_id,omitzero"      yaml:"counterparty_id,omitempty"`
	DateUpperBound    Field[string]                `json:"date_upper_bound,omitzero"     yaml:"date_upper_bound,omitempty"`
	DateLowerBound    Field[string]                `json:"date_lower_bound,omitzero"     yaml:"date_lower_bound,omitempty"`
	Description       Field[string]                `json:"description,omitzero"          yaml:"description,omitempty"`
	Metadata          Metadata                     `json:"metadata,omitempty"            yaml:"metadata,omitempty"`

	ExtraFields ExtraFields `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ExpectedPayment) UnmarshalJSON(data []byte) error {
	type alias ExpectedPayment

	return unmarshalWithExtras(data, (*alias)(e), &e.ExtraFields)
}

// MarshalJSON implements json.Marshaler.
func (e ExpectedPayment) MarshalJSON() ([]byte, error) {
	type alias ExpectedPayment

	return marshalWithExtras(alias(e), e.ExtraFields)
}

// Invoice is a bill sent to a counterparty.
type Invoice struct {
	Resource `yaml:",inline"`

	Number               Field[string]        `json:"number,omitzero"                 yaml:"number,omitempty"`
	CounterpartyID       Field[string]        `json:"counterparty_id,omitzero"        yaml:"counterparty_id,omitempty"`
	OriginatingAccountID Field[string]        `json:"originating_account_id,omitzero" yaml:"originating_account_id,omitempty"`
	Currency             Field[Currency]      `json:"currency,omitzero"               yaml:"currency,omitempty"`
	Status               Field[InvoiceStatus] `json:"status,omitzero"                 yaml:"status,omitempty"`
	TotalAmount          int64                `json:"total_amount"                    yaml:"total_amount"`
	AmountRemaining      Field[int64]         `json:"amount_remaining,omitzero"       yaml:"amount_remaining,omitempty"`
	DueDate              Field[time.Time]     `json:"due_date,omitzero"               yaml:"due_date,omitempty"`
	Description          Field[string]        `json:"description,omitzero"            yaml:"description,omitempty"`
	HostedURL            Field[string]        `json:"hosted_url,omitzero"             yaml:"hosted_url,omitempty"`
	PaymentOrders        []PaymentOrder       `json:"payment_orders,omitempty"        yaml:"payment_orders,omitempty"`
	Metadata             Metadata             `json:"metadata,omitempty"              yaml:"metadata,omitempty"`

	ExtraFields ExtraFields `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Invoice) UnmarshalJSON(data []byte) error {
	type alias Invoice

	return unmarshalWithExtras(data, (*alias)(i), &i.ExtraFields)
}

// MarshalJSON implements json.Marshaler.
func (i Invoice) MarshalJSON() ([]byte, error) {
	type alias Invoice

	return marshalWithExtras(alias(i), i.ExtraFields)
}

// Ledger is a collection of ledger accounts.
type Ledger struct {
	Resource `yaml:",inline"`

	Name        string           `json:"name"                  yaml:"name"`
	Description Field[string]    `json:"description,omitzero"  yaml:"description,omitempty"`
	Metadata    Metadata         `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
	DiscardedAt Field[time.Time] `json:"discarded_at,omitzero" yaml:"discarded_at,omitempty"`

	ExtraFields ExtraFields `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	type alias Ledger

	return unmarshalWithExtras(data, (*alias)(l), &l.ExtraFields)
}

// MarshalJSON implements json.Marshaler.
func (l Ledger) MarshalJSON() ([]byte, error) {
	type alias Ledger

	return marshalWithExtras(alias(l), l.ExtraFields)
}

// Balance is one balance figure of a ledger account.
type Balance struct {
	Amount   int64           `json:"amount"          yaml:"amount"`
	Credits  int64           `json:"credits"         yaml:"credits"`
	Debits   int64           `json:"debits"          yaml:"debits"`
	Currency Field[Currency] `json:"currency,omitzero" yaml:"currency,omitempty"`
}

// LedgerBalances groups the balances of a ledger account.
type LedgerBalances struct {
	PendingBalance   Balance `json:"pending_balance"   yaml:"pending_balance"`
	PostedBalance    Balance `json:"posted_balance"    yaml:"posted_balance"`
	AvailableBalance Balance `json:"available_balance" yaml:"available_balance"`
}

// LedgerAccount is an account in a ledger.
type LedgerAccount struct {
	Resource `yaml:",inline"`

	Name          string                `json:"name"                    yaml:"name"`
	LedgerID      string                `json:"ledger_id"               yaml:"ledger_id"`
	Currency      Field[Currency]       `json:"currency,omitzero"       yaml:"currency,omitempty"`
	NormalBalance Field[NormalBalance]  `json:"normal_balance,omitzero" yaml:"normal_balance,omitempty"`
	Balances      Field[LedgerBalances] `json:"balances,omitzero"       yaml:"balances,omitempty"`
	Description   Field[string]         `json:"description,omitzero"    yaml:"description,omitempty"`
	LockVersion   Field[int64]          `json:"lock_version,omitzero"   yaml:"lock_version,omitempty"`
	Metadata      Metadata              `json:"metadata,omitempty"      yaml:"metadata,omitempty"`

	ExtraFields ExtraFields `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *LedgerAccount) UnmarshalJSON(data []byte) error {
	type alias LedgerAccount

	return unmarshalWithExtras(data, (*alias)(a), &a.ExtraFields)
}

// MarshalJSON implements json.Marshaler.
func (a LedgerAccount) MarshalJSON() ([]byte, error) {
	type alias LedgerAccount

	return marshalWithExtras(alias(a), a.ExtraFields)
}

// LedgerEntry is one side of a ledger transaction.
type LedgerEntry struct {
	ID              string                         `json:"id"                yaml:"id"`
	Amount          int64                          `json:"amount"            yaml:"amount"`
	Direction       Field[PaymentDirection]        `json:"direction,omitzero" yaml:"direction,omitempty"`
	LedgerAccountID string                         `json:"ledger_account_id" yaml:"ledger_account_id"`
	Status          Field[LedgerTransactionStatus] `json:"status,omitzero"   yaml:"status,omitempty"`
}

// LedgerTransaction is a balanced set of ledger entries.
type LedgerTransaction struct {
	Resource `yaml:",inline"`

	LedgerID      string                         `json:"ledger_id"              yaml:"ledger_id"`
	Description   Field[string]                  `json:"description,omitzero"   yaml:"description,omitempty"`
	Status        Field[LedgerTransactionStatus] `json:"status,omitzero"        yaml:"status,omitempty"`
	EffectiveAt   Field[time.Time]               `json:"effective_at,omitzero"  yaml:"effective_at,omitempty"`
	EffectiveDate Field[string]                  `json:"effective_date,omitzero" yaml:"effective_date,omitempty"`
	ExternalID    Field[string]                  `json:"external_id,omitzero"   yaml:"external_id,omitempty"`
	LedgerEntries []LedgerEntry                  `json:"ledger_entries"         yaml:"ledger_entries"`
	PostedAt      Field[time.Time]               `json:"posted_at,omitzero"     yaml:"posted_at,omitempty"`
	Metadata      Metadata                       `json:"metadata,omitempty"     yaml:"metadata,omitempty"`

	ExtraFields ExtraFields `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *LedgerTransaction) UnmarshalJSON(data []byte) error {
	type alias LedgerTransaction

	return unmarshalWithExtras(data, (*alias)(t), &t.ExtraFields)
}

// MarshalJSON implements json.Marshaler.
func (t LedgerTransaction) MarshalJSON() ([]byte, error) {
	type alias LedgerTransaction

	return marshalWithExtras(alias(t), t.ExtraFields)
}

// CounterpartyCollectAccountResponse is returned when account details are requested from a counterparty.
type CounterpartyCollectAccountResponse struct {
	ID        string        `json:"id"                  yaml:"id"`
	FormLink  string        `json:"form_link"           yaml:"form_link"`
	IsResend  bool          `json:"is_resend"           yaml:"is_resend"`
	Direction Field[string] `json:"direction,omitzero"  yaml:"direction,omitempty"`
}

// PingResponse is returned by the ping endpoint.
type PingResponse struct {
	Ping string `json:"ping" yaml:"ping"`
}
