package treasury

// Currency is an open enumeration: the ISO 4217 currency code. Unknown wire values are kept.
type Currency string

// Currency values.
const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyJPY Currency = "JPY"
	CurrencyCHF Currency = "CHF"
	CurrencyMXN Currency = "MXN"
	CurrencyBTC Currency = "BTC"
)

var currencyValues = NewEnumSet("Currency",
	CurrencyUSD,
	CurrencyEUR,
	CurrencyGBP,
	CurrencyCAD,
	CurrencyAUD,
	CurrencyJPY,
	CurrencyCHF,
	CurrencyMXN,
	CurrencyBTC,
)

// Known returns the value if it is a named Currency constant.
func (v Currency) Known() (Currency, error) {
	return currencyValues.Known(v)
}

// Value classifies v without failing.
func (v Currency) Value() EnumValue[Currency] {
	return currencyValues.Classify(v)
}

func (v Currency) String() string {
	return string(v)
}

// CurrencyValues returns the named Currency constants.
func CurrencyValues() []Currency {
	return currencyValues.Values()
}

// PaymentType is an open enumeration: the payment rail. Unknown wire values are kept.
type PaymentType string

// PaymentType values.
const (
	PaymentTypeACH         PaymentType = "ach"
	PaymentTypeAuBecs      PaymentType = "au_becs"
	PaymentTypeBacs        PaymentType = "bacs"
	PaymentTypeBook        PaymentType = "book"
	PaymentTypeCard        PaymentType = "card"
	PaymentTypeCheck       PaymentType = "check"
	PaymentTypeCrossBorder PaymentType = "cross_border"
	PaymentTypeEFT         PaymentType = "eft"
	PaymentTypeInterac     PaymentType = "interac"
	PaymentTypeMasav       PaymentType = "masav"
	PaymentTypeNeft        PaymentType = "neft"
	PaymentTypeProvxchange PaymentType = "provxchange"
	PaymentTypeRTP         PaymentType = "rtp"
	PaymentTypeSEN         PaymentType = "sen"
	PaymentTypeSepa        PaymentType = "sepa"
	PaymentTypeSignet      PaymentType = "signet"
	PaymentTypeWire        PaymentType = "wire"
)

var paymentTypeValues = NewEnumSet("PaymentType",
	PaymentTypeACH,
	PaymentTypeAuBecs,
	PaymentTypeBacs,
	PaymentTypeBook,
	PaymentTypeCard,
	PaymentTypeCheck,
	PaymentTypeCrossBorder,
	PaymentTypeEFT,
	PaymentTypeInterac,
	PaymentTypeMasav,
	PaymentTypeNeft,
	PaymentTypeProvxchange,
	PaymentTypeRTP,
	PaymentTypeSEN,
	PaymentTypeSepa,
	PaymentTypeSignet,
	PaymentTypeWire,
)

// Known returns the value if it is a named PaymentType constant.
func (v PaymentType) Known() (PaymentType, error) {
	return paymentTypeValues.Known(v)
}

// Value classifies v without failing.
func (v PaymentType) Value() EnumValue[PaymentType] {
	return paymentTypeValues.Classify(v)
}

func (v PaymentType) String() string {
	return string(v)
}

// PaymentTypeValues returns the named PaymentType constants.
func PaymentTypeValues() []PaymentType {
	return paymentTypeValues.Values()
}

// PaymentDirection is an open enumeration: the direction of money movement. Unknown wire values are kept.
type PaymentDirection string

// PaymentDirection values.
const (
	PaymentDirectionCredit PaymentDirection = "credit"
	PaymentDirectionDebit  PaymentDirection = "debit"
)

var paymentDirectionValues = NewEnumSet("PaymentDirection",
	PaymentDirectionCredit,
	PaymentDirectionDebit,
)

// Known returns the value if it is a named PaymentDirection constant.
func (v PaymentDirection) Known() (PaymentDirection, error) {
	return paymentDirectionValues.Known(v)
}

// Value classifies v without failing.
func (v PaymentDirection) Value() EnumValue[PaymentDirection] {
	return paymentDirectionValues.Classify(v)
}

func (v PaymentDirection) String() string {
	return string(v)
}

// PaymentDirectionValues returns the named PaymentDirection constants.
func PaymentDirectionValues() []PaymentDirection {
	return paymentDirectionValues.Values()
}

// PaymentOrderStatus is an open enumeration: the lifecycle state of a payment order. Unknown wire values are kept.
type PaymentOrderStatus string

// PaymentOrderStatus values.
const (
	PaymentOrderStatusApproved      PaymentOrderStatus = "approved"
	PaymentOrderStatusCancelled     PaymentOrderStatus = "cancelled"
	PaymentOrderStatusCompleted     PaymentOrderStatus = "completed"
	PaymentOrderStatusDenied        PaymentOrderStatus = "denied"
	PaymentOrderStatusFailed        PaymentOrderStatus = "failed"
	PaymentOrderStatusNeedsApproval PaymentOrderStatus = "needs_approval"
	PaymentOrderStatusPending       PaymentOrderStatus = "pending"
	PaymentOrderStatusProcessing    PaymentOrderStatus = "processing"
	PaymentOrderStatusReturned      PaymentOrderStatus = "returned"
	PaymentOrderStatusReversed      PaymentOrderStatus = "reversed"
	PaymentOrderStatusSent          PaymentOrderStatus = "sent"
)

var paymentOrderStatusValues = NewEnumSet("PaymentOrderStatus",
	PaymentOrderStatusApproved,
	PaymentOrderStatusCancelled,
	PaymentOrderStatusCompleted,
	PaymentOrderStatusDenied,
	PaymentOrderStatusFailed,
	PaymentOrderStatusNeedsApproval,
	PaymentOrderStatusPending,
	PaymentOrderStatusProcessing,
	PaymentOrderStatusReturned,
	PaymentOrderStatusReversed,
	PaymentOrderStatusSent,
)

// Known returns the value if it is a named PaymentOrderStatus constant.
func (v PaymentOrderStatus) Known() (PaymentOrderStatus, error) {
	return paymentOrderStatusValues.Known(v)
}

// Value classifies v without failing.
func (v PaymentOrderStatus) Value() EnumValue[PaymentOrderStatus] {
	return paymentOrderStatusValues.Classify(v)
}

func (v PaymentOrderStatus) String() string {
	return string(v)
}

// PaymentOrderStatusValues returns the named PaymentOrderStatus constants.
func PaymentOrderStatusValues() []PaymentOrderStatus {
	return paymentOrderStatusValues.Values()
}

// ExpectedPaymentStatus is an open enumeration: the reconciliation state of an expected payment. Unknown wire values are kept.
type ExpectedPaymentStatus string

// ExpectedPaymentStatus values.
const (
	ExpectedPaymentStatusArchived            ExpectedPaymentStatus = "archived"
	ExpectedPaymentStatusPartiallyReconciled ExpectedPaymentStatus = "partially_reconciled"
	ExpectedPaymentStatusReconciled          ExpectedPaymentStatus = "reconciled"
	ExpectedPaymentStatusUnreconciled        ExpectedPaymentStatus = "unreconciled"
)

var expectedPaymentStatusValues = NewEnumSet("ExpectedPaymentStatus",
	ExpectedPaymentStatusArchived,
	ExpectedPaymentStatusPartiallyReconciled,
	ExpectedPaymentStatusReconciled,
	ExpectedPaymentStatusUnreconciled,
)

// Known returns the value if it is a named ExpectedPaymentStatus constant.
func (v ExpectedPaymentStatus) Known() (ExpectedPaymentStatus, error) {
	return expectedPaymentStatusValues.Known(v)
}

// Value classifies v without failing.
func (v ExpectedPaymentStatus) Value() EnumValue[ExpectedPaymentStatus] {
	return expectedPaymentStatusValues.Classify(v)
}

func (v ExpectedPaymentStatus) String() string {
	return string(v)
}

// ExpectedPaymentStatusValues returns the named ExpectedPaymentStatus constants.
func ExpectedPaymentStatusValues() []ExpectedPaymentStatus {
	return expectedPaymentStatusValues.Values()
}

// InvoiceStatus is an open enumeration: the lifecycle state of an invoice. Unknown wire values are kept.
type InvoiceStatus string

// InvoiceStatus values.
const (
	InvoiceStatusDraft          InvoiceStatus = "draft"
	InvoiceStatusPaid           InvoiceStatus = "paid"
	InvoiceStatusPartiallyPaid  InvoiceStatus = "partially_paid"
	InvoiceStatusPaymentPending InvoiceStatus = "payment_pending"
	InvoiceStatusUnpaid         InvoiceStatus = "unpaid"
	InvoiceStatusVoided         InvoiceStatus = "voided"
)

var invoiceStatusValues = NewEnumSet("InvoiceStatus",
	InvoiceStatusDraft,
	InvoiceStatusPaid,
	InvoiceStatusPartiallyPaid,
	InvoiceStatusPaymentPending,
	InvoiceStatusUnpaid,
	InvoiceStatusVoided,
)

// Known returns the value if it is a named InvoiceStatus constant.
func (v InvoiceStatus) Known() (InvoiceStatus, error) {
	return invoiceStatusValues.Known(v)
}

// Value classifies v without failing.
func (v InvoiceStatus) Value() EnumValue[InvoiceStatus] {
	return invoiceStatusValues.Classify(v)
}

func (v InvoiceStatus) String() string {
	return string(v)
}

// InvoiceStatusValues returns the named InvoiceStatus constants.
func InvoiceStatusValues() []InvoiceStatus {
	return invoiceStatusValues.Values()
}

// LedgerTransactionStatus is an open enumeration: the posting state of a ledger transaction. Unknown wire values are kept.
type LedgerTransactionStatus string

// LedgerTransactionStatus values.
const (
	LedgerTransactionStatusArchived LedgerTransactionStatus = "archived"
	LedgerTransactionStatusPending  LedgerTransactionStatus = "pending"
	LedgerTransactionStatusPosted   LedgerTransactionStatus = "posted"
)

var ledgerTransactionStatusValues = NewEnumSet("LedgerTransactionStatus",
	LedgerTransactionStatusArchived,
	LedgerTransactionStatusPending,
	LedgerTransactionStatusPosted,
)

// Known returns the value if it is a named LedgerTransactionStatus constant.
func (v LedgerTransactionStatus) Known() (LedgerTransactionStatus, error) {
	return ledgerTransactionStatusValues.Known(v)
}

// Value classifies v without failing.
func (v LedgerTransactionStatus) Value() EnumValue[LedgerTransactionStatus] {
	return ledgerTransactionStatusValues.Classify(v)
}

func (v LedgerTransactionStatus) String() string {
	return string(v)
}

// LedgerTransactionStatusValues returns the named LedgerTransactionStatus constants.
func LedgerTransactionStatusValues() []LedgerTransactionStatus {
	return ledgerTransactionStatusValues.Values()
}

// NormalBalance is an open enumeration: the side a ledger account balance normally sits on. Unknown wire values are kept.
type NormalBalance string

// NormalBalance values.
const (
	NormalBalanceCredit NormalBalance = "credit"
	NormalBalanceDebit  NormalBalance = "debit"
)

var normalBalanceValues = NewEnumSet("NormalBalance",
	NormalBalanceCredit,
	NormalBalanceDebit,
)

// Known returns the value if it is a named NormalBalance constant.
func (v NormalBalance) Known() (NormalBalance, error) {
	return normalBalanceValues.Known(v)
}

// Value classifies v without failing.
func (v NormalBalance) Value() EnumValue[NormalBalance] {
	return normalBalanceValues.Classify(v)
}

func (v NormalBalance) String() string {
	return string(v)
}

// NormalBalanceValues returns the named NormalBalance constants.
func NormalBalanceValues() []NormalBalance {
	return normalBalanceValues.Values()
}

// AccountType is an open enumeration: the type of a bank account. Unknown wire values are kept.
type AccountType string

// AccountType values.
const (
	AccountTypeCash          AccountType = "cash"
	AccountTypeChecking      AccountType = "checking"
	AccountTypeGeneralLedger AccountType = "general_ledger"
	AccountTypeLoan          AccountType = "loan"
	AccountTypeNonResident   AccountType = "non_resident"
	AccountTypeOther         AccountType = "other"
	AccountTypeOverdraft     AccountType = "overdraft"
	AccountTypeSavings       AccountType = "savings"
)

var accountTypeValues = NewEnumSet("AccountType",
	AccountTypeCash,
	AccountTypeChecking,
	AccountTypeGeneralLedger,
	AccountTypeLoan,
	AccountTypeNonResident,
	AccountTypeOther,
	AccountTypeOverdraft,
	AccountTypeSavings,
)

// Known returns the value if it is a named AccountType constant.
func (v AccountType) Known() (AccountType, error) {
	return accountTypeValues.Known(v)
}

// Value classifies v without failing.
func (v AccountType) Value() EnumValue[AccountType] {
	return accountTypeValues.Classify(v)
}

func (v AccountType) String() string {
	return string(v)
}

// AccountTypeValues returns the named AccountType constants.
func AccountTypeValues() []AccountType {
	return accountTypeValues.Values()
}

// VerificationStatus is an open enumeration: the micro-deposit verification state of an external account. Unknown wire values are kept.
type VerificationStatus string

// VerificationStatus values.
const (
	VerificationStatusPendingVerification VerificationStatus = "pending_verification"
	VerificationStatusUnverified          VerificationStatus = "unverified"
	VerificationStatusVerified            VerificationStatus = "verified"
)

var verificationStatusValues = NewEnumSet("VerificationStatus",
	VerificationStatusPendingVerification,
	VerificationStatusUnverified,
	VerificationStatusVerified,
)

// Known returns the value if it is a named VerificationStatus constant.
func (v VerificationStatus) Known() (VerificationStatus, error) {
	return verificationStatusValues.Known(v)
}

// Value classifies v without failing.
func (v VerificationStatus) Value() EnumValue[VerificationStatus] {
	return verificationStatusValues.Classify(v)
}

func (v VerificationStatus) String() string {
	return string(v)
}

// VerificationStatusValues returns the named VerificationStatus constants.
func VerificationStatusValues() []VerificationStatus {
	return verificationStatusValues.Values()
}

// CounterpartyVerificationStatus is an open enumeration: the identity verification state of a counterparty. Unknown wire values are kept.
type CounterpartyVerificationStatus string

// CounterpartyVerificationStatus values.
const (
	CounterpartyVerificationStatusDenied        CounterpartyVerificationStatus = "denied"
	CounterpartyVerificationStatusNeedsApproval CounterpartyVerificationStatus = "needs_approval"
	CounterpartyVerificationStatusUnverified    CounterpartyVerificationStatus = "unverified"
	CounterpartyVerificationStatusVerified      CounterpartyVerificationStatus = "verified"
)

var counterpartyVerificationStatusValues = NewEnumSet("CounterpartyVerificationStatus",
	CounterpartyVerificationStatusDenied,
	CounterpartyVerificationStatusNeedsApproval,
	CounterpartyVerificationStatusUnverified,
	CounterpartyVerificationStatusVerified,
)

// Known returns the value if it is a named CounterpartyVerificationStatus constant.
func (v CounterpartyVerificationStatus) Known() (CounterpartyVerificationStatus, error) {
	return counterpartyVerificationStatusValues.Known(v)
}

// Value classifies v without failing.
func (v CounterpartyVerificationStatus) Value() EnumValue[CounterpartyVerificationStatus] {
	return counterpartyVerificationStatusValues.Classify(v)
}

func (v CounterpartyVerificationStatus) String() string {
	return string(v)
}

// CounterpartyVerificationStatusValues returns the named CounterpartyVerificationStatus constants.
func CounterpartyVerificationStatusValues() []CounterpartyVerificationStatus {
	return counterpartyVerificationStatusValues.Values()
}

// PartyType is an open enumeration: the legal kind of an account holder. Unknown wire values are kept.
type PartyType string

// PartyType values.
const (
	PartyTypeBusiness   PartyType = "business"
	PartyTypeIndividual PartyType = "individual"
)

var partyTypeValues = NewEnumSet("PartyType",
	PartyTypeBusiness,
	PartyTypeIndividual,
)

// Known returns the value if it is a named PartyType constant.
func (v PartyType) Known() (PartyType, error) {
	return partyTypeValues.Known(v)
}

// Value classifies v without failing.
func (v PartyType) Value() EnumValue[PartyType] {
	return partyTypeValues.Classify(v)
}

func (v PartyType) String() string {
	return string(v)
}

// PartyTypeValues returns the named PartyType constants.
func PartyTypeValues() []PartyType {
	return partyTypeValues.Values()
}

// AccountNumberType is an open enumeration: the scheme of an account number. Unknown wire values are kept.
type AccountNumberType string

// AccountNumberType values.
const (
	AccountNumberTypeIBAN          AccountNumberType = "iban"
	AccountNumberTypeCLABE         AccountNumberType = "clabe"
	AccountNumberTypeWalletAddress AccountNumberType = "wallet_address"
	AccountNumberTypePAN           AccountNumberType = "pan"
	AccountNumberTypeOther         AccountNumberType = "other"
)

var accountNumberTypeValues = NewEnumSet("AccountNumberType",
	AccountNumberTypeIBAN,
	AccountNumberTypeCLABE,
	AccountNumberTypeWalletAddress,
	AccountNumberTypePAN,
	AccountNumberTypeOther,
)

// Known returns the value if it is a named AccountNumberType constant.
func (v AccountNumberType) Known() (AccountNumberType, error) {
	return accountNumberTypeValues.Known(v)
}

// Value classifies v without failing.
func (v AccountNumberType) Value() EnumValue[AccountNumberType] {
	return accountNumberTypeValues.Classify(v)
}

func (v AccountNumberType) String() string {
	return string(v)
}

// AccountNumberTypeValues returns the named AccountNumberType constants.
func AccountNumberTypeValues() []AccountNumberType {
	return accountNumberTypeValues.Values()
}

// RoutingNumberType is an open enumeration: the scheme of a routing number. Unknown wire values are kept.
type RoutingNumberType string

// RoutingNumberType values.
const (
	RoutingNumberTypeABA                RoutingNumberType = "aba"
	RoutingNumberTypeAuBsb              RoutingNumberType = "au_bsb"
	RoutingNumberTypeBrCodigo           RoutingNumberType = "br_codigo"
	RoutingNumberTypeCaCpa              RoutingNumberType = "ca_cpa"
	RoutingNumberTypeChipsParticipantID RoutingNumberType = "chips"
	RoutingNumberTypeCNAPS              RoutingNumberType = "cnaps"
	RoutingNumberTypeGBSortCode         RoutingNumberType = "gb_sort_code"
	RoutingNumberTypeINIFSC             RoutingNumberType = "in_ifsc"
	RoutingNumberTypeJPZengin           RoutingNumberType = "jp_zengin_code"
	RoutingNumberTypeSwift              RoutingNumberType = "swift"
)

var routingNumberTypeValues = NewEnumSet("RoutingNumberType",
	RoutingNumberTypeABA,
	RoutingNumberTypeAuBsb,
	RoutingNumberTypeBrCodigo,
	RoutingNumberTypeCaCpa,
	RoutingNumberTypeChipsParticipantID,
	RoutingNumberTypeCNAPS,
	RoutingNumberTypeGBSortCode,
	RoutingNumberTypeINIFSC,
	RoutingNumberTypeJPZengin,
	RoutingNumberTypeSwift,
)

// Known returns the value if it is a named RoutingNumberType constant.
func (v RoutingNumberType) Known() (RoutingNumberType, error) {
	return routingNumberTypeValues.Known(v)
}

// Value classifies v without failing.
func (v RoutingNumberType) Value() EnumValue[RoutingNumberType] {
	return routingNumberTypeValues.Classify(v)
}

func (v RoutingNumberType) String() string {
	return string(v)
}

// RoutingNumberTypeValues returns the named RoutingNumberType constants.
func RoutingNumberTypeValues() []RoutingNumberType {
	return routingNumberTypeValues.Values()
}
