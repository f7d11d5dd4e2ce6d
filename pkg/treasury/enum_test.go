package treasury_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

func TestEnum_Known(t *testing.T) {
	t.Parallel()

	status, err := treasury.PaymentOrderStatusSent.Known()
	require.NoError(t, err)
	assert.Equal(t, treasury.PaymentOrderStatusSent, status)

	status, err = treasury.PaymentOrderStatus("teleported").Known()
	require.ErrorIs(t, err, treasury.ErrUnrecognizedEnumValue)
	assert.Equal(t, treasury.PaymentOrderStatus("teleported"), status)

	var enumErr *treasury.UnrecognizedEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "PaymentOrderStatus", enumErr.Type)
	assert.Equal(t, `unrecognized enum value: PaymentOrderStatus "teleported"`, err.Error())
}

func TestEnum_Value(t *testing.T) {
	t.Parallel()

	known := treasury.CurrencyEUR.Value()
	assert.True(t, known.Known)
	assert.False(t, known.IsUnrecognized())

	unknown := treasury.Currency("XTS").Value()
	assert.False(t, unknown.Known)
	assert.True(t, unknown.IsUnrecognized())
	assert.Equal(t, treasury.Currency("XTS"), unknown.Value)
}

func TestEnum_UnknownWireValueSurvivesRoundTrip(t *testing.T) {
	t.Parallel()

	payload := `{"id":"po_1","object":"payment_order","live_mode":false,"amount":100,` +
		`"type":"carrier_pigeon","status":"teleported","created_at":"2024-01-02T03:04:05Z","updated_at":"2024-01-02T03:04:05Z"}`

	var order treasury.PaymentOrder
	require.NoError(t, json.Unmarshal([]byte(payload), &order))

	status, err := order.Status.GetRequired("status")
	require.NoError(t, err)
	assert.True(t, status.Value().IsUnrecognized())
	assert.Equal(t, "teleported", status.String())

	paymentType := order.Type.Or("")
	_, err = paymentType.Known()
	require.ErrorIs(t, err, treasury.ErrUnrecognizedEnumValue)

	out, err := json.Marshal(order)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestEnum_ValuesListing(t *testing.T) {
	t.Parallel()

	directions := treasury.PaymentDirectionValues()
	assert.ElementsMatch(t, []treasury.PaymentDirection{treasury.PaymentDirectionCredit, treasury.PaymentDirectionDebit}, directions)

	directions[0] = "sideways"
	assert.NotContains(t, treasury.PaymentDirectionValues(), treasury.PaymentDirection("sideways"))

	for _, status := range treasury.InvoiceStatusValues() {
		_, err := status.Known()
		require.NoError(t, err)
	}

	assert.Contains(t, treasury.NormalBalanceValues(), treasury.NormalBalanceCredit)
	assert.Contains(t, treasury.LedgerTransactionStatusValues(), treasury.LedgerTransactionStatusPosted)
}

func TestEnumSet(t *testing.T) {
	t.Parallel()

	type color string

	set := treasury.NewEnumSet[color]("Color", "red", "green")

	assert.Equal(t, "Color", set.Name())
	assert.True(t, set.Contains("red"))
	assert.False(t, set.Contains("blue"))
	assert.Equal(t, treasury.EnumValue[color]{Value: "blue", Known: false}, set.Classify("blue"))
	assert.Equal(t, []color{"red", "green"}, set.Values())

	_, err := set.Known("blue")
	require.ErrorIs(t, err, treasury.ErrUnrecognizedEnumValue)
}
