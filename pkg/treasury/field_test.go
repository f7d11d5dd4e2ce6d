package treasury_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

type fieldEnvelope struct {
	Name   treasury.Field[string]    `json:"name,omitzero"`
	Amount treasury.Field[int64]     `json:"amount,omitzero"`
	When   treasury.Field[time.Time] `json:"when,omitzero"`
}

func TestField_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		payload     string
		wantMissing bool
		wantNull    bool
		wantRaw     bool
		wantValue   int64
	}{
		{name: "missing key", payload: `{}`, wantMissing: true},
		{name: "explicit null", payload: `{"amount": null}`, wantNull: true},
		{name: "value", payload: `{"amount": 42}`, wantValue: 42},
		{name: "zero value", payload: `{"amount": 0}`, wantValue: 0},
		{name: "wrong type", payload: `{"amount": "forty-two"}`, wantRaw: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var env fieldEnvelope
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &env))

			assert.Equal(t, tt.wantMissing, env.Amount.IsMissing())
			assert.Equal(t, !tt.wantMissing, env.Amount.IsPresent())
			assert.Equal(t, tt.wantNull, env.Amount.IsNull())
			assert.Equal(t, tt.wantRaw, env.Amount.IsRaw())

			if !tt.wantMissing && !tt.wantNull && !tt.wantRaw {
				value, err := env.Amount.GetRequired("amount")
				require.NoError(t, err)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestField_RawKeepsWireBytes(t *testing.T) {
	t.Parallel()

	var env fieldEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Acme", "when": 1704164645}`), &env))

	assert.Equal(t, "Acme", env.Name.Or(""))
	require.True(t, env.When.IsRaw())
	assert.JSONEq(t, `1704164645`, string(env.When.Raw()))

	out, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Acme", "when": 1704164645}`, string(out))
}

func TestField_GetRequired(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		var field treasury.Field[string]

		_, err := field.GetRequired("email")
		require.ErrorIs(t, err, treasury.ErrFieldRequired)
		assert.Equal(t, "email: field is required but missing or invalid", err.Error())
	})

	t.Run("null", func(t *testing.T) {
		t.Parallel()

		_, err := treasury.Null[string]().GetRequired("email")
		require.ErrorIs(t, err, treasury.ErrFieldRequired)
	})

	t.Run("raw names the wire value", func(t *testing.T) {
		t.Parallel()

		_, err := treasury.RawField[int64](json.RawMessage(`"x"`)).GetRequired("amount")
		require.ErrorIs(t, err, treasury.ErrFieldRequired)

		var fieldErr *treasury.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "amount", fieldErr.Name)
		assert.Contains(t, err.Error(), `raw value: "x"`)
	})
}

func TestField_GetNullable(t *testing.T) {
	t.Parallel()

	value, err := treasury.F("a@example.com").GetNullable("email")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "a@example.com", *value)

	value, err = treasury.Null[string]().GetNullable("email")
	require.NoError(t, err)
	assert.Nil(t, value)

	var missing treasury.Field[string]

	value, err = missing.GetNullable("email")
	require.NoError(t, err)
	assert.Nil(t, value)

	raw := treasury.RawField[string](json.RawMessage(`42`))

	_, err = raw.GetNullable("email")
	require.ErrorIs(t, err, treasury.ErrFieldInvalid)
	assert.Nil(t, raw.GetNullableLenient())
	assert.Equal(t, "a", *treasury.F("a").GetNullableLenient())
}

func TestField_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  fieldEnvelope
		want string
	}{
		{name: "missing fields are omitted", env: fieldEnvelope{}, want: `{}`},
		{name: "null is sent", env: fieldEnvelope{Name: treasury.Null[string]()}, want: `{"name": null}`},
		{name: "zero value is sent", env: fieldEnvelope{Amount: treasury.F[int64](0)}, want: `{"amount": 0}`},
		{name: "raw is re-emitted", env: fieldEnvelope{Name: treasury.RawField[string](json.RawMessage(`{"first":"A"}`))}, want: `{"name": {"first": "A"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := json.Marshal(tt.env)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))
		})
	}
}

func TestField_Accessors(t *testing.T) {
	t.Parallel()

	var missing treasury.Field[string]

	assert.True(t, missing.IsZero())
	assert.False(t, missing.Valid())
	assert.Equal(t, "fallback", missing.Or("fallback"))
	assert.Equal(t, "missing", missing.String())

	assert.Equal(t, "null", treasury.Null[int]().String())
	assert.Equal(t, "raw(true)", treasury.RawField[int](json.RawMessage(`true`)).String())
	assert.Equal(t, "7", treasury.FieldOf(7).String())
	assert.True(t, treasury.FieldOf(7).Valid())
	assert.Equal(t, 7, treasury.Null[int]().Or(7))
}

func TestField_RawFieldCopiesInput(t *testing.T) {
	t.Parallel()

	buf := []byte(`"abc"`)
	field := treasury.RawField[int](buf)
	buf[1] = 'z'

	assert.Equal(t, `"abc"`, string(field.Raw()))
}

func TestField_MarshalYAML(t *testing.T) {
	t.Parallel()

	type doc struct {
		Name  treasury.Field[string] `yaml:"name,omitempty"`
		Email treasury.Field[string] `yaml:"email"`
	}

	out, err := yaml.Marshal(doc{Name: treasury.F("Acme"), Email: treasury.Null[string]()})
	require.NoError(t, err)
	assert.Equal(t, "name: Acme\nemail: null\n", string(out))
}
