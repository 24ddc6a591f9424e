package agreement

import (
	"testing"

	"coopchain/jsonx"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModuleAddr = "0xa2873261bb7f21fd004fbe1fa90807919206701493291ce7cf38f3e5ce85cbc2"

func TestBuildInitCoinStore(t *testing.T) {
	p := BuildInitCoinStore(testModuleAddr)
	assert.Equal(t, "entry_function_payload", p.Type)
	assert.Equal(t, testModuleAddr+"::FarmerCoOp::init_coin_store", p.Function)
	assert.Empty(t, p.TypeArguments)
	assert.Empty(t, p.Arguments)
}

func TestBuildCreateAgreement(t *testing.T) {
	// price "2.5" APT, quantity 4, buyer 0xB
	p, err := BuildCreateAgreement(testModuleAddr, uint256.NewInt(250_000_000), uint256.NewInt(4), "0xB")
	require.NoError(t, err)

	assert.Equal(t, testModuleAddr+"::FarmerCoOp::create_price_agreement", p.Function)
	assert.Equal(t, []string{"250000000", "4", "0xB"}, p.Arguments)
}

func TestBuildCreateAgreementValidates(t *testing.T) {
	_, err := BuildCreateAgreement(testModuleAddr, uint256.NewInt(0), uint256.NewInt(4), "0xB")
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = BuildCreateAgreement(testModuleAddr, uint256.NewInt(1), uint256.NewInt(4), "")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestBuildFulfillAgreement(t *testing.T) {
	p, err := BuildFulfillAgreement(testModuleAddr, "0xFa", uint256.NewInt(1_000_000_000))
	require.NoError(t, err)

	assert.Equal(t, testModuleAddr+"::FarmerCoOp::fulfill_agreement", p.Function)
	assert.Equal(t, []string{"0xFa", "1000000000"}, p.Arguments)

	_, err = BuildFulfillAgreement(testModuleAddr, "0xFa", nil)
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestPriceAgreementWireDecoding(t *testing.T) {
	raw := `{
		"minimum_price": "250000000",
		"quantity_tons": "4",
		"total_value": "1000000000",
		"is_fulfilled": false,
		"buyer_address": "0xB"
	}`
	var a PriceAgreement
	require.NoError(t, jsonx.Unmarshal([]byte(raw), &a))

	assert.Equal(t, uint64(250_000_000), a.MinimumPrice.Uint64())
	assert.Equal(t, uint64(4), a.QuantityTons.Uint64())
	assert.Equal(t, uint64(1_000_000_000), a.TotalValue.Uint64())
	assert.False(t, a.IsFulfilled)
	assert.Equal(t, "0xB", a.BuyerAddress)

	var bad PriceAgreement
	err := jsonx.Unmarshal([]byte(`{"minimum_price": "1.5"}`), &bad)
	assert.Error(t, err, "fractional wire value must not decode")
}
