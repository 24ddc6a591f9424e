package agreement

import (
	"fmt"

	"coopchain/jsonx"

	"github.com/holiman/uint256"
)

// PriceAgreement mirrors the on-chain resource stored under the farmer's
// account. The client only ever reads it; the ledger module owns every
// mutation, including the total_value derivation.
type PriceAgreement struct {
	MinimumPrice *uint256.Int
	QuantityTons *uint256.Int
	TotalValue   *uint256.Int
	IsFulfilled  bool
	BuyerAddress string
}

// Wire form: the node transmits every u64 field as a decimal string.
type agreementJSON struct {
	MinimumPrice string `json:"minimum_price"`
	QuantityTons string `json:"quantity_tons"`
	TotalValue   string `json:"total_value"`
	IsFulfilled  bool   `json:"is_fulfilled"`
	BuyerAddress string `json:"buyer_address"`
}

func (a *PriceAgreement) MarshalJSON() ([]byte, error) {
	return jsonx.Marshal(&agreementJSON{
		MinimumPrice: decOrZero(a.MinimumPrice),
		QuantityTons: decOrZero(a.QuantityTons),
		TotalValue:   decOrZero(a.TotalValue),
		IsFulfilled:  a.IsFulfilled,
		BuyerAddress: a.BuyerAddress,
	})
}

func (a *PriceAgreement) UnmarshalJSON(data []byte) error {
	var aux agreementJSON
	if err := jsonx.Unmarshal(data, &aux); err != nil {
		return err
	}

	minPrice, err := decodeU64String("minimum_price", aux.MinimumPrice)
	if err != nil {
		return err
	}
	qty, err := decodeU64String("quantity_tons", aux.QuantityTons)
	if err != nil {
		return err
	}
	total, err := decodeU64String("total_value", aux.TotalValue)
	if err != nil {
		return err
	}

	a.MinimumPrice = minPrice
	a.QuantityTons = qty
	a.TotalValue = total
	a.IsFulfilled = aux.IsFulfilled
	a.BuyerAddress = aux.BuyerAddress
	return nil
}

func decOrZero(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}

func decodeU64String(field, raw string) (*uint256.Int, error) {
	if raw == "" {
		return uint256.NewInt(0), nil
	}
	v, err := uint256.FromDecimal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}
	return v, nil
}
