package agreement

import (
	"fmt"

	"coopchain/config"

	"github.com/holiman/uint256"
)

// EntryFunctionPayload is the wallet-facing description of one entry function
// call. Function names and argument order are part of the wire contract with
// the on-chain module and must not be reordered.
type EntryFunctionPayload struct {
	Type          string   `json:"type"`
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []string `json:"arguments"`
}

const payloadType = "entry_function_payload"

func qualifiedName(moduleAddr, name string) string {
	return fmt.Sprintf("%s::%s::%s", moduleAddr, config.ModuleName, name)
}

// ResourceType returns the fully-qualified type tag of the agreement resource.
func ResourceType(moduleAddr string) string {
	return qualifiedName(moduleAddr, config.AgreementResource)
}

// BuildInitCoinStore builds the payload registering the coin store for the
// connected account. The module treats repeated calls as a no-op.
func BuildInitCoinStore(moduleAddr string) *EntryFunctionPayload {
	return &EntryFunctionPayload{
		Type:          payloadType,
		Function:      qualifiedName(moduleAddr, config.FnInitCoinStore),
		TypeArguments: []string{},
		Arguments:     []string{},
	}
}

// BuildCreateAgreement builds the create_price_agreement payload. Arguments
// are encoded as decimal strings in the fixed order price, quantity, buyer.
func BuildCreateAgreement(moduleAddr string, priceOctas, quantityTons *uint256.Int, buyerAddress string) (*EntryFunctionPayload, error) {
	if err := ValidateCreate(priceOctas, quantityTons, buyerAddress); err != nil {
		return nil, err
	}
	return &EntryFunctionPayload{
		Type:          payloadType,
		Function:      qualifiedName(moduleAddr, config.FnCreateAgreement),
		TypeArguments: []string{},
		Arguments: []string{
			priceOctas.Dec(),
			quantityTons.Dec(),
			buyerAddress,
		},
	}, nil
}

// BuildFulfillAgreement builds the fulfill_agreement payload. The payment
// amount comes from the last-fetched total_value so the buyer pays exactly
// what the ledger recorded, never a locally recomputed figure.
func BuildFulfillAgreement(moduleAddr, farmerAddress string, totalValueOctas *uint256.Int) (*EntryFunctionPayload, error) {
	if err := ValidateAddress(farmerAddress); err != nil {
		return nil, fmt.Errorf("farmer: %w", err)
	}
	if totalValueOctas == nil {
		return nil, ErrNotLoaded
	}
	return &EntryFunctionPayload{
		Type:          payloadType,
		Function:      qualifiedName(moduleAddr, config.FnFulfillAgreement),
		TypeArguments: []string{},
		Arguments: []string{
			farmerAddress,
			totalValueOctas.Dec(),
		},
	}, nil
}
