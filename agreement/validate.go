package agreement

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

const maxAddressHexDigits = 64

var (
	ErrInvalidAddress   = errors.New("agreement: invalid address format")
	ErrInvalidPrice     = errors.New("agreement: minimum price must be > 0")
	ErrInvalidQuantity  = errors.New("agreement: quantity must be > 0")
	ErrNotLoaded        = errors.New("agreement: no agreement loaded")
	ErrAlreadyFulfilled = errors.New("agreement: already fulfilled")
)

// ValidateAddress checks the ledger's account address syntax: a 0x prefix
// followed by up to 64 hex digits. The node is still the final authority on
// whether the account exists.
func ValidateAddress(addr string) error {
	if len(addr) < 3 || addr[0] != '0' || (addr[1] != 'x' && addr[1] != 'X') {
		return fmt.Errorf("%w: missing 0x prefix in %q", ErrInvalidAddress, addr)
	}
	hexPart := addr[2:]
	if len(hexPart) > maxAddressHexDigits {
		return fmt.Errorf("%w: expected at most %d hex digits, got %d", ErrInvalidAddress, maxAddressHexDigits, len(hexPart))
	}
	for i, c := range hexPart {
		if !((c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'f') ||
			(c >= 'A' && c <= 'F')) {
			return fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidAddress, c, i+2)
		}
	}
	return nil
}

// ValidateCreate checks the locally-known preconditions for creating an
// agreement. It runs strictly before any network call so an obviously bad
// input never costs a signed transaction.
func ValidateCreate(priceOctas, quantityTons *uint256.Int, buyerAddress string) error {
	if priceOctas == nil || priceOctas.IsZero() {
		return ErrInvalidPrice
	}
	if quantityTons == nil || quantityTons.IsZero() {
		return ErrInvalidQuantity
	}
	if err := ValidateAddress(buyerAddress); err != nil {
		return fmt.Errorf("buyer: %w", err)
	}
	return nil
}

// ValidateFulfill checks that a fetched agreement snapshot exists for the
// farmer address and has not already settled.
func ValidateFulfill(a *PriceAgreement, farmerAddress string) error {
	if err := ValidateAddress(farmerAddress); err != nil {
		return fmt.Errorf("farmer: %w", err)
	}
	if a == nil {
		return ErrNotLoaded
	}
	if a.IsFulfilled {
		return ErrAlreadyFulfilled
	}
	return nil
}
