package config

const (
	// DefaultModuleAddress is the published FarmerCoOp module account on testnet.
	DefaultModuleAddress = "0xa2873261bb7f21fd004fbe1fa90807919206701493291ce7cf38f3e5ce85cbc2"
	// DefaultNodeURL is the testnet fullnode REST endpoint.
	DefaultNodeURL = "https://fullnode.testnet.aptoslabs.com/v1"
	// DefaultWalletURL is the local wallet bridge endpoint.
	DefaultWalletURL = "http://localhost:8777/rpc"
	// DefaultJournalPath is where the CLI keeps its audit journal.
	DefaultJournalPath = "./coopchain-journal.db"
)

const (
	// ModuleName is the on-chain module holding the agreement entry functions.
	ModuleName = "FarmerCoOp"
	// AgreementResource is the struct name of the agreement resource.
	AgreementResource = "PriceAgreement"

	// Entry function names. These and their argument order are part of the
	// wire contract with the on-chain module.
	FnInitCoinStore   = "init_coin_store"
	FnCreateAgreement = "create_price_agreement"
	FnFulfillAgreement = "fulfill_agreement"
)
