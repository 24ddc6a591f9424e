package controller

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"coopchain/agreement"
	"coopchain/config"
	"coopchain/errors"
	"coopchain/logx"
	"coopchain/units"
	"coopchain/wallet"
)

// ViewState tracks the last fetched agreement, orthogonal to the submission
// state machine.
type ViewState int

const (
	ViewNoAgreement ViewState = iota
	ViewLoaded
	ViewFulfilled
)

// ResourceReader fetches the on-chain agreement resource for an account.
type ResourceReader interface {
	FetchAgreement(ctx context.Context, farmerAddress string) (*agreement.PriceAgreement, error)
}

// Recorder persists submitted operation identifiers across process runs.
type Recorder interface {
	Record(hash string) error
}

// Controller orchestrates validation, payload construction, wallet submission
// and resource refresh. It owns SessionState exclusively; no other component
// mutates it.
type Controller struct {
	cfg     config.ClientConfig
	reader  ResourceReader
	wallet  wallet.Wallet
	journal Recorder // optional, may be nil

	// pending enforces at most one state-changing operation in flight.
	pending atomic.Bool

	mu            sync.Mutex
	identity      string
	lastAgreement *agreement.PriceAgreement
	lastFarmer    string
	txLog         TxLog
}

func New(cfg config.ClientConfig, reader ResourceReader, w wallet.Wallet, journal Recorder) *Controller {
	return &Controller{
		cfg:     cfg,
		reader:  reader,
		wallet:  w,
		journal: journal,
	}
}

// Connect asks the wallet for its identity and stores it for the session.
func (c *Controller) Connect(ctx context.Context) (string, error) {
	acc, err := c.wallet.Connect(ctx)
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	c.identity = acc.Address
	c.mu.Unlock()
	logx.Info("CONTROLLER", "Wallet connected: ", acc.Address)
	return acc.Address, nil
}

func (c *Controller) Identity() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

// InitCoinStore registers the coin store for the connected account. The
// on-chain module treats repeated registration as a no-op.
func (c *Controller) InitCoinStore(ctx context.Context) (string, error) {
	if err := c.requireIdentity(); err != nil {
		return "", err
	}
	if err := c.acquirePending(); err != nil {
		return "", err
	}
	defer c.releasePending()

	payload := agreement.BuildInitCoinStore(c.cfg.ModuleAddress)
	res, err := c.wallet.SignAndSubmit(ctx, payload)
	if err != nil {
		logx.Error("CONTROLLER", "Init coin store failed: ", err)
		return "", err
	}
	c.appendLog(res.Hash)
	return res.Hash, nil
}

// CreateAgreement validates the farmer's inputs, converts the human price to
// octas and submits create_price_agreement. Validation runs strictly before
// the wallet is contacted.
func (c *Controller) CreateAgreement(ctx context.Context, priceAPT, quantityTons, buyerAddress string) (string, error) {
	if err := c.requireIdentity(); err != nil {
		return "", err
	}

	priceOctas, err := units.ToOctas(priceAPT)
	if err != nil {
		return "", errors.NewClientError(errors.ErrCodeValidationFailed, err.Error())
	}
	qty, err := units.ParseQuantity(quantityTons)
	if err != nil {
		return "", errors.NewClientError(errors.ErrCodeValidationFailed, err.Error())
	}
	payload, err := agreement.BuildCreateAgreement(c.cfg.ModuleAddress, priceOctas, qty, buyerAddress)
	if err != nil {
		return "", mapAgreementErr(err)
	}

	if err := c.acquirePending(); err != nil {
		return "", err
	}
	defer c.releasePending()

	res, err := c.wallet.SignAndSubmit(ctx, payload)
	if err != nil {
		logx.Error("CONTROLLER", "Create agreement failed: ", err)
		return "", err
	}
	c.appendLog(res.Hash)
	logx.Info("CONTROLLER", fmt.Sprintf("Agreement created: price=%s octas qty=%s buyer=%s tx=%s",
		priceOctas.Dec(), qty.Dec(), buyerAddress, res.Hash))
	return res.Hash, nil
}

// FetchAgreement reads the agreement under farmerAddress and replaces the
// view state. It takes no submission lock; reads are unordered with respect
// to writes and the most recently resolved fetch wins.
func (c *Controller) FetchAgreement(ctx context.Context, farmerAddress string) (*agreement.PriceAgreement, error) {
	if err := agreement.ValidateAddress(farmerAddress); err != nil {
		return nil, errors.NewClientError(errors.ErrCodeValidationFailed, err.Error())
	}
	a, err := c.reader.FetchAgreement(ctx, farmerAddress)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.lastAgreement = a
	c.lastFarmer = farmerAddress
	c.mu.Unlock()
	return a, nil
}

// FulfillAgreement pays the last-fetched total_value to the farmer. The local
// is_fulfilled flag is never set optimistically: after a successful
// submission the resource is re-read and only the ledger's answer replaces
// the view state.
func (c *Controller) FulfillAgreement(ctx context.Context) (string, error) {
	if err := c.requireIdentity(); err != nil {
		return "", err
	}

	c.mu.Lock()
	snapshot := c.lastAgreement
	farmer := c.lastFarmer
	c.mu.Unlock()

	if snapshot == nil || farmer == "" {
		return "", errors.NewClientError(errors.ErrCodeAgreementNotFound, errors.ErrMsgAgreementNotFound)
	}
	if err := agreement.ValidateFulfill(snapshot, farmer); err != nil {
		return "", mapAgreementErr(err)
	}

	if err := c.acquirePending(); err != nil {
		return "", err
	}
	defer c.releasePending()

	payload, err := agreement.BuildFulfillAgreement(c.cfg.ModuleAddress, farmer, snapshot.TotalValue)
	if err != nil {
		return "", mapAgreementErr(err)
	}
	res, err := c.wallet.SignAndSubmit(ctx, payload)
	if err != nil {
		logx.Error("CONTROLLER", "Fulfill failed: ", err)
		return "", err
	}
	c.appendLog(res.Hash)

	refreshed, err := c.reader.FetchAgreement(ctx, farmer)
	if err != nil {
		// Payment went through but the refresh did not; keep the stale
		// snapshot rather than guessing at the ledger's state.
		logx.Warn("CONTROLLER", "Post-fulfill refresh failed: ", err)
		return res.Hash, nil
	}
	c.mu.Lock()
	c.lastAgreement = refreshed
	c.mu.Unlock()
	logx.Info("CONTROLLER", "Agreement fulfilled: tx=", res.Hash)
	return res.Hash, nil
}

// View returns the current view state of the last fetched agreement.
func (c *Controller) View() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.lastAgreement == nil:
		return ViewNoAgreement
	case c.lastAgreement.IsFulfilled:
		return ViewFulfilled
	default:
		return ViewLoaded
	}
}

// LastAgreement returns a copy of the last fetched snapshot, or nil.
func (c *Controller) LastAgreement() *agreement.PriceAgreement {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastAgreement == nil {
		return nil
	}
	cp := *c.lastAgreement
	return &cp
}

func (c *Controller) Pending() bool {
	return c.pending.Load()
}

// TransactionLog returns the session log entries, newest first.
func (c *Controller) TransactionLog() []TxLogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.txLog.Entries()
}

func (c *Controller) requireIdentity() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.identity == "" {
		return errors.NewClientError(errors.ErrCodeWalletUnavailable, "Connect a wallet first")
	}
	return nil
}

func (c *Controller) acquirePending() error {
	if !c.pending.CompareAndSwap(false, true) {
		return errors.NewClientError(errors.ErrCodeOperationPending, errors.ErrMsgOperationPending)
	}
	return nil
}

func (c *Controller) releasePending() {
	c.pending.Store(false)
}

func (c *Controller) appendLog(hash string) {
	c.mu.Lock()
	c.txLog.Append(hash)
	c.mu.Unlock()
	if c.journal != nil {
		if err := c.journal.Record(hash); err != nil {
			logx.Warn("CONTROLLER", "Journal append failed: ", err)
		}
	}
}

func mapAgreementErr(err error) error {
	switch err {
	case agreement.ErrNotLoaded:
		return errors.NewClientError(errors.ErrCodeAgreementNotFound, errors.ErrMsgAgreementNotFound)
	case agreement.ErrAlreadyFulfilled:
		return errors.NewClientError(errors.ErrCodeAlreadyFulfilled, errors.ErrMsgAlreadyFulfilled)
	default:
		return errors.NewClientError(errors.ErrCodeValidationFailed, err.Error())
	}
}
