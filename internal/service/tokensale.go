package service

import (
	"context"
	"fmt"
	"math/big"

	"github.com/cfdapp/crowdfund-client/internal/chain"
	"github.com/cfdapp/crowdfund-client/internal/ipfs"
	"github.com/cfdapp/crowdfund-client/internal/logger"
	"github.com/cfdapp/crowdfund-client/models"
)

// SaleBalances is the balance pair re-queried after every purchase.
type SaleBalances struct {
	// Wallet is the caller's token balance.
	Wallet *big.Int
	// ForSale is the crowdsale contract's remaining token balance.
	ForSale *big.Int
}

// TokenSaleService implements the crowdsale page: quoting the token and
// buying it for ether.
type TokenSaleService struct {
	token     Token
	crowdsale Crowdsale

	account string
	logger  *logger.Logger
}

// NewTokenSaleService constructs a *TokenSaleService acting as account.
func NewTokenSaleService(token Token, crowdsale Crowdsale, account string, logger *logger.Logger) *TokenSaleService {
	return &TokenSaleService{
		token:     token,
		crowdsale: crowdsale,
		account:   account,
		logger:    logger,
	}
}

// Quote reads the token's display parameters and the sale terms: symbol,
// decimals, rate, and the remaining supply held by the sale contract.
func (s *TokenSaleService) Quote(ctx context.Context) (models.TokenQuote, error) {
	symbol, err := s.token.Symbol(ctx)
	if err != nil {
		return models.TokenQuote{}, fmt.Errorf("error fetching token symbol: %w", err)
	}
	decimals, err := s.token.Decimals(ctx)
	if err != nil {
		return models.TokenQuote{}, fmt.Errorf("error fetching token decimals: %w", err)
	}

	quote := models.NewTokenQuote(symbol, decimals)

	quote.Rate, err = s.crowdsale.Rate(ctx)
	if err != nil {
		return models.TokenQuote{}, fmt.Errorf("error fetching sale rate: %w", err)
	}

	quote.ForSale, err = s.token.BalanceOf(ctx, s.crowdsale.Address())
	if err != nil {
		return models.TokenQuote{}, fmt.Errorf("error fetching sale supply: %w", err)
	}

	return quote, nil
}

// BalanceOf returns account's token balance.
func (s *TokenSaleService) BalanceOf(ctx context.Context, account string) (*big.Int, error) {
	return s.token.BalanceOf(ctx, account)
}

// Buy purchases whole-token units at the quoted rate, attaching the
// computed wei price, then re-queries the caller's and the sale's balances.
func (s *TokenSaleService) Buy(ctx context.Context, quote models.TokenQuote, whole int64) (SaleBalances, error) {
	value := quote.WeiPrice(whole)
	if value.Sign() <= 0 {
		return SaleBalances{}, fmt.Errorf("sale rate unavailable, cannot price %d tokens", whole)
	}

	if err := s.crowdsale.BuyTokens(ctx, s.account, value); err != nil {
		return SaleBalances{}, fmt.Errorf("error buying tokens: %w", err)
	}

	wallet, err := s.token.BalanceOf(ctx, s.account)
	if err != nil {
		return SaleBalances{}, fmt.Errorf("error re-querying wallet balance: %w", err)
	}
	forSale, err := s.token.BalanceOf(ctx, s.crowdsale.Address())
	if err != nil {
		return SaleBalances{}, fmt.Errorf("error re-querying sale supply: %w", err)
	}

	s.logger.Info().Int64("amount", whole).Str("value_wei", value.String()).Msg("tokens purchased")
	return SaleBalances{Wallet: wallet, ForSale: forSale}, nil
}

// ensure the chain binding and content-store client satisfy their interfaces
var (
	_ Crowdsale    = (*chain.Crowdsale)(nil)
	_ ContentStore = (*ipfs.Client)(nil)
)
