package service

import (
	"icon-active-addresses/internal/model"
)

// ExtractSenders collects the non-blank sender addresses of a page.
func ExtractSenders(txs []model.Transaction) *model.AddressSet {
	out := model.NewAddressSet()
	for _, tx := range txs {
		out.Add(tx.FromAddress)
	}
	return out
}
