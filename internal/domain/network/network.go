// Package network lists the transfer networks accepted for deposits and withdrawals.
// Addresses are display strings; nothing here talks to a chain.
package network

import (
	"errors"
	"strings"
)

var ErrUnknownNetwork = errors.New("unknown network")

type Network string

const (
	BSC    Network = "bsc"
	Tron   Network = "tron"
	Solana Network = "solana"
	TON    Network = "ton"
	ETH    Network = "eth"
)

type Info struct {
	Key         Network `json:"key"`
	Label       string  `json:"label"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
}

var networks = []Info{
	{Key: BSC, Label: "BSC • BEP20", Address: "0xBc92de905b59a3C87478BE0b2E7ff37c8a494d8a", Description: "Send only USDT (BEP20) to this address."},
	{Key: Tron, Label: "TRON • TRC20", Address: "TQEVdQEawnvGHh4Kmp167USEn3PcCms7in", Description: "Send only USDT (TRC20) to this address."},
	{Key: Solana, Label: "Solana • SPL", Address: "C5e4YhJEnt8aWZvcQ5fXuSdyzaPbsrpCcLst4EonkVDh", Description: "Send only USDT (SPL) to this address."},
	{Key: TON, Label: "TON", Address: "UQBQqLqL3pavNGl-Sijhm6EsC1ylN-_zxdx9QTdrSpSPlGvE", Description: "Send only USDT (TON) to this address."},
	{Key: ETH, Label: "Ethereum • ERC20", Address: "0xf945D03eB72Fda50c2CD76b72746f3d2a983773D", Description: "Send only USDT (ERC20) to this address."},
}

func All() []Info {
	out := make([]Info, len(networks))
	copy(out, networks)
	return out
}

func Parse(s string) (Network, error) {
	n := Network(strings.ToLower(strings.TrimSpace(s)))
	if !n.IsValid() {
		return "", ErrUnknownNetwork
	}
	return n, nil
}

func (n Network) String() string { return string(n) }

func (n Network) IsValid() bool {
	_, ok := n.Info()
	return ok
}

func (n Network) Info() (Info, bool) {
	for _, info := range networks {
		if info.Key == n {
			return info, true
		}
	}
	return Info{}, false
}
