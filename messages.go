package main

import (
	"charm-wallet-state/appstate"
	"charm-wallet-state/rpc"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// clipboardCopiedMsg reports the result of a clipboard write
type clipboardCopiedMsg struct {
	what string
	err  error
}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// rpcConnectedMsg contains result of RPC connection attempt
type rpcConnectedMsg struct {
	client *rpc.Client
	err    error
}

// feesLoadedMsg contains a smart transaction fee quote or the reason none
// could be built
type feesLoadedMsg struct {
	fees *appstate.SmartTransactionFees
	err  error
}
