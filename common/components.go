package common

const (
	// RPC name to identify the rpc component
	RPC = "rpc"
	// CLI name to identify the witness file commands
	CLI = "cli"
)
