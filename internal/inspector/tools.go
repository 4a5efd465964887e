package inspector

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the Chain Inspector server. Descriptions are what
// the assistant reads to decide which tool to use.

var toolMonitorEvents = mcp.NewTool("monitor_events",
	mcp.WithDescription(
		"Monitor smart contract events (Transfer, Staked, etc.). "+
			"Fetches recent events from specified contract."),
	mcp.WithString("contract_address",
		mcp.Required(),
		mcp.Description("Smart contract address (0x...)")),
	mcp.WithString("chain",
		mcp.Description("Blockchain network to query"),
		mcp.Enum("polygon-zkevm", "scroll", "zksync"),
		mcp.DefaultString(DefaultChain)),
	mcp.WithString("event_name",
		mcp.Description("Event to monitor"),
		mcp.Enum("Transfer", "Staked"),
		mcp.DefaultString("Transfer")),
	mcp.WithNumber("from_block",
		mcp.Description("Starting block number (default: current - 1000)")),
)

var toolCheckVulnerabilities = mcp.NewTool("check_vulnerabilities",
	mcp.WithDescription(
		"Perform basic security checks on smart contract bytecode. "+
			"Detects selfdestruct, delegatecall, and size issues."),
	mcp.WithString("contract_address",
		mcp.Required(),
		mcp.Description("Smart contract address to audit")),
	mcp.WithString("chain",
		mcp.Description("Blockchain network to query"),
		mcp.Enum("polygon-zkevm", "scroll", "zksync"),
		mcp.DefaultString(DefaultChain)),
)

var toolTrackTransactions = mcp.NewTool("track_transactions",
	mcp.WithDescription(
		"Track recent transactions for a wallet address. "+
			"Returns balance and transaction history."),
	mcp.WithString("address",
		mcp.Required(),
		mcp.Description("Wallet address to track")),
	mcp.WithString("chain",
		mcp.Description("Blockchain network to query"),
		mcp.Enum("polygon-zkevm", "scroll", "zksync"),
		mcp.DefaultString(DefaultChain)),
	mcp.WithNumber("tx_count",
		mcp.Description("Number of recent transactions to fetch"),
		mcp.DefaultNumber(10)),
)
