package model

// Direction of a transaction relative to the queried address.
const (
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

// TransactionRecord is one transaction touching the queried address.
// Amounts are formatted for display: Value in ether, GasPrice in gwei.
type TransactionRecord struct {
	Hash     string `json:"hash"`
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Block    uint64 `json:"block"`
	GasPrice string `json:"gas_price"`
	Type     string `json:"type"`
}

// TrackResult is the track_transactions success payload.
type TrackResult struct {
	Chain              string              `json:"chain"`
	Address            string              `json:"address"`
	BalanceEth         string              `json:"balance_eth"`
	TransactionCount   uint64              `json:"transaction_count"`
	RecentTransactions []TransactionRecord `json:"recent_transactions"`
	Timestamp          string              `json:"timestamp"`
}
