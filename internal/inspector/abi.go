package inspector

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const tokenABIJSON = `[
  {
    "anonymous": false,
    "inputs": [
      {"indexed": true, "internalType": "address", "name": "from", "type": "address"},
      {"indexed": true, "internalType": "address", "name": "to", "type": "address"},
      {"indexed": false, "internalType": "uint256", "name": "value", "type": "uint256"}
    ],
    "name": "Transfer",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": true, "internalType": "address", "name": "user", "type": "address"},
      {"indexed": false, "internalType": "uint256", "name": "amount", "type": "uint256"},
      {"indexed": false, "internalType": "uint256", "name": "timestamp", "type": "uint256"}
    ],
    "name": "Staked",
    "type": "event"
  }
]`

var (
	tokenABI     abi.ABI
	tokenABIOnce sync.Once
	tokenABIErr  error
)

// TokenABI returns the parsed token ABI.
func TokenABI() (abi.ABI, error) {
	tokenABIOnce.Do(func() {
		tokenABI, tokenABIErr = abi.JSON(strings.NewReader(tokenABIJSON))
	})
	return tokenABI, tokenABIErr
}

// supportedEvent resolves one of the two known event names.
func supportedEvent(name string) (abi.Event, bool) {
	switch name {
	case "Transfer", "Staked":
	default:
		return abi.Event{}, false
	}
	parsed, err := TokenABI()
	if err != nil {
		return abi.Event{}, false
	}
	event, ok := parsed.Events[name]
	return event, ok
}
