package chain

import "math/big"

var (
	weiPerEther = new(big.Float).SetInt64(1e18)
	weiPerGwei  = new(big.Float).SetInt64(1e9)
)

// WeiToEther formats a wei amount as a decimal ether string.
func WeiToEther(wei *big.Int) string {
	return divideWei(wei, weiPerEther)
}

// WeiToGwei formats a wei amount as a decimal gwei string.
func WeiToGwei(wei *big.Int) string {
	return divideWei(wei, weiPerGwei)
}

func divideWei(wei *big.Int, unit *big.Float) string {
	if wei == nil {
		return "0"
	}
	value := new(big.Float).SetPrec(256).SetInt(wei)
	value.Quo(value, unit)
	return value.Text('f', -1)
}
