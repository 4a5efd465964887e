package inspector

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"chainscope/internal/model"
)

const scanRecommendation = "Run full audit with Slither or Mythril for production contracts"

// CheckVulnerabilities fetches deployed bytecode and reports known risk
// opcode patterns and the deploy size limit.
func (ins *Inspector) CheckVulnerabilities(ctx context.Context, chainName, contractAddress string) interface{} {
	reader, ok := ins.reader(chainName)
	if !ok {
		return model.ErrorResult{Error: fmt.Sprintf("Unsupported chain: %s", chainName)}
	}
	if !common.IsHexAddress(contractAddress) {
		return model.ErrorResult{Error: fmt.Sprintf("Invalid contract address: %s", contractAddress)}
	}
	contract := common.HexToAddress(contractAddress)

	callCtx, cancel := ins.callContext(ctx)
	defer cancel()

	code, err := reader.CodeAt(callCtx, contract)
	if err != nil {
		return model.ErrorResult{Error: err.Error(), Chain: chainName}
	}
	if len(code) == 0 {
		return model.ErrorResult{Error: "No contract found at this address"}
	}

	vulnerabilities, warnings := scanBytecode(hexutil.Encode(code), len(code))

	return model.ScanResult{
		Chain:           chainName,
		Contract:        contract.Hex(),
		BytecodeSize:    len(code),
		Vulnerabilities: vulnerabilities,
		Warnings:        warnings,
		ScanTimestamp:   nowStamp(),
		Recommendation:  scanRecommendation,
	}
}

// scanBytecode is a substring scan over the hex encoding, not a
// disassembly: opcode bytes inside immediates or embedded data match
// too. Known approximation, kept on purpose.
func scanBytecode(bytecodeHex string, size int) (vulnerabilities, warnings []model.Finding) {
	vulnerabilities = make([]model.Finding, 0, 1)
	warnings = make([]model.Finding, 0, 2)

	if strings.Contains(bytecodeHex, "ff") {
		vulnerabilities = append(vulnerabilities, model.Finding{
			Severity:    model.SeverityHigh,
			Type:        "SELFDESTRUCT",
			Description: "Contract contains SELFDESTRUCT opcode - can be destroyed",
		})
	}
	if strings.Contains(bytecodeHex, "f4") {
		warnings = append(warnings, model.Finding{
			Severity:    model.SeverityMedium,
			Type:        "DELEGATECALL",
			Description: "Contract uses DELEGATECALL - ensure proper access control",
		})
	}
	if size > maxContractSize {
		warnings = append(warnings, model.Finding{
			Severity:    model.SeverityLow,
			Type:        "SIZE_LIMIT",
			Description: fmt.Sprintf("Contract size (%d bytes) exceeds recommended limit", size),
		})
	}
	return vulnerabilities, warnings
}
