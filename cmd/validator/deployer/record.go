package deployer

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Record is what a deployment leaves behind for later runs against the same contract
type Record struct {
	Contract    string         `json:"contract"`
	Address     common.Address `json:"address"`
	TxHash      common.Hash    `json:"txHash"`
	BlockNumber uint64         `json:"blockNumber"`
	GasUsed     uint64         `json:"gasUsed"`
	DeployedAt  time.Time      `json:"deployedAt"`
}

func WriteRecord(filename string, record *Record) error {
	buf, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(buf, '\n'), 0644)
}

func LoadRecord(filename string) (*Record, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	record := &Record{}
	if err := json.Unmarshal(buf, record); err != nil {
		return nil, fmt.Errorf("could not decode deployment record %s: %w", filename, err)
	}
	return record, nil
}
