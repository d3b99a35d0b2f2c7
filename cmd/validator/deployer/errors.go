package deployer

import "errors"

var (
	ErrDeployFailed = errors.New("deployment transaction failed")
	ErrNoChainID    = errors.New("no chain id")
)
