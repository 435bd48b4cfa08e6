package client

import "github.com/m04kA/SMC-TransferService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
