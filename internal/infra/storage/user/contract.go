package user

import "github.com/m04kA/SMC-PadelBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
