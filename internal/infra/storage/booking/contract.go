package booking

import "github.com/m04kA/SMC-PadelBooking/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Подходят и *sql.DB, и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
