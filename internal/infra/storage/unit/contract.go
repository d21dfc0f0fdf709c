package unit

import "github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"

// DBExecutor переиспользуем интерфейс из dbmetrics (*sql.DB и *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor
