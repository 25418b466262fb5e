package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

// Do выполняет fn в транзакции READ COMMITTED.
//
// Переходы статусов построены на условных UPDATE ... WHERE status = $from:
// проигравшая конкурентная транзакция дожидается снятия блокировки строки,
// перечитывает условие и получает ноль затронутых строк.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}
