package domain

// Table is the name of a mongo collection
type Table string

const (
	TableAuctions       Table = "auctions"
	TableEscrows        Table = "escrows"
	TableCounters       Table = "counters"
	TableTokens         Table = "tokens"
	TableLedgerAccounts Table = "ledger_accounts"
	TableLedgerEntries  Table = "ledger_entries"
)
