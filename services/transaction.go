package services

import "github.com/l3montree-dev/ohsms/shared"

// inTransaction runs f inside tx if the caller already opened one, otherwise
// it opens a new transaction on t.
func inTransaction(t shared.Transactioner, tx shared.DB, f func(tx shared.DB) error) error {
	if tx != nil {
		return f(tx)
	}
	return t.Transaction(f)
}
