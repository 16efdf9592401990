package multiform

// budget tracks the remaining resource allowance of one in-flight decode.
// It is owned exclusively by that decode and never shared, so no locking.
//
// Reservations are checked before a chunk is durably stored and are never
// rolled back on failure: once the budget says no, the decode is over.
type budget struct {
	textLeft  int64
	fileLeft  int64
	partsLeft int

	textLimit int64
	fileLimit int64
}

func newBudget(cfg Config) *budget {
	return &budget{
		textLeft:  cfg.TextLimit,
		fileLeft:  cfg.FileLimit,
		partsLeft: cfg.MaxParts,
		textLimit: cfg.TextLimit,
		fileLimit: cfg.FileLimit,
	}
}

// admitPart accounts for one incoming part, failing once the part count is
// exhausted.
func (b *budget) admitPart() error {
	if b.partsLeft <= 0 {
		return ErrTooManyParts
	}
	b.partsLeft--
	return nil
}

// reserveText accepts n bytes against the text budget.
func (b *budget) reserveText(n int64) error {
	if n > b.textLeft {
		return &BudgetError{Kind: BudgetText, Limit: b.textLimit}
	}
	b.textLeft -= n
	return nil
}

// reserveFile accepts n bytes against the file budget.
func (b *budget) reserveFile(n int64) error {
	if n > b.fileLeft {
		return &BudgetError{Kind: BudgetFile, Limit: b.fileLimit}
	}
	b.fileLeft -= n
	return nil
}
