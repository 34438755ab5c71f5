package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells repositories which domain error a
// failed statement corresponds to, independently of the SQL dialect.
type ErrorClassification int

const (
	// Unclassified covers every error that carries no domain meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a duplicate value in a unique index.
	UniqueViolation

	// ForeignKeyViolation indicates a missing referenced row on insert or a
	// restricted delete of a referenced row.
	ForeignKeyViolation

	// NotNullViolation indicates a NULL written to a NOT NULL column.
	NotNullViolation

	// Retryable indicates a transient condition (lost connection, deadlock,
	// busy database) where the same statement may succeed later.
	Retryable
)

// ErrorClassificator maps driver specific errors to [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
