package loader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Lumos-Labs-HQ/martgen/internal/dataset"
	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// ErrConstraintsDegraded signals that the batch finished with foreign key
// constraints still dropped: restoring them failed, usually because
// orphaned references exist. An operator must know integrity is currently
// unenforced.
var ErrConstraintsDegraded = errors.New("foreign key constraints left unenforced")

// Execer is the slice of the database the loader needs: execute one
// statement, report rows affected.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
}

// State tracks where a batch is in its constraint bracket.
type State int

const (
	ConstraintsActive State = iota
	ConstraintsRelaxed
	Loading
	ConstraintsRestoring
)

func (s State) String() string {
	switch s {
	case ConstraintsActive:
		return "constraints-active"
	case ConstraintsRelaxed:
		return "constraints-relaxed"
	case Loading:
		return "loading"
	case ConstraintsRestoring:
		return "constraints-restoring"
	default:
		return "unknown"
	}
}

// LoadResult reports what happened to one table's rows.
type LoadResult struct {
	Table    string
	Inserted int
	Skipped  int
	Failed   int
	Unmapped bool
}

// Loader upserts generated tables with insert-or-ignore-on-conflict
// semantics, tagging every row with a batch id and a load timestamp.
type Loader struct {
	db          Execer
	qb          squirrel.StatementBuilderType
	primaryKeys map[string]string
	constraints []Constraint
	state       State
	now         func() time.Time
}

// New builds a loader over db. A nil primaryKeys map uses the default
// table mapping; the mapping is explicit configuration, never inferred
// from the records.
func New(db Execer, primaryKeys map[string]string) *Loader {
	if primaryKeys == nil {
		primaryKeys = DefaultPrimaryKeys()
	}
	return &Loader{
		db:          db,
		qb:          squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		primaryKeys: primaryKeys,
		constraints: DefaultConstraints(),
		state:       ConstraintsActive,
		now:         time.Now,
	}
}

// DefaultPrimaryKeys maps every target table to its primary key column.
func DefaultPrimaryKeys() map[string]string {
	return map[string]string{
		"customer":       "customerId",
		"employee":       "employeeId",
		"department":     "departmentId",
		"manufacture":    "manufactureId",
		"product":        "productId",
		"orders":         "orderId",
		"order_details":  "orderDetailId",
		"shipping":       "shippingId",
		"payment":        "paymentId",
		"return_request": "returnId",
		"price_history":  "priceHistoryId",
	}
}

// State reports the loader's position in the constraint bracket.
func (l *Loader) State() State {
	return l.state
}

// Load upserts one table. Rows whose primary key already exists are
// skipped; other per-row failures are logged with the row index, counted,
// and do not abort the remaining rows. A table with no primary key mapping
// is skipped entirely and reported via Unmapped. Empty input is a no-op.
func (l *Loader) Load(ctx context.Context, table dataset.Table, batchID string) LoadResult {
	result := LoadResult{Table: table.Name}
	if len(table.Rows) == 0 {
		return result
	}

	pk, ok := l.primaryKeys[table.Name]
	if !ok {
		log.Printf("Warning: no primary key mapping for table %s, skipping load", table.Name)
		result.Unmapped = true
		return result
	}

	columns := append(append([]string{}, table.Columns...), "batch_id", "time_updated")
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = pq.QuoteIdentifier(col)
	}
	conflict := fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", pq.QuoteIdentifier(pk))

	for i, row := range table.Rows {
		// Stamp a derived copy so the generator's records stay untouched.
		values := make([]any, 0, len(columns))
		for _, col := range table.Columns {
			values = append(values, row[col])
		}
		values = append(values, batchID, l.now())

		sql, args, err := l.qb.Insert(pq.QuoteIdentifier(table.Name)).
			Columns(quoted...).
			Values(values...).
			Suffix(conflict).
			ToSql()
		if err != nil {
			log.Printf("Warning: failed to build upsert for %s row %d: %v", table.Name, i, err)
			result.Failed++
			continue
		}

		affected, err := l.db.Exec(ctx, sql, args...)
		if err != nil {
			log.Printf("Warning: failed to upsert %s row %d: %v", table.Name, i, err)
			result.Failed++
			continue
		}
		if affected == 0 {
			result.Skipped++
		} else {
			result.Inserted++
		}
	}

	return result
}

// Run executes the whole batch: relax constraints, load every table in
// dependency order, restore constraints. A restore failure leaves the
// store degraded and is surfaced through ErrConstraintsDegraded; the
// per-table results are still returned.
func (l *Loader) Run(ctx context.Context, tables []dataset.Table, batchID string) ([]LoadResult, error) {
	l.DropConstraints(ctx)
	l.state = ConstraintsRelaxed

	l.state = Loading
	results := make([]LoadResult, 0, len(tables))
	for _, table := range tables {
		results = append(results, l.Load(ctx, table, batchID))
	}

	l.state = ConstraintsRestoring
	if errs := l.RestoreConstraints(ctx); len(errs) > 0 {
		l.state = ConstraintsRelaxed
		return results, fmt.Errorf("%w: %d constraint(s) could not be restored", ErrConstraintsDegraded, len(errs))
	}
	l.state = ConstraintsActive

	return results, nil
}
