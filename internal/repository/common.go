// Package repository provides PostgreSQL persistence for the asset-management
// backend.
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

var (
	// ErrNotFound is returned when a row addressed by id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInUse is returned when a row cannot be deleted because others reference it.
	ErrInUse = errors.New("in use")
	// ErrInvalidReference is returned when a written row points at a row
	// that does not exist.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrDuplicate is returned on unique constraint violations.
	ErrDuplicate = errors.New("duplicate")
	// ErrConflict is returned when a conditional update matched no row.
	ErrConflict = errors.New("conflict")
)

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends a condition; format must contain one %d for the placeholder index.
func (w *whereBuilder) add(format string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(format, len(w.args)))
}

// raw appends a condition without an argument.
func (w *whereBuilder) raw(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page returns the LIMIT/OFFSET clause and its arguments appended to args.
func (w *whereBuilder) page(p models.ListParams) (string, []any) {
	args := append(append([]any{}, w.args...), p.Size, p.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

// orderBy maps a "field,dir" sort key through the allowed columns.
func orderBy(sortKey string, columns map[string]string, def string) string {
	field, dir, _ := strings.Cut(sortKey, ",")
	col, ok := columns[field]
	if !ok {
		return " ORDER BY " + def
	}
	if strings.EqualFold(dir, "desc") {
		return " ORDER BY " + col + " DESC"
	}
	return " ORDER BY " + col + " ASC"
}

// classify maps PostgreSQL constraint violations raised by INSERT and
// UPDATE to repository errors.
func classify(err error) error {
	return classifyAs(err, ErrInvalidReference)
}

// classifyDelete is classify for DELETE, where a foreign key violation
// means the row is still referenced.
func classifyDelete(err error) error {
	return classifyAs(err, ErrInUse)
}

func classifyAs(err, foreignKey error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503":
			return fmt.Errorf("%w: %s", foreignKey, pqErr.Constraint)
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
		}
	}
	return err
}

func nullInt(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func ptrInt(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func nullDate(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func dateString(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format("2006-01-02")
}
