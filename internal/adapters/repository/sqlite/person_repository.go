// Package sqlite は modernc.org/sqlite を使った組み込みストレージのリポジトリ実装です。
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
	sqlitedb "github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/sqlite"
)

const dateLayout = "2006-01-02"

const personSelect = `
        SELECT p.id,
               p.name,
               p.created_at,
               p.updated_at,
               d.person_id,
               d.current_rank,
               d.current_duty_title,
               d.career_start_date,
               d.career_end_date,
               d.updated_at
          FROM people p
          LEFT JOIN astronaut_details d ON d.person_id = p.id`

// PersonRepository は SQLite を利用した人員永続化の実装です。
type PersonRepository struct {
	db sqlitedb.Queryer
}

// NewPersonRepository は PersonRepository を生成します。
func NewPersonRepository(db sqlitedb.Queryer) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create は人員を新規作成します。
func (r *PersonRepository) Create(ctx context.Context, p *person.Person) (*person.Person, error) {
	exec := sqlitedb.QueryerFromContext(ctx, r.db)

	var id int64
	err := exec.QueryRowContext(ctx,
		`INSERT INTO people (name, created_at, updated_at) VALUES (?, ?, ?) RETURNING id`,
		p.Name, toMillis(p.CreatedAt), toMillis(p.UpdatedAt),
	).Scan(&id)
	if err != nil {
		return nil, translatePersonError(err)
	}

	return &person.Person{
		ID:        id,
		Name:      p.Name,
		CreatedAt: fromMillis(toMillis(p.CreatedAt)),
		UpdatedAt: fromMillis(toMillis(p.UpdatedAt)),
	}, nil
}

// Update は人員の名前を更新します。
func (r *PersonRepository) Update(ctx context.Context, p *person.Person) (*person.Person, error) {
	exec := sqlitedb.QueryerFromContext(ctx, r.db)

	res, err := exec.ExecContext(ctx,
		`UPDATE people SET name = ?, updated_at = ? WHERE id = ?`,
		p.Name, toMillis(p.UpdatedAt), p.ID,
	)
	if err != nil {
		return nil, translatePersonError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: rows affected: %w", err)
	}
	if affected == 0 {
		return nil, person.ErrPersonNotFound
	}

	row := exec.QueryRowContext(ctx, personSelect+` WHERE p.id = ?`, p.ID)
	updated, err := scanPerson(row)
	if err != nil {
		return nil, translatePersonError(err)
	}
	return updated, nil
}

// FindByName は名前の完全一致で人員を取得します。
func (r *PersonRepository) FindByName(ctx context.Context, name string) (*person.Person, error) {
	exec := sqlitedb.QueryerFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, personSelect+` WHERE p.name = ? LIMIT 1`, name)

	found, err := scanPerson(row)
	if err != nil {
		return nil, translatePersonError(err)
	}
	return found, nil
}

// List は人員を ID 昇順で取得します。
func (r *PersonRepository) List(ctx context.Context, filter person.ListPeopleFilter) ([]*person.Person, string, error) {
	if filter.Limit <= 0 {
		return nil, "", person.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", person.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	exec := sqlitedb.QueryerFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, personSelect+` ORDER BY p.id ASC LIMIT ? OFFSET ?`, limitWithBuffer, filter.Offset)
	if err != nil {
		return nil, "", translatePersonError(err)
	}
	defer rows.Close()

	people := make([]*person.Person, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, "", translatePersonError(err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, "", translatePersonError(err)
	}

	var nextToken string
	if len(people) == limitWithBuffer {
		people = people[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return people, nextToken, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*person.Person, error) {
	var (
		id               int64
		name             string
		createdAt        int64
		updatedAt        int64
		statusPersonID   sql.NullInt64
		currentRank      sql.NullString
		currentDutyTitle sql.NullString
		careerStart      sql.NullString
		careerEnd        sql.NullString
		statusUpdatedAt  sql.NullInt64
	)

	if err := row.Scan(
		&id,
		&name,
		&createdAt,
		&updatedAt,
		&statusPersonID,
		&currentRank,
		&currentDutyTitle,
		&careerStart,
		&careerEnd,
		&statusUpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, person.ErrPersonNotFound
		}
		return nil, err
	}

	p := &person.Person{
		ID:        id,
		Name:      name,
		CreatedAt: fromMillis(createdAt),
		UpdatedAt: fromMillis(updatedAt),
	}

	if statusPersonID.Valid {
		start, err := parseDate(careerStart.String)
		if err != nil {
			return nil, err
		}
		end, err := parseNullableDate(careerEnd)
		if err != nil {
			return nil, err
		}
		p.Status = &person.CurrentStatus{
			PersonID:         statusPersonID.Int64,
			CurrentRank:      currentRank.String,
			CurrentDutyTitle: currentDutyTitle.String,
			CareerStartDate:  start,
			CareerEndDate:    end,
			UpdatedAt:        fromMillis(statusUpdatedAt.Int64),
		}
	}

	return p, nil
}

func translatePersonError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return person.ErrPersonNotFound
	}
	switch constraintCode(err) {
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return person.ErrPersonAlreadyExists
	case sqlite3lib.SQLITE_CONSTRAINT_CHECK:
		return person.ErrInvalidName
	}
	return err
}

func constraintCode(err error) int {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()
	}
	return 0
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parse date %q: %w", raw, err)
	}
	return t, nil
}

func parseNullableDate(v sql.NullString) (*time.Time, error) {
	if !v.Valid {
		return nil, nil
	}
	t, err := parseDate(v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
