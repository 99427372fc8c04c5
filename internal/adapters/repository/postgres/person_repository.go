package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
	pgdb "github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/postgres"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

const personColumns = `
               p.id,
               p.name,
               p.created_at,
               p.updated_at,
               d.person_id,
               d.current_rank,
               d.current_duty_title,
               d.career_start_date,
               d.career_end_date,
               d.updated_at`

const (
	insertPersonSQL = `
        WITH p AS (
            INSERT INTO people (name, created_at, updated_at)
            VALUES ($1, $2, $3)
            RETURNING id, name, created_at, updated_at
        )
        SELECT` + personColumns + `
          FROM p
          LEFT JOIN astronaut_details d ON d.person_id = p.id
    `

	updatePersonSQL = `
        WITH p AS (
            UPDATE people
               SET name = $1,
                   updated_at = $2
             WHERE id = $3
            RETURNING id, name, created_at, updated_at
        )
        SELECT` + personColumns + `
          FROM p
          LEFT JOIN astronaut_details d ON d.person_id = p.id
    `

	selectPersonByNameSQL = `
        SELECT` + personColumns + `
          FROM people p
          LEFT JOIN astronaut_details d ON d.person_id = p.id
         WHERE p.name = $1
         LIMIT 1
    `

	listPeopleSQL = `
        SELECT` + personColumns + `
          FROM people p
          LEFT JOIN astronaut_details d ON d.person_id = p.id
         ORDER BY p.id ASC
         LIMIT $1
        OFFSET $2
    `
)

// PersonRepository は PostgreSQL を利用した人員永続化の実装です。
type PersonRepository struct {
	pool pgdb.Queryer
}

// NewPersonRepository は PersonRepository を生成します。
func NewPersonRepository(pool pgdb.Queryer) *PersonRepository {
	return &PersonRepository{pool: pool}
}

// Create は人員を新規作成します。名前の一意制約違反は ErrPersonAlreadyExists になります。
func (r *PersonRepository) Create(ctx context.Context, p *person.Person) (*person.Person, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, insertPersonSQL, p.Name, p.CreatedAt, p.UpdatedAt)

	created, err := scanPerson(row)
	if err != nil {
		return nil, translatePersonPgError(err)
	}
	return created, nil
}

// Update は人員の名前を更新します。
func (r *PersonRepository) Update(ctx context.Context, p *person.Person) (*person.Person, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, updatePersonSQL, p.Name, p.UpdatedAt, p.ID)

	updated, err := scanPerson(row)
	if err != nil {
		return nil, translatePersonPgError(err)
	}
	return updated, nil
}

// FindByName は名前の完全一致で人員を取得します。
func (r *PersonRepository) FindByName(ctx context.Context, name string) (*person.Person, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, selectPersonByNameSQL, name)

	found, err := scanPerson(row)
	if err != nil {
		return nil, translatePersonPgError(err)
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

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, listPeopleSQL, limitWithBuffer, filter.Offset)
	if err != nil {
		return nil, "", translatePersonPgError(err)
	}
	defer rows.Close()

	people := make([]*person.Person, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, "", translatePersonPgError(err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, "", translatePersonPgError(err)
	}

	var nextToken string
	if len(people) == limitWithBuffer {
		people = people[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return people, nextToken, nil
}

func scanPerson(row pgx.Row) (*person.Person, error) {
	var (
		id               int64
		name             string
		createdAt        time.Time
		updatedAt        time.Time
		statusPersonID   sql.NullInt64
		currentRank      sql.NullString
		currentDutyTitle sql.NullString
		careerStart      sql.NullTime
		careerEnd        sql.NullTime
		statusUpdatedAt  sql.NullTime
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, person.ErrPersonNotFound
		}
		return nil, err
	}

	p := &person.Person{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: updatedAt.UTC(),
	}

	if statusPersonID.Valid {
		p.Status = &person.CurrentStatus{
			PersonID:         statusPersonID.Int64,
			CurrentRank:      currentRank.String,
			CurrentDutyTitle: currentDutyTitle.String,
			CareerStartDate:  dateOnly(careerStart.Time),
			CareerEndDate:    nullableDate(careerEnd),
			UpdatedAt:        statusUpdatedAt.Time.UTC(),
		}
	}

	return p, nil
}

func translatePersonPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return person.ErrPersonNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return person.ErrPersonAlreadyExists
		case checkViolationCode:
			return person.ErrInvalidName
		}
	}

	return err
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nullableDate(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	d := dateOnly(v.Time)
	return &d
}

func dateParam(t *time.Time) any {
	if t == nil {
		return nil
	}
	return dateOnly(*t)
}
