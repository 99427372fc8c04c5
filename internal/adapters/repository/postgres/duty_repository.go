package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/duty"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
	pgdb "github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/postgres"
)

const (
	lockPersonSQL = `SELECT id FROM people WHERE id = $1 FOR UPDATE`

	insertDutySQL = `
        INSERT INTO astronaut_duties (person_id, rank, duty_title, duty_start_date, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, person_id, rank, duty_title, duty_start_date, created_at
    `

	listDutiesByPersonSQL = `
        SELECT id, person_id, rank, duty_title, duty_start_date, created_at
          FROM astronaut_duties
         WHERE person_id = $1
         ORDER BY duty_start_date DESC, id DESC
    `

	upsertStatusSQL = `
        INSERT INTO astronaut_details (person_id, current_rank, current_duty_title, career_start_date, career_end_date, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (person_id) DO UPDATE
           SET current_rank = EXCLUDED.current_rank,
               current_duty_title = EXCLUDED.current_duty_title,
               career_start_date = EXCLUDED.career_start_date,
               career_end_date = EXCLUDED.career_end_date,
               updated_at = EXCLUDED.updated_at
    `
)

// TimelineRepository は PostgreSQL を利用した任務履歴の実装です。
type TimelineRepository struct {
	pool pgdb.Queryer
}

// NewTimelineRepository は TimelineRepository を生成します。
func NewTimelineRepository(pool pgdb.Queryer) *TimelineRepository {
	return &TimelineRepository{pool: pool}
}

// LockPerson は人員の行を FOR UPDATE で確保し、複数のサーバー間でも書き込みを直列化します。
// トランザクション内で呼び出す必要があります。
func (r *TimelineRepository) LockPerson(ctx context.Context, personID int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	var id int64
	if err := exec.QueryRow(ctx, lockPersonSQL, personID).Scan(&id); err != nil {
		return translateDutyPgError(err)
	}
	return nil
}

// Append は任務を追記します。
func (r *TimelineRepository) Append(ctx context.Context, d *duty.Duty) (*duty.Duty, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, insertDutySQL,
		d.PersonID,
		d.Rank,
		d.DutyTitle,
		dateOnly(d.StartDate),
		d.CreatedAt,
	)

	created, err := scanDuty(row)
	if err != nil {
		return nil, translateDutyPgError(err)
	}
	return created, nil
}

// ListByPerson は人員の任務を開始日の降順、同日は ID の降順で返します。
func (r *TimelineRepository) ListByPerson(ctx context.Context, personID int64) ([]*duty.Duty, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, listDutiesByPersonSQL, personID)
	if err != nil {
		return nil, translateDutyPgError(err)
	}
	defer rows.Close()

	var duties []*duty.Duty
	for rows.Next() {
		d, err := scanDuty(rows)
		if err != nil {
			return nil, translateDutyPgError(err)
		}
		duties = append(duties, d)
	}
	if err := rows.Err(); err != nil {
		return nil, translateDutyPgError(err)
	}

	return duties, nil
}

// StatusRepository は astronaut_details に現在状態を保存します。
type StatusRepository struct {
	pool pgdb.Queryer
}

// NewStatusRepository は StatusRepository を生成します。
func NewStatusRepository(pool pgdb.Queryer) *StatusRepository {
	return &StatusRepository{pool: pool}
}

// Upsert は人員の現在状態を挿入または上書きします。
func (r *StatusRepository) Upsert(ctx context.Context, s *person.CurrentStatus) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, upsertStatusSQL,
		s.PersonID,
		s.CurrentRank,
		s.CurrentDutyTitle,
		dateOnly(s.CareerStartDate),
		dateParam(s.CareerEndDate),
		s.UpdatedAt,
	); err != nil {
		return translateDutyPgError(err)
	}
	return nil
}

func scanDuty(row pgx.Row) (*duty.Duty, error) {
	var (
		d         duty.Duty
		startDate time.Time
		createdAt time.Time
	)
	if err := row.Scan(&d.ID, &d.PersonID, &d.Rank, &d.DutyTitle, &startDate, &createdAt); err != nil {
		return nil, err
	}
	d.StartDate = dateOnly(startDate)
	d.CreatedAt = createdAt.UTC()
	return &d, nil
}

func translateDutyPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return duty.ErrPersonNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return duty.ErrPersonNotFound
		case checkViolationCode:
			switch pgErr.ConstraintName {
			case "astronaut_duties_rank_not_blank":
				return duty.ErrInvalidRank
			case "astronaut_duties_title_not_blank":
				return duty.ErrInvalidDutyTitle
			}
		}
	}

	return err
}
