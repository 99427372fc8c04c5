package sqlite

import (
	"context"
	"database/sql"
	"errors"

	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/duty"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
	sqlitedb "github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/sqlite"
)

// TimelineRepository は SQLite を利用した任務履歴の実装です。
type TimelineRepository struct {
	db sqlitedb.Queryer
}

// NewTimelineRepository は TimelineRepository を生成します。
func NewTimelineRepository(db sqlitedb.Queryer) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// LockPerson は人員の存在だけを確認します。
// 書き込みトランザクションは BEGIN IMMEDIATE で開始されるため、この時点で既に直列化されています。
func (r *TimelineRepository) LockPerson(ctx context.Context, personID int64) error {
	exec := sqlitedb.QueryerFromContext(ctx, r.db)

	var id int64
	if err := exec.QueryRowContext(ctx, `SELECT id FROM people WHERE id = ?`, personID).Scan(&id); err != nil {
		return translateDutyError(err)
	}
	return nil
}

// Append は任務を追記します。
func (r *TimelineRepository) Append(ctx context.Context, d *duty.Duty) (*duty.Duty, error) {
	exec := sqlitedb.QueryerFromContext(ctx, r.db)

	var id int64
	err := exec.QueryRowContext(ctx, `
        INSERT INTO astronaut_duties (person_id, rank, duty_title, duty_start_date, created_at)
        VALUES (?, ?, ?, ?, ?)
        RETURNING id`,
		d.PersonID, d.Rank, d.DutyTitle, formatDate(d.StartDate), toMillis(d.CreatedAt),
	).Scan(&id)
	if err != nil {
		return nil, translateDutyError(err)
	}

	created := *d
	created.ID = id
	created.StartDate = duty.NormalizeDate(d.StartDate)
	created.CreatedAt = fromMillis(toMillis(d.CreatedAt))
	created.EndDate = nil
	return &created, nil
}

// ListByPerson は人員の任務を開始日の降順、同日は ID の降順で返します。
// 日付は YYYY-MM-DD で保存しているため文字列順がそのまま日付順になります。
func (r *TimelineRepository) ListByPerson(ctx context.Context, personID int64) ([]*duty.Duty, error) {
	exec := sqlitedb.QueryerFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, `
        SELECT id, person_id, rank, duty_title, duty_start_date, created_at
          FROM astronaut_duties
         WHERE person_id = ?
         ORDER BY duty_start_date DESC, id DESC`, personID)
	if err != nil {
		return nil, translateDutyError(err)
	}
	defer rows.Close()

	var duties []*duty.Duty
	for rows.Next() {
		var (
			d         duty.Duty
			startDate string
			createdAt int64
		)
		if err := rows.Scan(&d.ID, &d.PersonID, &d.Rank, &d.DutyTitle, &startDate, &createdAt); err != nil {
			return nil, err
		}
		if d.StartDate, err = parseDate(startDate); err != nil {
			return nil, err
		}
		d.CreatedAt = fromMillis(createdAt)
		duties = append(duties, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return duties, nil
}

// StatusRepository は astronaut_details に現在状態を保存します。
type StatusRepository struct {
	db sqlitedb.Queryer
}

// NewStatusRepository は StatusRepository を生成します。
func NewStatusRepository(db sqlitedb.Queryer) *StatusRepository {
	return &StatusRepository{db: db}
}

// Upsert は人員の現在状態を挿入または上書きします。
func (r *StatusRepository) Upsert(ctx context.Context, s *person.CurrentStatus) error {
	var end sql.NullString
	if s.CareerEndDate != nil {
		end = sql.NullString{String: formatDate(*s.CareerEndDate), Valid: true}
	}

	exec := sqlitedb.QueryerFromContext(ctx, r.db)
	_, err := exec.ExecContext(ctx, `
        INSERT INTO astronaut_details (person_id, current_rank, current_duty_title, career_start_date, career_end_date, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT (person_id) DO UPDATE
           SET current_rank = excluded.current_rank,
               current_duty_title = excluded.current_duty_title,
               career_start_date = excluded.career_start_date,
               career_end_date = excluded.career_end_date,
               updated_at = excluded.updated_at`,
		s.PersonID, s.CurrentRank, s.CurrentDutyTitle, formatDate(s.CareerStartDate), end, toMillis(s.UpdatedAt),
	)
	if err != nil {
		return translateDutyError(err)
	}
	return nil
}

func translateDutyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return duty.ErrPersonNotFound
	}
	if constraintCode(err) == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
		return duty.ErrPersonNotFound
	}
	return err
}
