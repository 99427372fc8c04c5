package duty

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/keylock"
)

const defaultRetirementTitle = "RETIRED"

// 日付は YYYY-MM-DD で表せる範囲に限ります。
const (
	minStartYear = 1
	maxStartYear = 9999
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Locker は人員 ID 単位の排他を提供します。
type Locker interface {
	Lock(ctx context.Context, key int64) (func(), error)
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithClock は時刻の取得元を差し替えます。
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger はロガーを設定します。
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRetirementTitle は退役を表す職務名を設定します。
func WithRetirementTitle(title string) Option {
	return func(s *Service) {
		if t := strings.TrimSpace(title); t != "" {
			s.retirementTitle = t
		}
	}
}

// WithLocker は人員単位のロックを差し替えます。
func WithLocker(locker Locker) Option {
	return func(s *Service) {
		if locker != nil {
			s.locker = locker
		}
	}
}

// Service は任務記録の取り込みと現在状態の投影を扱います。
type Service struct {
	people          PersonFinder
	timeline        TimelineRepository
	statuses        StatusRepository
	tx              TransactionManager
	clock           Clock
	locker          Locker
	logger          *zap.Logger
	retirementTitle string
}

// UseCase は任務ユースケースの公開インターフェースです。
type UseCase interface {
	CreateDuty(ctx context.Context, in CreateDutyInput) (*Duty, error)
	ListDuties(ctx context.Context, in ListDutiesInput) (*ListDutiesResult, error)
	RebuildStatus(ctx context.Context, in RebuildStatusInput) (*person.Person, error)
}

// NewService は Service を生成します。
func NewService(people PersonFinder, timeline TimelineRepository, statuses StatusRepository, tx TransactionManager, opts ...Option) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	s := &Service{
		people:          people,
		timeline:        timeline,
		statuses:        statuses,
		tx:              tx,
		clock:           realClock{},
		locker:          keylock.New[int64](),
		logger:          zap.NewNop(),
		retirementTitle: defaultRetirementTitle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateDutyInput は任務記録の入力です。
type CreateDutyInput struct {
	Name      string
	Rank      string
	DutyTitle string
	StartDate time.Time
}

// ListDutiesInput は任務履歴取得時の入力です。
type ListDutiesInput struct {
	Name string
}

// ListDutiesResult は人員と新しい順の任務履歴です。
type ListDutiesResult struct {
	Person *person.Person
	Duties []*Duty
}

// RebuildStatusInput は現在状態の再構築時の入力です。
type RebuildStatusInput struct {
	Name string
}

// CreateDuty は任務を追記し、同じトランザクションで現在状態を再計算します。
// 同一人員への取り込みは直列化され、異なる人員は並行に処理されます。
func (s *Service) CreateDuty(ctx context.Context, in CreateDutyInput) (*Duty, error) {
	normalized, err := s.validateCreate(in)
	if err != nil {
		return nil, err
	}

	p, err := s.resolvePerson(ctx, normalized.Name)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("duty: acquire person lock: %w", err)
	}
	defer unlock()

	var (
		created *Duty
		status  *person.CurrentStatus
	)
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.timeline.LockPerson(txCtx, p.ID); err != nil {
			return err
		}

		now := s.clock.Now()
		result, err := s.timeline.Append(txCtx, &Duty{
			PersonID:  p.ID,
			Rank:      normalized.Rank,
			DutyTitle: normalized.DutyTitle,
			StartDate: normalized.StartDate,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
		created = result

		status, err = s.recompute(txCtx, p.ID, now)
		return err
	}); err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.Int64("person_id", p.ID),
		zap.Int64("duty_id", created.ID),
		zap.String("duty_title", created.DutyTitle),
	}
	if status != nil {
		fields = append(fields, zap.Bool("retired", status.Retired()))
	}
	s.logger.Info("astronaut duty recorded", fields...)

	return created, nil
}

// ListDuties は人員と任務履歴を新しい順で返します。各任務には導出した終了日が付きます。
func (s *Service) ListDuties(ctx context.Context, in ListDutiesInput) (*ListDutiesResult, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	var result ListDutiesResult
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		p, err := s.findPerson(txCtx, name)
		if err != nil {
			return err
		}

		duties, err := s.timeline.ListByPerson(txCtx, p.ID)
		if err != nil {
			return err
		}

		result.Person = p
		result.Duties = NewTimeline(duties).Descending()
		return nil
	}); err != nil {
		return nil, err
	}

	return &result, nil
}

// RebuildStatus は任務履歴を再生して現在状態を保存し直します。
// 履歴が変わっていなければ結果は以前と同じです。
func (s *Service) RebuildStatus(ctx context.Context, in RebuildStatusInput) (*person.Person, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	p, err := s.resolvePerson(ctx, name)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("duty: acquire person lock: %w", err)
	}
	defer unlock()

	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.timeline.LockPerson(txCtx, p.ID); err != nil {
			return err
		}
		status, err := s.recompute(txCtx, p.ID, s.clock.Now())
		if err != nil {
			return err
		}
		p.Status = status
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.Info("current status rebuilt", zap.Int64("person_id", p.ID), zap.Bool("has_status", p.Status != nil))
	return p, nil
}

func (s *Service) recompute(ctx context.Context, personID int64, now time.Time) (*person.CurrentStatus, error) {
	duties, err := s.timeline.ListByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}

	status, ok := Project(personID, duties, s.retirementTitle)
	if !ok {
		return nil, nil
	}
	status.UpdatedAt = now

	if err := s.statuses.Upsert(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *Service) resolvePerson(ctx context.Context, name string) (*person.Person, error) {
	var found *person.Person
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		p, err := s.findPerson(txCtx, name)
		if err != nil {
			return err
		}
		found = p
		return nil
	}); err != nil {
		return nil, err
	}
	return found, nil
}

func (s *Service) findPerson(ctx context.Context, name string) (*person.Person, error) {
	p, err := s.people.FindByName(ctx, name)
	if err != nil {
		if person.IsNotFound(err) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) validateCreate(in CreateDutyInput) (CreateDutyInput, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return CreateDutyInput{}, err
	}

	rank := strings.TrimSpace(in.Rank)
	if rank == "" {
		return CreateDutyInput{}, ErrInvalidRank
	}

	title := strings.TrimSpace(in.DutyTitle)
	if title == "" {
		return CreateDutyInput{}, ErrInvalidDutyTitle
	}

	if in.StartDate.IsZero() {
		return CreateDutyInput{}, ErrInvalidStartDate
	}
	start := NormalizeDate(in.StartDate)
	if y := start.Year(); y < minStartYear || y > maxStartYear {
		return CreateDutyInput{}, ErrInvalidStartDate
	}

	return CreateDutyInput{
		Name:      name,
		Rank:      rank,
		DutyTitle: title,
		StartDate: start,
	}, nil
}

func normalizeName(raw string) (string, error) {
	name, err := person.NormalizeName(raw)
	if err != nil {
		return "", ErrInvalidName
	}
	return name, nil
}
