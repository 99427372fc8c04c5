package person

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
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

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service は人員名簿に関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は人員ユースケースの公開インターフェースです。
type UseCase interface {
	CreatePerson(ctx context.Context, in CreatePersonInput) (*Person, error)
	RenamePerson(ctx context.Context, in RenamePersonInput) (*Person, error)
	GetPerson(ctx context.Context, in GetPersonInput) (*Person, error)
	ListPeople(ctx context.Context, in ListPeopleInput) (*ListPeopleResult, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// CreatePersonInput は人員作成時の入力です。
type CreatePersonInput struct {
	Name string
}

// RenamePersonInput は人員の改名時の入力です。
type RenamePersonInput struct {
	CurrentName string
	NewName     string
}

// GetPersonInput は人員取得時の入力です。
type GetPersonInput struct {
	Name string
}

// ListPeopleInput は一覧取得時の入力です。
type ListPeopleInput struct {
	PageSize  int
	PageToken string
}

// ListPeopleResult は一覧取得結果を表します。
type ListPeopleResult struct {
	People        []*Person
	NextPageToken string
}

// CreatePerson は新しい人員を登録します。
// 重複判定はリポジトリの一意制約に委ね、事前確認と挿入の間の競合を作りません。
func (s *Service) CreatePerson(ctx context.Context, in CreatePersonInput) (*Person, error) {
	name, err := NormalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	var created *Person
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Person{
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// RenamePerson は人員の名前を変更します。ID と任務履歴はそのまま保持されます。
// 新しい名前が他の人員と重複する場合は ErrPersonAlreadyExists を返します。
func (s *Service) RenamePerson(ctx context.Context, in RenamePersonInput) (*Person, error) {
	currentName, err := NormalizeName(in.CurrentName)
	if err != nil {
		return nil, err
	}

	newName, err := NormalizeName(in.NewName)
	if err != nil {
		return nil, err
	}

	var renamed *Person
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByName(txCtx, currentName)
		if err != nil {
			return err
		}

		if existing.Name == newName {
			renamed = existing
			return nil
		}

		existing.Name = newName
		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		renamed = result
		return nil
	}); err != nil {
		return nil, err
	}

	return renamed, nil
}

// GetPerson は名前で人員と現在の状態を取得します。
func (s *Service) GetPerson(ctx context.Context, in GetPersonInput) (*Person, error) {
	name, err := NormalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	var found *Person
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByName(txCtx, name)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListPeople は人員の一覧を現在の状態とともに取得します。
func (s *Service) ListPeople(ctx context.Context, in ListPeopleInput) (*ListPeopleResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var (
		people    []*Person
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, ListPeopleFilter{Limit: limit, Offset: offset})
		if err != nil {
			return err
		}
		people = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListPeopleResult{People: people, NextPageToken: nextToken}, nil
}

// NormalizeName は前後の空白を除去した名前を返します。大文字小文字は区別したまま扱います。
func NormalizeName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidName
	}
	return trimmed, nil
}

// IsNotFound は err が人員未存在を表すかを返します。
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPersonNotFound)
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}
