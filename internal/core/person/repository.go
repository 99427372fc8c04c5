package person

import "context"

// Repository は人員エンティティの永続化を行うインターフェースです。
type Repository interface {
	// Create は名前の一意制約に違反した場合 ErrPersonAlreadyExists を返します。
	Create(ctx context.Context, person *Person) (*Person, error)
	Update(ctx context.Context, person *Person) (*Person, error)
	FindByName(ctx context.Context, name string) (*Person, error)
	List(ctx context.Context, filter ListPeopleFilter) ([]*Person, string, error)
}

// ListPeopleFilter は一覧取得用フィルタです。
type ListPeopleFilter struct {
	Limit  int
	Offset int
}
