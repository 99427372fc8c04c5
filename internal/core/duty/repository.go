package duty

import (
	"context"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
)

// PersonFinder は名前から人員を解決します。person.Repository が満たします。
type PersonFinder interface {
	FindByName(ctx context.Context, name string) (*person.Person, error)
}

// TimelineRepository は任務履歴の永続化の抽象です。
type TimelineRepository interface {
	// LockPerson は同一トランザクション内で対象人員の書き込みを直列化します。
	LockPerson(ctx context.Context, personID int64) error
	Append(ctx context.Context, duty *Duty) (*Duty, error)
	// ListByPerson は開始日の降順、同日は ID の降順で返します。
	ListByPerson(ctx context.Context, personID int64) ([]*Duty, error)
}

// StatusRepository は現在状態の投影を保存します。
type StatusRepository interface {
	// Upsert は人員ごとに一件の投影を挿入または上書きします。
	Upsert(ctx context.Context, status *person.CurrentStatus) error
}
