package person

import "time"

// Person は人員エンティティです。
type Person struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	// Status は任務履歴から導出された現在の状態です。任務が一件もない場合は nil です。
	Status *CurrentStatus
}

// CurrentStatus は任務履歴から再計算される現在の階級・職務・在任期間です。
type CurrentStatus struct {
	PersonID         int64
	CurrentRank      string
	CurrentDutyTitle string
	CareerStartDate  time.Time
	CareerEndDate    *time.Time
	UpdatedAt        time.Time
}

// Retired は退役日が設定されているかを返します。
func (s *CurrentStatus) Retired() bool {
	return s != nil && s.CareerEndDate != nil
}
