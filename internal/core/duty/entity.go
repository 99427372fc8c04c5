package duty

import (
	"sort"
	"time"
)

// Duty は人員の任務履歴の一件を表します。作成後に変更されることはありません。
type Duty struct {
	ID        int64
	PersonID  int64
	Rank      string
	DutyTitle string
	StartDate time.Time
	// EndDate は一覧表示時に次の任務の開始日から導出されます。保存はされません。
	EndDate   *time.Time
	CreatedAt time.Time
}

// Timeline は一人分の任務履歴を開始日の昇順（同日は ID 昇順）で保持します。
type Timeline []*Duty

// NewTimeline は duties を並べ替えた Timeline を返します。引数のスライスは変更しません。
func NewTimeline(duties []*Duty) Timeline {
	t := make(Timeline, 0, len(duties))
	for _, d := range duties {
		if d != nil {
			t = append(t, d)
		}
	}
	sort.SliceStable(t, func(i, j int) bool {
		return before(t[i], t[j])
	})
	return t
}

// Earliest は開始日が最も早い任務を返します。
func (t Timeline) Earliest() *Duty {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Latest は開始日が最も遅い任務を返します。挿入順ではありません。
func (t Timeline) Latest() *Duty {
	if len(t) == 0 {
		return nil
	}
	return t[len(t)-1]
}

// LatestRetirement は退役任務のうち最も遅いものを返します。存在しなければ nil です。
func (t Timeline) LatestRetirement(retirementTitle string) *Duty {
	for i := len(t) - 1; i >= 0; i-- {
		if IsRetirement(t[i], retirementTitle) {
			return t[i]
		}
	}
	return nil
}

// Descending は表示用に新しい順へ並べた任務を返します。
// 各任務の EndDate には次の任務の開始日の前日を設定し、最新の任務は nil のままにします。
func (t Timeline) Descending() []*Duty {
	out := make([]*Duty, len(t))
	for i, d := range t {
		clone := *d
		clone.EndDate = nil
		if i+1 < len(t) {
			end := t[i+1].StartDate.AddDate(0, 0, -1)
			if end.Before(d.StartDate) {
				end = d.StartDate
			}
			clone.EndDate = &end
		}
		out[len(t)-1-i] = &clone
	}
	return out
}

// IsRetirement は d が退役を表す任務かを返します。
func IsRetirement(d *Duty, retirementTitle string) bool {
	return d != nil && d.DutyTitle == retirementTitle
}

func before(a, b *Duty) bool {
	if !a.StartDate.Equal(b.StartDate) {
		return a.StartDate.Before(b.StartDate)
	}
	return a.ID < b.ID
}

// NormalizeDate は時刻成分を落とした UTC の日付を返します。
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
