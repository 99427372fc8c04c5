package duty

import "github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"

// Project は任務履歴全体から現在状態を導出します。履歴が空の場合は false を返します。
//
// 最新の任務が退役であればその開始日の前日を退役日とします。退役後に別の任務が
// 記録されていれば復職とみなし、退役日は設定しません。UpdatedAt は呼び出し側で設定します。
func Project(personID int64, duties []*Duty, retirementTitle string) (*person.CurrentStatus, bool) {
	timeline := NewTimeline(duties)
	if len(timeline) == 0 {
		return nil, false
	}

	earliest := timeline.Earliest()
	latest := timeline.Latest()

	status := &person.CurrentStatus{
		PersonID:         personID,
		CurrentRank:      latest.Rank,
		CurrentDutyTitle: latest.DutyTitle,
		CareerStartDate:  NormalizeDate(earliest.StartDate),
	}

	retirement := timeline.LatestRetirement(retirementTitle)
	if retirement != nil && !before(retirement, latest) {
		end := NormalizeDate(retirement.StartDate).AddDate(0, 0, -1)
		status.CareerEndDate = &end
	}

	return status, true
}
