package model

// Tier 培训等级，固定四级递进
type Tier string

const (
	TierFoundation Tier = "foundation"
	TierL1         Tier = "l1"
	TierL2         Tier = "l2"
	TierL3         Tier = "l3"
)

// TierOrder 返回等级在递进序列中的下标，未知等级返回 -1
func TierOrder(t Tier) int {
	switch t {
	case TierFoundation:
		return 0
	case TierL1:
		return 1
	case TierL2:
		return 2
	case TierL3:
		return 3
	}
	return -1
}

// AllTiers 按递进顺序排列
func AllTiers() []Tier {
	return []Tier{TierFoundation, TierL1, TierL2, TierL3}
}

// PreviousTier 返回前一级，Foundation 没有前一级
func PreviousTier(t Tier) (Tier, bool) {
	order := TierOrder(t)
	if order <= 0 {
		return "", false
	}
	return AllTiers()[order-1], true
}

func (t Tier) Valid() bool {
	return TierOrder(t) >= 0
}

// DisplayName 证书上的等级名称
func (t Tier) DisplayName() string {
	switch t {
	case TierFoundation:
		return "Foundation"
	case TierL1:
		return "Hygiene Level 1"
	case TierL2:
		return "Hygiene Level 2"
	case TierL3:
		return "Hygiene Level 3"
	}
	return string(t)
}

// TierPassMark 等级默认及格线（百分比），课程可覆盖
func TierPassMark(t Tier) int {
	switch t {
	case TierL2:
		return 85
	case TierL3:
		return 90
	default:
		return 80
	}
}

// TierStatus 等级解锁状态
type TierStatus string

const (
	TierLocked             TierStatus = "locked"
	TierUnlockedIncomplete TierStatus = "unlocked_incomplete"
	TierComplete           TierStatus = "complete"
)
