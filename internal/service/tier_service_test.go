package service

import (
	"resto_ops_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const staffID = uint(1)

func TestFoundationAlwaysUnlocked(t *testing.T) {
	e := newEngine(t)
	e.mustReadingCourse(t, model.TierFoundation, "welcome")

	unlocked, err := e.tier.IsUnlocked(staffID, model.TierFoundation)
	require.NoError(t, err)
	assert.True(t, unlocked)

	unlocked, err = e.tier.IsUnlocked(staffID, model.TierL1)
	require.NoError(t, err)
	assert.False(t, unlocked)
}

func TestEmptyTierIsVacuouslyComplete(t *testing.T) {
	e := newEngine(t)
	// foundation 没有任何课程 → 天然完成 → L1 解锁
	e.mustReadingCourse(t, model.TierL1, "food safety basics")

	status, err := e.tier.TierStatus(staffID, model.TierFoundation)
	require.NoError(t, err)
	assert.Equal(t, model.TierComplete, status)

	unlocked, err := e.tier.IsUnlocked(staffID, model.TierL1)
	require.NoError(t, err)
	assert.True(t, unlocked)
}

func TestUnlockChainAdvances(t *testing.T) {
	e := newEngine(t)
	f := e.mustReadingCourse(t, model.TierFoundation, "welcome")
	e.mustReadingCourse(t, model.TierL1, "haccp intro")

	unlocked, err := e.tier.IsUnlocked(staffID, model.TierL1)
	require.NoError(t, err)
	assert.False(t, unlocked)

	_, err = e.progress.RecordCompletion(staffID, f.ID, nil)
	require.NoError(t, err)

	unlocked, err = e.tier.IsUnlocked(staffID, model.TierL1)
	require.NoError(t, err)
	assert.True(t, unlocked)

	// L2 仍然锁着：L1 还有未完成课程
	unlocked, err = e.tier.IsUnlocked(staffID, model.TierL2)
	require.NoError(t, err)
	assert.False(t, unlocked)
}

func TestTierProgressPercent(t *testing.T) {
	e := newEngine(t)
	a := e.mustReadingCourse(t, model.TierFoundation, "a")
	e.mustReadingCourse(t, model.TierFoundation, "b")
	e.mustReadingCourse(t, model.TierFoundation, "c")

	percent, err := e.tier.TierProgress(staffID, model.TierFoundation)
	require.NoError(t, err)
	assert.Equal(t, 0, percent)

	_, err = e.progress.RecordCompletion(staffID, a.ID, nil)
	require.NoError(t, err)

	percent, err = e.tier.TierProgress(staffID, model.TierFoundation)
	require.NoError(t, err)
	assert.Equal(t, 33, percent)
}

// 管理员事后修正进度记录，下一次评估直接得到修正后的结果
func TestUnlockRecoversAfterCorrection(t *testing.T) {
	e := newEngine(t)
	f := e.mustReadingCourse(t, model.TierFoundation, "welcome")
	e.mustReadingCourse(t, model.TierL1, "haccp intro")

	_, err := e.progress.RecordCompletion(staffID, f.ID, nil)
	require.NoError(t, err)

	unlocked, err := e.tier.IsUnlocked(staffID, model.TierL1)
	require.NoError(t, err)
	assert.True(t, unlocked)

	// 撤销完成
	rec, err := e.progressRepo.FindByStaffAndCourse(staffID, f.ID)
	require.NoError(t, err)
	rec.Status = model.ProgressInProgress
	rec.ProgressPercent = model.ProgressPercentFailed
	rec.CompletedAt = nil
	require.NoError(t, e.progressRepo.Save(rec))

	unlocked, err = e.tier.IsUnlocked(staffID, model.TierL1)
	require.NoError(t, err)
	assert.False(t, unlocked)
}

func TestOverviewListsAllTiersInOrder(t *testing.T) {
	e := newEngine(t)
	e.mustReadingCourse(t, model.TierFoundation, "welcome")

	summaries, err := e.tier.Overview(staffID)
	require.NoError(t, err)
	require.Len(t, summaries, 4)

	assert.Equal(t, model.TierFoundation, summaries[0].Tier)
	assert.Equal(t, model.TierL1, summaries[1].Tier)
	assert.Equal(t, model.TierL2, summaries[2].Tier)
	assert.Equal(t, model.TierL3, summaries[3].Tier)

	assert.Equal(t, model.TierUnlockedIncomplete, summaries[0].Status)
	assert.Equal(t, 1, summaries[0].CourseCount)
}
