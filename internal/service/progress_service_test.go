package service

import (
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingCompletionUnlocksNextTier(t *testing.T) {
	e := newEngine(t)
	welcome := e.mustReadingCourse(t, model.TierFoundation, "welcome to the kitchen")
	e.mustQuizCourse(t, model.TierL1, 10, false)

	result, err := e.progress.RecordCompletion(staffID, welcome.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, model.ProgressCompleted, result.Record.Status)
	assert.Equal(t, model.ProgressPercentDone, result.Record.ProgressPercent)
	require.NotNil(t, result.Record.CompletedAt)

	unlocked, err := e.tier.IsUnlocked(staffID, model.TierL1)
	require.NoError(t, err)
	assert.True(t, unlocked)
}

func TestReadingCompletionIsIdempotent(t *testing.T) {
	e := newEngine(t)
	welcome := e.mustReadingCourse(t, model.TierFoundation, "welcome")

	first, err := e.progress.RecordCompletion(staffID, welcome.ID, nil)
	require.NoError(t, err)
	second, err := e.progress.RecordCompletion(staffID, welcome.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Record.ID, second.Record.ID)
	assert.Equal(t, first.Record.CompletedAt.Unix(), second.Record.CompletedAt.Unix())
}

func TestQuizFailLeavesInProgress(t *testing.T) {
	e := newEngine(t)
	quiz := e.mustQuizCourse(t, model.TierFoundation, 10, false)

	// 7/10 = 70，Foundation 及格线 80
	result, err := e.progress.RecordCompletion(staffID, quiz.ID, answersFor(quiz, 7))
	require.NoError(t, err)

	assert.Equal(t, 70, result.Score)
	assert.False(t, result.Passed)
	assert.Equal(t, 80, result.PassMark)
	assert.Equal(t, model.ProgressInProgress, result.Record.Status)
	assert.Equal(t, model.ProgressPercentFailed, result.Record.ProgressPercent)
	assert.Equal(t, 1, result.Record.AttemptCount)
	assert.Equal(t, 70, result.Record.LastQuizScore)
	assert.Nil(t, result.Record.CompletedAt)
}

func TestQuizRetakePassesAndIssuesCertificate(t *testing.T) {
	e := newEngine(t)
	quiz := e.mustQuizCourse(t, model.TierFoundation, 10, false)

	_, err := e.progress.RecordCompletion(staffID, quiz.ID, answersFor(quiz, 7))
	require.NoError(t, err)

	result, err := e.progress.RecordCompletion(staffID, quiz.ID, answersFor(quiz, 9))
	require.NoError(t, err)

	assert.Equal(t, 90, result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, model.ProgressCompleted, result.Record.Status)
	assert.Equal(t, 2, result.Record.AttemptCount)
	require.NotNil(t, result.Record.CompletedAt)

	// quiz 是 foundation 唯一课程，等级补齐即签发证书
	require.NotNil(t, result.Certificate)
	assert.Equal(t, model.TierFoundation, result.Certificate.Tier)
	assert.Equal(t, 90, result.Certificate.ScoreSnapshot)
}

func TestIncompleteQuizSubmissionLeavesNoTrace(t *testing.T) {
	e := newEngine(t)
	quiz := e.mustQuizCourse(t, model.TierFoundation, 10, false)

	answers := answersFor(quiz, 10)
	delete(answers, quiz.Questions[0].ID)

	_, err := e.progress.RecordCompletion(staffID, quiz.ID, answers)
	assert.ErrorIs(t, err, util.ErrIncompleteSubmission)

	// 评分前被拒绝，不应留下任何进度记录
	_, err = e.progressRepo.FindByStaffAndCourse(staffID, quiz.ID)
	assert.Error(t, err)
}

func TestRetakeAfterCompletionNeverDowngrades(t *testing.T) {
	e := newEngine(t)
	quiz := e.mustQuizCourse(t, model.TierFoundation, 10, false)

	_, err := e.progress.RecordCompletion(staffID, quiz.ID, answersFor(quiz, 10))
	require.NoError(t, err)

	// 完成后再考砸，状态不回退，成绩与次数照常记录
	result, err := e.progress.RecordCompletion(staffID, quiz.ID, answersFor(quiz, 3))
	require.NoError(t, err)

	assert.Equal(t, model.ProgressCompleted, result.Record.Status)
	assert.Equal(t, model.ProgressPercentDone, result.Record.ProgressPercent)
	assert.Equal(t, 30, result.Record.LastQuizScore)
	assert.Equal(t, 2, result.Record.AttemptCount)
}

func TestUncappedRetakes(t *testing.T) {
	e := newEngine(t)
	quiz := e.mustQuizCourse(t, model.TierFoundation, 10, false)

	for i := 0; i < 5; i++ {
		_, err := e.progress.RecordCompletion(staffID, quiz.ID, answersFor(quiz, 2))
		require.NoError(t, err)
	}

	rec, err := e.progressRepo.FindByStaffAndCourse(staffID, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, rec.AttemptCount)
	assert.Equal(t, model.ProgressInProgress, rec.Status)
}

func TestCapstonePassHeldForReflection(t *testing.T) {
	e := newEngine(t)
	// L3 压轴课，及格线 90
	capstone := e.mustQuizCourse(t, model.TierL3, 10, true)

	result, err := e.progress.RecordCompletion(staffID, capstone.ID, answersFor(capstone, 9))
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.True(t, result.AwaitsReflect)
	assert.Equal(t, model.ProgressInProgress, result.Record.Status)
	assert.Equal(t, model.ProgressPercentReflecting, result.Record.ProgressPercent)
	assert.Nil(t, result.Record.CompletedAt)
	assert.Nil(t, result.Certificate)

	// 无论过多久不提交反思，记录保持原样
	again, err := e.progressRepo.FindByStaffAndCourse(staffID, capstone.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ProgressInProgress, again.Status)
	assert.Equal(t, model.ProgressPercentReflecting, again.ProgressPercent)
}

func TestLockedTierRejectsAllInteractions(t *testing.T) {
	e := newEngine(t)
	e.mustReadingCourse(t, model.TierFoundation, "welcome")
	l1quiz := e.mustQuizCourse(t, model.TierL1, 10, false)

	_, err := e.progress.RecordCompletion(staffID, l1quiz.ID, answersFor(l1quiz, 10))
	assert.ErrorIs(t, err, util.ErrTierLocked)

	_, err = e.progress.ListTierCourses(staffID, model.TierL1)
	assert.ErrorIs(t, err, util.ErrTierLocked)
}

func TestUnknownCourse(t *testing.T) {
	e := newEngine(t)
	_, err := e.progress.RecordCompletion(staffID, 9999, nil)
	assert.ErrorIs(t, err, util.ErrUnknownCourse)
}

func TestListTierCoursesIncludesProgress(t *testing.T) {
	e := newEngine(t)
	a := e.mustReadingCourse(t, model.TierFoundation, "a")
	e.mustReadingCourse(t, model.TierFoundation, "b")

	_, err := e.progress.RecordCompletion(staffID, a.ID, nil)
	require.NoError(t, err)

	states, err := e.progress.ListTierCourses(staffID, model.TierFoundation)
	require.NoError(t, err)
	require.Len(t, states, 2)

	byID := map[uint]*model.ProgressRecord{}
	for _, st := range states {
		byID[st.Course.ID] = st.Record
	}
	require.NotNil(t, byID[a.ID])
	assert.Equal(t, model.ProgressCompleted, byID[a.ID].Status)
}

func TestPassMarkOverrideApplies(t *testing.T) {
	e := newEngine(t)
	quiz := e.mustQuizCourse(t, model.TierFoundation, 10, false)
	quiz.PassMarkOverride = 95
	require.NoError(t, e.courseRepo.Save(quiz))

	result, err := e.progress.RecordCompletion(staffID, quiz.ID, answersFor(quiz, 9))
	require.NoError(t, err)

	// 90 分在覆盖线 95 之下
	assert.False(t, result.Passed)
	assert.Equal(t, 95, result.PassMark)
	assert.Equal(t, model.ProgressInProgress, result.Record.Status)
}
